package model

import "time"

// RunStatus is the overall result of a sync run.
type RunStatus string

const (
	RunSynced         RunStatus = "synced"
	RunNothingToSync  RunStatus = "nothing_to_sync"
	RunUnparsedCommit RunStatus = "unparsed_commit"
)

// Action is what happened to a single slug.
type Action string

const (
	ActionCreated     Action = "created"
	ActionUpdated     Action = "updated"
	ActionWouldCreate Action = "would_create"
	ActionWouldUpdate Action = "would_update"
	ActionFailed      Action = "failed"
)

// Outcome records the result for one slug.
type Outcome struct {
	Slug     string `yaml:"slug"`
	Action   Action `yaml:"action"`
	RecordID string `yaml:"record_id,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// Report summarizes a sync run.
type Report struct {
	RunID      string        `yaml:"run_id"`
	Revision   string        `yaml:"revision,omitempty"`
	Status     RunStatus     `yaml:"status"`
	DryRun     bool          `yaml:"dry_run,omitempty"`
	Title      string        `yaml:"title,omitempty"`
	Difficulty string        `yaml:"difficulty,omitempty"`
	Tags       []string      `yaml:"tags,omitempty"`
	Outcomes   []Outcome     `yaml:"outcomes,omitempty"`
	StartedAt  time.Time     `yaml:"started_at"`
	Duration   time.Duration `yaml:"duration"`
}

// Failed returns the number of slugs that could not be synced.
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == ActionFailed {
			n++
		}
	}
	return n
}
