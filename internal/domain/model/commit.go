package model

// ChangeSet is the input of a sync run: the files touched by one commit and
// its message.
type ChangeSet struct {
	// Revision is the commit id when known; empty for environment input.
	Revision string
	Files    []string
	Message  string
}

// CommitMetadata is parsed from a LeetHub commit message.
type CommitMetadata struct {
	Title      string
	Difficulty string
	// Tags is the raw comma-separated list as written in the commit.
	Tags string
}
