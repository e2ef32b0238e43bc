package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leethub-sync/internal/domain/model"
	"leethub-sync/internal/domain/ports"
	"leethub-sync/internal/leethub"
)

// DefaultLinkTemplate builds the problem URL stored on new records.
const DefaultLinkTemplate = "https://leetcode.com/problems/%s/"

// SyncProblems marks the problems touched by a LeetHub commit as solved in
// the record store, creating records for problems seen for the first time.
type SyncProblems struct {
	records      ports.RecordStore
	problems     ports.ProblemProvider
	notifier     ports.Notifier
	logger       ports.Logger
	filter       *leethub.Filter
	linkTemplate string
	dryRun       bool
	now          func() time.Time
}

// SyncProblemsConfig controls optional behaviours for the sync.
type SyncProblemsConfig struct {
	Extensions   []string
	SkipFiles    []string
	LinkTemplate string
	DryRun       bool
}

// NewSyncProblems constructs a SyncProblems use case. problems and notifier
// may be nil to disable enrichment and run summaries.
func NewSyncProblems(
	records ports.RecordStore,
	problems ports.ProblemProvider,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg SyncProblemsConfig,
) *SyncProblems {
	link := cfg.LinkTemplate
	if link == "" {
		link = DefaultLinkTemplate
	}
	return &SyncProblems{
		records:      records,
		problems:     problems,
		notifier:     notifier,
		logger:       logger,
		filter:       leethub.NewFilter(cfg.Extensions, cfg.SkipFiles),
		linkTemplate: link,
		dryRun:       cfg.DryRun,
		now:          time.Now,
	}
}

// Run synchronizes one change set. Per-slug failures are recorded in the
// report and never returned; the error result is reserved for failures that
// prevent the run from starting.
func (s *SyncProblems) Run(ctx context.Context, change model.ChangeSet) (*model.Report, error) {
	start := s.now()
	report := &model.Report{
		Revision:  change.Revision,
		DryRun:    s.dryRun,
		StartedAt: start,
	}
	defer func() { report.Duration = s.now().Sub(start) }()

	slugs := leethub.CollectSlugs(s.filter.Apply(change.Files))
	if len(slugs) == 0 {
		s.logger.Info(ctx, "no relevant changes detected; nothing to sync", "files", len(change.Files))
		report.Status = model.RunNothingToSync
		return report, nil
	}

	meta, ok := leethub.ParseCommitMessage(change.Message)
	if !ok {
		s.logger.Info(ctx, "could not parse commit message", "message", firstLine(change.Message))
		report.Status = model.RunUnparsedCommit
		return report, nil
	}

	tags := leethub.SplitTags(meta.Tags)
	report.Status = model.RunSynced
	report.Title = meta.Title
	report.Difficulty = meta.Difficulty
	report.Tags = tags

	for _, slug := range slugs {
		report.Outcomes = append(report.Outcomes, s.syncSlug(ctx, slug, meta, tags))
	}

	s.notify(ctx, report)
	return report, nil
}

func (s *SyncProblems) syncSlug(ctx context.Context, slug string, meta model.CommitMetadata, tags []string) model.Outcome {
	existing, err := s.records.QueryBySlug(ctx, slug)
	if err != nil {
		return s.failed(ctx, slug, "query", err)
	}

	if len(existing) > 0 {
		// Only the first match is authoritative; duplicates are left untouched.
		if len(existing) > 1 {
			s.logger.Warn(ctx, "multiple records share slug; updating the first", "slug", slug, "matches", len(existing))
		}
		target := existing[0]

		if s.dryRun {
			s.logger.Info(ctx, "would update record", "slug", slug, "title", meta.Title, "record_id", target.ID)
			return model.Outcome{Slug: slug, Action: model.ActionWouldUpdate, RecordID: target.ID}
		}

		update := model.RecordUpdate{Difficulty: meta.Difficulty, Tags: tags}
		if err := s.records.UpdateRecord(ctx, target.ID, update); err != nil {
			return s.failed(ctx, slug, "update", err)
		}
		s.logger.Info(ctx, fmt.Sprintf("updated: %s (%s)", meta.Title, slug), "slug", slug, "record_id", target.ID)
		return model.Outcome{Slug: slug, Action: model.ActionUpdated, RecordID: target.ID}
	}

	if s.dryRun {
		s.logger.Info(ctx, "would create record", "slug", slug, "title", meta.Title)
		return model.Outcome{Slug: slug, Action: model.ActionWouldCreate}
	}

	record := model.NewRecord{
		Title:      meta.Title,
		Slug:       slug,
		Link:       fmt.Sprintf(s.linkTemplate, slug),
		Difficulty: meta.Difficulty,
		Tags:       tags,
		Summary:    s.summary(ctx, slug),
	}
	created, err := s.records.CreateRecord(ctx, record)
	if err != nil {
		return s.failed(ctx, slug, "create", err)
	}

	id := ""
	if created != nil {
		id = created.ID
	}
	s.logger.Info(ctx, fmt.Sprintf("created: %s (%s)", meta.Title, slug), "slug", slug, "record_id", id)
	return model.Outcome{Slug: slug, Action: model.ActionCreated, RecordID: id}
}

func (s *SyncProblems) failed(ctx context.Context, slug, op string, err error) model.Outcome {
	s.logger.Error(ctx, "record sync failed", "slug", slug, "op", op, "error", err)
	return model.Outcome{Slug: slug, Action: model.ActionFailed, Error: err.Error()}
}

// summary fetches the problem statement for a new record. Enrichment is
// best effort: any failure yields an empty summary.
func (s *SyncProblems) summary(ctx context.Context, slug string) string {
	if s.problems == nil {
		return ""
	}

	problem, err := s.problems.GetProblem(ctx, slug)
	if err != nil {
		s.logger.Warn(ctx, "problem enrichment failed", "slug", slug, "error", err)
		return ""
	}
	if problem.PaidOnly || problem.Content == "" {
		return ""
	}
	return summarizeText(problem.Content, 600)
}

func (s *SyncProblems) notify(ctx context.Context, report *model.Report) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Send(ctx, buildNotification(report)); err != nil {
		s.logger.Error(ctx, "failed to send run summary", "error", err)
	}
}

func buildNotification(report *model.Report) model.Notification {
	counts := map[model.Action]int{}
	fields := make([]model.NotificationField, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		counts[o.Action]++
		value := string(o.Action)
		if o.Error != "" {
			value += ": " + o.Error
		}
		fields = append(fields, model.NotificationField{
			Name:   leethub.TitleFromSlug(o.Slug),
			Value:  value,
			Inline: o.Error == "",
		})
	}

	parts := make([]string, 0, 3)
	for _, action := range []model.Action{model.ActionCreated, model.ActionUpdated, model.ActionWouldCreate, model.ActionWouldUpdate, model.ActionFailed} {
		if n := counts[action]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ReplaceAll(string(action), "_", " ")))
		}
	}

	description := fmt.Sprintf("**Difficulty:** %s\n**Tags:** %s\n%s",
		report.Difficulty, strings.Join(report.Tags, ", "), strings.Join(parts, ", "))
	if report.DryRun {
		description += "\n_dry run: no records were changed_"
	}

	return model.Notification{
		Title:       "LeetHub sync: " + report.Title,
		Description: description,
		Fields:      fields,
		Failure:     counts[model.ActionFailed] > 0,
	}
}

func summarizeText(content string, limit int) string {
	clean := strings.Join(strings.Fields(content), " ")
	if len(clean) <= limit {
		return clean
	}

	trimmed := clean[:limit]
	if lastSpace := strings.LastIndex(trimmed, " "); lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}
	return trimmed + "..."
}

func firstLine(msg string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(msg), "\n")
	return line
}
