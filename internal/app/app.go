package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"leethub-sync/internal/adapter/logging"
	"leethub-sync/internal/adapter/report"
	"leethub-sync/internal/domain/model"
	"leethub-sync/internal/domain/ports"
	apperrors "leethub-sync/internal/errors"
	"leethub-sync/internal/usecase"
)

// Options controls the run lifecycle.
type Options struct {
	// Schedule is the cron expression used by Watch.
	Schedule string
	// ReportFile, when set, receives a YAML report after every run.
	ReportFile string
}

// App manages one-shot sync runs and the watch scheduler.
type App struct {
	source  ports.ChangeSource
	usecase *usecase.SyncProblems
	logger  ports.Logger
	opts    Options
	newID   func() string

	mu           sync.Mutex
	lastRevision string
}

// New constructs an App instance.
func New(source ports.ChangeSource, syncer *usecase.SyncProblems, logger ports.Logger, opts Options) *App {
	return &App{
		source:  source,
		usecase: syncer,
		logger:  logger,
		opts:    opts,
		newID:   uuid.NewString,
	}
}

// RunOnce reads the current change set and synchronizes it. Only failures
// that prevent the run from starting are returned.
func (a *App) RunOnce(ctx context.Context) (*model.Report, error) {
	runID := a.newID()
	ctx = logging.WithRunID(ctx, runID)

	change, err := a.source.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(change.Message) == "" {
		return nil, apperrors.ConfigMissing("COMMIT_MESSAGE")
	}

	return a.sync(ctx, runID, change)
}

func (a *App) sync(ctx context.Context, runID string, change *model.ChangeSet) (*model.Report, error) {
	result, err := a.usecase.Run(ctx, *change)
	if err != nil {
		return nil, err
	}
	result.RunID = runID

	if a.opts.ReportFile != "" {
		if err := report.WriteFile(a.opts.ReportFile, result); err != nil {
			a.logger.Error(ctx, "failed to write report", "path", a.opts.ReportFile, "error", err)
		}
	}

	a.logger.Info(ctx, "sync run finished",
		"status", result.Status,
		"slugs", len(result.Outcomes),
		"failed", result.Failed(),
		"duration", result.Duration,
	)
	return result, nil
}

// Watch polls the change source immediately and then on the cron schedule,
// syncing each new revision once. It returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(a.opts.Schedule, func() { a.poll(ctx) }); err != nil {
		return apperrors.ConfigInvalid("WATCH_SCHEDULE", err.Error())
	}

	a.logger.Info(ctx, "polling for new commits immediately")
	a.poll(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.opts.Schedule)
	c.Start()

	<-ctx.Done()
	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// poll syncs HEAD if it differs from the last revision seen by this process.
// Errors are logged; the watch loop keeps running.
func (a *App) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	runID := a.newID()
	ctx = logging.WithRunID(ctx, runID)

	change, err := a.source.Latest(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to read latest commit", "error", err)
		return
	}

	a.mu.Lock()
	seen := change.Revision != "" && change.Revision == a.lastRevision
	if !seen {
		a.lastRevision = change.Revision
	}
	a.mu.Unlock()
	if seen {
		return
	}

	if strings.TrimSpace(change.Message) == "" {
		a.logger.Warn(ctx, "latest commit has an empty message; skipping", "revision", change.Revision)
		return
	}

	if _, err := a.sync(ctx, runID, change); err != nil {
		a.logger.Error(ctx, "sync run failed", "revision", change.Revision, "error", err)
	}
}
