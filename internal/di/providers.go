package di

import (
	"github.com/rs/zerolog"

	"leethub-sync/internal/adapter/changes"
	"leethub-sync/internal/adapter/discord"
	"leethub-sync/internal/adapter/leetcode"
	"leethub-sync/internal/adapter/logging"
	"leethub-sync/internal/adapter/notion"
	"leethub-sync/internal/app"
	"leethub-sync/internal/config"
	"leethub-sync/internal/domain/ports"
	"leethub-sync/internal/usecase"
)

func provideZerolog(cfg *config.Config) zerolog.Logger {
	return logging.NewZerolog(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
}

func provideRecordStore(cfg *config.Config, logger ports.Logger) ports.RecordStore {
	return notion.New(notion.Options{
		Token:      cfg.Notion.Token,
		DatabaseID: cfg.Notion.DatabaseID,
		BaseURL:    cfg.Notion.BaseURL,
		Version:    cfg.Notion.Version,
		Timeout:    cfg.RequestTimeout,
	}, logger)
}

// provideProblemProvider returns nil unless enrichment is enabled.
func provideProblemProvider(cfg *config.Config, logger ports.Logger) ports.ProblemProvider {
	if !cfg.LeetCode.Enrich {
		return nil
	}
	return leetcode.New(cfg.LeetCode.Endpoint, cfg.RequestTimeout, logger)
}

// provideNotifier returns nil when no webhook is configured.
func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func provideChangeSource(cfg *config.Config) ports.ChangeSource {
	if cfg.Source.Kind == config.SourceGit {
		return changes.NewGitSource(cfg.Source.RepoDir)
	}
	return changes.NewEnvSource(cfg.Source.ChangedFiles, cfg.Source.CommitMsg)
}

func provideSyncConfig(cfg *config.Config) usecase.SyncProblemsConfig {
	return usecase.SyncProblemsConfig{
		Extensions:   cfg.Sync.Extensions,
		SkipFiles:    cfg.Sync.SkipFiles,
		LinkTemplate: cfg.Sync.LinkTemplate,
		DryRun:       cfg.Sync.DryRun,
	}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Schedule:   cfg.WatchSchedule,
		ReportFile: cfg.ReportFile,
	}
}
