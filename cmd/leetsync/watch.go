package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"leethub-sync/internal/config"
	"leethub-sync/internal/di"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll a local LeetHub checkout and sync each new commit",
	Long: `Poll the HEAD of a local LeetHub repository on a cron schedule and sync
every new commit once. The first poll happens immediately.

Examples:
  # Check every five minutes (default)
  leetsync watch --repo ~/leethub

  # Check every minute
  leetsync watch --repo ~/leethub --schedule "* * * * *"
`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("schedule", "", "Cron expression (default from WATCH_SCHEDULE)")
	_ = v.BindPFlag("WATCH_SCHEDULE", watchCmd.Flags().Lookup("schedule"))
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	v.Set("CHANGE_SOURCE", config.SourceGit)

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSchedule(); err != nil {
		return err
	}

	application, err := di.InitializeApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Watch(ctx)
}
