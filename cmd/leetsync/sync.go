package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"leethub-sync/internal/config"
	"leethub-sync/internal/di"
)

func runSync(cmd *cobra.Command, _ []string) error {
	if fromGit, _ := cmd.Flags().GetBool("from-git"); fromGit {
		v.Set("CHANGE_SOURCE", config.SourceGit)
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	application, err := di.InitializeApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Per-problem failures are in the report and do not change the exit status.
	_, err = application.RunOnce(ctx)
	return err
}
