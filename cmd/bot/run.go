package main

import (
	"context"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/infra/scheduler"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the status API until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runAgent(ctx)
	},
}

func runAgent(ctx context.Context) error {
	a, err := setup(ctx, setupOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	ticker, err := scheduler.NewTicker(a.cfg.PollSchedule, a.log.WithField("component", "scheduler"))
	if err != nil {
		return err
	}

	if err := a.agent.Run(ctx, ticker); err != nil {
		a.log.WithError(err).Error("Polling agent stopped with error")
		return err
	}
	a.log.Info("Application shut down gracefully.")
	return nil
}
