package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reconciliation daemon",
	RunE:  runDaemon,
}

func runDaemon(cmd *cobra.Command, args []string) error {
	application, cleanup, err := initialize()
	if err != nil {
		return err
	}
	defer cleanup()

	logger := application.Logger
	logger.WithField("version", version).Info("Starting seasonsync")

	if err := application.Scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// stays nil, and never ready, when the server is disabled
	var serverDone chan error
	if application.Server != nil {
		serverDone = make(chan error, 1)
		go func() {
			serverDone <- application.Server.Start(ctx)
		}()
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("seasonsync is running")

	var runErr error
	select {
	case runErr = <-serverDone:
		serverDone = nil
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
	}

	cancel()
	if serverDone != nil {
		if err := <-serverDone; err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}
	<-application.Scheduler.Stop().Done()

	logger.Info("seasonsync stopped")
	return runErr
}
