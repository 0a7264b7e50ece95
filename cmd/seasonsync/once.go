package main

import (
	"github.com/spf13/cobra"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single reconciliation pass and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, cleanup, err := initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		return application.Scheduler.RunNow()
	},
}
