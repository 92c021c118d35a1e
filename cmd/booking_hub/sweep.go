package main

import (
	"fmt"

	"github.com/klimatr26/booking-hub/internal/app"
	"github.com/klimatr26/booking-hub/internal/config"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire overdue pre-reservations once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}
			defer application.Close()

			n, err := application.Sweep(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "expired %d hold(s)\n", n)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			return nil
		},
	}
}
