package main

import (
	"fmt"

	"github.com/klimatr26/booking-hub/internal/app"
	"github.com/klimatr26/booking-hub/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the hold expiry scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}

			if err = application.Run(); err != nil {
				return fmt.Errorf("app run: %w", err)
			}
			return nil
		},
	}
}
