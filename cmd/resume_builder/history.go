package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/observability"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent builds recorded in the database",
	Long:  "Lists recent builds from the build-history database. Requires --db-url or DATABASE_URL.",
	RunE:  runHistory,
}

var (
	historyPersona string
	historyLimit   int
)

func init() {
	historyCmd.Flags().StringVarP(&historyPersona, "persona", "p", "", "Only show builds for this persona")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of builds to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("persona") {
			cfg.Persona = historyPersona
		}
	})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}
	if historyLimit < 1 {
		return fmt.Errorf("--limit must be at least 1")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	runs, err := database.ListRuns(ctx, cfg.Persona, historyLimit)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintHistory(runs)
	return nil
}
