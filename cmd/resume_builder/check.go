package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a compiled PDF for page overflow, runts and sparse pages",
	Long: `Validates a compiled resume PDF. Page overflow is an error; runts and sparse first pages
are reported as warnings. Exits non-zero only when an error is found.`,
	RunE: runCheck,
}

var (
	checkInput         string
	checkOutput        string
	checkRuntThreshold int
	checkSkipQuality   bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "in", "i", "", "Path to PDF file (required)")
	checkCmd.Flags().StringVarP(&checkOutput, "out", "o", "", "Path to output Violations JSON file (optional)")
	checkCmd.Flags().IntVar(&checkRuntThreshold, "runt-threshold", 0, "Maximum characters for a last line to count as a runt (default: 15)")
	checkCmd.Flags().BoolVar(&checkSkipQuality, "pages-only", false, "Only check the page count")

	if err := checkCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("runt-threshold") {
			cfg.RuntThreshold = checkRuntThreshold
		}
	})
	if err != nil {
		return err
	}

	if _, err := os.Stat(checkInput); os.IsNotExist(err) {
		return fmt.Errorf("PDF file not found: %s", checkInput)
	}

	var geometry validation.GeometryProvider = validation.TabulaGeometry{}
	if checkSkipQuality {
		geometry = nil
	}

	violations, err := validation.ValidatePDF(checkInput, validation.TabulaPageCounter{}, geometry, cfg.RuntThreshold)
	if err != nil {
		var readErr *validation.FileReadError
		if errors.As(err, &readErr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return fmt.Errorf("failed to validate PDF: %w", err)
	}

	if checkOutput != "" {
		if err := ensureParentDir(checkOutput); err != nil {
			return err
		}
		jsonBytes, err := json.MarshalIndent(violations, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal violations to JSON: %w", err)
		}
		if err := os.WriteFile(checkOutput, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write violations to output file: %w", err)
		}
	}

	observability.NewPrinter(os.Stdout).PrintViolations(violations)

	if violations.HasErrors() {
		return fmt.Errorf("validation found %d violation(s)", len(violations.Violations))
	}
	return nil
}
