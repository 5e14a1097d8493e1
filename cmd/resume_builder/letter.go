package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Generate a Typst cover letter",
	Long: `Generates a cover letter using the contact block of a resume data document.

Recipient lines are given as repeated --recipient key=value flags and keep their order.`,
	RunE: runLetter,
}

var (
	letterData      string
	letterBody      string
	letterRecipient []string
	letterOutput    string
)

func init() {
	letterCmd.Flags().StringVarP(&letterData, "data", "d", "", "Path to resume data file (required)")
	letterCmd.Flags().StringVarP(&letterBody, "body", "b", "", "Path to letter body text file (required)")
	letterCmd.Flags().StringArrayVarP(&letterRecipient, "recipient", "r", nil, "Recipient field as key=value (repeatable)")
	letterCmd.Flags().StringVarP(&letterOutput, "out", "o", "", "Path to output .typ file (default: stdout)")

	if err := letterCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}
	if err := letterCmd.MarkFlagRequired("body"); err != nil {
		panic(fmt.Sprintf("failed to mark body flag as required: %v", err))
	}

	rootCmd.AddCommand(letterCmd)
}

func runLetter(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, func(cfg *config.Config) {
		cfg.Data = letterData
	})
	if err != nil {
		return err
	}

	recipient, err := parseRecipient(letterRecipient)
	if err != nil {
		return err
	}

	body, err := os.ReadFile(letterBody)
	if err != nil {
		return fmt.Errorf("failed to read letter body: %w", err)
	}

	data, err := experience.LoadResume(cfg.Data)
	if err != nil {
		return fmt.Errorf("failed to load resume data: %w", err)
	}

	if letterOutput != "" {
		if err := ensureParentDir(letterOutput); err != nil {
			return err
		}
	}

	content, err := rendering.GenerateLetter(data, strings.TrimSpace(string(body)), recipient, letterOutput)
	if err != nil {
		return fmt.Errorf("failed to generate letter: %w", err)
	}

	if letterOutput == "" {
		_, _ = fmt.Fprint(os.Stdout, content)
		return nil
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", letterOutput)
	return nil
}

// parseRecipient turns key=value pairs into ordered recipient fields
func parseRecipient(pairs []string) ([]rendering.RecipientField, error) {
	fields := make([]rendering.RecipientField, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid recipient %q: expected key=value", pair)
		}
		fields = append(fields, rendering.RecipientField{Key: key, Value: strings.TrimSpace(value)})
	}
	return fields, nil
}
