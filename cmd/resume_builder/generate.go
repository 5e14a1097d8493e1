package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Typst markup from resume data",
	Long:  "Serializes a resume data document (JSON or YAML) into Typst markup. Writes to --out, or stdout when --out is omitted.",
	RunE:  runGenerate,
}

var (
	generateData     string
	generateTemplate string
	generateOutput   string
)

func init() {
	generateCmd.Flags().StringVarP(&generateData, "data", "d", "", "Path to resume data file (required)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template name (default: modern)")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output .typ file (default: stdout)")

	if err := generateCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, func(cfg *config.Config) {
		cfg.Data = generateData
		if cmd.Flags().Changed("template") {
			cfg.Template = generateTemplate
		}
	})
	if err != nil {
		return err
	}

	data, err := experience.LoadResume(cfg.Data)
	if err != nil {
		return fmt.Errorf("failed to load resume data: %w", err)
	}

	if generateOutput != "" {
		if err := ensureParentDir(generateOutput); err != nil {
			return err
		}
	}

	content, err := rendering.Generate(data, cfg.Template, generateOutput)
	if err != nil {
		return fmt.Errorf("failed to generate markup: %w", err)
	}

	if generateOutput == "" {
		_, _ = fmt.Fprint(os.Stdout, content)
		return nil
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", generateOutput)
	return nil
}
