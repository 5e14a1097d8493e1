package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/validation"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build one persona/role resume and enforce the one-page limit",
	Long: `Generates Typst markup, compiles it and rejects the result when it runs past one page.

Persona and role default to the current selection (see "personas use"). Resume data is read
from --data or personas/<persona>/data/<role>.json|.yaml.`,
	RunE: runBuild,
}

var (
	buildData          string
	buildPersona       string
	buildRole          string
	buildTemplate      string
	buildOutputDir     string
	buildCheckQuality  bool
	buildRuntThreshold int
)

func init() {
	buildCmd.Flags().StringVarP(&buildData, "data", "d", "", "Path to resume data file")
	buildCmd.Flags().StringVarP(&buildPersona, "persona", "p", "", "Persona name (default: current persona)")
	buildCmd.Flags().StringVarP(&buildRole, "role", "r", "", "Role name (default: current role)")
	buildCmd.Flags().StringVarP(&buildTemplate, "template", "t", "", "Template name (default: modern)")
	buildCmd.Flags().StringVarP(&buildOutputDir, "output-dir", "o", "", "Output directory (default: personas/<persona>)")
	buildCmd.Flags().BoolVar(&buildCheckQuality, "check-quality", false, "Report runts and page fill after compiling")
	buildCmd.Flags().IntVar(&buildRuntThreshold, "runt-threshold", 0, "Maximum characters for a last line to count as a runt (default: 15)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings(cmd, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("data") {
			cfg.Data = buildData
		}
		if flags.Changed("persona") {
			cfg.Persona = buildPersona
		}
		if flags.Changed("role") {
			cfg.Role = buildRole
		}
		if flags.Changed("template") {
			cfg.Template = buildTemplate
		}
		if flags.Changed("output-dir") {
			cfg.OutputDir = buildOutputDir
		}
		if flags.Changed("check-quality") {
			cfg.CheckQuality = buildCheckQuality
		}
		if flags.Changed("runt-threshold") {
			cfg.RuntThreshold = buildRuntThreshold
		}
	})
	if err != nil {
		return err
	}

	name, role, err := selection(cfg)
	if err != nil {
		return err
	}
	path, err := dataPath(cfg, name, role)
	if err != nil {
		return err
	}
	data, err := experience.LoadResume(path)
	if err != nil {
		return fmt.Errorf("failed to load resume data: %w", err)
	}

	history, closeHistory := openHistory(ctx, cfg)
	defer closeHistory()

	result := pipeline.Run(ctx, data, pipeline.RunOptions{
		OutputDir:     outputDir(cfg, name),
		Persona:       name,
		Role:          role,
		Template:      cfg.Template,
		Compiler:      newCompiler(cfg),
		Counter:       validation.TabulaPageCounter{},
		Geometry:      validation.TabulaGeometry{},
		CheckQuality:  cfg.CheckQuality,
		RuntThreshold: cfg.RuntThreshold,
		Store:         history,
		OnProgress:    progressPrinter(cfg),
	})

	reportResult(cfg, name, role, result)
	if !result.Success {
		return fmt.Errorf("build failed for %s/%s", name, role)
	}
	return nil
}
