package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/persona"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/validation"
)

var buildAllCmd = &cobra.Command{
	Use:   "build-all",
	Short: "Build every persona/role that has resume data",
	Long: `Builds one resume per data document under personas/<persona>/data/, running several
builds in parallel. Each build is accepted or rejected on its own.`,
	RunE: runBuildAll,
}

var (
	buildAllPersonas      []string
	buildAllTemplate      string
	buildAllConcurrency   int
	buildAllCheckQuality  bool
	buildAllRuntThreshold int
)

func init() {
	buildAllCmd.Flags().StringSliceVar(&buildAllPersonas, "persona", nil, "Limit to these personas (repeatable or comma-separated)")
	buildAllCmd.Flags().StringVarP(&buildAllTemplate, "template", "t", "", "Template name (default: modern)")
	buildAllCmd.Flags().IntVarP(&buildAllConcurrency, "concurrency", "j", 0, "Parallel builds (default: 2)")
	buildAllCmd.Flags().BoolVar(&buildAllCheckQuality, "check-quality", false, "Report runts and page fill after compiling")
	buildAllCmd.Flags().IntVar(&buildAllRuntThreshold, "runt-threshold", 0, "Maximum characters for a last line to count as a runt (default: 15)")

	rootCmd.AddCommand(buildAllCmd)
}

func runBuildAll(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings(cmd, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("template") {
			cfg.Template = buildAllTemplate
		}
		if flags.Changed("concurrency") {
			cfg.Concurrency = buildAllConcurrency
		}
		if flags.Changed("check-quality") {
			cfg.CheckQuality = buildAllCheckQuality
		}
		if flags.Changed("runt-threshold") {
			cfg.RuntThreshold = buildAllRuntThreshold
		}
	})
	if err != nil {
		return err
	}

	jobs, err := collectJobs(persona.NewStore(cfg.Root), buildAllPersonas)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No resume data found under personas/*/data/")
		return nil
	}

	history, closeHistory := openHistory(ctx, cfg)
	defer closeHistory()

	results, err := pipeline.RunAll(ctx, jobs, pipeline.RunOptions{
		Template:      cfg.Template,
		Compiler:      newCompiler(cfg),
		Counter:       validation.TabulaPageCounter{},
		Geometry:      validation.TabulaGeometry{},
		CheckQuality:  cfg.CheckQuality,
		RuntThreshold: cfg.RuntThreshold,
		Store:         history,
		OnProgress:    progressPrinter(cfg),
	}, cfg.Concurrency)
	if err != nil {
		return err
	}

	failed := 0
	for i, result := range results {
		reportResult(cfg, jobs[i].Persona, jobs[i].Role, result)
		if !result.Success {
			failed++
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "\nBuilt %d of %d resumes\n", len(results)-failed, len(results))

	if failed > 0 {
		return fmt.Errorf("%d build(s) failed", failed)
	}
	return nil
}

// collectJobs loads every persona/role data document, optionally limited to
// some personas. Documents that fail to load abort the batch before any build.
func collectJobs(store *persona.Store, only []string) ([]pipeline.Job, error) {
	names := only
	if len(names) == 0 {
		personas, err := store.List()
		if err != nil {
			return nil, err
		}
		for _, p := range personas {
			names = append(names, p.Name)
		}
	}

	var jobs []pipeline.Job
	for _, name := range names {
		roles, err := store.DataRoles(name)
		if err != nil {
			return nil, err
		}
		for _, role := range roles {
			path, err := store.DataFile(name, role)
			if err != nil {
				return nil, err
			}
			data, err := experience.LoadResume(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
			jobs = append(jobs, pipeline.Job{
				Persona:   name,
				Role:      role,
				OutputDir: store.Dir(name),
				Data:      data,
			})
		}
	}
	return jobs, nil
}
