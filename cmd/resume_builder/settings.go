package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/persona"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/validation"
)

// loadSettings resolves the effective configuration: config file, then flags
// that were explicitly set, then environment, then defaults.
func loadSettings(cmd *cobra.Command, override func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
		if rootVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rootConfigPath)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = rootProjectRoot
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = rootDatabaseURL
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}
	if override != nil {
		override(&cfg)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func newCompiler(cfg config.Config) *validation.TypstCompiler {
	return &validation.TypstCompiler{
		Binary:  cfg.TypstBinary,
		Root:    cfg.Root,
		Timeout: cfg.CompileTimeout(),
	}
}

// selection resolves persona and role: explicit values first, then the
// current-persona marker.
func selection(cfg config.Config) (string, string, error) {
	name, role := cfg.Persona, cfg.Role
	if name != "" && role != "" {
		return name, role, nil
	}

	current, currentRole, err := persona.NewStore(cfg.Root).Current()
	if err != nil {
		return "", "", err
	}
	if name == "" {
		name = current
	}
	if role == "" {
		role = currentRole
	}
	return name, role, nil
}

// outputDir is personas/<persona> under the root unless the config overrides it
func outputDir(cfg config.Config, name string) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return persona.NewStore(cfg.Root).Dir(name)
}

// dataPath prefers an explicit data file over the persona's data directory
func dataPath(cfg config.Config, name, role string) (string, error) {
	if cfg.Data != "" {
		return cfg.Data, nil
	}
	return persona.NewStore(cfg.Root).DataFile(name, role)
}

// openHistory connects the optional build-history store. Connection
// problems are reported and the build continues without history.
func openHistory(ctx context.Context, cfg config.Config) (pipeline.Store, func()) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("[HISTORY] Build history disabled: %v", err)
		return nil, func() {}
	}
	if err := database.EnsureSchema(ctx); err != nil {
		log.Printf("[HISTORY] Build history disabled: %v", err)
		database.Close()
		return nil, func() {}
	}
	return database, database.Close
}

// progressPrinter reports pipeline steps when verbose
func progressPrinter(cfg config.Config) pipeline.ProgressCallback {
	if !cfg.Verbose {
		return nil
	}
	return func(event pipeline.ProgressEvent) {
		_, _ = fmt.Fprintf(os.Stdout, "[%s/%s] %s: %s\n", event.Persona, event.Role, event.Step, event.Message)
	}
}

func reportResult(cfg config.Config, name, role string, result *pipeline.Result) {
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintBuildResult(name, role, result)
		return
	}

	mark := "✓"
	if !result.Success {
		mark = "✗"
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s %s/%s: %s\n", mark, name, role, result.Message)
	if result.Quality != nil {
		for _, runt := range result.Quality.Runts {
			_, _ = fmt.Fprintf(os.Stdout, "  runt on page %d: %q\n", runt.Page, runt.Text)
		}
		if result.Quality.Fill.Suggestion != nil {
			_, _ = fmt.Fprintf(os.Stdout, "  %s (%.1f%% filled)\n", *result.Quality.Fill.Suggestion, result.Quality.Fill.FillPercent)
		}
	}
}

// ensureParentDir creates the directory that will hold path
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
