// Package main implements the resume_builder CLI: Typst resume generation,
// compilation with a one-page acceptance check, and PDF layout inspection.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Typst resume generator and layout checker",
	Long: `resume_builder turns structured resume data into Typst markup, compiles it with the
typst binary, enforces the one-page limit and reports layout problems (runts, page fill).

Configuration can be loaded from a JSON file using --config. Command-line flags override
config file values.`,
	SilenceUsage: true,
}

var (
	rootConfigPath  string
	rootProjectRoot string
	rootDatabaseURL string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootProjectRoot, "root", "", "Project root holding personas/ and typst/ (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&rootDatabaseURL, "db-url", "", "PostgreSQL connection URL for build history (optional, defaults to DATABASE_URL env var)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
