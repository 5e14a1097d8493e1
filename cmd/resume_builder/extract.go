package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from an existing resume (.pdf, .docx, .md)",
	Long: `Extracts and cleans the text of an existing resume so it can be turned into resume data.

With --out, writes <name>.extracted.txt and <name>.meta.json into the directory; otherwise
prints the cleaned text.`,
	RunE: runExtract,
}

var (
	extractInput   string
	extractOutDir  string
	extractPreview bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to source document (required)")
	extractCmd.Flags().StringVarP(&extractOutDir, "out", "o", "", "Output directory (default: print to stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "Print a section preview instead of the full text")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, meta, err := ingestion.IngestFromFile(extractInput)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if extractPreview {
		observability.NewPrinter(os.Stdout).PrintPreview(extractInput, ingestion.PreviewSections(text))
	}

	if extractOutDir == "" {
		if !extractPreview {
			_, _ = fmt.Fprintln(os.Stdout, text)
		}
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(extractInput), filepath.Ext(extractInput))
	if err := ingestion.WriteOutput(extractOutDir, name, text, meta); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d characters to %s\n", meta.Characters, filepath.Join(extractOutDir, name+".extracted.txt"))
	return nil
}
