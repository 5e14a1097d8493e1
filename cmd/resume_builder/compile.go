package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/validation"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile Typst markup to PDF",
	Long:  "Compiles a .typ file with the typst binary. The project root is passed to typst so template imports resolve.",
	RunE:  runCompile,
}

var (
	compileInput  string
	compileOutput string
)

func init() {
	compileCmd.Flags().StringVarP(&compileInput, "in", "i", "", "Path to .typ file (required)")
	compileCmd.Flags().StringVarP(&compileOutput, "out", "o", "", "Path to output PDF (default: input with .pdf extension)")

	if err := compileCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}

	output := compileOutput
	if output == "" {
		output = strings.TrimSuffix(compileInput, ".typ") + ".pdf"
	}
	if err := ensureParentDir(output); err != nil {
		return err
	}

	ok, message := newCompiler(cfg).Compile(context.Background(), compileInput, output)
	if !ok {
		return fmt.Errorf("%s", message)
	}
	_, _ = fmt.Fprintln(os.Stdout, message)

	if cfg.Verbose {
		pages, err := validation.TabulaPageCounter{}.CountPages(output)
		if err == nil {
			_, _ = fmt.Fprintf(os.Stdout, "Pages: %d\n", pages)
		}
	}
	return nil
}
