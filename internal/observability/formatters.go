// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(message string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most limit runes, marking the cut with "..."
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-3]) + "..."
}

// PrintBuildResult outputs the outcome of one persona/role build.
func (p *Printer) PrintBuildResult(persona, role string, result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	status := "✓ accepted"
	if !result.Success {
		status = "✗ rejected"
	}
	sb.WriteString(fmt.Sprintf("Status:   %s\n", status))
	if result.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", result.Pages))
	}
	if result.OutputPath != "" {
		sb.WriteString(fmt.Sprintf("Output:   %s\n", result.OutputPath))
	}
	sb.WriteString(result.Message)

	p.printBox(fmt.Sprintf("BUILD %s/%s", persona, role), sb.String())

	if result.Quality != nil {
		p.PrintQualityReport(result.Quality)
	}
}

// PrintQualityReport outputs runt and page fill findings.
func (p *Printer) PrintQualityReport(report *types.QualityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page fill: %.1f%%", report.Fill.FillPercent))
	if report.Fill.Warning {
		sb.WriteString(" ⚠")
	}
	sb.WriteString("\n")
	if report.Fill.Suggestion != nil {
		sb.WriteString(fmt.Sprintf("  %s\n", *report.Fill.Suggestion))
	}
	sb.WriteString("\n")

	if len(report.Runts) == 0 {
		sb.WriteString("No runts detected")
	} else {
		sb.WriteString(fmt.Sprintf("Runts: %d\n", len(report.Runts)))
		count := min(len(report.Runts), maxItemsToShow)
		for i := 0; i < count; i++ {
			runt := report.Runts[i]
			sb.WriteString(fmt.Sprintf("  • p%d %q\n", runt.Page, runt.Text))
		}
		if len(report.Runts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Runts)-maxItemsToShow))
		}
	}

	p.printBox("LAYOUT QUALITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any findings from PDF validation.
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		p.printBanner("✅ NO VIOLATIONS FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == types.SeverityError {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, v.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PDF VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPersonas lists personas and marks the current one.
func (p *Printer) PrintPersonas(personas []types.Persona, current string) {
	if len(personas) == 0 {
		p.printBanner("No personas found")
		return
	}

	var sb strings.Builder
	for i, persona := range personas {
		marker := " "
		if persona.Name == current {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", marker, persona.Name, persona.DisplayName))
		if len(persona.Roles) > 0 {
			sb.WriteString(fmt.Sprintf("    Roles: %s\n", strings.Join(persona.Roles, ", ")))
		}
		if persona.DefaultRole != nil {
			sb.WriteString(fmt.Sprintf("    Default: %s\n", *persona.DefaultRole))
		}
		if i < len(personas)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PERSONAS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPreview outputs a summary of text extracted from a source document.
func (p *Printer) PrintPreview(source string, preview *ingestion.Preview) {
	if preview == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Lines:    %d\n", preview.TotalLines))
	sections := "none"
	if len(preview.DetectedSections) > 0 {
		sections = strings.Join(preview.DetectedSections, ", ")
	}
	sb.WriteString(fmt.Sprintf("Sections: %s\n\n", sections))

	lines := strings.Split(preview.SampleContent, "\n")
	count := min(len(lines), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i] + "\n")
	}
	if len(lines) > maxItemsToShow {
		sb.WriteString("...")
	}

	p.printBox("EXTRACTED TEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs recorded builds, newest first.
func (p *Printer) PrintHistory(runs []db.Run) {
	if len(runs) == 0 {
		p.printBanner("No builds recorded")
		return
	}

	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("%s  %s/%s  %s", run.CreatedAt.Format("2006-01-02 15:04"), run.Persona, run.Role, run.Status))
		if run.Pages != nil {
			sb.WriteString(fmt.Sprintf(" (%d p)", *run.Pages))
		}
		sb.WriteString("\n")
	}

	p.printBox(fmt.Sprintf("BUILD HISTORY (%d)", len(runs)), strings.TrimSuffix(sb.String(), "\n"))
}
