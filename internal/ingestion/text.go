package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	innerWhitespace = regexp.MustCompile(`\s+`)
	blankLineRuns   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while keeping its line structure:
// line endings become LF, runs of spaces collapse, headings and bullets keep
// their markers and at most one blank line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := blankLineRuns.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := innerWhitespace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// IngestFromFile extracts a resume's text, cleans it and describes it
func IngestFromFile(path string) (string, *Metadata, error) {
	raw, err := ExtractText(path)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(raw)
	return cleanedText, NewMetadata(cleanedText, path), nil
}

// WriteOutput writes the cleaned text and its metadata next to each other in
// outDir as <name>.extracted.txt and <name>.meta.json.
func WriteOutput(outDir string, name string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := filepath.Join(outDir, name+".extracted.txt")
	if err := os.WriteFile(textPath, []byte(cleanedText+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write extracted text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return err
	}
	metaPath := filepath.Join(outDir, name+".meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
