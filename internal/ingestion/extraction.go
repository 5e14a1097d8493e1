package ingestion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tsawler/tabula/docx"

	"github.com/jonathan/resume-builder/internal/validation"
)

type extractor func(path string) (string, error)

// SupportedExtensions lists the file extensions ExtractText accepts
var SupportedExtensions = []string{".pdf", ".docx", ".md", ".markdown"}

var extractors = map[string]extractor{
	".pdf":      extractFromPDF,
	".docx":     extractFromDOCX,
	".md":       extractFromMarkdown,
	".markdown": extractFromMarkdown,
}

// ExtractText reads the text of a resume document, choosing the reader by
// file extension.
func ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: path}
		}
		return "", &ExtractionError{Message: fmt.Sprintf("failed to stat %s", path), Cause: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	extract, ok := extractors[ext]
	if !ok {
		return "", &UnsupportedFormatError{Extension: ext, Supported: SupportedExtensions}
	}
	return extract(path)
}

// pdfGeometry supplies the text blocks of a PDF; the compiled-resume checks
// read pages through the same provider
var pdfGeometry validation.GeometryProvider = validation.TabulaGeometry{}

// extractFromPDF joins the text blocks of every page in reading position,
// top to bottom and then left to right.
func extractFromPDF(path string) (string, error) {
	pages, err := pdfGeometry.Open(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to read PDF", Cause: err}
	}

	var texts []string
	for _, page := range pages {
		blocks := page.TextBlocks()
		sort.SliceStable(blocks, func(a, b int) bool {
			if blocks[a].Top != blocks[b].Top {
				return blocks[a].Top < blocks[b].Top
			}
			return blocks[a].Left < blocks[b].Left
		})
		for _, b := range blocks {
			if text := strings.TrimSpace(b.Text); text != "" {
				texts = append(texts, text)
			}
		}
	}
	return strings.Join(texts, "\n"), nil
}

// extractFromDOCX returns the non-empty paragraphs, one per line
func extractFromDOCX(path string) (string, error) {
	r, err := docx.Open(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to open DOCX", Cause: err}
	}
	defer func() { _ = r.Close() }()

	content, err := r.Text()
	if err != nil {
		return "", &ExtractionError{Message: "failed to read DOCX text", Cause: err}
	}

	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

func extractFromMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to read markdown", Cause: err}
	}
	return string(content), nil
}
