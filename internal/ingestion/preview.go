package ingestion

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	previewSampleChars = 500
	maxHeaderChars     = 30
)

var sectionKeywords = []string{"work", "experience", "education", "skill", "project", "summary"}

// Preview is a quick look at extracted text before it is structured
type Preview struct {
	TotalLines       int      `json:"total_lines"`
	DetectedSections []string `json:"detected_sections"`
	SampleContent    string   `json:"sample_content"`
}

// PreviewSections counts lines, spots likely section headers by keyword and
// keeps a short sample of the text. Only short lines count as headers.
func PreviewSections(text string) *Preview {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	preview := &Preview{
		TotalLines:       len(lines),
		DetectedSections: []string{},
		SampleContent:    text,
	}
	if utf8.RuneCountInString(text) > previewSampleChars {
		preview.SampleContent = string([]rune(text)[:previewSampleChars]) + "..."
	}

	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if utf8.RuneCountInString(lower) >= maxHeaderChars {
			continue
		}
		for _, keyword := range sectionKeywords {
			if strings.Contains(lower, keyword) && !slices.Contains(preview.DetectedSections, keyword) {
				preview.DetectedSections = append(preview.DetectedSections, keyword)
			}
		}
	}
	return preview
}
