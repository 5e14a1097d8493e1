package validation

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultRuntThreshold is the longest last line, in characters, still treated as a runt
const DefaultRuntThreshold = 15

// runtContextChars is how much of the preceding line a runt record quotes
const runtContextChars = 50

// RuntExclusion names a pattern of short lines that are expected in a resume
// and never reported as runts.
type RuntExclusion struct {
	Name    string
	Matches func(line string) bool
}

var (
	bulletMarkerPattern = regexp.MustCompile(`^[\x{2022}\-\*]\s*$`)
	dateRangePattern    = regexp.MustCompile(`^\d{4}\s*[\x{2013}\-]\s*(Present|\d{4})$`)

	// two or three capitalized words, a person's name
	titleCaseName = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+){1,2}$`)

	sectionHeaders = []string{"Work", "Education", "Skills", "Projects", "Experience", "Summary"}
)

// RuntExclusions are checked in order; the first match suppresses the line.
var RuntExclusions = []RuntExclusion{
	{Name: "bullet marker", Matches: bulletMarkerPattern.MatchString},
	{Name: "date range", Matches: dateRangePattern.MatchString},
	{Name: "section header", Matches: func(line string) bool { return slices.Contains(sectionHeaders, line) }},
	{Name: "title-case name", Matches: titleCaseName.MatchString},
}

// DetectRunts reports text blocks whose last line is suspiciously short.
//
// Only line breaks inside the extracted block text are visible here, not
// the visual lines the renderer produced, so a runt is a block whose final
// extracted line is at most thresholdChars long and matches no exclusion.
// Results are ordered by page, then block.
func DetectRunts(pages []Page, thresholdChars int) []types.RuntRecord {
	runts := []types.RuntRecord{}
	for _, page := range pages {
		for _, block := range page.TextBlocks() {
			lines := strings.Split(strings.TrimSpace(block.Text), "\n")
			last := strings.TrimSpace(lines[len(lines)-1])

			length := utf8.RuneCountInString(last)
			if length == 0 || length > thresholdChars || isExcludedRunt(last) {
				continue
			}

			// a block without a preceding line still gets the separator
			prev := ""
			if len(lines) > 1 {
				prev = tailRunes(lines[len(lines)-2], runtContextChars)
			}
			context := prev + " " + last
			runts = append(runts, types.RuntRecord{
				Page:    page.Number,
				Text:    last,
				Context: context,
			})
		}
	}
	return runts
}

func isExcludedRunt(line string) bool {
	for _, exclusion := range RuntExclusions {
		if exclusion.Matches(line) {
			return true
		}
	}
	return false
}

func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
