package validation

import (
	"math"

	"github.com/jonathan/resume-builder/internal/types"
)

// Fill thresholds, in percent of the first page's height
const (
	SparseFillPercent  = 40.0
	MinimumFillPercent = 60.0
)

const (
	suggestionEmpty      = "Empty document"
	suggestionNoText     = "No text content"
	suggestionSparse     = "Resume is very sparse. Consider adding more content."
	suggestionWhitespace = "Resume has significant whitespace. Consider adding content or reducing margins."
)

// CheckPageFill measures how much of the first page's height lies between
// the topmost and bottommost block.
func CheckPageFill(pages []Page) types.FillReport {
	if len(pages) == 0 {
		return types.FillReport{FillPercent: 0, Warning: true, Suggestion: types.Ptr(suggestionEmpty)}
	}

	first := pages[0]
	if len(first.Blocks) == 0 || first.Height <= 0 {
		return types.FillReport{FillPercent: 0, Warning: true, Suggestion: types.Ptr(suggestionNoText)}
	}

	top, bottom := first.Blocks[0].Top, first.Blocks[0].Bottom
	for _, b := range first.Blocks[1:] {
		top = math.Min(top, b.Top)
		bottom = math.Max(bottom, b.Bottom)
	}

	fill := (bottom - top) / first.Height * 100
	report := types.FillReport{
		FillPercent: math.Round(fill*10) / 10,
		Warning:     fill < MinimumFillPercent,
	}

	switch {
	case fill < SparseFillPercent:
		report.Suggestion = types.Ptr(suggestionSparse)
	case fill < MinimumFillPercent:
		report.Suggestion = types.Ptr(suggestionWhitespace)
	}
	return report
}
