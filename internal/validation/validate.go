package validation

import (
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/types"
)

// MaxPages is the page ceiling every resume must meet
const MaxPages = 1

// AnalyzeQuality runs runt detection and fill measurement over a compiled
// document. Findings are advisory.
func AnalyzeQuality(geometry GeometryProvider, pdfPath string, runtThreshold int) (*types.QualityReport, error) {
	pages, err := geometry.Open(pdfPath)
	if err != nil {
		return nil, err
	}
	if runtThreshold <= 0 {
		runtThreshold = DefaultRuntThreshold
	}
	return &types.QualityReport{
		Runts: DetectRunts(pages, runtThreshold),
		Fill:  CheckPageFill(pages),
	}, nil
}

// ValidatePDF checks a compiled resume: more than MaxPages pages is an error,
// runts and a sparse first page are warnings. A page count failure is
// returned as an error; a geometry failure only skips the warnings.
func ValidatePDF(pdfPath string, counter PageCounter, geometry GeometryProvider, runtThreshold int) (*types.Violations, error) {
	violations := &types.Violations{Violations: []types.Violation{}}

	pageCount, err := counter.CountPages(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}
	if pageCount > MaxPages {
		violations.Violations = append(violations.Violations, types.Violation{
			Type:     types.ViolationPageOverflow,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("Page count is %d (limit: %d)", pageCount, MaxPages),
		})
	}

	if geometry == nil {
		return violations, nil
	}

	report, err := AnalyzeQuality(geometry, pdfPath, runtThreshold)
	if err != nil {
		log.Printf("[VALIDATE] Layout analysis failed for %s: %v", pdfPath, err)
		return violations, nil
	}

	for _, runt := range report.Runts {
		page := runt.Page
		text := runt.Text
		violations.Violations = append(violations.Violations, types.Violation{
			Type:     types.ViolationRunt,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("Possible runt: %q", runt.Context),
			Page:     &page,
			Text:     &text,
		})
	}
	if report.Fill.Warning && report.Fill.Suggestion != nil {
		page := 1
		violations.Violations = append(violations.Violations, types.Violation{
			Type:     types.ViolationSparsePage,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("%s (%.1f%% filled)", *report.Fill.Suggestion, report.Fill.FillPercent),
			Page:     &page,
		})
	}
	return violations, nil
}
