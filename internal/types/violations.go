// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation types reported by PDF validation
const (
	ViolationPageOverflow = "page_overflow"
	ViolationRunt         = "runt"
	ViolationSparsePage   = "sparse_page"
)

// Severity levels. Only errors fail validation; warnings are advisory.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single finding against a compiled document
type Violation struct {
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
	Details  string  `json:"details"`
	Page     *int    `json:"page,omitempty"`
	Text     *string `json:"text,omitempty"`
}

// Violations represents a collection of findings
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any finding has error severity.
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// RuntRecord is one suspected orphan line.
type RuntRecord struct {
	Page    int    `json:"page"` // 1-indexed
	Text    string `json:"text"`
	Context string `json:"context"`
}

// FillReport describes how much of the first page carries content.
type FillReport struct {
	FillPercent float64 `json:"fill_percent"`
	Warning     bool    `json:"warning"`
	Suggestion  *string `json:"suggestion"`
}

// QualityReport bundles the advisory layout diagnostics for a document.
type QualityReport struct {
	Runts []RuntRecord `json:"runts"`
	Fill  FillReport   `json:"fill"`
}
