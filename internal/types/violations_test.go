// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	page := 1
	text := "Lead"
	violation := Violation{
		Type:     ViolationRunt,
		Severity: SeverityWarning,
		Details:  "Possible runt",
		Page:     &page,
		Text:     &text,
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "runt"`)
	assert.Contains(t, string(jsonBytes), `"severity": "warning"`)
	assert.Contains(t, string(jsonBytes), `"page": 1`)
	assert.Contains(t, string(jsonBytes), `"text": "Lead"`)
}

func TestViolation_OptionalFields(t *testing.T) {
	violation := Violation{
		Type:     ViolationPageOverflow,
		Severity: SeverityError,
		Details:  "Resume is 2 pages",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), `"page"`)
	assert.NotContains(t, string(jsonBytes), `"text"`)
}

func TestViolations_HasErrors(t *testing.T) {
	var nilViolations *Violations
	assert.False(t, nilViolations.HasErrors())

	warnings := &Violations{Violations: []Violation{{Type: ViolationRunt, Severity: SeverityWarning}}}
	assert.False(t, warnings.HasErrors())

	withError := &Violations{Violations: []Violation{
		{Type: ViolationRunt, Severity: SeverityWarning},
		{Type: ViolationPageOverflow, Severity: SeverityError},
	}}
	assert.True(t, withError.HasErrors())
}

func TestFillReport_NullSuggestion(t *testing.T) {
	report := FillReport{FillPercent: 72.5}

	jsonBytes, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fill_percent":72.5,"warning":false,"suggestion":null}`, string(jsonBytes))
}
