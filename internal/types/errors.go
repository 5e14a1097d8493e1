package types

import (
	"fmt"
	"strings"
)

// FieldViolation is one problem found while validating a resume document
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError reports malformed or incomplete resume data. It lists every
// violation found, not only the first.
type SchemaError struct {
	Violations []FieldViolation
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("schema error: %d violation(s)", len(e.Violations)))
	for i, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("\n  %d. %s: %s", i+1, v.Field, v.Message))
	}
	return sb.String()
}
