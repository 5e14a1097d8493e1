// Package ingestion extracts plain text from existing resumes so it can be
// turned into structured resume data.
package ingestion

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when the source document does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// UnsupportedFormatError is returned for extensions ExtractText cannot read
type UnsupportedFormatError struct {
	Extension string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s. Supported: %s", e.Extension, strings.Join(e.Supported, ", "))
}

// ExtractionError represents a document that exists but could not be read
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
