// Package rendering serializes resume data into Typst markup documents.
package rendering

import (
	"fmt"
	"strings"
)

// UnknownTemplateError is returned when a template identifier is not in the supported set
type UnknownTemplateError struct {
	Template  string
	Available []string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template error: unknown template %q (available: %s)", e.Template, strings.Join(e.Available, ", "))
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure writing a generated artifact to disk
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
