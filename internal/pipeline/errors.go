// Package pipeline orchestrates a resume build: serialize, compile, count
// pages, optionally analyze layout quality, then accept or reject.
package pipeline

import "fmt"

// Error represents a pipeline setup or I/O failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pipeline error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pipeline error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
