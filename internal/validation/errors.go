// Package validation compiles Typst resumes and inspects the resulting PDFs for layout problems.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CompilerUnavailableError means the typst binary could not be found
type CompilerUnavailableError struct {
	Binary string
	Cause  error
}

func (e *CompilerUnavailableError) Error() string {
	return "Typst not installed. Install with: brew install typst"
}

func (e *CompilerUnavailableError) Unwrap() error {
	return e.Cause
}

// CompilationError represents a Typst compilation failure. LogOutput holds
// the compiler diagnostics verbatim.
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("typst compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("typst compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// PageLimitExceededError reports a compiled document longer than the limit.
// Path points at the document so it can still be inspected.
type PageLimitExceededError struct {
	Pages int
	Limit int
	Path  string
}

func (e *PageLimitExceededError) Error() string {
	return fmt.Sprintf("page limit exceeded: %s has %d pages (limit %d)", e.Path, e.Pages, e.Limit)
}

// FileReadError represents an error reading a document
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
