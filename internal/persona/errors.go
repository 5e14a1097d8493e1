// Package persona manages the persona directories that hold each person's
// generated resumes and the marker recording which persona is active.
package persona

import "fmt"

// Error represents a persona store failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persona error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("persona error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
