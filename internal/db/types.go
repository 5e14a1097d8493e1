package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents one persona/role build
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Persona     string     `json:"persona"`
	Role        string     `json:"role"`
	Template    string     `json:"template"`
	Status      string     `json:"status"`
	Pages       *int       `json:"pages,omitempty"`
	Message     *string    `json:"message,omitempty"`
	OutputPath  *string    `json:"output_path,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RunInput identifies the build being recorded
type RunInput struct {
	Persona  string
	Role     string
	Template string
}

// RunOutcome is written when a build finishes
type RunOutcome struct {
	Status     string
	Pages      int
	Message    string
	OutputPath string
}

// Run status values
const (
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusRejected  = "rejected" // compiled but over the page limit
	StatusFailed    = "failed"
)

// Artifact steps and categories
const (
	StepMarkup        = "resume_typ"
	StepQualityReport = "quality_report"

	CategoryMarkup  = "markup"
	CategoryQuality = "quality"
)

// Artifact represents an artifact record
type Artifact struct {
	ID          uuid.UUID `json:"id"`
	RunID       uuid.UUID `json:"run_id"`
	Step        string    `json:"step"`
	Category    string    `json:"category"`
	Content     []byte    `json:"content,omitempty"`
	TextContent string    `json:"text_content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsFinalStatus reports whether status may be stored on a completed run
func IsFinalStatus(status string) bool {
	switch status {
	case StatusSucceeded, StatusRejected, StatusFailed:
		return true
	}
	return false
}
