// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Contact holds the header block of a resume. Name and Email are required;
// pointer fields are optional and nil means "not provided".
type Contact struct {
	Name          string  `json:"name" yaml:"name" validate:"required"`
	Email         string  `json:"email" yaml:"email" validate:"required"`
	Phone         string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location      string  `json:"location,omitempty" yaml:"location,omitempty"`
	PreferredName *string `json:"preferred_name,omitempty" yaml:"preferred_name,omitempty"`
	LinkedIn      *string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Website       *string `json:"website,omitempty" yaml:"website,omitempty"`
}

// WorkEntry is a single position. Bullet order is rendering order.
type WorkEntry struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Company     string   `json:"company" yaml:"company" validate:"required"`
	Dates       string   `json:"dates" yaml:"dates" validate:"required"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
	URL         *string  `json:"url" yaml:"url"`
	Description *string  `json:"description" yaml:"description"`
}

// ProjectEntry mirrors WorkEntry without a company.
type ProjectEntry struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Dates       string   `json:"dates" yaml:"dates" validate:"required"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
	URL         *string  `json:"url" yaml:"url"`
	Description *string  `json:"description" yaml:"description"`
}

// EducationEntry is a single degree or program.
type EducationEntry struct {
	Degree      string   `json:"degree" yaml:"degree" validate:"required"`
	Institution string   `json:"institution" yaml:"institution" validate:"required"`
	Dates       string   `json:"dates" yaml:"dates" validate:"required"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
	URL         *string  `json:"url" yaml:"url"`
}

// ResumeData is the complete resume record consumed by the markup serializer.
// Values are built once and never mutated; build a new record instead.
type ResumeData struct {
	Contact   Contact          `json:"contact" yaml:"contact"`
	Work      []WorkEntry      `json:"work" yaml:"work" validate:"dive"`
	Projects  []ProjectEntry   `json:"projects" yaml:"projects" validate:"dive"`
	Education []EducationEntry `json:"education" yaml:"education" validate:"dive"`
	Skills    SkillSet         `json:"skills" yaml:"skills"`
	Summary   *string          `json:"summary" yaml:"summary"`
}

// Ptr returns a pointer to s, for filling optional fields.
func Ptr(s string) *string {
	return &s
}

var resumeValidator = newResumeValidator()

func newResumeValidator() *validator.Validate {
	v := validator.New()
	// Report field paths with the document's key names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the record's invariants and returns a *SchemaError listing
// every violation found.
func (r *ResumeData) Validate() error {
	err := resumeValidator.Struct(r)
	if err == nil {
		return r.Skills.validate()
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &SchemaError{Violations: []FieldViolation{{Field: "(root)", Message: err.Error()}}}
	}

	schemaErr := &SchemaError{Violations: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		schemaErr.Violations = append(schemaErr.Violations, FieldViolation{
			Field:   trimNamespace(fe.Namespace()),
			Message: describeTag(fe.Tag()),
		})
	}
	if skillsErr := r.Skills.validate(); skillsErr != nil {
		var se *SchemaError
		if errors.As(skillsErr, &se) {
			schemaErr.Violations = append(schemaErr.Violations, se.Violations...)
		}
	}
	return schemaErr
}

// trimNamespace drops the root struct name: "ResumeData.work[0].title" -> "work[0].title"
func trimNamespace(ns string) string {
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	default:
		return "failed " + tag + " check"
	}
}
