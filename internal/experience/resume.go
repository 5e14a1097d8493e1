// Package experience loads resume data documents and builds validated ResumeData records.
package experience

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Format is the encoding of a resume data document
type Format int

const (
	// FormatJSON is a JSON document
	FormatJSON Format = iota
	// FormatYAML is a YAML document
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "YAML"
	}
	return "JSON"
}

// FormatFromPath picks the document format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, &LoadError{
			Message: fmt.Sprintf("unsupported resume data format %q (supported: .json, .yaml, .yml)", filepath.Ext(path)),
		}
	}
}

// LoadResume loads and validates resume data from a JSON or YAML file
func LoadResume(path string) (*types.ResumeData, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return ParseResume(content, format)
}

// ParseResume builds a ResumeData from an encoded document. The document is
// checked against the resume schema before the typed decode, so a malformed
// document yields one *types.SchemaError listing every violation.
func ParseResume(content []byte, format Format) (*types.ResumeData, error) {
	doc, err := decodeGeneric(content, format)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to parse %s", format),
			Cause:   err,
		}
	}

	if err := schemas.ValidateResumeDocument(doc); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, toSchemaError(validationErr)
		}
		return nil, &LoadError{Message: "failed to validate resume document", Cause: err}
	}

	var data types.ResumeData
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		err = json.Unmarshal(content, &data)
	}
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to decode %s resume data", format),
			Cause:   err,
		}
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

func decodeGeneric(content []byte, format Format) (any, error) {
	var doc any
	if format == FormatYAML {
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toSchemaError(validationErr *schemas.ValidationError) *types.SchemaError {
	schemaErr := &types.SchemaError{
		Violations: make([]types.FieldViolation, 0, len(validationErr.Errors)),
	}
	for _, fe := range validationErr.Errors {
		schemaErr.Violations = append(schemaErr.Violations, types.FieldViolation{
			Field:   fe.Field,
			Message: fe.Message,
		})
	}
	return schemaErr
}
