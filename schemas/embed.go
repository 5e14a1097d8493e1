// Package schemas holds the JSON Schema documents shipped with resume-builder.
package schemas

import _ "embed"

// ResumeSchema is the JSON Schema for resume data documents.
//
//go:embed resume.schema.json
var ResumeSchema string
