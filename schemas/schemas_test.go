package schemas_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	rootschemas "github.com/jonathan/resume-builder/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeSchema_ValidJSON(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rootschemas.ResumeSchema), &v))

	_, hasSchema := v["$schema"]
	_, hasProps := v["properties"]
	assert.True(t, hasSchema)
	assert.True(t, hasProps)
}

func TestResumeSchema_MatchesFileOnDisk(t *testing.T) {
	data, err := os.ReadFile("resume.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), rootschemas.ResumeSchema)
}

func decodeDoc(t *testing.T, content string) any {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(content), &doc))
	return doc
}

func TestResumeSchema_AcceptsMinimalResume(t *testing.T) {
	doc := decodeDoc(t, `{"contact": {"name": "John Doe", "email": "john@example.com"}}`)
	assert.NoError(t, schemas.ValidateResumeDocument(doc))
}

func TestResumeSchema_RejectsMissingContact(t *testing.T) {
	err := schemas.ValidateResumeDocument(decodeDoc(t, `{"work": []}`))
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok)
}
