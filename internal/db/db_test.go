package db

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFinalStatus(t *testing.T) {
	assert.True(t, IsFinalStatus(StatusSucceeded))
	assert.True(t, IsFinalStatus(StatusRejected))
	assert.True(t, IsFinalStatus(StatusFailed))
	assert.False(t, IsFinalStatus(StatusRunning))
	assert.False(t, IsFinalStatus(""))
}

func TestRunType(t *testing.T) {
	run := Run{Persona: "davy", Role: "pm", Template: "modern", Status: StatusRunning}

	raw, err := json.Marshal(run)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "davy", decoded["persona"])
	assert.NotContains(t, decoded, "pages")
	assert.NotContains(t, decoded, "completed_at")
}

func TestSchemaDefinesTables(t *testing.T) {
	assert.True(t, strings.Contains(schemaSQL, "CREATE TABLE IF NOT EXISTS build_runs"))
	assert.True(t, strings.Contains(schemaSQL, "CREATE TABLE IF NOT EXISTS build_artifacts"))
	assert.Contains(t, schemaSQL, "UNIQUE (run_id, step)")
}

func TestNullableHelpers(t *testing.T) {
	assert.Nil(t, nullableText(""))
	require.NotNil(t, nullableText("x"))
	assert.Equal(t, "x", *nullableText("x"))

	assert.Nil(t, nullableInt(0))
	require.NotNil(t, nullableInt(2))
	assert.Equal(t, 2, *nullableInt(2))
}
