package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/persona"
	"github.com/jonathan/resume-builder/internal/rendering"
)

const minimalData = `{"contact": {"name": "Davy Jones", "email": "davy@example.com"}}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestParseRecipient(t *testing.T) {
	fields, err := parseRecipient([]string{"name=Hiring Manager", "company = Acme", "address=1 Main St, Springfield"})
	require.NoError(t, err)
	assert.Equal(t, []rendering.RecipientField{
		{Key: "name", Value: "Hiring Manager"},
		{Key: "company", Value: "Acme"},
		{Key: "address", Value: "1 Main St, Springfield"},
	}, fields)

	fields, err = parseRecipient(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = parseRecipient([]string{"no separator"})
	assert.Error(t, err)
	_, err = parseRecipient([]string{"=value"})
	assert.Error(t, err)
}

func TestSelection_ExplicitValuesWin(t *testing.T) {
	cfg := config.Config{Root: t.TempDir(), Persona: "jane", Role: "eng"}

	name, role, err := selection(cfg)
	require.NoError(t, err)
	assert.Equal(t, "jane", name)
	assert.Equal(t, "eng", role)
}

func TestSelection_FallsBackToCurrent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, persona.NewStore(root).SetCurrent("jane", "eng"))

	name, role, err := selection(config.Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, "jane", name)
	assert.Equal(t, "eng", role)

	name, role, err = selection(config.Config{Root: root, Role: "pm"})
	require.NoError(t, err)
	assert.Equal(t, "jane", name)
	assert.Equal(t, "pm", role)
}

func TestSelection_Defaults(t *testing.T) {
	name, role, err := selection(config.Config{Root: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, persona.DefaultPersona, name)
	assert.Equal(t, persona.DefaultRole, role)
}

func TestOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("proj", "personas", "davy"), outputDir(config.Config{Root: "proj"}, "davy"))
	assert.Equal(t, "out", outputDir(config.Config{Root: "proj", OutputDir: "out"}, "davy"))
}

func TestDataPath(t *testing.T) {
	root := t.TempDir()
	dataFile := filepath.Join(root, "personas", "davy", "data", "pm.yaml")
	writeFile(t, dataFile, "")

	path, err := dataPath(config.Config{Root: root}, "davy", "pm")
	require.NoError(t, err)
	assert.Equal(t, dataFile, path)

	path, err = dataPath(config.Config{Root: root, Data: "explicit.json"}, "davy", "pm")
	require.NoError(t, err)
	assert.Equal(t, "explicit.json", path)

	_, err = dataPath(config.Config{Root: root}, "davy", "eng")
	assert.Error(t, err)
}

func TestCollectJobs(t *testing.T) {
	root := t.TempDir()
	store := persona.NewStore(root)
	writeFile(t, filepath.Join(store.Dir("davy"), "data", "pm.json"), minimalData)
	writeFile(t, filepath.Join(store.Dir("davy"), "data", "eng.json"), minimalData)
	writeFile(t, filepath.Join(store.Dir("jane"), "data", "pm.json"), minimalData)
	require.NoError(t, os.MkdirAll(store.Dir("empty"), 0755))

	jobs, err := collectJobs(store, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "davy", jobs[0].Persona)
	assert.Equal(t, "eng", jobs[0].Role)
	assert.Equal(t, store.Dir("davy"), jobs[0].OutputDir)
	assert.Equal(t, "Davy Jones", jobs[0].Data.Contact.Name)
	assert.Equal(t, "jane", jobs[2].Persona)

	jobs, err = collectJobs(store, []string{"jane"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "pm", jobs[0].Role)
}

func TestCollectJobs_InvalidDataAbortsBatch(t *testing.T) {
	root := t.TempDir()
	store := persona.NewStore(root)
	writeFile(t, filepath.Join(store.Dir("davy"), "data", "pm.json"), `{"contact": {"name": "Davy"}}`)

	_, err := collectJobs(store, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pm.json")
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "resume.typ")

	require.NoError(t, ensureParentDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, ensureParentDir("resume.typ"))
}
