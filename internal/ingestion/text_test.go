package ingestion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	result := CleanText("  # Title\n## Subtitle\nContent here")

	assert.Equal(t, "# Title\n## Subtitle\nContent here", result)
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item  1\n  * Item 2\n• Item 3"
	result := CleanText(input)

	assert.Equal(t, "- Item  1\n  * Item 2\n• Item 3", result)
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Line    with \t multiple    spaces")
	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")
	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestIngestFromFile_Markdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("Jane   Smith\n\n\n\nEducation\n"), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith\n\nEducation", text)
	assert.Equal(t, path, meta.Source)
	assert.Equal(t, "md", meta.Format)
	assert.Len(t, meta.Hash, 64)
	assert.Equal(t, []string{"education"}, meta.Sections)
	assert.Equal(t, len([]rune(text)), meta.Characters)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "missing.md"))

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestIngestFromFile_HashUniqueness(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(first, []byte("one"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("two"), 0644))

	_, metaA, err := IngestFromFile(first)
	require.NoError(t, err)
	_, metaB, err := IngestFromFile(second)
	require.NoError(t, err)

	assert.NotEqual(t, metaA.Hash, metaB.Hash)
}

func TestWriteOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	meta := NewMetadata("Jane Smith", "resume.pdf")

	require.NoError(t, WriteOutput(dir, "resume", "Jane Smith", meta))

	text, err := os.ReadFile(filepath.Join(dir, "resume.extracted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\n", string(text))

	raw, err := os.ReadFile(filepath.Join(dir, "resume.meta.json"))
	require.NoError(t, err)
	var decoded Metadata
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "pdf", decoded.Format)
	assert.Equal(t, meta.Hash, decoded.Hash)
}
