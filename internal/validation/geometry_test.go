package validation

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_TextBlocks(t *testing.T) {
	page := Page{Blocks: []Block{
		textBlock(0, 10, "a"),
		{Top: 20, Bottom: 30},
		textBlock(40, 50, "b"),
	}}

	blocks := page.TextBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, "a", blocks[0].Text)
	assert.Equal(t, "b", blocks[1].Text)
}

func TestTabulaPageCounter_CountsPages(t *testing.T) {
	path := writeFixturePDF(t, [][]string{{"Page one"}, {"Page two"}})

	count, err := TabulaPageCounter{}.CountPages(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTabulaPageCounter_MissingFile(t *testing.T) {
	_, err := TabulaPageCounter{}.CountPages(filepath.Join(t.TempDir(), "missing.pdf"))

	var readErr *FileReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestTabulaGeometry_TopDownCoordinates(t *testing.T) {
	path := writeFixturePDF(t, [][]string{{"Jane Smith", "Senior Product Manager"}})

	pages, err := TabulaGeometry{}.Open(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Equal(t, 1, page.Number)
	assert.InDelta(t, 595.28, page.Width, 0.5)
	assert.InDelta(t, 841.89, page.Height, 0.5)

	blocks := page.TextBlocks()
	require.NotEmpty(t, blocks)

	var all []string
	for _, b := range blocks {
		assert.Less(t, b.Top, b.Bottom)
		assert.GreaterOrEqual(t, b.Top, 0.0)
		// text was drawn in the top fifth of the page
		assert.Less(t, b.Bottom, page.Height/5)
		all = append(all, b.Text)
	}
	joined := strings.Join(all, "\n")
	assert.Contains(t, joined, "Jane Smith")
	assert.Contains(t, joined, "Senior Product Manager")
}

func TestTabulaGeometry_EmptyPage(t *testing.T) {
	path := writeFixturePDF(t, [][]string{{}})

	pages, err := TabulaGeometry{}.Open(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].TextBlocks())

	report := CheckPageFill(pages)
	require.NotNil(t, report.Suggestion)
	assert.Equal(t, "No text content", *report.Suggestion)
}

func TestTabulaGeometry_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, writeText(path, "not a pdf"))

	_, err := TabulaGeometry{}.Open(path)
	var readErr *FileReadError
	assert.ErrorAs(t, err, &readErr)
}
