package validation

import (
	"path/filepath"
	"testing"

	"codeberg.org/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

// writeFixturePDF writes an A4 PDF with one page per entry, each line of
// text drawn 14pt below the previous one starting near the top margin.
func writeFixturePDF(t *testing.T, pages [][]string) string {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.SetFont("Helvetica", "", 12)
	for _, lines := range pages {
		pdf.AddPage()
		y := 72.0
		for _, line := range lines {
			pdf.Text(72, y, line)
			y += 14
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

type fakeCounter struct {
	pages int
	err   error
}

func (f fakeCounter) CountPages(string) (int, error) {
	return f.pages, f.err
}

type fakeGeometry struct {
	pages []Page
	err   error
}

func (f fakeGeometry) Open(string) ([]Page, error) {
	return f.pages, f.err
}

func textBlock(top, bottom float64, text string) Block {
	return Block{Top: top, Left: 50, Bottom: bottom, Right: 550, Text: text, IsText: true}
}
