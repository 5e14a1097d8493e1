package ingestion

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

// writeDOCX writes a minimal DOCX whose body holds the given paragraphs
func writeDOCX(t *testing.T, paragraphs ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
	}

	body := ""
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`
	}
	files["word/document.xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`

	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

// writePDF writes a one-page PDF with each string drawn at its (x, y)
// position, y measured from the top of the page.
func writePDF(t *testing.T, items []pdfText) string {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()
	for _, item := range items {
		pdf.Text(item.x, item.y, item.text)
	}

	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

type pdfText struct {
	x, y float64
	text string
}
