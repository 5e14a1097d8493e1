package validation

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabula/layout"
	"github.com/tsawler/tabula/reader"
)

// Block is a rectangular region of a page in top-down coordinates: Top is
// the distance from the top edge of the page, so Top < Bottom.
type Block struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
	Text   string
	IsText bool
}

// Page is the geometry of one compiled page
type Page struct {
	Number int // 1-indexed
	Width  float64
	Height float64
	Blocks []Block
}

// TextBlocks returns the blocks that carry text, in encounter order.
func (p Page) TextBlocks() []Block {
	blocks := make([]Block, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		if b.IsText {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// GeometryProvider reads page geometry from a compiled document
type GeometryProvider interface {
	Open(path string) ([]Page, error)
}

// PageCounter reports how many pages a compiled document has
type PageCounter interface {
	CountPages(path string) (int, error)
}

// TabulaGeometry extracts text blocks from PDFs with tabula's block detector
type TabulaGeometry struct{}

// Open implements GeometryProvider.
func (TabulaGeometry) Open(path string) ([]Page, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, &FileReadError{Message: fmt.Sprintf("failed to open PDF: %s", path), Cause: err}
	}
	defer func() { _ = r.Close() }()

	count, err := r.PageCount()
	if err != nil {
		return nil, &FileReadError{Message: "failed to read page tree", Cause: err}
	}

	detector := layout.NewBlockDetector()
	result := make([]Page, 0, count)
	for i := 0; i < count; i++ {
		pdfPage, err := r.GetPage(i)
		if err != nil {
			return nil, &FileReadError{Message: fmt.Sprintf("failed to load page %d", i+1), Cause: err}
		}
		width, err := pdfPage.Width()
		if err != nil {
			return nil, &FileReadError{Message: fmt.Sprintf("failed to read size of page %d", i+1), Cause: err}
		}
		height, err := pdfPage.Height()
		if err != nil {
			return nil, &FileReadError{Message: fmt.Sprintf("failed to read size of page %d", i+1), Cause: err}
		}

		page := Page{Number: i + 1, Width: width, Height: height}

		fragments, err := r.ExtractTextFragments(pdfPage)
		if err != nil {
			return nil, &FileReadError{Message: fmt.Sprintf("failed to extract text from page %d", i+1), Cause: err}
		}
		if len(fragments) > 0 {
			detected := detector.Detect(fragments, width, height)
			for j := range detected.Blocks {
				b := &detected.Blocks[j]
				// PDF space has its origin at the bottom left
				page.Blocks = append(page.Blocks, Block{
					Top:    height - b.BBox.Top(),
					Left:   b.BBox.Left(),
					Bottom: height - b.BBox.Bottom(),
					Right:  b.BBox.Right(),
					Text:   b.GetText(),
					IsText: strings.TrimSpace(b.GetText()) != "",
				})
			}
		}
		result = append(result, page)
	}
	return result, nil
}

// TabulaPageCounter counts PDF pages from the document's page tree
type TabulaPageCounter struct{}

// CountPages implements PageCounter.
func (TabulaPageCounter) CountPages(path string) (int, error) {
	r, err := reader.Open(path)
	if err != nil {
		return 0, &FileReadError{Message: fmt.Sprintf("failed to open PDF: %s", path), Cause: err}
	}
	defer func() { _ = r.Close() }()

	count, err := r.PageCount()
	if err != nil {
		return 0, &Error{Message: "failed to count PDF pages", Cause: err}
	}
	return count, nil
}
