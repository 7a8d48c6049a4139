package ingest

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/bookworks/book-ingest-service/internal/textclean"
)

const (
	// Text fragments within this Y distance belong to the same line.
	rowTolerance = 3.0
	// Horizontal gap beyond which adjacent fragments get a space between them.
	wordGap = 1.0
)

// extractTextByPage returns one Page per physical page, in order, with the
// page text trimmed. Pages whose content cannot be decoded come back empty
// rather than failing the whole document.
func extractTextByPage(ctx context.Context, pdfPath string) ([]textclean.Page, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]textclean.Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pages = append(pages, textclean.Page{
			PageNumber: i,
			Text:       strings.TrimSpace(pageText(r.Page(i))),
		})
	}

	return pages, nil
}

// pageText reconstructs a page as newline-separated lines so the cleaning
// pipeline can see headers and footers as distinct lines: fragments are
// grouped into rows by Y coordinate (PDF Y grows upward, so top of page
// first) and ordered left to right within a row.
func pageText(p pdf.Page) (text string) {
	// The content-stream interpreter panics on malformed streams; treat
	// such pages as empty instead of taking down the whole extraction.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if p.V.IsNull() {
		return ""
	}

	texts := p.Content().Text
	if len(texts) == 0 {
		return ""
	}

	sort.SliceStable(texts, func(i, j int) bool {
		if math.Abs(texts[i].Y-texts[j].Y) > rowTolerance {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var b strings.Builder
	lastY := texts[0].Y
	lastEnd := texts[0].X
	for i, t := range texts {
		switch {
		case i == 0:
		case math.Abs(t.Y-lastY) > rowTolerance:
			b.WriteByte('\n')
		case t.X-lastEnd > wordGap:
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		lastY = t.Y
		lastEnd = t.X + t.W
	}

	return b.String()
}
