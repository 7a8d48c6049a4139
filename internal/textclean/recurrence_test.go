package textclean_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookworks/book-ingest-service/internal/textclean"
)

func TestDetectRecurring_RunningHeaderAndFooter(t *testing.T) {
	t.Parallel()

	// 10 pages, threshold max(3, 2) = 3; both lines appear 10 times.
	pages := make([]textclean.Page, 10)
	for i := range pages {
		pages[i] = textclean.Page{
			PageNumber: i + 1,
			Text:       fmt.Sprintf("Chapter Title\nbody line %d\nPage Footer", i+1),
		}
	}

	headers, footers := textclean.DetectRecurring(pages)
	assert.True(t, headers["chapter title"])
	assert.True(t, footers["page footer"])
	assert.False(t, headers["page footer"], "footer line never opens a page")
}

func TestDetectRecurring_BelowThreshold(t *testing.T) {
	t.Parallel()

	// 5 pages, threshold max(3, 1) = 3; the repeated line only appears twice.
	pages := []textclean.Page{
		{PageNumber: 1, Text: "Repeated Line\nbody"},
		{PageNumber: 2, Text: "Repeated Line\nbody"},
		{PageNumber: 3, Text: "Something Else\nbody"},
		{PageNumber: 4, Text: "Another Opener\nbody"},
		{PageNumber: 5, Text: "Yet Another\nbody"},
	}

	headers, footers := textclean.DetectRecurring(pages)
	assert.False(t, headers["repeated line"])
	assert.Empty(t, headers)
	assert.Empty(t, footers)
}

func TestDetectRecurring_ProportionalThreshold(t *testing.T) {
	t.Parallel()

	// 40 pages push the threshold to floor(0.2*40) = 8. A line recurring on
	// 7 pages stays out, one on 8 pages gets in.
	var pages []textclean.Page
	for i := 0; i < 7; i++ {
		pages = append(pages, textclean.Page{PageNumber: len(pages) + 1, Text: "Seven Times\nbody"})
	}
	for i := 0; i < 8; i++ {
		pages = append(pages, textclean.Page{PageNumber: len(pages) + 1, Text: "Eight Times\nbody"})
	}
	for len(pages) < 40 {
		pages = append(pages, textclean.Page{PageNumber: len(pages) + 1, Text: fmt.Sprintf("unique opener %d\nbody", len(pages))})
	}

	headers, _ := textclean.DetectRecurring(pages)
	assert.False(t, headers["seven times"])
	assert.True(t, headers["eight times"])
}

func TestDetectRecurring_SingleLinePageCountsBothWays(t *testing.T) {
	t.Parallel()

	pages := make([]textclean.Page, 4)
	for i := range pages {
		pages[i] = textclean.Page{PageNumber: i + 1, Text: "Lonely Line"}
	}

	headers, footers := textclean.DetectRecurring(pages)
	assert.True(t, headers["lonely line"])
	assert.True(t, footers["lonely line"])
}

func TestDetectRecurring_BlankKeysNeverRecur(t *testing.T) {
	t.Parallel()

	// First lines normalize to the empty string and must not be counted.
	pages := make([]textclean.Page, 6)
	for i := range pages {
		pages[i] = textclean.Page{PageNumber: i + 1, Text: "***\nbody text here\n***"}
	}

	headers, footers := textclean.DetectRecurring(pages)
	assert.Empty(t, headers)
	assert.Empty(t, footers)
}
