// Package textclean removes recurring headers/footers and low-value noise
// pages from per-page PDF text before it is persisted. Recurrence statistics
// are computed per document and never leak between Clean calls.
package textclean

import (
	"strings"

	"github.com/rs/zerolog"
)

// Page is one physical page of a source document: its 1-based position in
// the file and the extracted text.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// Cleaner applies the document-level cleaning pipeline. All working state is
// local to a Clean call, so a single Cleaner can serve concurrent documents.
type Cleaner struct {
	enabled bool
	logger  zerolog.Logger
}

// NewCleaner creates a Cleaner. With enabled false, Clean is the identity
// function.
func NewCleaner(enabled bool, logger zerolog.Logger) *Cleaner {
	return &Cleaner{enabled: enabled, logger: logger}
}

// Clean strips recurring headers/footers from every page and drops noise
// pages. Pages are only ever removed, never reordered, so the output page
// numbers are a subsequence of the input's. If the heuristics would drop
// every page the input is returned unchanged: cleaning must never empty a
// document.
func (c *Cleaner) Clean(pages []Page) []Page {
	if !c.enabled || len(pages) == 0 {
		return pages
	}

	headers, footers := DetectRecurring(pages)

	cleaned := make([]Page, 0, len(pages))
	for i, page := range pages {
		lines := StripRecurringEdges(splitLines(page.Text), headers, footers)
		text := strings.TrimSpace(strings.Join(lines, "\n"))

		// The classifier sees the input loop rank, including pages that end
		// up dropped, not the count of pages kept so far.
		if IsNoisePage(text, i+1) {
			continue
		}
		if text == "" {
			continue
		}
		cleaned = append(cleaned, Page{PageNumber: page.PageNumber, Text: text})
	}

	if len(cleaned) == 0 {
		c.logger.Warn().Int("pages", len(pages)).Msg("cleaning dropped every page, returning unfiltered input")
		return pages
	}

	c.logger.Debug().Int("pages_in", len(pages)).Int("pages_out", len(cleaned)).Msg("document cleaned")
	return cleaned
}

// splitLines returns the non-blank, trimmed lines of a page text.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
