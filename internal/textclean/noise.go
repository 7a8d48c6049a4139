package textclean

import (
	"regexp"
	"strings"
)

var wordRegex = regexp.MustCompile(`[a-zA-Z']+`)

// Substrings that mark likely front matter. Matched case-insensitively
// against the whole page text; "acknowledg" catches both the -ment and
// -ement spellings.
var frontMatterKeywords = []string{
	"preface", "about the author", "copyright", "all rights reserved",
	"table of contents", "contents", "acknowledg", "dedication", "isbn",
	"published by", "index",
}

const (
	minBodyWords        = 20
	frontMatterMaxWords = 220
	frontMatterMaxPos   = 15
)

// IsNoisePage reports whether a page should be dropped after edge stripping.
// logicalPosition is the page's 1-based rank in processing order, counting
// pages that were already dropped in this pass; using the original page
// number instead would shift decisions near the front-matter cutoff.
func IsNoisePage(text string, logicalPosition int) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}

	lowered := strings.ToLower(text)
	wordCount := len(wordRegex.FindAllString(lowered, -1))

	// Too sparse to be meaningful body text.
	if wordCount < minBodyWords {
		return true
	}

	// Front matter is only suppressed early in the document and only when
	// the page is also short, so a full chapter that happens to mention
	// "index" is kept.
	if logicalPosition <= frontMatterMaxPos && wordCount < frontMatterMaxWords {
		for _, keyword := range frontMatterKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}

	return false
}
