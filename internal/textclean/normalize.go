package textclean

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonAlnumRegex   = regexp.MustCompile(`[^a-z0-9 ]`)
)

// NormalizeLine canonicalizes a line for header/footer comparison: lowercase,
// runs of whitespace collapsed to a single space, everything outside
// [a-z0-9 ] removed, trimmed. Digits are kept, so a running header that
// embeds a page number ("Chapter 3 - 12") normalizes differently on every
// page; that is an accepted gap of the heuristic.
func NormalizeLine(line string) string {
	normalized := whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(line)), " ")
	normalized = nonAlnumRegex.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}
