package textclean

// StripRecurringEdges removes lines from the front while the first remaining
// line normalizes into headers, then from the back while the last remaining
// line normalizes into footers. Stacked recurring lines (a running header
// followed by a chapter title that also recurs) are all removed, and the
// result may be empty.
func StripRecurringEdges(lines []string, headers, footers map[string]bool) []string {
	cleaned := lines
	for len(cleaned) > 0 && headers[NormalizeLine(cleaned[0])] {
		cleaned = cleaned[1:]
	}
	for len(cleaned) > 0 && footers[NormalizeLine(cleaned[len(cleaned)-1])] {
		cleaned = cleaned[:len(cleaned)-1]
	}
	return cleaned
}
