package textclean

// DetectRecurring scans the first and last non-blank line of every page and
// returns the normalized keys that repeat often enough to be running
// headers or footers. A page with a single line counts toward both tables;
// such pages are rare and usually are a stranded header or footer. Blank
// normalized keys never enter either set.
func DetectRecurring(pages []Page) (headers, footers map[string]bool) {
	headerCounts := make(map[string]int)
	footerCounts := make(map[string]int)

	for _, page := range pages {
		lines := splitLines(page.Text)
		if len(lines) == 0 {
			continue
		}
		if head := NormalizeLine(lines[0]); head != "" {
			headerCounts[head]++
		}
		if tail := NormalizeLine(lines[len(lines)-1]); tail != "" {
			footerCounts[tail]++
		}
	}

	threshold := recurrenceThreshold(len(pages))
	headers = make(map[string]bool)
	footers = make(map[string]bool)
	for key, count := range headerCounts {
		if count >= threshold {
			headers[key] = true
		}
	}
	for key, count := range footerCounts {
		if count >= threshold {
			footers[key] = true
		}
	}
	return headers, footers
}

// recurrenceThreshold is max(3, floor(0.2*pageCount)). The floor of 3 avoids
// false positives on tiny documents; the proportional part catches running
// headers in large documents without requiring them on every page.
func recurrenceThreshold(pageCount int) int {
	if t := pageCount / 5; t > 3 {
		return t
	}
	return 3
}
