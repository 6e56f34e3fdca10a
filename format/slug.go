// Package format holds the pure presentation helpers used across page
// rendering, structured data, and the feed: slugs, dates, reading time,
// prices, markdown heading extraction, and style-token lookups. Every
// function is stateless and total.
package format

import (
	"regexp"
	"strings"
)

var (
	reSlugStrip    = regexp.MustCompile(`[^\w\s-]`)
	reSlugCollapse = regexp.MustCompile(`[\s_-]+`)
	reHeading      = regexp.MustCompile(`^(#{2,4})\s+(.+)$`)
)

// Slugify converts arbitrary text to a URL-safe slug: lowercase, punctuation
// stripped, whitespace/underscore/hyphen runs collapsed to a single hyphen,
// no leading or trailing hyphen. It is idempotent, so already-slugified input
// passes through unchanged.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSlugStrip.ReplaceAllString(s, "")
	s = reSlugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Heading is a table-of-contents entry extracted from a markdown body.
type Heading struct {
	Level int
	Text  string
	Slug  string
}

// ExtractHeadings scans a markdown body line by line for level 2-4 headings
// and returns them in document order. Heading text may contain punctuation;
// the derived slug strips it.
func ExtractHeadings(body string) []Heading {
	var headings []Heading
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		m := reHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  text,
			Slug:  Slugify(text),
		})
	}
	return headings
}
