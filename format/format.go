package format

import (
	"strconv"
	"strings"
	"time"
)

// wordsPerMinute is the fixed reading speed used for reading-time estimates.
const wordsPerMinute = 200

// currencySymbol prefixes every formatted price. Prices render in the en-PH
// convention: peso sign, comma digit grouping, no decimal places.
const currencySymbol = "₱"

// Date renders a date in its long display form, e.g. "January 2, 2006".
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// ISODate renders a date as a strict ISO-8601 timestamp in UTC for machine
// consumption (schema.org datePublished/dateModified).
func ISODate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ReadingTime estimates reading minutes for a markdown body: whitespace-split
// token count divided by the fixed reading speed, rounded up. An empty body
// yields 0, not an error. Markdown syntax counts as words, matching how the
// estimate has always been shown on the site.
func ReadingTime(body string) int {
	words := len(strings.Fields(body))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Truncate shortens text to at most limit runes. Text within the limit is
// returned unchanged; otherwise it is cut, right-trimmed, and given an
// ellipsis marker.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRight(string(runes[:limit]), " \t\n") + "..."
}

// Price renders a currency amount with no decimal places, e.g. "₱1,500".
func Price(amount float64) string {
	n := int64(amount + 0.5)
	neg := false
	if amount < 0 {
		n = int64(-amount + 0.5)
		neg = true
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + currencySymbol + b.String()
	}
	return currencySymbol + b.String()
}

// PriceRange renders a cost band: "Free" when both bounds are zero, a single
// price when the bounds are equal, otherwise "min - max".
func PriceRange(min, max float64) string {
	switch {
	case min == 0 && max == 0:
		return "Free"
	case min == max:
		return Price(min)
	default:
		return Price(min) + " - " + Price(max)
	}
}
