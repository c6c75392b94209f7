package extract

import (
	"regexp"
	"strings"
	"time"
)

var (
	arabicRunes = regexp.MustCompile(`[\x{0600}-\x{06FF}]+`)
	multiSpace  = regexp.MustCompile(`\s{2,}`)
)

// splitLines returns non-empty trimmed lines in page order.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// stripArabic drops Arabic script runs and squeezes the leftover whitespace.
func stripArabic(s string) string {
	s = arabicRunes.ReplaceAllString(s, " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// firstMatch returns the first capture group of the first pattern that hits.
func firstMatch(text string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// afterColon returns the trimmed remainder of a "Label: value" line, or ""
// when the line has no colon or nothing after it.
func afterColon(line string) string {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// containsAny reports whether the upper-cased line carries any keyword.
func containsAny(line string, keywords ...string) bool {
	upper := strings.ToUpper(line)
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// titleCase lowercases then capitalizes each word. Unlike strings.Title it
// leaves interior punctuation alone and tolerates single-letter words.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// reformatDate parses a raw date using the layouts in order and renders it
// as DD-Mon-YY. An unparseable date comes back unchanged.
func reformatDate(raw string, layouts ...string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02-Jan-06")
		}
	}
	return raw
}

// commonDateLayouts covers the formats seen across the card and permit
// families. Order matters: day-first beats year-first on ambiguous input.
var commonDateLayouts = []string{
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
	"2006-01-02",
	"02 Jan 2006",
}
