package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	kvPair = regexp.MustCompile(`([A-Za-z][A-Za-z &/]{2,30}?)\s*:+\s*([A-Z0-9][^\n:]{3,50})`)

	// When several pairs share a line the captured value runs into the next
	// label. The label word is stripped off the tail instead of look-ahead.
	trailingLabel = regexp.MustCompile(`(?i)\s+(?:name|date|id|number|sex|nationality|card|expiry|issue)$`)
)

// extractKeyValues is the last-resort scan: any "Label: value" pair on the
// page becomes a field named after the label.
func extractKeyValues(text string) []domain.ExtractedField {
	set := newFieldSet()
	for _, line := range splitLines(text) {
		rest := line
		for {
			m := kvPair.FindStringSubmatchIndex(rest)
			if m == nil {
				break
			}
			name := normalizeFieldName(rest[m[2]:m[3]])
			raw := rest[m[4]:m[5]]
			value := strings.TrimSpace(trailingLabel.ReplaceAllString(raw, ""))
			if name != "" && plausibleValue(value) {
				set.add(name, value, 85, domain.SourceKeyValue)
			}

			// Resume right after the kept value so a label swallowed by the
			// greedy capture is seen again as the next pair.
			advance := m[4] + len(value)
			if advance <= m[0] {
				advance = m[1]
			}
			rest = rest[advance:]
		}
	}
	return set.list()
}

func normalizeFieldName(label string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	name = strings.ReplaceAll(name, "&", "and")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.Join(strings.Fields(name), "_")

	if len(name) < 3 || strings.HasPrefix(name, "_") {
		return ""
	}
	for _, c := range name[:3] {
		if c >= '0' && c <= '9' {
			return ""
		}
	}
	return name
}

// plausibleValue rejects fragments that are too short, too long or mostly
// punctuation noise from a bad scan.
func plausibleValue(value string) bool {
	if len(value) < 2 || len(value) > 100 {
		return false
	}
	noise, total := 0, 0
	for _, c := range value {
		total++
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == ' ':
		default:
			noise++
		}
	}
	return float64(noise) <= 0.4*float64(total)
}
