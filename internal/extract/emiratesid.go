package extract

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	eidFormatted = regexp.MustCompile(`(\d{3}-\d{4}-\d{7}-\d)`)
	eidRaw       = regexp.MustCompile(`(\d{15,})`)
	eidName      = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){2,})\b`)
	eidDate      = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)
	eidGender    = regexp.MustCompile(`\b([MF])\b`)
)

var eidNameBlacklist = []string{
	"EMIRATES", "IDENTITY", "CARD", "RESIDENT", "NATIONALITY", "AUTHORITY",
	"CITIZENSHIP", "DATE", "BIRTH", "ISSUING", "EXPIRY", "NAME", "SEX",
	"SIGNATURE", "FEDERAL",
}

var eidCountries = []string{
	"INDIA", "PAKISTAN", "BANGLADESH", "PHILIPPINES", "EGYPT", "JORDAN",
	"SYRIA", "LEBANON", "UNITED STATES", "UK", "CANADA", "NEPAL", "SRI LANKA",
}

// extractEmiratesID reads the federal identity card. The card prints three
// dates without reliable labels, so their roles are assigned by sorting
// them chronologically.
func extractEmiratesID(text string) []domain.ExtractedField {
	set := newFieldSet()

	if m := eidFormatted.FindStringSubmatch(text); m != nil {
		set.add("id_number", m[1], 95, domain.SourcePattern)
	} else if m := eidRaw.FindStringSubmatch(text); m != nil {
		d := m[1][:15]
		formatted := d[0:3] + "-" + d[3:7] + "-" + d[7:14] + "-" + d[14:15]
		set.add("id_number", formatted, 90, domain.SourcePattern)
	}

	extractEIDName(text, set)
	extractEIDDates(text, set)

	upper := strings.ToUpper(text)
	for _, country := range eidCountries {
		if strings.Contains(upper, country) {
			set.add("nationality", titleCase(country), 90, domain.SourceAllowList)
			break
		}
	}

	if m := eidGender.FindStringSubmatch(text); m != nil {
		gender := "Male"
		if m[1] == "F" {
			gender = "Female"
		}
		set.add("gender", gender, 85, domain.SourcePattern)
	}

	return set.list()
}

// extractEIDName takes the longest multi-word Latin name candidate that
// carries no card boilerplate.
func extractEIDName(text string, set *fieldSet) {
	best := ""
	for _, m := range eidName.FindAllStringSubmatch(text, -1) {
		candidate := stripArabic(m[1])
		if len(candidate) < 15 || containsAny(candidate, eidNameBlacklist...) {
			continue
		}
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	if best != "" {
		set.add("full_name", best, 85, domain.SourcePattern)
	}
}

func extractEIDDates(text string, set *fieldSet) {
	matches := eidDate.FindAllStringSubmatch(text, -1)
	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		dates = append(dates, m[1])
	}

	switch {
	case len(dates) >= 3:
		sort.Slice(dates, func(i, j int) bool {
			ti, erri := time.Parse("02/01/2006", dates[i])
			tj, errj := time.Parse("02/01/2006", dates[j])
			if erri != nil || errj != nil {
				return dates[i] < dates[j]
			}
			return ti.Before(tj)
		})
		set.add("date_of_birth", dates[0], 90, domain.SourcePattern)
		set.add("issue_date", dates[1], 88, domain.SourcePattern)
		set.add("expiry_date", dates[len(dates)-1], 90, domain.SourcePattern)
	case len(dates) == 2:
		set.add("date_of_birth", dates[0], 85, domain.SourcePattern)
		set.add("expiry_date", dates[1], 85, domain.SourcePattern)
	case len(dates) == 1:
		set.add("date_of_birth", dates[0], 80, domain.SourcePattern)
	}
}
