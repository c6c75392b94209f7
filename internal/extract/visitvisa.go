package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	durationPhrase  = regexp.MustCompile(`\b\d+\s*(?:DAY|DAYS|MONTH|MONTHS)\b`)
	permitCandidate = regexp.MustCompile(`\b([A-Z0-9]{8,15})\b`)
	uidDigits       = regexp.MustCompile(`\b([0-9]{12,15})\b`)
	shortDate       = regexp.MustCompile(`([0-3]?\d[/-][0-1]?\d[/-]\d{4})`)
	placeAfterDate  = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`)
	visaPassportNo  = regexp.MustCompile(`\b([A-Z]{1,2}[0-9]{7,8})\b`)
)

// extractVisitVisa reads label-anchored values off UAE visit visa and
// tourist entry documents. Values often land on the line below their label,
// so every lookup probes the next line at reduced confidence.
func extractVisitVisa(text string) []domain.ExtractedField {
	set := newFieldSet()
	lines := splitLines(text)

	extractVisaTypeDuration(lines, set)

	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		if !set.has("entry_permit_number") && containsAny(line, "ENTRY") &&
			containsAny(line, "PERMIT", "NO") {
			if v := permitCandidate.FindString(afterColon(line)); v != "" {
				set.add("entry_permit_number", v, 90, domain.SourceLabelWindow)
			} else if v := permitCandidate.FindString(next); v != "" {
				set.add("entry_permit_number", v, 90, domain.SourceLabelWindow)
			}
		}

		if !set.has("uid_number") && containsAny(line, "U.I.D", "UID", "UNIFIED") {
			if v := uidDigits.FindString(line); v != "" {
				set.add("uid_number", v, 92, domain.SourceLabelWindow)
			} else if v := uidDigits.FindString(next); v != "" {
				set.add("uid_number", v, 90, domain.SourceLabelWindow)
			}
		}

		if !set.has("date_place_of_issue") && containsAny(line, "ISSUE", "ISSUED") {
			extractDatePlaceOfIssue(line, next, set)
		}

		if !set.has("full_name") && containsAny(line, "NAME") && strings.Contains(line, ":") {
			if v := afterColon(line); v != "" && !hasDigit(v) {
				set.add("full_name", v, 88, domain.SourceLabelWindow)
			} else if next != "" && !hasDigit(next) {
				set.add("full_name", next, 85, domain.SourceLabelWindow)
			}
		}

		if !set.has("nationality") && containsAny(line, "NATIONALITY", "CITIZEN") {
			if v := afterColon(line); v != "" {
				set.add("nationality", v, 90, domain.SourceLabelWindow)
			} else if next != "" {
				set.add("nationality", next, 88, domain.SourceLabelWindow)
			}
		}

		if !set.has("place_of_birth") && containsAny(line, "PLACE") && containsAny(line, "BIRTH") {
			if v := afterColon(line); v != "" {
				set.add("place_of_birth", v, 88, domain.SourceLabelWindow)
			} else if next != "" {
				set.add("place_of_birth", next, 85, domain.SourceLabelWindow)
			}
		}

		if !set.has("date_of_birth") &&
			(containsAny(line, "DOB") || (containsAny(line, "DATE") && containsAny(line, "BIRTH"))) {
			if v := shortDate.FindString(line); v != "" {
				set.add("date_of_birth", v, 90, domain.SourceLabelWindow)
			} else if v := shortDate.FindString(next); v != "" {
				set.add("date_of_birth", v, 90, domain.SourceLabelWindow)
			}
		}

		if !set.has("passport_number") && containsAny(line, "PASSPORT") {
			if m := visaPassportNo.FindStringSubmatch(line); m != nil {
				set.add("passport_number", m[1], 92, domain.SourceLabelWindow)
			} else if m := visaPassportNo.FindStringSubmatch(next); m != nil {
				set.add("passport_number", m[1], 90, domain.SourceLabelWindow)
			}
		}

		if !set.has("profession") && containsAny(line, "PROFESSION", "OCCUPATION", "JOB") {
			if v := afterColon(line); v != "" {
				set.add("profession", v, 85, domain.SourceLabelWindow)
			} else if next != "" {
				set.add("profession", next, 82, domain.SourceLabelWindow)
			}
		}
	}

	return set.list()
}

// extractVisaTypeDuration assembles the visa class and validity phrase from
// the short header lines near the top of the permit.
func extractVisaTypeDuration(lines []string, set *fieldSet) {
	var parts []string
	for _, line := range lines {
		if m := durationPhrase.FindString(strings.ToUpper(line)); m != "" {
			parts = append(parts, m)
			continue
		}
		if len(line) <= 40 &&
			containsAny(line, "TOURIST", "VISIT", "VISA", "SINGLE", "MULTIPLE", "TRIP") {
			parts = append(parts, line)
		}
		if len(parts) >= 3 {
			break
		}
	}
	if len(parts) > 0 {
		set.add("visa_type_duration", strings.Join(parts, " "), 85, domain.SourceLabelWindow)
	}
}

func extractDatePlaceOfIssue(line, next string, set *fieldSet) {
	date := shortDate.FindString(line)
	if date == "" {
		date = shortDate.FindString(next)
	}
	if date == "" {
		return
	}
	if loc := shortDate.FindStringIndex(line); loc != nil {
		if place := placeAfterDate.FindString(line[loc[1]:]); place != "" {
			date = strings.ReplaceAll(date, "-", "/")
			set.add("date_place_of_issue", date+" "+place, 88, domain.SourceLabelWindow)
			return
		}
	}
	date = strings.ReplaceAll(date, "-", "/")
	if next != "" && !hasDigit(next) {
		set.add("date_place_of_issue", date+" "+next, 85, domain.SourceLabelWindow)
		return
	}
	set.add("date_place_of_issue", date, 80, domain.SourceLabelWindow)
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
