package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	aadhaarCompact = regexp.MustCompile(`^[2-9]\d{11}$`)
	aadhaarSpaced  = regexp.MustCompile(`^[2-9]\d{3}\s\d{4}\s\d{4}$`)
	aadhaarDOB     = regexp.MustCompile(`(?i)DOB[:\s]*([0-3]?\d[/\-][0-1]?\d[/\-]\d{4})`)
	separators     = regexp.MustCompile(`[\s-]+`)
)

// Header and boilerplate vocabulary that never belongs to the holder's name.
var aadhaarSkipWords = []string{
	"GOVERNMENT", "INDIA", "UNIQUE", "IDENTIFICATION", "AUTHORITY",
	"AADHAAR", "DOB", "MALE", "FEMALE", "ADDRESS", "WWW", "HTTP", "HELP",
}

var aadhaarAddressSkip = []string{
	"GOVERNMENT", "UNIQUE", "IDENTIFICATION", "AUTHORITY",
	"WWW", "HTTP", "HELP@", "UIDAI", "1800", "1947",
}

// extractHomeCountryID reads Indian Aadhaar cards. The card has no labels
// for the holder's name, so it is inferred from position: the lines between
// the government header and the date of birth.
func extractHomeCountryID(text string) []domain.ExtractedField {
	set := newFieldSet()
	lines := splitLines(text)

	for _, line := range lines {
		compact := separators.ReplaceAllString(line, "")
		if aadhaarCompact.MatchString(compact) {
			formatted := compact[0:4] + " " + compact[4:8] + " " + compact[8:12]
			set.add("aadhaar_number", formatted, 95, domain.SourcePattern)
			break
		}
		if aadhaarSpaced.MatchString(line) {
			set.add("aadhaar_number", line, 95, domain.SourcePattern)
			break
		}
	}

	if m := aadhaarDOB.FindStringSubmatch(text); m != nil {
		set.add("date_of_birth", strings.ReplaceAll(m[1], "-", "/"), 90, domain.SourceLabelWindow)
	}

	for _, line := range lines {
		switch strings.ToUpper(line) {
		case "MALE", "FEMALE", "TRANSGENDER":
			set.add("gender", titleCase(line), 95, domain.SourceLabelWindow)
		}
		if set.has("gender") {
			break
		}
	}

	extractAadhaarName(lines, set)
	extractAadhaarAddress(lines, set)

	return set.list()
}

func extractAadhaarName(lines []string, set *fieldSet) {
	afterHeader := false
	var parts []string
	for _, line := range lines {
		if containsAny(line, "GOVERNMENT", "INDIA") {
			afterHeader = true
			continue
		}
		if !afterHeader {
			continue
		}
		if containsAny(line, "DOB") {
			break
		}
		if hasDigit(line) || len(line) <= 1 || containsAny(line, aadhaarSkipWords...) {
			continue
		}
		parts = append(parts, line)
		if len(parts) == 3 {
			break
		}
	}
	if len(parts) > 0 {
		set.add("full_name", strings.Join(parts, " "), 85, domain.SourceLabelWindow)
	}
}

func extractAadhaarAddress(lines []string, set *fieldSet) {
	collecting := false
	var parts []string
	for _, line := range lines {
		if !collecting {
			if containsAny(line, "D/O", "S/O", "C/O", "W/O", "ADDRESS") {
				collecting = true
				parts = append(parts, line)
			}
			continue
		}
		compact := separators.ReplaceAllString(line, "")
		if aadhaarCompact.MatchString(compact) {
			break
		}
		if containsAny(line, aadhaarAddressSkip...) {
			continue
		}
		parts = append(parts, line)
	}
	if len(parts) > 0 {
		set.add("permanent_address", strings.Join(parts, ", "), 80, domain.SourceLabelWindow)
	}
}
