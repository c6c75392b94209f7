package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/extract/mrz"
)

var (
	issueDateLabeled = regexp.MustCompile(`(?i)issue.*?(\d{2}[/-]\d{2}[/-]\d{4})`)
	issueDateLoose   = regexp.MustCompile(`(\d{2}[/-]\d{2}[/-]20[12]\d)`)
)

// Indian passports print the issuing regional office; these cover the
// offices seen in the field so far.
var issueCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
	"Pune", "Ahmedabad", "Madurai", "Kochi", "Trivandrum", "Kannanoor",
	"Coimbatore", "Vellore",
}

// extractPassport decodes the machine readable zone and supplements it with
// the issue details only printed in the visual zone.
func extractPassport(text string) []domain.ExtractedField {
	set := newFieldSet()

	decoded := mrz.Parse(text)
	for _, name := range []string{
		"surname", "given_name", "full_name", "nationality",
		"passport_number", "date_of_birth", "gender", "expiry_date",
		"file_number",
	} {
		if f, ok := decoded[name]; ok {
			set.add(name, f.Value, f.Confidence, f.Source)
		}
	}

	if !set.has("full_name") && set.has("surname") && set.has("given_name") {
		full := strings.TrimSpace(set.get("given_name") + " " + set.get("surname"))
		set.add("full_name", full, 95, domain.SourceMRZLine1)
	}

	extractIssueDate(text, set)
	extractIssuePlace(text, set)

	return set.list()
}

func extractIssueDate(text string, set *fieldSet) {
	raw := firstMatch(text, issueDateLabeled, issueDateLoose)
	if raw != "" {
		raw = strings.ReplaceAll(raw, "-", "/")
		if t, err := time.Parse("02/01/2006", raw); err == nil {
			set.add("issue_date", t.Format("02-Jan-06"), 80, domain.SourcePageText)
			return
		}
	}

	// Indian passports are valid ten years; derive issue from expiry when
	// the visual zone is unreadable.
	if expiry := set.get("expiry_date"); expiry != "" {
		if t, err := time.Parse("02-Jan-06", expiry); err == nil {
			issued := t.AddDate(-10, 0, 1)
			set.add("issue_date", issued.Format("02-Jan-06"), 75, domain.SourcePageText)
		}
	}
}

func extractIssuePlace(text string, set *fieldSet) {
	upper := strings.ToUpper(text)
	for _, city := range issueCities {
		if strings.Contains(upper, strings.ToUpper(city)) {
			set.add("issue_place", city, 75, domain.SourcePageText)
			return
		}
	}
}
