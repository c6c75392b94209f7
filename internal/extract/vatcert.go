package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	vatTRN       = regexp.MustCompile(`(?i)(?:TRN|tax\s*registration\s*(?:no|number))[.:\s]*(\d{15})`)
	vatCertNo    = regexp.MustCompile(`(?i)certificate\s*(?:no|number)[.:\s]*([A-Z0-9\-/]{4,20})`)
	vatEffective = regexp.MustCompile(`(?i)effective\s*registration\s*date[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}|\d{1,2}\s+[A-Za-z]+\s+\d{4})`)
	vatIssued    = regexp.MustCompile(`(?i)date\s*of\s*issue[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}|\d{1,2}\s+[A-Za-z]+\s+\d{4})`)
	vatFirstRet  = regexp.MustCompile(`(?i)first\s*vat\s*return\s*period[.:\s]*([^\n]{4,60})`)
	vatRetDue    = regexp.MustCompile(`(?i)vat\s*return\s*due\s*date[.:\s]*([^\n]{4,60})`)
	vatPeriod    = regexp.MustCompile(`(?i)tax\s*period[.:\s]*([^\n]{4,60})`)
	vatContact   = regexp.MustCompile(`(?i)(?:contact|phone|tel)[.:\s]*([+\d\s\-]{7,18})`)
	arabicLine   = regexp.MustCompile(`[\x{0600}-\x{06FF}][\x{0600}-\x{06FF}\s]{3,}`)
)

// extractVATCertificate reads the federal tax registration certificate. The
// certificate is fully label driven, with the legal name printed in both
// English and Arabic.
func extractVATCertificate(text string) []domain.ExtractedField {
	set := newFieldSet()

	addFirst := func(name string, re *regexp.Regexp, conf float64) {
		if m := re.FindStringSubmatch(text); m != nil {
			set.add(name, strings.TrimSpace(m[1]), conf, domain.SourcePattern)
		}
	}

	addFirst("registration_number", vatTRN, 95)
	addFirst("certificate_number", vatCertNo, 90)
	addFirst("effective_registration_date", vatEffective, 88)
	addFirst("date_of_issue", vatIssued, 88)
	addFirst("first_vat_return_period", vatFirstRet, 85)
	addFirst("vat_return_due_date", vatRetDue, 85)
	addFirst("tax_period_start_end", vatPeriod, 82)
	addFirst("contact_number", vatContact, 85)

	lines := splitLines(text)
	for i, line := range lines {
		if !set.has("legal_name_english") && containsAny(line, "LEGAL NAME") {
			if v := afterColon(line); v != "" && stripArabic(v) != "" {
				set.add("legal_name_english", stripArabic(v), 90, domain.SourceLabelWindow)
			} else if i+1 < len(lines) {
				if v := stripArabic(lines[i+1]); v != "" {
					set.add("legal_name_english", v, 88, domain.SourceLabelWindow)
				}
			}
		}
		if !set.has("registered_address") && containsAny(line, "ADDRESS") {
			if v := afterColon(line); v != "" {
				set.add("registered_address", v, 82, domain.SourceLabelWindow)
			} else if i+1 < len(lines) {
				set.add("registered_address", lines[i+1], 80, domain.SourceLabelWindow)
			}
		}
	}

	if m := arabicLine.FindString(text); m != "" {
		set.add("legal_name_arabic", strings.TrimSpace(m), 80, domain.SourcePattern)
	}

	return set.list()
}
