package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	cxPassport    = regexp.MustCompile(`(?i)passport\s*(?:no|number)?[.:\s]*([A-Z]{1,2}[0-9]{6,8})`)
	cxVisaNumber  = regexp.MustCompile(`(?i)visa\s*(?:no|number)[.:\s]*([\d/\-]{6,20})`)
	cxEstablNo    = regexp.MustCompile(`(?i)establishment\s*(?:no|number)[.:\s]*([\d/\-]{4,15})`)
	cxApplication = regexp.MustCompile(`(?i)application\s*(?:no|number)[.:\s]*([A-Z0-9/\-]{5,20})`)
	cxCancelRef   = regexp.MustCompile(`(?i)cancellation\s*(?:transaction|ref(?:erence)?)\s*(?:no|number)?[.:\s]*([A-Z0-9/\-]{5,20})`)
	cxCancelDate  = regexp.MustCompile(`(?i)cancellation\s*date[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	cxSponsorID   = regexp.MustCompile(`(?i)sponsor\s*(?:id|no|number)[.:\s]*([\d/\-]{4,15})`)
	cxVisaType    = regexp.MustCompile(`(?i)visa\s*type[.:\s]*([^\n]{3,40})`)
)

var uaeEmirates = []string{
	"ABU DHABI", "DUBAI", "SHARJAH", "AJMAN",
	"RAS AL KHAIMAH", "FUJAIRAH", "UMM AL QUWAIN",
}

// extractCancellation reads visa and residence cancellation applications.
// The form is label driven with the person block and sponsor block sharing
// vocabulary, so sponsor labels are matched before bare name labels.
func extractCancellation(text string) []domain.ExtractedField {
	set := newFieldSet()

	addFirst := func(name string, re *regexp.Regexp, conf float64) {
		if m := re.FindStringSubmatch(text); m != nil {
			set.add(name, strings.TrimSpace(m[1]), conf, domain.SourcePattern)
		}
	}

	addFirst("passport_number", cxPassport, 92)
	addFirst("visa_number", cxVisaNumber, 90)
	addFirst("establishment_number", cxEstablNo, 88)
	addFirst("application_number", cxApplication, 88)
	addFirst("cancellation_ref", cxCancelRef, 88)
	addFirst("cancellation_date", cxCancelDate, 90)
	addFirst("sponsor_id", cxSponsorID, 88)
	addFirst("visa_type", cxVisaType, 85)

	lines := splitLines(text)
	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		if !set.has("sponsor_name") && containsAny(line, "SPONSOR") &&
			containsAny(line, "NAME") {
			if v := afterColon(line); v != "" && !hasDigit(v) {
				set.add("sponsor_name", v, 88, domain.SourceLabelWindow)
			} else if next != "" && !hasDigit(next) {
				set.add("sponsor_name", next, 85, domain.SourceLabelWindow)
			}
			continue
		}

		if !set.has("full_name") && containsAny(line, "NAME") &&
			!containsAny(line, "SPONSOR") {
			if v := afterColon(line); v != "" && !hasDigit(v) {
				set.add("full_name", v, 88, domain.SourceLabelWindow)
			} else if next != "" && !hasDigit(next) {
				set.add("full_name", next, 85, domain.SourceLabelWindow)
			}
		}

		if !set.has("nationality") && containsAny(line, "NATIONALITY") {
			if v := afterColon(line); v != "" {
				set.add("nationality", v, 90, domain.SourceLabelWindow)
			} else if next != "" {
				set.add("nationality", next, 88, domain.SourceLabelWindow)
			}
		}

		if !set.has("profession") && containsAny(line, "PROFESSION", "OCCUPATION") {
			if v := afterColon(line); v != "" {
				set.add("profession", v, 85, domain.SourceLabelWindow)
			} else if next != "" {
				set.add("profession", next, 82, domain.SourceLabelWindow)
			}
		}

		if !set.has("date_of_birth") &&
			(containsAny(line, "DOB") || (containsAny(line, "DATE") && containsAny(line, "BIRTH"))) {
			if v := shortDate.FindString(line); v != "" {
				set.add("date_of_birth", v, 90, domain.SourceLabelWindow)
			} else if v := shortDate.FindString(next); v != "" {
				set.add("date_of_birth", v, 88, domain.SourceLabelWindow)
			}
		}
	}

	upper := strings.ToUpper(text)
	for _, emirate := range uaeEmirates {
		if strings.Contains(upper, emirate) {
			set.add("issuing_emirate", titleCase(emirate), 88, domain.SourceAllowList)
			break
		}
	}

	return set.list()
}
