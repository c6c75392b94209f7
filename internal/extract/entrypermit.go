package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// Entry permits are the most label-dense documents in the pipeline; almost
// every value sits on a "Label: value" line, so the extractor is one table
// of labeled patterns plus window probes for the free-text values.
var epLabeled = []struct {
	field      string
	pattern    *regexp.Regexp
	confidence float64
}{
	{"permit_number", regexp.MustCompile(`(?i)(?:entry\s*)?permit\s*(?:no|number)[.:\s]*([\d/\-]{6,20})`), 92},
	{"visa_number", regexp.MustCompile(`(?i)visa\s*(?:no|number)[.:\s]*([\d/\-]{6,20})`), 90},
	{"file_number", regexp.MustCompile(`(?i)file\s*(?:no|number)[.:\s]*([\d/\-]{6,20})`), 90},
	{"uid_number", regexp.MustCompile(`(?i)u\.?i\.?d\.?\s*(?:no|number)?[.:\s]*(\d{8,15})`), 90},
	{"application_number", regexp.MustCompile(`(?i)application\s*(?:no|number)[.:\s]*([A-Z0-9/\-]{5,25})`), 88},
	{"reference_number", regexp.MustCompile(`(?i)ref(?:erence)?\s*(?:no|number)[.:\s]*([A-Z0-9/\-]{5,25})`), 85},
	{"passport_number", regexp.MustCompile(`(?i)passport\s*(?:no|number)?[.:\s]*([A-Z]{1,2}[0-9]{6,8})`), 92},
	{"passport_issue_date", regexp.MustCompile(`(?i)passport\s*issue\s*date[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`), 88},
	{"passport_expiry_date", regexp.MustCompile(`(?i)passport\s*expiry\s*date[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`), 88},
	{"permit_type", regexp.MustCompile(`(?i)permit\s*type[.:\s]*([^\n]{3,40})`), 88},
	{"permit_category", regexp.MustCompile(`(?i)(?:permit\s*)?category[.:\s]*([^\n]{3,40})`), 85},
	{"entry_type", regexp.MustCompile(`(?i)entry\s*type[.:\s]*([^\n]{3,40})`), 88},
	{"number_of_entries", regexp.MustCompile(`(?i)(?:number\s*of\s*entries|entries)[.:\s]*(single|multiple|\d+)`), 88},
	{"duration", regexp.MustCompile(`(?i)duration(?:\s*of\s*stay)?[.:\s]*(\d+\s*(?:days?|months?))`), 88},
	{"issue_date", regexp.MustCompile(`(?i)(?:date\s*of\s*issue|issue\s*date)[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`), 88},
	{"expiry_date", regexp.MustCompile(`(?i)(?:date\s*of\s*expiry|expiry\s*date)[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`), 88},
	{"valid_from", regexp.MustCompile(`(?i)valid\s*from[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`), 88},
	{"valid_until", regexp.MustCompile(`(?i)valid\s*(?:until|to)[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`), 88},
	{"port_of_entry", regexp.MustCompile(`(?i)port\s*of\s*entry[.:\s]*([^\n]{3,40})`), 85},
	{"purpose_of_visit", regexp.MustCompile(`(?i)purpose\s*(?:of\s*visit)?[.:\s]*([^\n]{3,60})`), 82},
	{"sponsor_id", regexp.MustCompile(`(?i)sponsor\s*(?:id|no|number)[.:\s]*([\d/\-]{4,15})`), 88},
	{"job_title", regexp.MustCompile(`(?i)(?:job\s*title|profession|occupation)[.:\s]*([^\n]{3,50})`), 85},
	{"phone", regexp.MustCompile(`(?i)(?:phone|tel|mobile)[.:\s]*([+\d\s\-]{7,18})`), 85},
	{"status", regexp.MustCompile(`(?i)\bstatus[.:\s]*(approved|pending|rejected|active|used|expired)`), 88},
	{"approval_status", regexp.MustCompile(`(?i)approval\s*status[.:\s]*([^\n]{3,30})`), 88},
	{"issued_by", regexp.MustCompile(`(?i)issued\s*by[.:\s]*([^\n]{3,60})`), 82},
	{"issuing_office", regexp.MustCompile(`(?i)issuing\s*office[.:\s]*([^\n]{3,60})`), 82},
	{"barcode_number", regexp.MustCompile(`(?i)barcode[.:\s]*([A-Z0-9]{6,30})`), 80},
	{"qr_code", regexp.MustCompile(`(?i)qr\s*code[.:\s]*([A-Z0-9]{6,60})`), 75},
}

func extractEntryPermit(text string) []domain.ExtractedField {
	set := newFieldSet()

	for _, entry := range epLabeled {
		if m := entry.pattern.FindStringSubmatch(text); m != nil {
			set.add(entry.field, strings.TrimSpace(m[1]), entry.confidence, domain.SourcePattern)
		}
	}
	if m := invEmail.FindStringSubmatch(text); m != nil {
		set.add("email", m[1], 90, domain.SourcePattern)
	}

	lines := splitLines(text)
	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		if !set.has("sponsor_name") && containsAny(line, "SPONSOR") && containsAny(line, "NAME") {
			if v := afterColon(line); v != "" && !hasDigit(v) {
				set.add("sponsor_name", v, 88, domain.SourceLabelWindow)
			} else if next != "" && !hasDigit(next) {
				set.add("sponsor_name", next, 85, domain.SourceLabelWindow)
			}
			continue
		}

		if !set.has("employer_name") && containsAny(line, "EMPLOYER", "ESTABLISHMENT") {
			if v := afterColon(line); v != "" && !hasDigit(v) {
				set.add("employer_name", v, 85, domain.SourceLabelWindow)
			}
			continue
		}

		if !set.has("full_name") && containsAny(line, "NAME") && strings.Contains(line, ":") {
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

		if !set.has("gender") && containsAny(line, "SEX", "GENDER") {
			v := strings.ToUpper(afterColon(line))
			switch {
			case strings.HasPrefix(v, "M"):
				set.add("gender", "Male", 88, domain.SourceLabelWindow)
			case strings.HasPrefix(v, "F"):
				set.add("gender", "Female", 88, domain.SourceLabelWindow)
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

		if !set.has("passport_issue_place") && containsAny(line, "PLACE") && containsAny(line, "ISSUE") {
			if v := afterColon(line); v != "" && !hasDigit(v) {
				set.add("passport_issue_place", v, 82, domain.SourceLabelWindow)
			}
		}

		if !set.has("address") && containsAny(line, "ADDRESS") {
			if v := afterColon(line); v != "" {
				set.add("address", v, 80, domain.SourceLabelWindow)
			}
		}
	}

	return set.list()
}
