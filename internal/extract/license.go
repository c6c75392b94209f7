package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	clLicenseNo  = regexp.MustCompile(`(?i)\blicen[cs]e\s*(?:no|number)[.:\s]*([A-Z0-9\-/]{3,15})`)
	clMainNo     = regexp.MustCompile(`(?i)main\s*licen[cs]e\s*(?:no|number)[.:\s]*(\d{3,12})`)
	clRegisterNo = regexp.MustCompile(`(?i)register(?:ed)?\s*(?:no|number)[.:\s]*(\d{3,12})`)
	clDCCINo     = regexp.MustCompile(`(?i)dcci\s*(?:no|number)?[.:\s]*(\d{3,12})`)
	clDUNS       = regexp.MustCompile(`(?i)d[\-\s]?u[\-\s]?n[\-\s]?s\s*(?:no|number)?[.:\s]*([\d\-]{7,13})`)
	clType       = regexp.MustCompile(`(?i)(commercial|professional|industrial|trade)\s*licen[cs]e`)
	clLegalType  = regexp.MustCompile(`(?i)legal\s*(?:form|type)[.:\s]*([^\n]{3,60})`)
	clIssueDate  = regexp.MustCompile(`(?i)issue\s*date[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	clExpiryDate = regexp.MustCompile(`(?i)expiry\s*date[.:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	clPhone      = regexp.MustCompile(`(?i)\bphone[.:\s]*([+\d\s\-]{7,18})`)
	clFax        = regexp.MustCompile(`(?i)\bfax[.:\s]*([+\d\s\-]{7,18})`)
	clMobile     = regexp.MustCompile(`(?i)\bmobile[.:\s]*([+\d\s\-]{7,18})`)
	clPOBox      = regexp.MustCompile(`(?i)p\.?\s*o\.?\s*box[.:\s]*(\d{2,8})`)
	clParcelID   = regexp.MustCompile(`(?i)parcel\s*(?:id|no)[.:\s]*([\d\-]{3,15})`)

	// Member rows print as table columns: serial, name, nationality, role
	// and an optional share percentage, separated by runs of spaces.
	clMemberRow = regexp.MustCompile(
		`(?m)^\s*(\d{1,2})[.)]?\s+([A-Z][A-Za-z .]+?)\s{2,}([A-Za-z ]+?)\s{2,}` +
			`(Partner|Manager|Owner|Director|Sponsor|Agent)\s*([\d.]+\s*%)?\s*$`)
)

func extractCompanyLicense(text string) []domain.ExtractedField {
	set := newFieldSet()

	addFirst := func(name string, re *regexp.Regexp, conf float64) {
		if m := re.FindStringSubmatch(text); m != nil {
			set.add(name, strings.TrimSpace(m[1]), conf, domain.SourcePattern)
		}
	}

	if m := clType.FindStringSubmatch(text); m != nil {
		set.add("license_type", titleCase(m[1])+" License", 90, domain.SourcePattern)
	}
	addFirst("main_license_no", clMainNo, 90)
	addFirst("license_no", clLicenseNo, 90)
	addFirst("register_no", clRegisterNo, 88)
	addFirst("dcci_no", clDCCINo, 88)
	addFirst("duns_number", clDUNS, 85)
	addFirst("legal_type", clLegalType, 85)
	addFirst("issue_date", clIssueDate, 88)
	addFirst("expiry_date", clExpiryDate, 88)
	addFirst("phone", clPhone, 85)
	addFirst("fax", clFax, 85)
	addFirst("mobile", clMobile, 85)
	addFirst("po_box", clPOBox, 88)
	addFirst("parcel_id", clParcelID, 85)
	if m := invEmail.FindStringSubmatch(text); m != nil {
		set.add("email", m[1], 90, domain.SourcePattern)
	}

	extractLicenseNames(text, set)
	extractLicenseActivities(text, set)
	extractLicenseMembers(text, set)
	extractLicenseAddress(text, set)

	return set.list()
}

func extractLicenseNames(text string, set *fieldSet) {
	for _, line := range splitLines(text) {
		if !set.has("company_name") && containsAny(line, "COMPANY NAME", "LICENSEE") {
			if v := afterColon(line); v != "" {
				set.add("company_name", v, 88, domain.SourceLabelWindow)
			}
		}
		if !set.has("business_name") && containsAny(line, "TRADE NAME", "OPERATING NAME") {
			if v := afterColon(line); v != "" {
				set.add("business_name", v, 88, domain.SourceLabelWindow)
			}
		}
	}
}

// extractLicenseActivities collects the permitted activity lines listed
// under the activities heading.
func extractLicenseActivities(text string, set *fieldSet) {
	lines := splitLines(text)
	var parts []string
	for i, line := range lines {
		if !containsAny(line, "ACTIVITY", "ACTIVITIES") {
			continue
		}
		if v := afterColon(line); v != "" {
			parts = append(parts, v)
		}
		for _, follow := range lines[i+1:] {
			if strings.Contains(follow, ":") || containsAny(follow, "ADDRESS", "PHONE", "EMAIL") {
				break
			}
			parts = append(parts, follow)
			if len(parts) == 3 {
				break
			}
		}
		break
	}
	if len(parts) > 0 {
		set.add("license_activities", strings.Join(parts, "; "), 82, domain.SourceLabelWindow)
	}
}

func extractLicenseMembers(text string, set *fieldSet) {
	var members, partners []string
	for _, m := range clMemberRow.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[2])
		nationality := strings.TrimSpace(m[3])
		role := m[4]
		entry := name + " (" + nationality + ", " + role
		if share := strings.TrimSpace(m[5]); share != "" {
			entry += ", " + share
		}
		entry += ")"

		members = append(members, entry)
		if role == "Partner" {
			partners = append(partners, name)
		}
	}
	if len(members) > 0 {
		set.add("license_members", strings.Join(members, "; "), 85, domain.SourcePattern)
	}
	if len(partners) > 0 {
		set.add("partners", strings.Join(partners, "; "), 85, domain.SourcePattern)
	}
}

func extractLicenseAddress(text string, set *fieldSet) {
	for _, line := range splitLines(text) {
		if containsAny(line, "ADDRESS") {
			if v := afterColon(line); v != "" {
				set.add("full_address", v, 80, domain.SourceLabelWindow)
				return
			}
		}
	}
}
