package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	lcNameLine    = regexp.MustCompile(`^[A-Za-z ]{5,80}$`)
	lcPermitNo    = regexp.MustCompile(`\b(\d{8,11})\b`)
	lcPersonalNo  = regexp.MustCompile(`\b(\d{12,16})\b`)
	lcEstablLabel = regexp.MustCompile(`(?i)establishment\s*:?\s*`)

	lcExpiryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{2}[/-]\d{2}[/-]\d{4})`),
		regexp.MustCompile(`(\d{4}[/-]\d{2}[/-]\d{2})`),
		regexp.MustCompile(`(\d{2}\s[A-Z]{3}\s\d{4})`),
	}

	lcCompanyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z\s&\-]+(?:LLC|L\.L\.C|LTD|LIMITED))`),
		regexp.MustCompile(`(?:Establishment|Company|Corporation)[\s:]+([A-Z][A-Za-z\s&\-]+)`),
	}
)

var lcNameStopWords = []string{
	"expiry", "permit", "profession", "nationality", "date",
	"work", "card", "labor", "establishment",
}

// Labor cards print bilingual values; the Arabic side is often the only
// legible one on a worn card.
var lcProfessionArabic = []struct{ arabic, english string }{
	{"مدير مشروع", "Project Manager"},
	{"مهندس مدني", "Civil Engineer"},
	{"مهندس كهربائي", "Electrical Engineer"},
	{"مهندس ميكانيكي", "Mechanical Engineer"},
	{"مهندس", "Engineer"},
	{"عامل", "Worker"},
	{"فني", "Technician"},
	{"سائق", "Driver"},
	{"مشرف", "Supervisor"},
	{"محاسب", "Accountant"},
}

var lcProfessionEnglish = []string{
	"manager", "engineer", "technician", "driver", "worker", "supervisor",
}

var lcNationalityArabic = []struct{ arabic, english string }{
	{"الهند", "Indian"},
	{"باكستان", "Pakistani"},
	{"بنغلاديش", "Bangladeshi"},
	{"نيبال", "Nepalese"},
	{"سريلانكا", "Sri Lankan"},
	{"الفلبين", "Filipino"},
	{"مصر", "Egyptian"},
	{"الأردن", "Jordanian"},
	{"السودان", "Sudanese"},
}

var lcNationalityEnglish = []struct{ keyword, value string }{
	{"india", "Indian"},
	{"pakistan", "Pakistani"},
	{"bangladesh", "Bangladeshi"},
	{"nepal", "Nepalese"},
	{"philippines", "Filipino"},
	{"sri lanka", "Sri Lankan"},
	{"egypt", "Egyptian"},
	{"jordan", "Jordanian"},
	{"sudan", "Sudanese"},
}

func extractLaborCard(text string) []domain.ExtractedField {
	set := newFieldSet()
	lines := splitLines(text)

	extractLaborName(lines, set)

	if m := lcPermitNo.FindStringSubmatch(text); m != nil {
		set.add("work_permit_number", m[1], 90, domain.SourcePattern)
	}
	if m := lcPersonalNo.FindStringSubmatch(text); m != nil {
		set.add("personal_number", m[1], 90, domain.SourcePattern)
	}

	if raw := firstMatch(text, lcExpiryPatterns...); raw != "" {
		set.add("expiry_date", reformatDate(raw, commonDateLayouts...), 85, domain.SourcePattern)
	}

	extractLaborProfession(text, set)
	extractLaborNationality(text, set)
	extractLaborCompany(text, set)

	return set.list()
}

// extractLaborName joins the first two clean alphabetic lines: worker names
// span two lines on the card while every labeled line carries a stop word.
func extractLaborName(lines []string, set *fieldSet) {
	var parts []string
	for _, line := range lines {
		if !lcNameLine.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, stop := range lcNameStopWords {
			if strings.Contains(lower, stop) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		parts = append(parts, strings.ToUpper(line))
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) > 0 {
		set.add("full_name", strings.Join(parts, " "), 85, domain.SourceLabelWindow)
	}
}

func extractLaborProfession(text string, set *fieldSet) {
	for _, entry := range lcProfessionArabic {
		if strings.Contains(text, entry.arabic) {
			set.add("position", entry.english, 80, domain.SourceAllowList)
			return
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range lcProfessionEnglish {
		if !strings.Contains(lower, kw) {
			continue
		}
		re, err := regexp.Compile(`(?i)\b([A-Za-z ]*` + kw + `[A-Za-z ]*)\b`)
		if err != nil {
			continue
		}
		phrase := strings.TrimSpace(re.FindString(text))
		if len(phrase) < 3 || len(phrase) > 40 {
			phrase = kw
		}
		set.add("position", titleCase(phrase), 80, domain.SourcePattern)
		return
	}
}

func extractLaborNationality(text string, set *fieldSet) {
	for _, entry := range lcNationalityArabic {
		if strings.Contains(text, entry.arabic) {
			set.add("nationality", entry.english, 85, domain.SourceAllowList)
			return
		}
	}
	lower := strings.ToLower(text)
	for _, entry := range lcNationalityEnglish {
		if strings.Contains(lower, entry.keyword) {
			set.add("nationality", entry.value, 85, domain.SourceAllowList)
			return
		}
	}
}

func extractLaborCompany(text string, set *fieldSet) {
	for _, re := range lcCompanyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		company := lcEstablLabel.ReplaceAllString(m[1], "")
		company = strings.TrimSpace(strings.ToUpper(company))
		if company != "" {
			set.add("company_name", company, 80, domain.SourcePattern)
			return
		}
	}
}
