package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	rvUIDLabeled = regexp.MustCompile(`(?:U\.I\.D\.No|UID|U\.I\.D)\s*[:\s]*(\d{9})`)
	rvUIDBare    = regexp.MustCompile(`\b(\d{9})\b`)
	rvNameRun    = regexp.MustCompile(`\b([A-Z\s]{15,})\b`)
	rvDate       = regexp.MustCompile(`(\d{4}/\d{2}/\d{2})`)

	rvFilePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:File|FILE)\s*[:\s]*(\d{3}/\d{4}/\d+)`),
		regexp.MustCompile(`(\d{3}/\d{4}/\d+)`),
		regexp.MustCompile(`(\d{3}/\d{4})`),
	}

	rvSponsorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z\s&\-]+(?:L\.L\.C|LLC))`),
		regexp.MustCompile(`((?:[A-Z]{3,}\s+){2,4}(?:TECHNICAL|SERVICES|ENGINEERING|COMPANY)[A-Z\s]*)`),
	}
)

var rvNameBlacklist = []string{
	"ENGINEER", "SERVICES", "RESIDENCE", "EMIRATES", "TECHNICAL",
	"SPONSOR", "PROFESSION", "MUHREM", "ALLOWED", "LLC",
}

var rvProfessionKeywords = []string{
	"ENGINEER", "MUHREM", "NOT ALLOWED", "ALLOWED TO WORK",
	"MANAGER", "ACCOUNTANT", "DOCTOR", "TECHNICIAN",
}

var uaeCities = []string{
	"DUBAI", "ABU DHABI", "SHARJAH", "AJMAN",
	"RAS AL KHAIMAH", "FUJAIRAH", "UMM AL QUWAIN",
}

// extractResidenceVisa reads the UAE residence permit sticker. The sticker
// mixes Arabic with Latin uppercase runs, so the holder name and sponsor
// are recovered from the uppercase runs that carry no boilerplate.
func extractResidenceVisa(text string) []domain.ExtractedField {
	set := newFieldSet()

	if m := rvUIDLabeled.FindStringSubmatch(text); m != nil {
		set.add("uid_number", m[1], 95, domain.SourceLabelWindow)
	} else if m := rvUIDBare.FindStringSubmatch(text); m != nil {
		set.add("uid_number", m[1], 85, domain.SourcePattern)
	}

	if v := firstMatch(text, rvFilePatterns...); v != "" {
		set.add("file_number", v, 90, domain.SourcePattern)
	}

	extractVisaHolderName(text, set)
	extractVisaProfession(text, set)
	extractVisaSponsor(text, set)

	upper := strings.ToUpper(text)
	for _, city := range uaeCities {
		if strings.Contains(upper, city) {
			set.add("place_of_issue", titleCase(city), 90, domain.SourceAllowList)
			break
		}
	}

	extractVisaDates(text, set)

	return set.list()
}

func extractVisaHolderName(text string, set *fieldSet) {
	best := ""
	for _, m := range rvNameRun.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(stripArabic(m[1]))
		if len(candidate) < 15 || containsAny(candidate, rvNameBlacklist...) {
			continue
		}
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	if best != "" {
		set.add("name_on_visa", best, 85, domain.SourcePattern)
	}
}

func extractVisaProfession(text string, set *fieldSet) {
	upper := strings.ToUpper(text)
	for _, kw := range rvProfessionKeywords {
		if !strings.Contains(upper, kw) {
			continue
		}
		re, err := regexp.Compile(`[A-Z ]*` + regexp.QuoteMeta(kw) + `[A-Z ]*`)
		if err != nil {
			continue
		}
		phrase := strings.TrimSpace(re.FindString(upper))
		if phrase == "" {
			phrase = kw
		}
		set.add("profession", phrase, 80, domain.SourcePattern)
		return
	}
}

func extractVisaSponsor(text string, set *fieldSet) {
	for _, re := range rvSponsorPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		sponsor := stripArabic(m[1])
		sponsor = strings.NewReplacer("Sponsor", "", "SPONSOR", "").Replace(sponsor)
		sponsor = strings.NewReplacer("LL C", "L.L.C", "LLC", "L.L.C").Replace(sponsor)
		sponsor = strings.TrimSpace(sponsor)
		if len(sponsor) >= 10 {
			set.add("sponsor", sponsor, 80, domain.SourcePattern)
			return
		}
	}
}

func extractVisaDates(text string, set *fieldSet) {
	matches := rvDate.FindAllStringSubmatch(text, -1)
	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		dates = append(dates, m[1])
	}

	switch {
	case len(dates) >= 2:
		// The sticker prints issue and expiry in YYYY/MM/DD; lexical order
		// is chronological for that layout.
		sort.Strings(dates)
		set.add("issue_date", dates[0], 90, domain.SourcePattern)
		set.add("expiry_date", dates[len(dates)-1], 90, domain.SourcePattern)
	case len(dates) == 1:
		set.add("issue_date", dates[0], 80, domain.SourcePattern)
	}
}
