// Package mrz decodes the machine readable zone of TD3 passports from noisy
// OCR text. Positions follow the printed layout; digit/letter lookalike
// substitution (0/O, 1/I) compensates for the usual OCR confusions.
package mrz

import (
	"regexp"
	"strings"
	"time"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// Field is one decoded MRZ value with its heuristic confidence.
type Field struct {
	Value      string
	Confidence float64
	Source     string
}

// Fields maps semantic field names to decoded values.
type Fields map[string]Field

var (
	line2Pattern = regexp.MustCompile(`[A-Z0-9]{7,9}<`)

	passportStart = regexp.MustCompile(`^([A-Z0-9]+)<`)

	aggressivePassport    = regexp.MustCompile(`\b([A-Z]\d{7,8})\b`)
	aggressiveNationality = regexp.MustCompile(`\b(IND|USA|GBR|ARE|PAK|BGD)\b`)
	aggressiveBirthDate   = regexp.MustCompile(`(\d{6})[MFX<]`)
	aggressiveGender      = regexp.MustCompile(`(\d{6})([MFX])`)
)

// Parse decodes whatever MRZ content the text carries. Missing or mangled
// zones degrade to an aggressive pattern sweep; an empty map means no
// machine readable content was recognized at all.
func Parse(text string) Fields {
	fields := make(Fields)

	line1, line2 := locateLines(text)
	if line1 != "" {
		parseLine1(line1, fields)
	}
	if line2 != "" {
		parseLine2(line2, fields)
	}

	if len(fields) < 3 {
		parseAggressively(text, fields)
	}
	return fields
}

// locateLines finds the two TD3 lines after squeezing OCR-introduced
// whitespace out of each candidate line.
func locateLines(text string) (line1, line2 string) {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.NewReplacer(" ", "", "\t", "").Replace(raw)
		if line1 == "" && strings.HasPrefix(line, "P<") && len(line) >= 40 {
			line1 = line
			continue
		}
		if line2 == "" && len(line) >= 40 && line2Pattern.MatchString(line) {
			line2 = line
		}
	}
	return line1, line2
}

func parseLine1(line string, fields Fields) {
	if len(line) >= 5 {
		nationality := fixLetters(strings.ReplaceAll(line[2:5], "<", ""))
		if len(nationality) == 3 {
			fields["nationality"] = Field{nationality, 95, domain.SourceMRZLine1}
		}
	}

	end := 44
	if len(line) < end {
		end = len(line)
	}
	if end <= 5 {
		return
	}
	nameSection := strings.TrimSpace(strings.ReplaceAll(line[5:end], "<", " "))
	if nameSection == "" {
		return
	}
	if surname, given, ok := strings.Cut(nameSection, "  "); ok {
		fields["surname"] = Field{title(surname), 95, domain.SourceMRZLine1}
		fields["given_name"] = Field{title(given), 95, domain.SourceMRZLine1}
	} else {
		fields["full_name"] = Field{title(nameSection), 95, domain.SourceMRZLine1}
	}
}

func parseLine2(line string, fields Fields) {
	if m := passportStart.FindStringSubmatch(line); m != nil {
		fields["passport_number"] = Field{fixDigits(m[1]), 99, domain.SourceMRZLine2}
	}

	firstBracket := strings.Index(line, "<")
	if firstBracket < 0 {
		firstBracket = 9
	}

	countryStart := firstBracket + 2
	if countryStart+3 <= len(line) {
		country := fixLetters(line[countryStart : countryStart+3])
		fields["nationality"] = Field{country, 99, domain.SourceMRZLine2}
	}

	dobStart := countryStart + 3
	if dobStart+6 <= len(line) {
		if dob, ok := formatDate(fixDigits(line[dobStart : dobStart+6])); ok {
			fields["date_of_birth"] = Field{dob, 95, domain.SourceMRZLine2}
		}
	}

	sexPos := dobStart + 7
	if gender, conf, ok := decodeGender(line, sexPos); ok {
		fields["gender"] = Field{gender, conf, domain.SourceMRZLine2}
	}

	expiryStart := sexPos + 1
	if expiryStart+6 <= len(line) {
		if expiry, ok := formatDate(fixDigits(line[expiryStart : expiryStart+6])); ok {
			fields["expiry_date"] = Field{expiry, 95, domain.SourceMRZLine2}
		}
	}

	fileStart := expiryStart + 7
	if fileStart < len(line) {
		end := fileStart + 14
		if end > len(line) {
			end = len(line)
		}
		fileNumber := fixDigits(strings.ReplaceAll(line[fileStart:end], "<", ""))
		if len(fileNumber) >= 8 {
			fields["file_number"] = Field{fileNumber, 85, domain.SourceMRZLine2}
		}
	}
}

func decodeGender(line string, pos int) (string, float64, bool) {
	if pos < 0 || pos >= len(line) {
		return "", 0, false
	}
	switch normalizeSex(line[pos]) {
	case 'M':
		return "Male", 90, true
	case 'F':
		return "Female", 90, true
	}
	// The sex byte drifts by one position on skewed scans.
	for _, offset := range []int{-1, 1} {
		probe := pos + offset
		if probe < 0 || probe >= len(line) {
			continue
		}
		switch line[probe] {
		case 'M':
			return "Male", 85, true
		case 'F':
			return "Female", 85, true
		}
	}
	return "", 0, false
}

func normalizeSex(c byte) byte {
	switch c {
	case '1', 'I':
		return 'M'
	case '0':
		return 'F'
	}
	return c
}

func parseAggressively(text string, fields Fields) {
	if _, ok := fields["passport_number"]; !ok {
		if m := aggressivePassport.FindStringSubmatch(text); m != nil {
			fields["passport_number"] = Field{m[1], 80, domain.SourceMRZAggressive}
		}
	}
	if _, ok := fields["nationality"]; !ok {
		if m := aggressiveNationality.FindStringSubmatch(text); m != nil {
			fields["nationality"] = Field{m[1], 80, domain.SourceMRZAggressive}
		}
	}
	if _, ok := fields["date_of_birth"]; !ok {
		if m := aggressiveBirthDate.FindStringSubmatch(text); m != nil {
			if dob, ok := formatDate(m[1]); ok {
				fields["date_of_birth"] = Field{dob, 75, domain.SourceMRZAggressive}
			}
		}
	}
	if _, ok := fields["gender"]; !ok {
		if m := aggressiveGender.FindStringSubmatch(text); m != nil {
			switch m[2] {
			case "M":
				fields["gender"] = Field{"Male", 75, domain.SourceMRZAggressive}
			case "F":
				fields["gender"] = Field{"Female", 75, domain.SourceMRZAggressive}
			case "X":
				fields["gender"] = Field{"Other", 75, domain.SourceMRZAggressive}
			}
		}
	}
}

// formatDate converts an MRZ YYMMDD into DD-Mon-YY. Two-digit years 50 and
// above belong to the 1900s, the rest to the 2000s. Impossible dates are
// dropped rather than guessed at.
func formatDate(yymmdd string) (string, bool) {
	if len(yymmdd) != 6 {
		return "", false
	}
	yy, okY := atoi2(yymmdd[0:2])
	mm, okM := atoi2(yymmdd[2:4])
	dd, okD := atoi2(yymmdd[4:6])
	if !okY || !okM || !okD {
		return "", false
	}

	year := fullYear(yy)
	t := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(mm) || t.Day() != dd {
		return "", false
	}
	return t.Format("02-Jan-06"), true
}

// fullYear resolves a two-digit MRZ year: 50 and above belong to the
// 1900s, the rest to the 2000s.
func fullYear(yy int) int {
	if yy >= 50 {
		return 1900 + yy
	}
	return 2000 + yy
}

func atoi2(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// fixLetters repairs digits OCR'd inside alphabetic zones.
func fixLetters(s string) string {
	return strings.NewReplacer("1", "I", "0", "O").Replace(s)
}

// fixDigits repairs letters OCR'd inside numeric zones.
func fixDigits(s string) string {
	return strings.NewReplacer("O", "0", "I", "1").Replace(s)
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
