package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// fillFromTemplatePatterns sweeps the template's per-field fallback patterns
// for fields the dedicated extractor left empty. Patterns were validated at
// catalog load time, so a compile failure here means the table changed
// underneath us and the pattern is simply skipped.
func (r *Registry) fillFromTemplatePatterns(
	docType domain.DocumentType,
	text string,
	fields []domain.ExtractedField,
) []domain.ExtractedField {
	tpl, ok := r.catalog.Template(docType)
	if !ok || len(tpl.FieldPatterns) == 0 {
		return fields
	}

	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f.Name] = true
	}

	for _, name := range tpl.Fields {
		if present[name] {
			continue
		}
		patterns := tpl.FieldPatterns[name]
		if len(patterns) == 0 {
			continue
		}
		for _, p := range patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				continue
			}
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[len(m)-1])
			if value == "" {
				continue
			}
			fields = append(fields, domain.ExtractedField{
				Name:       name,
				Value:      value,
				Confidence: 90,
				Source:     domain.SourcePattern,
			})
			break
		}
	}
	return fields
}
