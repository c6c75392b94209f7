// Package extract turns classified OCR page text into named fields. Each
// document type has a dedicated extractor built around the layout quirks of
// that document family; a template-pattern sweep and a generic key-value
// scan catch what the dedicated logic misses.
package extract

import (
	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/ruleset"
)

type extractFunc func(text string) []domain.ExtractedField

// Registry dispatches page text to the extractor for a document type. It
// implements the field extraction port and never returns an error: a page
// that yields nothing yields an empty slice.
type Registry struct {
	catalog    *ruleset.Catalog
	extractors map[domain.DocumentType]extractFunc
}

func NewRegistry(catalog *ruleset.Catalog) *Registry {
	return &Registry{
		catalog: catalog,
		extractors: map[domain.DocumentType]extractFunc{
			domain.TypePassport:       extractPassport,
			domain.TypeVisitVisa:      extractVisitVisa,
			domain.TypeResidenceVisa:  extractResidenceVisa,
			domain.TypeLaborCard:      extractLaborCard,
			domain.TypeEmiratesID:     extractEmiratesID,
			domain.TypeHomeCountryID:  extractHomeCountryID,
			domain.TypeInvoice:        extractInvoice,
			domain.TypePurchaseOrder:  extractPurchaseOrder,
			domain.TypeCompanyLicense: extractCompanyLicense,
			domain.TypeVATCertificate: extractVATCertificate,
			domain.TypeCancellation:   extractCancellation,
			domain.TypeEntryPermit:    extractEntryPermit,
		},
	}
}

// ExtractPage runs the dedicated extractor for the type, then fills gaps
// from the template pattern tables, then falls back to a generic key-value
// scan when the page produced nothing at all.
func (r *Registry) ExtractPage(docType domain.DocumentType, text string) []domain.ExtractedField {
	var fields []domain.ExtractedField
	if fn, ok := r.extractors[docType]; ok {
		fields = fn(text)
	}

	fields = r.fillFromTemplatePatterns(docType, text, fields)
	if len(fields) == 0 {
		fields = extractKeyValues(text)
	}
	return fields
}

// fieldSet accumulates extracted fields with first-wins semantics, mirroring
// how a human reader trusts the most prominent occurrence on a page.
type fieldSet struct {
	fields []domain.ExtractedField
	seen   map[string]bool
}

func newFieldSet() *fieldSet {
	return &fieldSet{seen: make(map[string]bool)}
}

func (s *fieldSet) add(name, value string, confidence float64, source string) {
	if name == "" || value == "" || s.seen[name] {
		return
	}
	s.seen[name] = true
	s.fields = append(s.fields, domain.ExtractedField{
		Name:       name,
		Value:      value,
		Confidence: confidence,
		Source:     source,
	})
}

func (s *fieldSet) has(name string) bool { return s.seen[name] }

func (s *fieldSet) get(name string) string {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func (s *fieldSet) list() []domain.ExtractedField { return s.fields }
