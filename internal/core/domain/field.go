package domain

// Source tags identify which extraction strategy produced a field value.
// They are diagnostic labels for audit output, never branched on downstream.
const (
	SourceMRZLine1      = "MRZ_LINE1"
	SourceMRZLine2      = "MRZ_LINE2"
	SourceMRZAggressive = "MRZ_AGGRESSIVE"
	SourcePageText      = "PAGE_TEXT"
	SourceLabelWindow   = "LABEL_WINDOW"
	SourcePattern       = "PATTERN"
	SourceAllowList     = "ALLOW_LIST"
	SourceKeyValue      = "KEY_VALUE"
)

// ExtractedField is the unit of extraction output. Confidence is a fixed
// per-strategy calibration constant in [0,100], not computed from input.
type ExtractedField struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Page       int     `json:"page,omitempty"`
}

// ClassificationResult reports the winning type, a 0-100 confidence and
// ordered diagnostic messages. TypeUnknown always carries confidence 0.
type ClassificationResult struct {
	Type       DocumentType `json:"document_type"`
	Confidence float64      `json:"confidence"`
	Messages   []string     `json:"messages"`
}

// ProcessingResult is the document-level outcome of multi-page extraction.
type ProcessingResult struct {
	DocumentID        string           `json:"document_id"`
	Type              DocumentType     `json:"document_type"`
	Status            DocumentStatus   `json:"status"`
	Fields            []ExtractedField `json:"fields"`
	PagesProcessed    int              `json:"pages_processed"`
	OverallConfidence float64          `json:"overall_confidence"`
}

// FieldByName returns the merged field with the given name, if present.
func (r *ProcessingResult) FieldByName(name string) (ExtractedField, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ExtractedField{}, false
}
