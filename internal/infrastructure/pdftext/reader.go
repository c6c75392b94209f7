// Package pdftext pulls the embedded text layer out of digital PDFs so
// born-digital documents skip the OCR sidecar entirely.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// Text-layer output is exact, not recognized, so pages carry a fixed
// near-certain confidence.
const textLayerConfidence = 99

// ExtractPages reads every page's text layer. Pages without any text
// content are returned empty so callers can decide whether the
// document needs OCR instead.
func ExtractPages(data []byte) ([]domain.Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	pages := make([]domain.Page, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, domain.Page{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract text from page %d: %w", i, err)
		}
		pages = append(pages, domain.Page{
			Number:     i,
			Text:       strings.TrimSpace(text),
			Confidence: textLayerConfidence,
		})
	}
	return pages, nil
}

// HasUsableText reports whether the extracted pages carry enough text
// to process without OCR.
func HasUsableText(pages []domain.Page, minChars int) bool {
	total := 0
	for _, p := range pages {
		total += len(p.Text)
	}
	return total >= minChars
}
