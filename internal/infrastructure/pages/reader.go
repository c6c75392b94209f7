// Package pages resolves a stored document into per-page text, trying
// the cheap PDF text layer first and falling back to the OCR sidecar
// for scans and images.
package pages

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
	"github.com/karimbakr/docufield/internal/infrastructure/pdftext"
)

// A scanned PDF still has a parseable structure with an empty text
// layer; anything below this many characters across all pages goes to
// OCR.
const minTextLayerChars = 50

// Recognizer is the OCR side of page reading.
type Recognizer interface {
	Recognize(ctx context.Context, filename, mimeType string, data io.Reader) ([]domain.Page, error)
}

type Reader struct {
	storage ports.ObjectStorage
	ocr     Recognizer
}

func NewReader(storage ports.ObjectStorage, ocr Recognizer) *Reader {
	return &Reader{storage: storage, ocr: ocr}
}

func (r *Reader) ReadPages(ctx context.Context, doc *domain.Document) ([]domain.Page, error) {
	reader, err := r.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}

	if isPDF(doc.MimeType, raw) {
		pages, err := pdftext.ExtractPages(raw)
		if err == nil && pdftext.HasUsableText(pages, minTextLayerChars) {
			return pages, nil
		}
	}

	pages, err := r.ocr.Recognize(ctx, doc.Filename, doc.MimeType, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("ocr document: %w", err)
	}
	return pages, nil
}

func isPDF(mimeType string, raw []byte) bool {
	if strings.EqualFold(mimeType, "application/pdf") {
		return true
	}
	return bytes.HasPrefix(raw, []byte("%PDF"))
}
