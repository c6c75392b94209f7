package ports

import (
	"context"
	"io"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveClassification(ctx context.Context, id string, cls domain.ClassificationResult) error
	SaveProcessingOutcome(ctx context.Context, id string, result domain.ProcessingResult) error
}

// FieldRepository persists per-field extraction rows for a document.
type FieldRepository interface {
	ReplaceForDocument(ctx context.Context, documentID string, fields []domain.ExtractedField) error
	ListByDocument(ctx context.Context, documentID string) ([]domain.ExtractedField, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes ingestion events.
type MessageQueue interface {
	PublishDocumentIngested(ctx context.Context, documentID string) error
	SubscribeDocumentIngested(ctx context.Context, handler func(context.Context, string) error) error
}

// PageReader turns a stored document into per-page OCR text.
type PageReader interface {
	ReadPages(ctx context.Context, doc *domain.Document) ([]domain.Page, error)
}

// TextClassifier decides which document type best explains OCR text.
type TextClassifier interface {
	Classify(text string) domain.ClassificationResult
}

// FieldExtractor runs the type-specific extraction strategy over one
// page of OCR text. Unknown types and garbage text yield an empty slice.
type FieldExtractor interface {
	ExtractPage(docType domain.DocumentType, text string) []domain.ExtractedField
}

// TemplateCatalog exposes the configured document type templates.
type TemplateCatalog interface {
	Has(docType domain.DocumentType) bool
	ExpectedFieldCount(docType domain.DocumentType) int
}

// QualityChecker screens an uploaded image before it is accepted.
type QualityChecker interface {
	Check(ctx context.Context, mimeType string, data io.Reader) (domain.QualityReport, error)
}
