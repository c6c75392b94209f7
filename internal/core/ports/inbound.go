package ports

import (
	"context"
	"io"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// UploadRequest carries one multipart upload into the ingest use case.
type UploadRequest struct {
	Filename         string
	MimeType         string
	DeclaredType     domain.DocumentType
	SkipQualityCheck bool
	Body             io.Reader
}

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, req UploadRequest) (*domain.Document, error)
}

// DocumentReader is the inbound read model for document metadata and fields.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListFields(ctx context.Context, id string) ([]domain.ExtractedField, error)
}

// DocumentProcessor is the inbound contract for asynchronous document processing.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// ClassifierService is the inbound contract for synchronous text classification.
type ClassifierService interface {
	ClassifyText(ctx context.Context, text string) (domain.ClassificationResult, error)
}
