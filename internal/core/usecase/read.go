package usecase

import (
	"context"
	"fmt"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
)

// ReadDocumentUseCase serves document metadata and extracted fields to
// the HTTP layer.
type ReadDocumentUseCase struct {
	repo   ports.DocumentRepository
	fields ports.FieldRepository
}

func NewReadDocumentUseCase(repo ports.DocumentRepository, fields ports.FieldRepository) *ReadDocumentUseCase {
	return &ReadDocumentUseCase{repo: repo, fields: fields}
}

func (uc *ReadDocumentUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	return doc, nil
}

func (uc *ReadDocumentUseCase) ListFields(ctx context.Context, id string) ([]domain.ExtractedField, error) {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	fields, err := uc.fields.ListByDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list extracted fields: %w", err)
	}
	return fields, nil
}
