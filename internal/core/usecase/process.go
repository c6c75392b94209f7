package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
)

// completionRatio is the fraction of a template's expected fields that
// must be extracted before a document counts as completed rather than
// partial.
const completionRatio = 0.3

type ProcessDocumentUseCase struct {
	repo          ports.DocumentRepository
	fields        ports.FieldRepository
	pages         ports.PageReader
	classifier    ports.TextClassifier
	extractor     ports.FieldExtractor
	catalog       ports.TemplateCatalog
	minConfidence float64
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	fields ports.FieldRepository,
	pages ports.PageReader,
	classifier ports.TextClassifier,
	extractor ports.FieldExtractor,
	catalog ports.TemplateCatalog,
	minConfidence float64,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:          repo,
		fields:        fields,
		pages:         pages,
		classifier:    classifier,
		extractor:     extractor,
		catalog:       catalog,
		minConfidence: minConfidence,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.markStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return err
	}

	result, err := uc.processPipeline(ctx, documentID)
	if err != nil {
		return uc.markFailed(ctx, documentID, err)
	}

	if err := uc.persistResult(ctx, documentID, result); err != nil {
		return uc.markFailed(ctx, documentID, err)
	}

	return nil
}

func (uc *ProcessDocumentUseCase) processPipeline(ctx context.Context, documentID string) (domain.ProcessingResult, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return domain.ProcessingResult{}, fmt.Errorf("fetch document by id: %w", err)
	}

	pages, err := uc.pages.ReadPages(ctx, doc)
	if err != nil {
		return domain.ProcessingResult{}, fmt.Errorf("read document pages: %w", err)
	}
	if len(pages) == 0 {
		return domain.ProcessingResult{}, domain.WrapError(domain.ErrInvalidInput, "read document pages",
			errors.New("document produced no pages"))
	}

	docType, err := uc.resolveType(ctx, doc, pages)
	if err != nil {
		return domain.ProcessingResult{}, err
	}

	merged := uc.extractAndMerge(docType, pages)

	result := domain.ProcessingResult{
		DocumentID:        documentID,
		Type:              docType,
		Status:            uc.finalStatus(docType, merged),
		Fields:            merged,
		PagesProcessed:    len(pages),
		OverallConfidence: averageConfidence(pages),
	}
	return result, nil
}

// resolveType trusts an operator-declared type and classifies from the
// combined page text otherwise. Low-confidence or unknown outcomes fail
// the document rather than guessing an extraction strategy.
func (uc *ProcessDocumentUseCase) resolveType(ctx context.Context, doc *domain.Document, pages []domain.Page) (domain.DocumentType, error) {
	if doc.Type != "" && doc.Type != domain.TypeUnknown {
		return doc.Type, nil
	}

	texts := make([]string, 0, len(pages))
	for _, p := range pages {
		texts = append(texts, p.Text)
	}
	cls := uc.classifier.Classify(strings.Join(texts, "\n"))

	if err := uc.repo.SaveClassification(ctx, doc.ID, cls); err != nil {
		return "", fmt.Errorf("save classification: %w", err)
	}

	if cls.Type == domain.TypeUnknown || cls.Confidence < uc.minConfidence {
		return "", domain.WrapError(domain.ErrTypeUndetermined, "classify document",
			fmt.Errorf("type %s at confidence %.1f: %s", cls.Type, cls.Confidence, strings.Join(cls.Messages, "; ")))
	}
	return cls.Type, nil
}

// extractAndMerge runs extraction per page and merges with first-wins
// semantics: once a field name is taken, later pages never override it.
func (uc *ProcessDocumentUseCase) extractAndMerge(docType domain.DocumentType, pages []domain.Page) []domain.ExtractedField {
	var merged []domain.ExtractedField
	seen := make(map[string]bool)
	for i, page := range pages {
		for _, f := range uc.extractor.ExtractPage(docType, page.Text) {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			f.Page = i + 1
			merged = append(merged, f)
		}
	}
	return merged
}

func (uc *ProcessDocumentUseCase) finalStatus(docType domain.DocumentType, fields []domain.ExtractedField) domain.DocumentStatus {
	expected := uc.catalog.ExpectedFieldCount(docType)
	if expected > 0 && float64(len(fields)) >= completionRatio*float64(expected) {
		return domain.StatusCompleted
	}
	return domain.StatusPartial
}

func (uc *ProcessDocumentUseCase) persistResult(ctx context.Context, documentID string, result domain.ProcessingResult) error {
	if err := uc.fields.ReplaceForDocument(ctx, documentID, result.Fields); err != nil {
		return fmt.Errorf("persist extracted fields: %w", err)
	}
	if err := uc.repo.SaveProcessingOutcome(ctx, documentID, result); err != nil {
		return fmt.Errorf("persist processing outcome: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) markStatus(ctx context.Context, documentID string, status domain.DocumentStatus, errMessage string) error {
	if err := uc.repo.UpdateStatus(ctx, documentID, status, errMessage); err != nil {
		return fmt.Errorf("update document status to %s: %w", status, err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, cause error) error {
	if failErr := uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, cause.Error()); failErr != nil {
		return fmt.Errorf("%w; mark failed status: %v", cause, failErr)
	}
	return cause
}

func averageConfidence(pages []domain.Page) float64 {
	if len(pages) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pages {
		sum += p.Confidence
	}
	return sum / float64(len(pages))
}
