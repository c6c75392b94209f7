package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
)

// ClassifyTextUseCase exposes the rule-table classifier synchronously,
// without touching storage or the processing queue.
type ClassifyTextUseCase struct {
	classifier ports.TextClassifier
}

func NewClassifyTextUseCase(classifier ports.TextClassifier) *ClassifyTextUseCase {
	return &ClassifyTextUseCase{classifier: classifier}
}

func (uc *ClassifyTextUseCase) ClassifyText(ctx context.Context, text string) (domain.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ClassificationResult{}, domain.WrapError(domain.ErrInvalidInput, "classify text",
			errors.New("empty text"))
	}
	return uc.classifier.Classify(text), nil
}
