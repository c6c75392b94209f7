package usecase

import (
	"context"
	"testing"

	"github.com/karimbakr/docufield/internal/core/domain"
)

func TestClassifyTextDelegates(t *testing.T) {
	classifier := &textClassifierFake{result: domain.ClassificationResult{
		Type:       domain.TypePassport,
		Confidence: 92,
	}}
	uc := NewClassifyTextUseCase(classifier)

	got, err := uc.ClassifyText(context.Background(), "P<INDSUNDAR<RAJ<<CHURCHIL")
	if err != nil {
		t.Fatalf("ClassifyText() error = %v", err)
	}
	if got.Type != domain.TypePassport || got.Confidence != 92 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestClassifyTextRejectsEmptyInput(t *testing.T) {
	uc := NewClassifyTextUseCase(&textClassifierFake{})

	_, err := uc.ClassifyText(context.Background(), "   \n\t ")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
