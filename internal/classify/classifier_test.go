package classify

import (
	"strings"
	"testing"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/ruleset"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	return New(ruleset.MustDefault())
}

func TestClassifyRejectsShortText(t *testing.T) {
	result := newClassifier(t).Classify("stub")

	if result.Type != domain.TypeUnknown {
		t.Fatalf("expected UNKNOWN, got %s", result.Type)
	}
	if result.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", result.Confidence)
	}
	if len(result.Messages) != 1 || result.Messages[0] != "Insufficient text for classification" {
		t.Fatalf("unexpected messages: %v", result.Messages)
	}
}

func TestClassifyPassportByMachineReadableZone(t *testing.T) {
	text := strings.Join([]string{
		"REPUBLIC OF INDIA PASSPORT",
		"Nationality: INDIAN",
		"Date of Birth: 21/09/1996",
		"P<INDSUNDAR<RAJ<MEKALA<<CHURCHIL<<<<<<<<<<<<<<",
		"W1403565<2IND9609211M3209192064574868122<36",
	}, "\n")

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypePassport {
		t.Fatalf("expected PASSPORT, got %s (%v)", result.Type, result.Messages)
	}
	if result.Confidence < 90 {
		t.Fatalf("expected high confidence, got %v", result.Confidence)
	}
	if !hasMessageContaining(result.Messages, "Identified as PASSPORT") {
		t.Fatalf("expected identification message, got %v", result.Messages)
	}
}

func TestClassifyMandatoryGate(t *testing.T) {
	// Plenty of passport vocabulary but no machine readable zone line.
	text := "passport nationality surname given names date of birth W1234567"

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypeUnknown {
		t.Fatalf("expected UNKNOWN without mandatory indicator, got %s", result.Type)
	}
	if len(result.Messages) != 1 || result.Messages[0] != "No document type matched the criteria" {
		t.Fatalf("unexpected messages: %v", result.Messages)
	}
}

func TestClassifyExclusionVeto(t *testing.T) {
	// The MRZ line satisfies the passport mandatory pattern but the sponsor
	// mention vetoes it, and the same line excludes the visa candidates.
	text := strings.Join([]string{
		"P<INDSUNDAR<RAJ<MEKALA<<CHURCHIL<<<<<<<<<<<<<<",
		"passport nationality date of birth",
		"Sponsor: ACME TECHNICAL SERVICES",
	}, "\n")

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypeUnknown {
		t.Fatalf("expected UNKNOWN after exclusion veto, got %s", result.Type)
	}
}

func TestClassifyAmbiguousTypesArePenalized(t *testing.T) {
	text := strings.Join([]string{
		"ENTRY PERMIT",
		"Permit Number: 12345678",
		"Visa Number: 201/2024/1234567",
		"UID Number: 123456789",
		"Nationality: INDIAN",
		"Passport No: W1234567",
		"Sponsor: ACME LLC",
	}, "\n")

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypeEntryPermit {
		t.Fatalf("expected ENTRY_PERMIT, got %s (%v)", result.Type, result.Messages)
	}
	if !hasMessageContaining(result.Messages, "Ambiguous classification: ENTRY_PERMIT vs VISIT_VISA") {
		t.Fatalf("expected ambiguity message, got %v", result.Messages)
	}
	if result.Confidence > 60 {
		t.Fatalf("expected penalized confidence, got %v", result.Confidence)
	}
}

func TestClassifyLowConfidenceAdvisory(t *testing.T) {
	text := "invoice for consulting services rendered"

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypeInvoice {
		t.Fatalf("expected INVOICE, got %s (%v)", result.Type, result.Messages)
	}
	if result.Confidence != 45 {
		t.Fatalf("expected confidence 45, got %v", result.Confidence)
	}
	if !hasMessageContaining(result.Messages, "Manual verification recommended") {
		t.Fatalf("expected low confidence advisory, got %v", result.Messages)
	}
}

func TestClassifyEmiratesIDByNumberFormat(t *testing.T) {
	text := strings.Join([]string{
		"UNITED ARAB EMIRATES",
		"IDENTITY CARD",
		"ID Number: 784-1990-1234567-1",
		"Nationality: INDIA",
		"Card No: 123456789012345",
	}, "\n")

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypeEmiratesID {
		t.Fatalf("expected EMIRATES_ID, got %s (%v)", result.Type, result.Messages)
	}
}

func TestClassifyAadhaarCard(t *testing.T) {
	text := strings.Join([]string{
		"GOVERNMENT OF INDIA",
		"Unique Identification Authority of India",
		"AADHAAR",
		"2345 6789 0123",
		"DOB: 15/08/1990",
	}, "\n")

	result := newClassifier(t).Classify(text)

	if result.Type != domain.TypeHomeCountryID {
		t.Fatalf("expected HOME_COUNTRY_ID, got %s (%v)", result.Type, result.Messages)
	}
	if result.Confidence < 90 {
		t.Fatalf("expected high confidence, got %v", result.Confidence)
	}
}

func hasMessageContaining(messages []string, fragment string) bool {
	for _, m := range messages {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}
