package config

import "testing"

func TestLoadIncludesProcessingDefaults(t *testing.T) {
	t.Setenv("MIN_CLASSIFY_CONFIDENCE", "")
	t.Setenv("OCR_TIMEOUT_SECONDS", "")
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("API_MAX_IN_FLIGHT", "")
	t.Setenv("QUALITY_MIN_WIDTH", "")

	cfg := Load()
	if cfg.MinClassifyConfidence != 40 {
		t.Fatalf("expected default classify confidence 40, got %v", cfg.MinClassifyConfidence)
	}
	if cfg.OCRTimeoutSeconds != 120 {
		t.Fatalf("expected default ocr timeout 120, got %d", cfg.OCRTimeoutSeconds)
	}
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected default rate limit 50, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.APIMaxInFlight != 64 {
		t.Fatalf("expected default max in flight 64, got %d", cfg.APIMaxInFlight)
	}
	if cfg.QualityMinWidth != 600 {
		t.Fatalf("expected default quality min width 600, got %d", cfg.QualityMinWidth)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("MIN_CLASSIFY_CONFIDENCE", "55.5")
	t.Setenv("OCR_URL", "http://ocr:9000")
	t.Setenv("NATS_SUBJECT", "docs.in")
	t.Setenv("API_RATE_LIMIT_BURST", "10")

	cfg := Load()
	if cfg.MinClassifyConfidence != 55.5 {
		t.Fatalf("expected classify confidence override, got %v", cfg.MinClassifyConfidence)
	}
	if cfg.OCRBaseURL != "http://ocr:9000" {
		t.Fatalf("expected ocr url override, got %q", cfg.OCRBaseURL)
	}
	if cfg.NATSSubject != "docs.in" {
		t.Fatalf("expected nats subject override, got %q", cfg.NATSSubject)
	}
	if cfg.APIRateLimitBurst != 10 {
		t.Fatalf("expected burst override, got %d", cfg.APIRateLimitBurst)
	}
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("MIN_CLASSIFY_CONFIDENCE", "not-a-number")
	t.Setenv("OCR_TIMEOUT_SECONDS", "12x")

	cfg := Load()
	if cfg.MinClassifyConfidence != 40 {
		t.Fatalf("expected fallback confidence 40, got %v", cfg.MinClassifyConfidence)
	}
	if cfg.OCRTimeoutSeconds != 120 {
		t.Fatalf("expected fallback timeout 120, got %d", cfg.OCRTimeoutSeconds)
	}
}
