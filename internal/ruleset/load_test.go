package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/karimbakr/docufield/internal/core/domain"
)

func TestMustDefaultBuildsFullCatalog(t *testing.T) {
	catalog := MustDefault()

	types := catalog.Types()
	if len(types) != 12 {
		t.Fatalf("expected 12 rule-bearing types, got %d", len(types))
	}
	if types[0] != domain.TypePassport {
		t.Fatalf("expected PASSPORT first in declaration order, got %s", types[0])
	}

	for _, docType := range types {
		if !catalog.Has(docType) {
			t.Fatalf("type %s has a rule but no template", docType)
		}
		if catalog.ExpectedFieldCount(docType) == 0 {
			t.Fatalf("type %s template has no fields", docType)
		}
	}

	if catalog.Has(domain.TypeUnknown) {
		t.Fatal("UNKNOWN must not be a catalog type")
	}
	if n := catalog.ExpectedFieldCount(domain.TypePassport); n != 12 {
		t.Fatalf("expected 12 passport fields, got %d", n)
	}
	if patterns := catalog.FieldPatterns(domain.TypePassport, "passport_number"); len(patterns) == 0 {
		t.Fatal("expected fallback patterns for passport_number")
	}
}

func TestLoadRejectsDuplicateRuleKey(t *testing.T) {
	rules := defaultRules()
	rules = append(rules, rules[0])

	if _, err := build(DefaultScoring(), defaultTemplates(), rules); err == nil {
		t.Fatal("expected duplicate rule key to fail the build")
	}
}

func TestLoadRejectsDuplicateTemplateKey(t *testing.T) {
	templates := defaultTemplates()
	templates = append(templates, templates[0])

	if _, err := build(DefaultScoring(), templates, defaultRules()); err == nil {
		t.Fatal("expected duplicate template key to fail the build")
	}
}

func TestLoadRejectsRuleWithoutTemplate(t *testing.T) {
	rules := defaultRules()
	rules = append(rules, Rule{
		Key:           domain.DocumentType("GHOST"),
		Mandatory:     []string{`ghost`},
		Weight:        1.0,
		RequiredScore: 10,
	})

	if _, err := build(DefaultScoring(), defaultTemplates(), rules); err == nil {
		t.Fatal("expected rule without template to fail the build")
	}
}

func TestLoadRejectsInvalidPattern(t *testing.T) {
	rules := defaultRules()
	rules[0].Strong = append(rules[0].Strong, `([unclosed`)

	if _, err := build(DefaultScoring(), defaultTemplates(), rules); err == nil {
		t.Fatal("expected invalid pattern to fail the build")
	}
}

func TestLoadFromYAMLOverride(t *testing.T) {
	dir := t.TempDir()

	templatesPath := filepath.Join(dir, "templates.yaml")
	writeFile(t, templatesPath, `
templates:
  - key: PASSPORT
    name: Passport
    fields: [passport_number, nationality]
`)

	rulesPath := filepath.Join(dir, "rules.yaml")
	writeFile(t, rulesPath, `
scoring:
  min_text_length: 10
  mandatory_score: 25
  strong_score: 10
  weak_score: 3
  strong_bonus_count: 3
  strong_bonus: 1.3
  confidence_scale: 2
  ambiguity_margin: 15
  ambiguity_penalty: 0.6
  confidence_floor: 60
rules:
  - key: PASSPORT
    mandatory: ['P<[A-Z]{3}']
    strong: [passport]
    weight: 1.0
    required_score: 20
`)

	catalog, err := Load(Options{TemplatesPath: templatesPath, RulesPath: rulesPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := catalog.Types(); len(got) != 1 || got[0] != domain.TypePassport {
		t.Fatalf("expected single PASSPORT type, got %v", got)
	}
	if n := catalog.ExpectedFieldCount(domain.TypePassport); n != 2 {
		t.Fatalf("expected 2 fields from override, got %d", n)
	}
	if catalog.Scoring().MinTextLength != 10 {
		t.Fatalf("expected scoring override to apply, got %+v", catalog.Scoring())
	}
}

func TestLoadWrapsErrorsAsRulesetInvalid(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "rules.yaml")
	writeFile(t, badPath, "rules: [")

	_, err := Load(Options{RulesPath: badPath})
	if err == nil {
		t.Fatal("expected malformed YAML to fail the load")
	}
	if !domain.IsKind(err, domain.ErrRulesetInvalid) {
		t.Fatalf("expected ErrRulesetInvalid, got %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
