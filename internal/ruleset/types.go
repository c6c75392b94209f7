package ruleset

import (
	"regexp"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// Template describes one document type: display name, the semantic fields a
// complete extraction is expected to produce, and an ordered last-resort
// pattern list per field. Loaded once at startup, immutable afterwards.
type Template struct {
	Key           domain.DocumentType `yaml:"key"`
	Name          string              `yaml:"name"`
	Fields        []string            `yaml:"fields"`
	FieldPatterns map[string][]string `yaml:"field_patterns,omitempty"`
}

// Rule is the classification rule set for one document type. Pattern order
// is significant and preserved as declared; matching is case-insensitive.
type Rule struct {
	Key           domain.DocumentType `yaml:"key"`
	Mandatory     []string            `yaml:"mandatory"`
	Exclusions    []string            `yaml:"exclusions,omitempty"`
	Strong        []string            `yaml:"strong,omitempty"`
	Weak          []string            `yaml:"weak,omitempty"`
	Weight        float64             `yaml:"weight"`
	RequiredScore float64             `yaml:"required_score"`

	mandatory  []*regexp.Regexp
	exclusions []*regexp.Regexp
	strong     []*regexp.Regexp
	weak       []*regexp.Regexp
}

func (r *Rule) MandatoryPatterns() []*regexp.Regexp { return r.mandatory }
func (r *Rule) ExclusionPatterns() []*regexp.Regexp { return r.exclusions }
func (r *Rule) StrongPatterns() []*regexp.Regexp    { return r.strong }
func (r *Rule) WeakPatterns() []*regexp.Regexp      { return r.weak }

// Scoring holds the hand-tuned classifier constants. They are configuration,
// not code: YAML overrides may adjust any of them.
type Scoring struct {
	MinTextLength    int     `yaml:"min_text_length"`
	MandatoryScore   float64 `yaml:"mandatory_score"`
	StrongScore      float64 `yaml:"strong_score"`
	WeakScore        float64 `yaml:"weak_score"`
	StrongBonusCount int     `yaml:"strong_bonus_count"`
	StrongBonus      float64 `yaml:"strong_bonus"`
	ConfidenceScale  float64 `yaml:"confidence_scale"`
	AmbiguityMargin  float64 `yaml:"ambiguity_margin"`
	AmbiguityPenalty float64 `yaml:"ambiguity_penalty"`
	ConfidenceFloor  float64 `yaml:"confidence_floor"`
}

func DefaultScoring() Scoring {
	return Scoring{
		MinTextLength:    20,
		MandatoryScore:   25,
		StrongScore:      10,
		WeakScore:        3,
		StrongBonusCount: 3,
		StrongBonus:      1.3,
		ConfidenceScale:  2,
		AmbiguityMargin:  15,
		AmbiguityPenalty: 0.6,
		ConfidenceFloor:  60,
	}
}

// Catalog is the immutable rule/template configuration shared by the
// classifier and the extraction orchestrator.
type Catalog struct {
	scoring   Scoring
	templates map[domain.DocumentType]Template
	rules     map[domain.DocumentType]*Rule
	typeOrder []domain.DocumentType
}

func (c *Catalog) Scoring() Scoring { return c.scoring }

// Types returns rule-bearing document types in declaration order.
func (c *Catalog) Types() []domain.DocumentType {
	out := make([]domain.DocumentType, len(c.typeOrder))
	copy(out, c.typeOrder)
	return out
}

func (c *Catalog) Rule(t domain.DocumentType) (*Rule, bool) {
	r, ok := c.rules[t]
	return r, ok
}

func (c *Catalog) Template(t domain.DocumentType) (Template, bool) {
	tpl, ok := c.templates[t]
	return tpl, ok
}

func (c *Catalog) Has(t domain.DocumentType) bool {
	_, ok := c.templates[t]
	return ok
}

func (c *Catalog) ExpectedFieldCount(t domain.DocumentType) int {
	tpl, ok := c.templates[t]
	if !ok {
		return 0
	}
	return len(tpl.Fields)
}

// FieldPatterns returns the ordered fallback pattern list for one field.
func (c *Catalog) FieldPatterns(t domain.DocumentType, field string) []string {
	tpl, ok := c.templates[t]
	if !ok {
		return nil
	}
	return tpl.FieldPatterns[field]
}
