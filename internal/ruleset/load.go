package ruleset

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/karimbakr/docufield/internal/core/domain"
)

// Options point at optional YAML files that replace the built-in tables.
// Empty paths keep the defaults. Malformed files, bad patterns and
// duplicate type keys are deployment defects and fail the load.
type Options struct {
	TemplatesPath string
	RulesPath     string
}

type rulesFile struct {
	Scoring *Scoring `yaml:"scoring,omitempty"`
	Rules   []Rule   `yaml:"rules"`
}

type templatesFile struct {
	Templates []Template `yaml:"templates"`
}

func Load(opts Options) (*Catalog, error) {
	templates := defaultTemplates()
	rules := defaultRules()
	scoring := DefaultScoring()

	if opts.TemplatesPath != "" {
		var file templatesFile
		if err := readYAML(opts.TemplatesPath, &file); err != nil {
			return nil, domain.WrapError(domain.ErrRulesetInvalid, "load templates", err)
		}
		if len(file.Templates) == 0 {
			return nil, domain.WrapError(domain.ErrRulesetInvalid, "load templates", errors.New("no templates defined"))
		}
		templates = file.Templates
	}

	if opts.RulesPath != "" {
		var file rulesFile
		if err := readYAML(opts.RulesPath, &file); err != nil {
			return nil, domain.WrapError(domain.ErrRulesetInvalid, "load rules", err)
		}
		if len(file.Rules) == 0 {
			return nil, domain.WrapError(domain.ErrRulesetInvalid, "load rules", errors.New("no rules defined"))
		}
		rules = file.Rules
		if file.Scoring != nil {
			scoring = *file.Scoring
		}
	}

	catalog, err := build(scoring, templates, rules)
	if err != nil {
		return nil, domain.WrapError(domain.ErrRulesetInvalid, "build catalog", err)
	}
	return catalog, nil
}

// MustDefault builds the built-in catalog and panics on defects in the
// compiled-in tables. Intended for tests and tooling.
func MustDefault() *Catalog {
	catalog, err := build(DefaultScoring(), defaultTemplates(), defaultRules())
	if err != nil {
		panic(err)
	}
	return catalog
}

func build(scoring Scoring, templates []Template, rules []Rule) (*Catalog, error) {
	if err := validateScoring(scoring); err != nil {
		return nil, err
	}

	templateMap := make(map[domain.DocumentType]Template, len(templates))
	for _, tpl := range templates {
		if tpl.Key == "" || tpl.Key == domain.TypeUnknown {
			return nil, fmt.Errorf("template with empty or reserved key %q", tpl.Key)
		}
		if _, dup := templateMap[tpl.Key]; dup {
			return nil, fmt.Errorf("duplicate template key %q", tpl.Key)
		}
		if len(tpl.Fields) == 0 {
			return nil, fmt.Errorf("template %q has no fields", tpl.Key)
		}
		for field, patterns := range tpl.FieldPatterns {
			for _, p := range patterns {
				if _, err := compilePattern(p); err != nil {
					return nil, fmt.Errorf("template %q field %q pattern %q: %w", tpl.Key, field, p, err)
				}
			}
		}
		templateMap[tpl.Key] = tpl
	}

	ruleMap := make(map[domain.DocumentType]*Rule, len(rules))
	order := make([]domain.DocumentType, 0, len(rules))
	for i := range rules {
		rule := rules[i]
		if rule.Key == "" || rule.Key == domain.TypeUnknown {
			return nil, fmt.Errorf("rule with empty or reserved key %q", rule.Key)
		}
		if _, dup := ruleMap[rule.Key]; dup {
			return nil, fmt.Errorf("duplicate rule key %q", rule.Key)
		}
		if _, ok := templateMap[rule.Key]; !ok {
			return nil, fmt.Errorf("rule %q has no matching template", rule.Key)
		}
		if len(rule.Mandatory) == 0 {
			return nil, fmt.Errorf("rule %q has no mandatory patterns", rule.Key)
		}
		if rule.Weight <= 0 {
			return nil, fmt.Errorf("rule %q has non-positive weight %v", rule.Key, rule.Weight)
		}
		if rule.RequiredScore <= 0 {
			return nil, fmt.Errorf("rule %q has non-positive required score %v", rule.Key, rule.RequiredScore)
		}

		var err error
		if rule.mandatory, err = compileAll(rule.Mandatory); err != nil {
			return nil, fmt.Errorf("rule %q mandatory: %w", rule.Key, err)
		}
		if rule.exclusions, err = compileAll(rule.Exclusions); err != nil {
			return nil, fmt.Errorf("rule %q exclusions: %w", rule.Key, err)
		}
		if rule.strong, err = compileAll(rule.Strong); err != nil {
			return nil, fmt.Errorf("rule %q strong: %w", rule.Key, err)
		}
		if rule.weak, err = compileAll(rule.Weak); err != nil {
			return nil, fmt.Errorf("rule %q weak: %w", rule.Key, err)
		}

		ruleMap[rule.Key] = &rule
		order = append(order, rule.Key)
	}

	return &Catalog{
		scoring:   scoring,
		templates: templateMap,
		rules:     ruleMap,
		typeOrder: order,
	}, nil
}

func validateScoring(s Scoring) error {
	switch {
	case s.MinTextLength <= 0:
		return errors.New("scoring: min_text_length must be positive")
	case s.MandatoryScore <= 0 || s.StrongScore <= 0 || s.WeakScore <= 0:
		return errors.New("scoring: indicator scores must be positive")
	case s.StrongBonus < 1:
		return errors.New("scoring: strong_bonus must be >= 1")
	case s.ConfidenceScale <= 0:
		return errors.New("scoring: confidence_scale must be positive")
	case s.AmbiguityPenalty <= 0 || s.AmbiguityPenalty > 1:
		return errors.New("scoring: ambiguity_penalty must be in (0,1]")
	}
	return nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := compilePattern(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)` + pattern)
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
