// Package classify implements deterministic rule-table document
// classification: mandatory gating, exclusion vetoes and graduated
// indicator scoring over raw OCR text. No statistics, no training;
// every constant comes from the injected ruleset catalog.
package classify

import (
	"fmt"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/ruleset"
)

type Classifier struct {
	catalog *ruleset.Catalog
}

func New(catalog *ruleset.Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

type typeScore struct {
	docType       domain.DocumentType
	score         float64
	strongMatches int
	weakMatches   int
}

// Classify scores every configured type independently and returns the best
// match, or TypeUnknown with confidence 0 when nothing passes its gates.
func (c *Classifier) Classify(text string) domain.ClassificationResult {
	if len(strings.TrimSpace(text)) < c.catalog.Scoring().MinTextLength {
		return domain.ClassificationResult{
			Type:       domain.TypeUnknown,
			Confidence: 0,
			Messages:   []string{"Insufficient text for classification"},
		}
	}

	scoring := c.catalog.Scoring()
	scores := make([]typeScore, 0, len(c.catalog.Types()))
	for _, docType := range c.catalog.Types() {
		rule, ok := c.catalog.Rule(docType)
		if !ok {
			continue
		}
		scores = append(scores, c.scoreType(docType, rule, text, scoring))
	}

	best, second := pickTop(scores)
	if best == nil || best.score == 0 {
		return domain.ClassificationResult{
			Type:       domain.TypeUnknown,
			Confidence: 0,
			Messages:   []string{"No document type matched the criteria"},
		}
	}

	confidence := best.score * scoring.ConfidenceScale
	if confidence > 100 {
		confidence = 100
	}

	var messages []string
	if second != nil && second.score > 0 && best.score-second.score < scoring.AmbiguityMargin {
		confidence *= scoring.AmbiguityPenalty
		messages = append(messages, fmt.Sprintf(
			"Ambiguous classification: %s vs %s", best.docType, second.docType))
	}

	messages = append(messages, fmt.Sprintf(
		"Identified as %s based on %d strong indicators", best.docType, best.strongMatches))

	if confidence < scoring.ConfidenceFloor {
		messages = append(messages, fmt.Sprintf(
			"Low confidence (%.1f%%). Manual verification recommended.", confidence))
	}

	return domain.ClassificationResult{
		Type:       best.docType,
		Confidence: confidence,
		Messages:   messages,
	}
}

func (c *Classifier) scoreType(
	docType domain.DocumentType,
	rule *ruleset.Rule,
	text string,
	scoring ruleset.Scoring,
) typeScore {
	result := typeScore{docType: docType}

	// At least one mandatory pattern must match; only the first contributes.
	score := 0.0
	foundMandatory := false
	for _, re := range rule.MandatoryPatterns() {
		if re.MatchString(text) {
			foundMandatory = true
			score += scoring.MandatoryScore
			break
		}
	}
	if !foundMandatory {
		return result
	}

	// Any exclusion match vetoes the candidacy outright.
	for _, re := range rule.ExclusionPatterns() {
		if re.MatchString(text) {
			return result
		}
	}

	for _, re := range rule.StrongPatterns() {
		if re.MatchString(text) {
			score += scoring.StrongScore
			result.strongMatches++
		}
	}
	for _, re := range rule.WeakPatterns() {
		if re.MatchString(text) {
			score += scoring.WeakScore
			result.weakMatches++
		}
	}

	score *= rule.Weight
	if result.strongMatches >= scoring.StrongBonusCount {
		score *= scoring.StrongBonus
	}
	if score < rule.RequiredScore {
		return result
	}

	result.score = score
	return result
}

// pickTop returns the highest and second-highest scoring candidates,
// preserving declaration order on ties.
func pickTop(scores []typeScore) (best, second *typeScore) {
	for i := range scores {
		candidate := &scores[i]
		switch {
		case best == nil || candidate.score > best.score:
			second = best
			best = candidate
		case second == nil || candidate.score > second.score:
			second = candidate
		}
	}
	return best, second
}
