// Package reconcile classifies every design component against the scanned
// code-component set and derives the code-side complement.
package reconcile

import (
	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/scanner"
)

// SuggestionThreshold is the minimum (exclusive) similarity for a code
// component to be suggested for a design component.
const SuggestionThreshold = 0.5

// MaxSuggestions caps the candidate list per similar match.
const MaxSuggestions = 3

// ExactMatch pairs a design component with the single code component
// whose name equals it case-insensitively.
type ExactMatch struct {
	Design figma.DesignComponent `json:"design"`
	Code   scanner.CodeComponent `json:"code"`
	// Confidence is fixed at 1.0 for exact name equality.
	Confidence float64 `json:"confidence"`
}

// Suggestion is one candidate code component with its similarity score.
type Suggestion struct {
	Code  scanner.CodeComponent `json:"code"`
	Score float64               `json:"score"`
}

// SimilarMatch pairs a design component with up to MaxSuggestions
// candidates ordered by descending similarity.
type SimilarMatch struct {
	Design      figma.DesignComponent `json:"design"`
	Suggestions []Suggestion          `json:"suggestions"`
}

// Mapping is the reconciliation result. Every design component appears in
// exactly one of ExactMatches, SimilarMatches, or MissingInCode: the
// per-component classification is a tagged outcome, so the partition is
// enforced by construction rather than checked after the fact.
// MissingInFigma is derived from the other three groups plus the full
// code set.
type Mapping struct {
	ExactMatches   []ExactMatch            `json:"exact_matches"`
	SimilarMatches []SimilarMatch          `json:"similar_matches"`
	MissingInCode  []figma.DesignComponent `json:"missing_in_code"`
	MissingInFigma []scanner.CodeComponent `json:"missing_in_figma"`
}

// outcomeKind tags the classification of one design component.
type outcomeKind int

const (
	outcomeExact outcomeKind = iota
	outcomeSimilar
	outcomeMissing
)

// outcome is the tagged union produced for each design component before
// the groups are assembled.
type outcome struct {
	kind        outcomeKind
	exact       *ExactMatch
	suggestions []Suggestion
	design      figma.DesignComponent
}
