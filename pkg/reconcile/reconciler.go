package reconcile

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/match"
	"github.com/gnana997/figbridge/pkg/scanner"
)

// Reconciler maps design components onto scanned code components.
type Reconciler struct {
	matcher *match.Matcher
	log     *slog.Logger
}

// NewReconciler creates a reconciler. A nil matcher gets a default
// memoizing one; a nil logger uses slog.Default().
func NewReconciler(matcher *match.Matcher, logger *slog.Logger) *Reconciler {
	if matcher == nil {
		matcher = match.NewMatcher(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{matcher: matcher, log: logger}
}

// Reconcile classifies each design component against the code set and
// builds the four mapping groups. Design components are processed in the
// order given (the API response order); code components are expected in
// scan order, which decides exact-match ties between files sharing a name.
func (r *Reconciler) Reconcile(designs []figma.DesignComponent, code []scanner.CodeComponent) *Mapping {
	mapping := &Mapping{
		ExactMatches:   []ExactMatch{},
		SimilarMatches: []SimilarMatch{},
		MissingInCode:  []figma.DesignComponent{},
		MissingInFigma: []scanner.CodeComponent{},
	}

	// Code-component names consumed by an exact match or offered as a
	// suggestion. Name-keyed so files sharing a component name are covered
	// together.
	covered := make(map[string]struct{})

	for _, design := range designs {
		o := r.classify(design, code)
		switch o.kind {
		case outcomeExact:
			mapping.ExactMatches = append(mapping.ExactMatches, *o.exact)
			covered[o.exact.Code.Name] = struct{}{}
		case outcomeSimilar:
			mapping.SimilarMatches = append(mapping.SimilarMatches, SimilarMatch{
				Design:      o.design,
				Suggestions: o.suggestions,
			})
			for _, s := range o.suggestions {
				covered[s.Code.Name] = struct{}{}
			}
		case outcomeMissing:
			mapping.MissingInCode = append(mapping.MissingInCode, o.design)
		}
	}

	for _, cc := range code {
		if _, ok := covered[cc.Name]; !ok {
			mapping.MissingInFigma = append(mapping.MissingInFigma, cc)
		}
	}

	r.log.Debug("reconciled components",
		"designs", len(designs),
		"code", len(code),
		"exact", len(mapping.ExactMatches),
		"similar", len(mapping.SimilarMatches),
		"missing_in_code", len(mapping.MissingInCode),
		"missing_in_figma", len(mapping.MissingInFigma))

	return mapping
}

// classify produces the tagged outcome for a single design component.
func (r *Reconciler) classify(design figma.DesignComponent, code []scanner.CodeComponent) outcome {
	lower := strings.ToLower(design.Name)

	for _, cc := range code {
		if strings.ToLower(cc.Name) == lower {
			return outcome{
				kind: outcomeExact,
				exact: &ExactMatch{
					Design:     design,
					Code:       cc,
					Confidence: 1.0,
				},
			}
		}
	}

	var candidates []Suggestion
	for _, cc := range code {
		score := r.matcher.Similarity(design.Name, cc.Name)
		if score > SuggestionThreshold {
			candidates = append(candidates, Suggestion{Code: cc, Score: score})
		}
	}
	if len(candidates) == 0 {
		return outcome{kind: outcomeMissing, design: design}
	}

	// Stable sort keeps scan order among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	return outcome{kind: outcomeSimilar, design: design, suggestions: candidates}
}
