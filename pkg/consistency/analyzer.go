package consistency

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/reconcile"
)

// issuePenalty is the score cost of every issue regardless of severity.
const issuePenalty = 10

// Options toggles the sub-analyses independently.
type Options struct {
	CheckComponents bool
	CheckStyles     bool
}

// Analyzer builds consistency reports from a reconciliation mapping and
// style data. The scoring and recommendation machinery is independent of
// the concrete sub-analyses, which can be replaced without touching it.
type Analyzer struct {
	log *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil logger uses slog.Default().
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{log: logger}
}

// Analyze runs the enabled sub-analyses and aggregates their issues into
// a scored report. tokens is the code-side token-name collection for the
// style analysis; nil means the code side is unknown and styles are not
// judged against it.
func (a *Analyzer) Analyze(mapping *reconcile.Mapping, styles []figma.DesignStyle, tokens []string, opts Options) *Report {
	report := &Report{
		Issues:          []Issue{},
		Recommendations: []string{},
	}

	if opts.CheckComponents && mapping != nil {
		report.Components = analyzeComponents(mapping)
		report.Issues = append(report.Issues, report.Components.Issues...)
	}
	if opts.CheckStyles {
		report.Styles = analyzeStyles(styles, tokens)
		report.Issues = append(report.Issues, report.Styles.Issues...)
	}

	report.ConsistencyScore = Score(len(report.Issues))
	report.Recommendations = recommendations(report.ConsistencyScore, len(report.Issues))

	a.log.Debug("consistency analysis complete",
		"issues", len(report.Issues),
		"score", report.ConsistencyScore)

	return report
}

// Score applies the linear penalty with a floor at zero. Severity is not
// weighted.
func Score(totalIssues int) int {
	score := 100 - issuePenalty*totalIssues
	if score < 0 {
		return 0
	}
	return score
}

// recommendations appends advisory text in fixed order.
func recommendations(score, issueCount int) []string {
	recs := []string{}
	if score < 70 {
		recs = append(recs, "Align component names and structure more closely with the design file.")
	}
	if issueCount > 0 {
		recs = append(recs, fmt.Sprintf("Address the %d reported consistency issues.", issueCount))
	}
	recs = append(recs, "Sync design and code regularly to keep drift small.")
	return recs
}

// analyzeComponents derives findings from a reconciliation mapping: a
// design component with no counterpart is a high-severity gap, a
// similarity-only match suggests a rename, and an exactly matched
// component without a description is flagged for documentation.
func analyzeComponents(mapping *reconcile.Mapping) *SubResult {
	result := &SubResult{
		Total:      len(mapping.ExactMatches) + len(mapping.SimilarMatches) + len(mapping.MissingInCode),
		Consistent: len(mapping.ExactMatches),
		Issues:     []Issue{},
	}

	for _, d := range mapping.MissingInCode {
		result.Issues = append(result.Issues, Issue{
			Kind:     KindMissingComponent,
			DesignID: d.ID,
			Message:  fmt.Sprintf("design component %q has no code counterpart", d.Name),
			Severity: SeverityHigh,
		})
	}
	for _, sm := range mapping.SimilarMatches {
		top := sm.Suggestions[0]
		result.Issues = append(result.Issues, Issue{
			Kind:     KindRenamedComponent,
			DesignID: sm.Design.ID,
			CodeRef:  top.Code.Path,
			Message: fmt.Sprintf("design component %q only matches %q by similarity (%.2f)",
				sm.Design.Name, top.Code.Name, top.Score),
			Severity: SeverityMedium,
		})
	}
	for _, em := range mapping.ExactMatches {
		if em.Design.Description == "" {
			result.Issues = append(result.Issues, Issue{
				Kind:     KindUndocumentedComponent,
				DesignID: em.Design.ID,
				CodeRef:  em.Code.Path,
				Message:  fmt.Sprintf("design component %q has no description", em.Design.Name),
				Severity: SeverityLow,
			})
		}
	}

	return result
}

// analyzeStyles compares published style names against code-side token
// names. Comparison is on a normalized form so "colors/primary" matches
// "colors-primary" or "ColorsPrimary".
func analyzeStyles(styles []figma.DesignStyle, tokens []string) *SubResult {
	result := &SubResult{
		Total:  len(styles),
		Issues: []Issue{},
	}
	if tokens == nil {
		result.Consistent = len(styles)
		return result
	}

	known := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		known[normalizeToken(tok)] = struct{}{}
	}

	for _, st := range styles {
		if _, ok := known[normalizeToken(st.Name)]; ok {
			result.Consistent++
			continue
		}
		result.Issues = append(result.Issues, Issue{
			Kind:     KindMissingStyle,
			DesignID: st.ID,
			Message:  fmt.Sprintf("design style %q (%s) has no code-side token", st.Name, st.Type),
			Severity: SeverityMedium,
		})
	}

	return result
}

// normalizeToken reduces a style or token name to lowercase alphanumerics.
func normalizeToken(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
