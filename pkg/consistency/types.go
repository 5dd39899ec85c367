// Package consistency aggregates design/code mismatch findings into a
// scored report with recommendations.
package consistency

// Severity ranks an issue for display. It does not affect the score.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IssueKind tags the class of mismatch an issue describes.
type IssueKind string

const (
	// KindMissingComponent marks a design component with no code
	// counterpart at all.
	KindMissingComponent IssueKind = "missing_component"
	// KindRenamedComponent marks a design component whose closest code
	// candidates only match by similarity, suggesting a name drift.
	KindRenamedComponent IssueKind = "renamed_component"
	// KindUndocumentedComponent marks an exactly matched design component
	// that carries no description.
	KindUndocumentedComponent IssueKind = "undocumented_component"
	// KindMissingStyle marks a published design style with no code-side
	// token.
	KindMissingStyle IssueKind = "missing_style"
)

// Issue is one structured finding.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	DesignID string    `json:"design_id,omitempty"`
	CodeRef  string    `json:"code_ref,omitempty"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}

// SubResult is the outcome of one sub-analysis.
type SubResult struct {
	Total      int     `json:"total"`
	Consistent int     `json:"consistent"`
	Issues     []Issue `json:"issues"`
}

// Report is the aggregated consistency report. Issues concatenates the
// enabled sub-analyses' findings in analysis order.
type Report struct {
	Components       *SubResult `json:"components,omitempty"`
	Styles           *SubResult `json:"styles,omitempty"`
	Issues           []Issue    `json:"issues"`
	ConsistencyScore int        `json:"consistency_score"`
	Recommendations  []string   `json:"recommendations"`
}
