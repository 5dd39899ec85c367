// Package report renders reconciliation results as markdown and generates
// starter source files for design components missing from code.
package report

import (
	"fmt"
	"strings"

	"github.com/gnana997/figbridge/pkg/consistency"
	"github.com/gnana997/figbridge/pkg/reconcile"
)

// RenderMapping produces a markdown summary of a reconciliation mapping.
func RenderMapping(m *reconcile.Mapping) string {
	var b strings.Builder

	b.WriteString("# Component Reconciliation\n\n")
	fmt.Fprintf(&b, "| Group | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Exact matches | %d |\n", len(m.ExactMatches))
	fmt.Fprintf(&b, "| Similar matches | %d |\n", len(m.SimilarMatches))
	fmt.Fprintf(&b, "| Missing in code | %d |\n", len(m.MissingInCode))
	fmt.Fprintf(&b, "| Missing in design file | %d |\n\n", len(m.MissingInFigma))

	if len(m.ExactMatches) > 0 {
		b.WriteString("## Exact matches\n\n")
		for _, em := range m.ExactMatches {
			fmt.Fprintf(&b, "- **%s** → `%s`\n", em.Design.Name, em.Code.Path)
		}
		b.WriteString("\n")
	}

	if len(m.SimilarMatches) > 0 {
		b.WriteString("## Similar matches\n\n")
		for _, sm := range m.SimilarMatches {
			fmt.Fprintf(&b, "- **%s**:\n", sm.Design.Name)
			for _, s := range sm.Suggestions {
				fmt.Fprintf(&b, "  - `%s` (%s, %.0f%%)\n", s.Code.Name, s.Code.Path, s.Score*100)
			}
		}
		b.WriteString("\n")
	}

	if len(m.MissingInCode) > 0 {
		b.WriteString("## Missing in code\n\n")
		for _, d := range m.MissingInCode {
			if d.Description != "" {
				fmt.Fprintf(&b, "- **%s**: %s\n", d.Name, d.Description)
			} else {
				fmt.Fprintf(&b, "- **%s**\n", d.Name)
			}
		}
		b.WriteString("\n")
	}

	if len(m.MissingInFigma) > 0 {
		b.WriteString("## Missing in design file\n\n")
		for _, cc := range m.MissingInFigma {
			fmt.Fprintf(&b, "- **%s** (`%s`)\n", cc.Name, cc.Path)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderConsistency produces a markdown summary of a consistency report.
func RenderConsistency(r *consistency.Report) string {
	var b strings.Builder

	b.WriteString("# Consistency Report\n\n")
	fmt.Fprintf(&b, "**Score: %d/100**\n\n", r.ConsistencyScore)

	if r.Components != nil {
		fmt.Fprintf(&b, "Components: %d/%d consistent\n\n", r.Components.Consistent, r.Components.Total)
	}
	if r.Styles != nil {
		fmt.Fprintf(&b, "Styles: %d/%d consistent\n\n", r.Styles.Consistent, r.Styles.Total)
	}

	if len(r.Issues) > 0 {
		b.WriteString("## Issues\n\n")
		for _, issue := range r.Issues {
			fmt.Fprintf(&b, "- [%s] %s\n", issue.Severity, issue.Message)
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}
