package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/scanner"
)

func dc(name string) figma.DesignComponent {
	return figma.DesignComponent{ID: "1:" + name, Name: name}
}

func cc(name, path string) scanner.CodeComponent {
	return scanner.CodeComponent{Name: name, Path: path, Framework: scanner.FrameworkReact}
}

func TestReconcile_MixedScenario(t *testing.T) {
	r := NewReconciler(nil, nil)

	designs := []figma.DesignComponent{
		dc("Button"), dc("Card"), dc("Modal"), dc("HeaderNav"), dc("NavbarMenu"),
	}
	code := []scanner.CodeComponent{
		cc("Button", "src/Button.tsx"),
		cc("Card", "src/Card.tsx"),
		cc("Modal", "src/Modal.tsx"),
		cc("Navbar", "src/Navbar.tsx"),
	}

	m := r.Reconcile(designs, code)

	require.Len(t, m.ExactMatches, 3)
	assert.Equal(t, "Button", m.ExactMatches[0].Design.Name)
	assert.Equal(t, "Card", m.ExactMatches[1].Design.Name)
	assert.Equal(t, "Modal", m.ExactMatches[2].Design.Name)
	for _, em := range m.ExactMatches {
		assert.Equal(t, 1.0, em.Confidence)
	}

	// "navbarmenu" vs "navbar" shares the full "navbar" subsequence:
	// 2*6/(10+6) = 0.75, above the threshold.
	require.Len(t, m.SimilarMatches, 1)
	assert.Equal(t, "NavbarMenu", m.SimilarMatches[0].Design.Name)
	require.Len(t, m.SimilarMatches[0].Suggestions, 1)
	assert.Equal(t, "Navbar", m.SimilarMatches[0].Suggestions[0].Code.Name)
	assert.InDelta(t, 0.75, m.SimilarMatches[0].Suggestions[0].Score, 1e-9)

	// "headernav" vs "navbar" only shares "nav": 2*3/(9+6) = 0.4, so the
	// design component has no candidate at all.
	require.Len(t, m.MissingInCode, 1)
	assert.Equal(t, "HeaderNav", m.MissingInCode[0].Name)

	// Navbar was offered as a suggestion, so nothing is left uncovered.
	assert.Empty(t, m.MissingInFigma)
}

func TestReconcile_PartitionsDesigns(t *testing.T) {
	r := NewReconciler(nil, nil)

	designs := []figma.DesignComponent{
		dc("Button"), dc("NavbarMenu"), dc("ProductGrid"), dc("Card"),
	}
	code := []scanner.CodeComponent{
		cc("Button", "src/Button.tsx"),
		cc("Navbar", "src/Navbar.tsx"),
		cc("Card", "src/Card.tsx"),
	}

	m := r.Reconcile(designs, code)

	total := len(m.ExactMatches) + len(m.SimilarMatches) + len(m.MissingInCode)
	assert.Equal(t, len(designs), total)

	seen := make(map[string]int)
	for _, em := range m.ExactMatches {
		seen[em.Design.Name]++
	}
	for _, sm := range m.SimilarMatches {
		seen[sm.Design.Name]++
	}
	for _, d := range m.MissingInCode {
		seen[d.Name]++
	}
	for _, d := range designs {
		assert.Equal(t, 1, seen[d.Name], "design %s must land in exactly one group", d.Name)
	}
}

func TestReconcile_ExactMatchIsCaseInsensitive(t *testing.T) {
	r := NewReconciler(nil, nil)

	m := r.Reconcile(
		[]figma.DesignComponent{dc("button")},
		[]scanner.CodeComponent{cc("Button", "src/Button.tsx")},
	)

	require.Len(t, m.ExactMatches, 1)
	assert.Equal(t, "Button", m.ExactMatches[0].Code.Name)
	assert.Empty(t, m.SimilarMatches)
	assert.Empty(t, m.MissingInFigma)
}

func TestReconcile_ExactMatchPicksFirstInScanOrder(t *testing.T) {
	r := NewReconciler(nil, nil)

	code := []scanner.CodeComponent{
		cc("Button", "src/a/Button.tsx"),
		cc("Button", "src/b/Button.tsx"),
	}
	m := r.Reconcile([]figma.DesignComponent{dc("Button")}, code)

	require.Len(t, m.ExactMatches, 1)
	assert.Equal(t, "src/a/Button.tsx", m.ExactMatches[0].Code.Path)

	// Both files carry the matched name, so neither is reported as
	// missing from the design side.
	assert.Empty(t, m.MissingInFigma)
}

func TestReconcile_SuggestionsCappedAndStable(t *testing.T) {
	r := NewReconciler(nil, nil)

	code := []scanner.CodeComponent{
		cc("List1", "src/List1.tsx"),
		cc("List2", "src/List2.tsx"),
		cc("List3", "src/List3.tsx"),
		cc("List4", "src/List4.tsx"),
	}
	m := r.Reconcile([]figma.DesignComponent{dc("List")}, code)

	require.Len(t, m.SimilarMatches, 1)
	sugg := m.SimilarMatches[0].Suggestions
	require.Len(t, sugg, 3)

	// All four candidates score identically, so the stable sort keeps
	// scan order and the cap drops the last one.
	assert.Equal(t, "List1", sugg[0].Code.Name)
	assert.Equal(t, "List2", sugg[1].Code.Name)
	assert.Equal(t, "List3", sugg[2].Code.Name)

	require.Len(t, m.MissingInFigma, 1)
	assert.Equal(t, "List4", m.MissingInFigma[0].Name)
}

func TestReconcile_SuggestionsOrderedByScore(t *testing.T) {
	r := NewReconciler(nil, nil)

	code := []scanner.CodeComponent{
		cc("NavbarMenuItem", "src/NavbarMenuItem.tsx"),
		cc("NavbarMenu", "src/NavbarMenu.tsx"),
	}
	m := r.Reconcile([]figma.DesignComponent{dc("Navbar")}, code)

	require.Len(t, m.SimilarMatches, 1)
	sugg := m.SimilarMatches[0].Suggestions
	require.Len(t, sugg, 2)
	assert.Equal(t, "NavbarMenu", sugg[0].Code.Name)
	assert.Equal(t, "NavbarMenuItem", sugg[1].Code.Name)
	assert.Greater(t, sugg[0].Score, sugg[1].Score)
}

func TestReconcile_EmptyDesigns(t *testing.T) {
	r := NewReconciler(nil, nil)

	code := []scanner.CodeComponent{
		cc("Button", "src/Button.tsx"),
		cc("Card", "src/Card.tsx"),
	}
	m := r.Reconcile(nil, code)

	assert.Empty(t, m.ExactMatches)
	assert.Empty(t, m.SimilarMatches)
	assert.Empty(t, m.MissingInCode)
	require.Len(t, m.MissingInFigma, 2)
	assert.Equal(t, "Button", m.MissingInFigma[0].Name)
	assert.Equal(t, "Card", m.MissingInFigma[1].Name)
}

func TestReconcile_EmptyCode(t *testing.T) {
	r := NewReconciler(nil, nil)

	designs := []figma.DesignComponent{dc("Button"), dc("Card")}
	m := r.Reconcile(designs, nil)

	assert.Empty(t, m.ExactMatches)
	assert.Empty(t, m.SimilarMatches)
	assert.Empty(t, m.MissingInFigma)
	require.Len(t, m.MissingInCode, 2)
	assert.Equal(t, "Button", m.MissingInCode[0].Name)
	assert.Equal(t, "Card", m.MissingInCode[1].Name)
}

func TestReconcile_MissingInCodeKeepsDescription(t *testing.T) {
	r := NewReconciler(nil, nil)

	design := figma.DesignComponent{ID: "7:1", Name: "ProductGrid", Description: "grid of product cards"}
	m := r.Reconcile([]figma.DesignComponent{design}, nil)

	require.Len(t, m.MissingInCode, 1)
	assert.Equal(t, "grid of product cards", m.MissingInCode[0].Description)
	assert.Equal(t, "7:1", m.MissingInCode[0].ID)
}
