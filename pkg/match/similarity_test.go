package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalStrings(t *testing.T) {
	for _, s := range []string{"Button", "a", "HeaderNav", "ProductGrid"} {
		assert.Equal(t, 1.0, Similarity(s, s), "sim(%q, %q)", s, s)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"HeaderNav", "Navbar"},
		{"Button", "ButtonGroup"},
		{"Card", "Chart"},
		{"", "Modal"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"sim(%q,%q) should be symmetric", p[0], p[1])
	}
}

func TestSimilarity_BothEmpty(t *testing.T) {
	// Defined edge case: 0, not NaN.
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestSimilarity_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "Button"))
	assert.Equal(t, 0.0, Similarity("Button", ""))
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Button", "BUTTON"))
	assert.Equal(t, 1.0, Similarity("headerNav", "HeaderNav"))
}

func TestSimilarity_KnownValues(t *testing.T) {
	// LCS("headernav", "navbar") = "nav" (3), so 2*3/(9+6) = 0.4.
	assert.InDelta(t, 0.4, Similarity("HeaderNav", "Navbar"), 1e-9)

	// LCS("navbarmenu", "navbar") = "navbar" (6), so 2*6/(10+6) = 0.75.
	assert.InDelta(t, 0.75, Similarity("NavbarMenu", "Navbar"), 1e-9)

	assert.InDelta(t, 0.75, Similarity("Card", "Cart"), 1e-9)
}

func TestSimilarity_MonotoneInSharedSubsequence(t *testing.T) {
	// Adding shared characters never lowers the score against a fixed pair length.
	base := Similarity("abcd", "efgh") // nothing shared
	more := Similarity("abcd", "abgh") // shares "ab"
	most := Similarity("abcd", "abch") // shares "abc"
	assert.LessOrEqual(t, base, more)
	assert.LessOrEqual(t, more, most)
}

func TestMatcher_MemoizedEqualsDirect(t *testing.T) {
	m := NewMatcher(128)
	pairs := [][2]string{
		{"Button", "Button"},
		{"HeaderNav", "Navbar"},
		{"ProductGrid", "Grid"},
		{"", ""},
	}
	for _, p := range pairs {
		want := Similarity(p[0], p[1])
		assert.Equal(t, want, m.Similarity(p[0], p[1]))
		// Cached second call returns the same value.
		assert.Equal(t, want, m.Similarity(p[0], p[1]))
		// Symmetric lookup hits the same entry.
		assert.Equal(t, want, m.Similarity(p[1], p[0]))
	}
}

func TestMatcher_DisabledCache(t *testing.T) {
	m := NewMatcher(0)
	assert.Equal(t, Similarity("Card", "Chart"), m.Similarity("Card", "Chart"))
}
