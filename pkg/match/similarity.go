// Package match computes name similarity between design and code
// component identifiers.
package match

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Similarity returns a score in [0,1] for two identifiers based on their
// longest common subsequence: 2*LCS / (len(a)+len(b)). Comparison is
// case-insensitive. Two empty strings score 0, not NaN.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra)+len(rb) == 0 {
		return 0
	}

	lcs := lcsLength(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest common subsequence length with the
// classic (m+1)x(n+1) dynamic programming table, kept to two rows since
// only the previous row is ever read.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Matcher memoizes Similarity for repeated identifier pairs. Reconciling
// hundreds of design components against the same code set recomputes many
// identical pairs; the cache makes those lookups O(1).
//
// Matcher is safe for concurrent use (the LRU cache carries its own lock).
type Matcher struct {
	cache *lru.Cache[pairKey, float64]
}

type pairKey struct {
	a, b string
}

// NewMatcher creates a Matcher with the given cache capacity.
// A non-positive size disables memoization.
func NewMatcher(cacheSize int) *Matcher {
	m := &Matcher{}
	if cacheSize > 0 {
		// lru.New only fails for non-positive sizes, guarded above.
		cache, err := lru.New[pairKey, float64](cacheSize)
		if err == nil {
			m.cache = cache
		}
	}
	return m
}

// Similarity returns the memoized similarity for a pair. The key is
// normalized so that Similarity(a,b) and Similarity(b,a) share one entry,
// mirroring the symmetry of the underlying score.
func (m *Matcher) Similarity(a, b string) float64 {
	if m.cache == nil {
		return Similarity(a, b)
	}

	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la > lb {
		la, lb = lb, la
	}
	key := pairKey{a: la, b: lb}

	if score, ok := m.cache.Get(key); ok {
		return score
	}
	score := Similarity(la, lb)
	m.cache.Add(key, score)
	return score
}
