package resolve

import (
	"math"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

func runes(s string) []string {
	return strings.Split(s, "")
}

// Ratio is the matching-blocks similarity of a and b on a 0..1 scale.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// Score is the case-insensitive Ratio scaled to 0..100 and rounded.
func Score(a, b string) int {
	return int(math.Round(Ratio(strings.ToLower(a), strings.ToLower(b)) * 100))
}

type scored struct {
	value string
	ratio float64
}

// closeMatches returns up to n entries of possibilities whose ratio against word is at least
// cutoff, best first; equal ratios keep catalog order.
func closeMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 {
		return nil
	}
	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(runes(word))

	var hits []scored
	for _, p := range possibilities {
		m.SetSeq1(runes(p))
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if r := m.Ratio(); r >= cutoff {
				hits = append(hits, scored{value: p, ratio: r})
			}
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		switch {
		case a.ratio > b.ratio:
			return -1
		case a.ratio < b.ratio:
			return 1
		}
		return 0
	})
	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}
