package match

import (
	"cmp"
	"slices"
	"strings"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates close to name, best first. A
// candidate whose normalized form starts with the normalized name always
// qualifies.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	norm := Normalize(name)

	var hits []scored

	for _, c := range candidates {
		score := Similarity(name, c)
		if norm != "" && strings.HasPrefix(Normalize(c), norm) {
			score = max(score, MinSimilarity)
		}

		if score >= MinSimilarity {
			hits = append(hits, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		out = append(out, h.name)
	}

	return out
}
