package api

import (
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

// rankSuggestions drops case-insensitive duplicates and empty titles, then
// orders titles by Jaro-Winkler similarity to query. Equal scores keep
// their input order.
func rankSuggestions(query string, titles []string) []string {
	q := strings.ToLower(query)

	type scored struct {
		title string
		score float32
	}
	seen := make(map[string]bool, len(titles))
	ranked := make([]scored, 0, len(titles))
	for _, t := range titles {
		lower := strings.ToLower(strings.TrimSpace(t))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		ranked = append(ranked, scored{title: t, score: edlib.JaroWinklerSimilarity(q, lower)})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.title
	}
	return out
}
