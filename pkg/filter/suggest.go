package filter

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// Suggest returns up to three names close to query by edit distance, best
// first. Used when a query matches nothing.
func Suggest(query string, names []string) []string {
	q := Normalize(query)
	if len(q) < 3 {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}

	var cands []candidate
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		dist := distance(q, strings.ToLower(name))
		if dist > distanceLimit(len(q)) {
			continue
		}
		cands = append(cands, candidate{name: name, dist: dist})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})

	if len(cands) > maxSuggestions {
		cands = cands[:maxSuggestions]
	}

	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}

// distance compares the query against the whole name and each of its words,
// so "bouftu" still finds "Bouftou Royal".
func distance(q, name string) int {
	best := levenshtein.ComputeDistance(q, name)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(q, word); d < best {
			best = d
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
