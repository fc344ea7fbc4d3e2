package profile

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit names close to input, nearest first.
func Suggest(input string, names []string, limit int) []string {
	in := strings.ToLower(cleanNickname(input))
	if in == "" || limit <= 0 {
		return nil
	}
	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	for _, name := range names {
		n := strings.ToLower(name)
		if n == in {
			continue
		}
		dist := levenshtein.ComputeDistance(in, n)
		if dist > levenshteinLimit(len(n)) {
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
	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.name)
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
