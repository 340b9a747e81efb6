package island

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// nameCandidate pairs a normalised alias with the canonical key it resolves to.
type nameCandidate struct {
	key   string
	alias string
}

type nameMatch struct {
	key   string
	score float64
}

// matchName resolves raw against the candidates: exact match first, then a
// unique-enough prefix, then the closest alias within an edit-distance limit.
func matchName(raw string, candidates []nameCandidate) (string, bool) {
	in := normaliseName(raw)
	if in == "" {
		return "", false
	}
	matches := make([]nameMatch, 0, 4)
	for _, cand := range candidates {
		alias := normaliseName(cand.alias)
		if alias == "" {
			continue
		}
		switch {
		case in == alias:
			return cand.key, true
		case strings.HasPrefix(alias, in) && len(in) >= 3:
			matches = append(matches, nameMatch{key: cand.key, score: 0.9})
		default:
			dist := levenshtein.ComputeDistance(in, alias)
			if dist > levenshteinLimit(len(alias)) {
				continue
			}
			matches = append(matches, nameMatch{key: cand.key, score: 0.72 - 0.08*float64(dist)})
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score == matches[j].score {
			return matches[i].key < matches[j].key
		}
		return matches[i].score > matches[j].score
	})
	return matches[0].key, true
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

func normaliseName(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
