// Package alias folds variant spellings of team names into canonical ones.
// Clustering discovers the canonical set from raw fixture data; resolution
// maps free-form names onto a fixed vocabulary the caller picked.
package alias

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Scorer rates the similarity of two names on a 0..100 scale where 100
// means an exact match after normalization.
type Scorer func(a, b string) int

// TokenSetRatio is the default Scorer. Both names are lowercased and split
// on non-alphanumeric runs, then the shared tokens are compared against
// each side's full token set. Reordered or partially overlapping names
// such as "FC Barcelona" and "Barcelona" score 100 because the shared
// tokens fully cover one side.
func TokenSetRatio(a, b string) int {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 100
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shared := make([]string, 0, len(tokensA))
	restA := make([]string, 0, len(tokensA))
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			shared = append(shared, token)
		} else {
			restA = append(restA, token)
		}
	}
	restB := make([]string, 0, len(tokensB))
	for token := range tokensB {
		if _, ok := tokensA[token]; !ok {
			restB = append(restB, token)
		}
	}
	sort.Strings(shared)
	sort.Strings(restA)
	sort.Strings(restB)

	base := strings.Join(shared, " ")
	fullA := strings.TrimSpace(base + " " + strings.Join(restA, " "))
	fullB := strings.TrimSpace(base + " " + strings.Join(restB, " "))

	best := levRatio(base, fullA)
	if r := levRatio(base, fullB); r > best {
		best = r
	}
	if r := levRatio(fullA, fullB); r > best {
		best = r
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

func levRatio(a, b string) int {
	if a == b {
		return 100
	}

	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	return (longest - dist) * 100 / longest
}
