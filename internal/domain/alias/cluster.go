package alias

import (
	"sort"
	"strings"
)

type pairKey struct {
	a string
	b string
}

// ProtectedPairs lists name pairs that must never merge into one cluster,
// no matter how similar they score. Lookups ignore pair order.
type ProtectedPairs map[pairKey]struct{}

// NewProtectedPairs builds the set, dropping pairs with a blank side or
// two identical sides.
func NewProtectedPairs(pairs ...[2]string) ProtectedPairs {
	set := make(ProtectedPairs, len(pairs))
	for _, pair := range pairs {
		a := strings.TrimSpace(pair[0])
		b := strings.TrimSpace(pair[1])
		if a == "" || b == "" || a == b {
			continue
		}
		set[orderedPairKey(a, b)] = struct{}{}
	}
	return set
}

// Blocked reports whether the two names form a protected pair.
func (p ProtectedPairs) Blocked(a, b string) bool {
	if len(p) == 0 {
		return false
	}
	_, ok := p[orderedPairKey(a, b)]
	return ok
}

func orderedPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Config tunes cluster construction. A nil Scorer selects TokenSetRatio;
// Threshold is clamped to 0..100.
type Config struct {
	Threshold int
	Scorer    Scorer
	Protected ProtectedPairs
}

// Clusters is the result of folding raw team names. Canonical holds one
// representative per cluster in sorted order, and Mapping sends every
// input name (canonical ones included) to its representative.
type Clusters struct {
	Canonical []string
	Mapping   map[string]string
}

// Resolve returns the canonical form of name, or name itself when it was
// never clustered.
func (c Clusters) Resolve(name string) string {
	if canonical, ok := c.Mapping[name]; ok {
		return canonical
	}
	return name
}

// BuildClusters folds the given names into clusters in a single greedy
// pass. Names are deduplicated and sorted first, so the lexicographically
// smallest spelling of a cluster becomes its representative and the result
// does not depend on input order. Each name is scored against the existing
// representatives and joins the best one when the score reaches the
// threshold, unless the pair is protected.
func BuildClusters(names []string, cfg Config) Clusters {
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = TokenSetRatio
	}
	threshold := clampThreshold(cfg.Threshold)

	sorted := dedupeSorted(names)
	canonical := make([]string, 0, len(sorted))
	mapping := make(map[string]string, len(sorted))

	for _, name := range sorted {
		bestScore := -1
		bestName := ""
		for _, candidate := range canonical {
			if score := scorer(name, candidate); score > bestScore {
				bestScore = score
				bestName = candidate
			}
		}

		if bestScore >= threshold && !cfg.Protected.Blocked(name, bestName) {
			mapping[name] = bestName
			continue
		}
		canonical = append(canonical, name)
		mapping[name] = name
	}

	return Clusters{Canonical: canonical, Mapping: mapping}
}

func dedupeSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	sort.Strings(out)
	return out
}

func clampThreshold(threshold int) int {
	if threshold < 0 {
		return 0
	}
	if threshold > 100 {
		return 100
	}
	return threshold
}
