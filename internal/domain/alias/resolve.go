package alias

import "strings"

// Resolver maps free-form names onto a fixed vocabulary. Unlike
// BuildClusters it never grows the vocabulary: a name either resolves to
// its best vocabulary entry or passes through unchanged.
type Resolver struct {
	vocabulary []string
	threshold  int
	scorer     Scorer
}

// NewResolver builds a Resolver over the given vocabulary. Blank entries
// are dropped, the threshold is clamped to 0..100, and a nil scorer
// selects TokenSetRatio.
func NewResolver(vocabulary []string, threshold int, scorer Scorer) *Resolver {
	if scorer == nil {
		scorer = TokenSetRatio
	}

	vocab := make([]string, 0, len(vocabulary))
	for _, entry := range vocabulary {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			vocab = append(vocab, trimmed)
		}
	}

	return &Resolver{
		vocabulary: vocab,
		threshold:  clampThreshold(threshold),
		scorer:     scorer,
	}
}

// Resolve returns the best vocabulary entry for name, or name unchanged
// when nothing scores at or above the threshold. Ties keep the entry that
// appears first in the vocabulary.
func (r *Resolver) Resolve(name string) string {
	if r == nil || len(r.vocabulary) == 0 || strings.TrimSpace(name) == "" {
		return name
	}

	bestScore := -1
	bestName := name
	for _, entry := range r.vocabulary {
		if score := r.scorer(name, entry); score > bestScore {
			bestScore = score
			bestName = entry
		}
	}

	if bestScore >= r.threshold {
		return bestName
	}
	return name
}

// Vocabulary returns a copy of the resolver's vocabulary.
func (r *Resolver) Vocabulary() []string {
	out := make([]string, len(r.vocabulary))
	copy(out, r.vocabulary)
	return out
}
