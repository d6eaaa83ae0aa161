package exercise

import "contraster/internal/domain"

// entry wraps one pool word with the bookkeeping the engine needs:
// how often the word has been shown and its precomputed similarity
// tiers. Entries are created once at engine construction.
type entry struct {
	word *domain.Word
	seen int

	// tiers[LevelVerySimilar..LevelDissimilar], each holds the other
	// pool words whose normalized edit distance falls in that band.
	// A word never appears in its own tiers.
	tiers [numLevels][]*domain.Word
}

// leastSeen picks the candidate with the lowest seen count. Ties keep
// the earliest candidate, so the pick is deterministic for a given
// candidate order. Returns nil for an empty candidate list.
func (e *Engine) leastSeen(candidates []*domain.Word) *domain.Word {
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	bestSeen := e.entries[best].seen
	for _, w := range candidates[1:] {
		if s := e.entries[w].seen; s < bestSeen {
			best = w
			bestSeen = s
		}
	}
	return best
}
