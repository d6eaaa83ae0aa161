package exercise

import "contraster/internal/domain"

// pairAtLevel returns the least-seen word from ent's tier at the
// requested level, falling back level by level towards the most
// similar tier when a tier is empty. When everything below is empty
// too (equidistant neighbours all normalize to 1 and pile up in the
// dissimilar tier) the search continues upward, so a populated tier
// is always found in pools of two or more.
func (e *Engine) pairAtLevel(ent *entry, startLevel int) *domain.Word {
	for level := startLevel; level >= 0; level-- {
		if len(ent.tiers[level]) > 0 {
			return e.leastSeen(ent.tiers[level])
		}
	}
	for level := startLevel + 1; level < numLevels; level++ {
		if len(ent.tiers[level]) > 0 {
			return e.leastSeen(ent.tiers[level])
		}
	}
	return nil
}

// overlapAtLevel returns the least-seen word that sits in both a's and
// b's tier at the same level, scanning from startLevel down. Such a
// word is at the requested difficulty relative to both already-chosen
// words, which keeps the whole trial consistent in difficulty.
//
// Two words need not share a populated tier at any level (small pools
// hit this often). In that case the search degrades to a's own tiers,
// skipping b, so a trial always gets three distinct words.
func (e *Engine) overlapAtLevel(a, b *entry, startLevel int) *domain.Word {
	for level := startLevel; level >= 0; level-- {
		if common := intersect(a.tiers[level], b.tiers[level]); len(common) > 0 {
			return e.leastSeen(common)
		}
	}

	for level := startLevel; level >= 0; level-- {
		if candidates := exclude(a.tiers[level], b.word); len(candidates) > 0 {
			return e.leastSeen(candidates)
		}
	}
	for level := startLevel + 1; level < numLevels; level++ {
		if candidates := exclude(a.tiers[level], b.word); len(candidates) > 0 {
			return e.leastSeen(candidates)
		}
	}
	return nil
}

// selectTrial performs one full selection: the target under the pool
// cursor, a second word at the active level relative to the target,
// and a third from the overlap of the first two. Each chosen word's
// seen count goes up by one, target included.
func (e *Engine) selectTrial(ent *entry, level int) []*domain.Word {
	ent.seen++

	second := e.pairAtLevel(ent, level)
	e.entries[second].seen++

	third := e.overlapAtLevel(ent, e.entries[second], level)
	e.entries[third].seen++

	return []*domain.Word{ent.word, second, third}
}

// intersect returns the members of a that also appear in b, in a's
// order. Tier sizes are small, a map would not pay for itself here.
func intersect(a, b []*domain.Word) []*domain.Word {
	var common []*domain.Word
	for _, w := range a {
		for _, other := range b {
			if w == other {
				common = append(common, w)
				break
			}
		}
	}
	return common
}

// exclude returns the members of words that are not skip.
func exclude(words []*domain.Word, skip *domain.Word) []*domain.Word {
	var out []*domain.Word
	for _, w := range words {
		if w != skip {
			out = append(out, w)
		}
	}
	return out
}
