package exercise

import "contraster/internal/domain"

// Normalized distance bands for the three tiers. Values at exactly a
// boundary fall into the more similar band: [0, 0.2] is very similar,
// (0.2, 0.5] somewhat similar, (0.5, 1] dissimilar.
const (
	verySimilarMax = 0.2
	similarMax     = 0.5
)

// computeTiers partitions pool (minus w itself) into the three
// similarity tiers relative to w.
//
// Raw edit distances over the foreign forms are rescaled to [0,1] by
// (d - min) / (max - min) over this word's distances. When every
// distance is equal (max == min, including a pool of two) the
// normalized value is defined as 1, so all neighbours land in the
// dissimilar tier. Pool order is preserved within each tier.
func computeTiers(w *domain.Word, pool []*domain.Word, dist DistanceFunc) [numLevels][]*domain.Word {
	others := make([]*domain.Word, 0, len(pool)-1)
	raw := make([]int, 0, len(pool)-1)

	lo, hi := -1, -1
	for _, other := range pool {
		if other == w {
			continue
		}
		d := dist(w.Word, other.Word)
		others = append(others, other)
		raw = append(raw, d)
		if lo == -1 || d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}

	var tiers [numLevels][]*domain.Word
	for i, other := range others {
		norm := 1.0
		if hi > lo {
			norm = float64(raw[i]-lo) / float64(hi-lo)
		}

		switch {
		case norm <= verySimilarMax:
			tiers[LevelVerySimilar] = append(tiers[LevelVerySimilar], other)
		case norm <= similarMax:
			tiers[LevelSimilar] = append(tiers[LevelSimilar], other)
		default:
			tiers[LevelDissimilar] = append(tiers[LevelDissimilar], other)
		}
	}

	return tiers
}
