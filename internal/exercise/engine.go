package exercise

import (
	"fmt"
	"math/rand"
	"time"

	"contraster/internal/domain"
)

// Contrasting levels. Storage order runs opposite to difficulty: the
// dissimilar tier gives the easiest trials (distractors look nothing
// like the answer), the very-similar tier the hardest.
const (
	LevelVerySimilar = 0
	LevelSimilar     = 1
	LevelDissimilar  = 2

	numLevels = 3
)

// DistanceFunc computes a symmetric edit distance between two foreign
// forms. Must be pure and deterministic.
type DistanceFunc func(a, b string) int

// Trial is one contrasting exercise: three words at a single
// difficulty level. Pairs[0] is the correct answer, the other two are
// distractors from the same similarity tier.
type Trial struct {
	Level int
	Pairs []*domain.Word
}

// levelResolver maps a 0-based round number to the contrasting level
// used for every trial of that round.
type levelResolver func(round int) int

// Engine sequences contrasting trials over a fixed pool of words.
//
// The pool is shuffled at construction and reshuffled at the start of
// every round; a round is one full pass over the pool. Distractors are
// drawn from similarity tiers precomputed once from pairwise edit
// distances, preferring the least-shown candidates so exposure spreads
// evenly.
//
// An Engine is not safe for concurrent use. Each drill session must
// own its own instance.
type Engine struct {
	pool    []*entry
	entries map[*domain.Word]*entry

	resolve levelResolver
	rng     *rand.Rand

	cursor    int
	round     int
	maxRounds int
	started   bool
	finished  bool
}

// NewStatic builds an engine that keeps every round at the dissimilar
// level. totalRounds is the number of full passes over the pool.
func NewStatic(pool []*domain.Word, totalRounds int, dist DistanceFunc) (*Engine, error) {
	return newEngine(pool, totalRounds, dist, func(int) int {
		return LevelDissimilar
	})
}

// NewProgressive builds an engine whose level for round r is
// schedule[r]. The schedule must have an entry for every round
// (length >= totalRounds); a short schedule is a caller bug and
// panics on the first trial of the uncovered round.
func NewProgressive(pool []*domain.Word, totalRounds int, schedule []int, dist DistanceFunc) (*Engine, error) {
	return newEngine(pool, totalRounds, dist, func(round int) int {
		return schedule[round]
	})
}

func newEngine(pool []*domain.Word, totalRounds int, dist DistanceFunc, resolve levelResolver) (*Engine, error) {
	// A trial needs three distinct words
	if len(pool) < 3 {
		return nil, fmt.Errorf("pool too small for contrasting trials: %d words, need at least 3", len(pool))
	}
	if totalRounds < 1 {
		return nil, fmt.Errorf("totalRounds must be positive, got %d", totalRounds)
	}
	if dist == nil {
		return nil, fmt.Errorf("distance function is required")
	}

	e := &Engine{
		pool:      make([]*entry, 0, len(pool)),
		entries:   make(map[*domain.Word]*entry, len(pool)),
		resolve:   resolve,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		maxRounds: totalRounds - 1,
	}

	for _, w := range pool {
		ent := &entry{
			word:  w,
			tiers: computeTiers(w, pool, dist),
		}
		e.pool = append(e.pool, ent)
		e.entries[w] = ent
	}

	e.shuffle()
	return e, nil
}

// Advance produces the next trial, or nil once every round has been
// played. After the first nil every further call returns nil.
func (e *Engine) Advance() *Trial {
	if e.finished {
		return nil
	}

	if !e.started {
		e.started = true
	} else if e.cursor == 0 {
		// Cursor wrapped: the previous call finished a round
		e.round++
		if e.round > e.maxRounds {
			e.finished = true
			return nil
		}
		e.shuffle()
	}

	level := e.resolve(e.round)
	pairs := e.selectTrial(e.pool[e.cursor], level)
	e.cursor = (e.cursor + 1) % len(e.pool)

	return &Trial{Level: level, Pairs: pairs}
}

// Round returns the 0-based round currently being played.
func (e *Engine) Round() int {
	return e.round
}

// PoolSize returns the number of words in the pool.
func (e *Engine) PoolSize() int {
	return len(e.pool)
}

func (e *Engine) shuffle() {
	e.rng.Shuffle(len(e.pool), func(i, j int) {
		e.pool[i], e.pool[j] = e.pool[j], e.pool[i]
	})
}
