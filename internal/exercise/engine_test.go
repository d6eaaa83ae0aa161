package exercise

import (
	"testing"

	"contraster/internal/domain"
	"contraster/internal/levenshtein"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatic_Validation(t *testing.T) {
	tests := []struct {
		name        string
		forms       []string
		totalRounds int
		dist        DistanceFunc
		expectError bool
	}{
		{
			name:        "valid engine",
			forms:       []string{"cat", "bat", "dog"},
			totalRounds: 1,
			dist:        levenshtein.Distance,
			expectError: false,
		},
		{
			name:        "pool of two",
			forms:       []string{"cat", "bat"},
			totalRounds: 1,
			dist:        levenshtein.Distance,
			expectError: true,
		},
		{
			name:        "empty pool",
			forms:       nil,
			totalRounds: 1,
			dist:        levenshtein.Distance,
			expectError: true,
		},
		{
			name:        "zero rounds",
			forms:       []string{"cat", "bat", "dog"},
			totalRounds: 0,
			dist:        levenshtein.Distance,
			expectError: true,
		},
		{
			name:        "nil distance",
			forms:       []string{"cat", "bat", "dog"},
			totalRounds: 1,
			dist:        nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := NewStatic(newTestPool(tt.forms...), tt.totalRounds, tt.dist)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, eng)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, eng)
			}
		})
	}
}

func TestEngine_StaticAlwaysDissimilarLevel(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat", "hat")
	eng, err := NewStatic(pool, 3, levenshtein.Distance)
	require.NoError(t, err)

	for trial := eng.Advance(); trial != nil; trial = eng.Advance() {
		assert.Equal(t, LevelDissimilar, trial.Level)
	}
}

func TestEngine_ProgressiveFollowsSchedule(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat", "hat")
	schedule := []int{LevelDissimilar, LevelSimilar, LevelVerySimilar}
	eng, err := NewProgressive(pool, 3, schedule, levenshtein.Distance)
	require.NoError(t, err)

	// One level per round, switching exactly on the round boundary
	for round := 0; round < 3; round++ {
		for i := 0; i < len(pool); i++ {
			trial := eng.Advance()
			require.NotNil(t, trial, "round %d trial %d", round, i)
			assert.Equal(t, schedule[round], trial.Level)
		}
	}
	assert.Nil(t, eng.Advance())
}

func TestEngine_TerminatesAfterAllRounds(t *testing.T) {
	tests := []struct {
		name        string
		poolSize    int
		totalRounds int
	}{
		{
			name:        "two rounds pool of three",
			poolSize:    3,
			totalRounds: 2,
		},
		{
			name:        "single round",
			poolSize:    4,
			totalRounds: 1,
		},
		{
			name:        "five rounds",
			poolSize:    3,
			totalRounds: 5,
		},
	}

	forms := []string{"cat", "bat", "rat", "hat", "mat"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newTestPool(forms[:tt.poolSize]...)
			eng, err := NewStatic(pool, tt.totalRounds, levenshtein.Distance)
			require.NoError(t, err)

			trials := 0
			for eng.Advance() != nil {
				trials++
				require.LessOrEqual(t, trials, tt.poolSize*tt.totalRounds+1, "engine failed to terminate")
			}

			// One trial per pool word per round, then empty forever
			assert.Equal(t, tt.poolSize*tt.totalRounds, trials)
			assert.Nil(t, eng.Advance())
			assert.Nil(t, eng.Advance())
		})
	}
}

func TestEngine_EachWordTargetedOncePerRound(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat", "hat")
	eng, err := NewStatic(pool, 2, levenshtein.Distance)
	require.NoError(t, err)

	for round := 0; round < 2; round++ {
		targets := make(map[*domain.Word]bool)
		for i := 0; i < len(pool); i++ {
			trial := eng.Advance()
			require.NotNil(t, trial)
			targets[trial.Pairs[0]] = true
		}
		assert.Len(t, targets, len(pool), "round %d", round)
	}
}

func TestEngine_AdvanceBumpsOnlyChosenWords(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat", "hat", "sun")
	eng, err := NewStatic(pool, 2, levenshtein.Distance)
	require.NoError(t, err)

	for {
		before := make(map[*domain.Word]int, len(pool))
		for _, w := range pool {
			before[w] = eng.entries[w].seen
		}

		trial := eng.Advance()
		if trial == nil {
			break
		}

		chosen := make(map[*domain.Word]bool)
		for _, w := range trial.Pairs {
			chosen[w] = true
		}
		require.Len(t, chosen, 3, "trial words must be distinct")

		for _, w := range pool {
			expected := before[w]
			if chosen[w] {
				expected++
			}
			assert.Equal(t, expected, eng.entries[w].seen, "word %q", w.Word)
		}
	}
}

func TestEngine_TrialShape(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat", "hat")
	eng, err := NewStatic(pool, 1, levenshtein.Distance)
	require.NoError(t, err)

	trial := eng.Advance()

	require.NotNil(t, trial)
	require.Len(t, trial.Pairs, 3)
	for _, w := range trial.Pairs {
		assert.Contains(t, pool, w)
	}
}

func TestEngine_RoundAccounting(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat")
	eng, err := NewStatic(pool, 2, levenshtein.Distance)
	require.NoError(t, err)

	assert.Equal(t, 0, eng.Round())
	assert.Equal(t, 3, eng.PoolSize())

	for i := 0; i < 3; i++ {
		require.NotNil(t, eng.Advance())
		assert.Equal(t, 0, eng.Round())
	}
	require.NotNil(t, eng.Advance())
	assert.Equal(t, 1, eng.Round())
}

func TestEngine_EquidistantPoolAtHardLevels(t *testing.T) {
	// Equidistant pools leave only the dissimilar tier populated.
	// Rounds asking for the similar tiers must still produce full
	// trials instead of failing on the empty ones.
	schedules := [][]int{
		{LevelVerySimilar},
		{LevelSimilar},
		{LevelVerySimilar, LevelSimilar},
	}

	for _, schedule := range schedules {
		pool := newTestPool("ab", "cd", "ef", "gh")
		eng, err := NewProgressive(pool, len(schedule), schedule, levenshtein.Distance)
		require.NoError(t, err)

		trials := 0
		for trial := eng.Advance(); trial != nil; trial = eng.Advance() {
			require.Len(t, trial.Pairs, 3)
			assert.NotEqual(t, trial.Pairs[0], trial.Pairs[1])
			assert.NotEqual(t, trial.Pairs[0], trial.Pairs[2])
			assert.NotEqual(t, trial.Pairs[1], trial.Pairs[2])
			trials++
		}
		assert.Equal(t, len(pool)*len(schedule), trials)
	}
}

func TestEngine_ProgressiveShortSchedulePanics(t *testing.T) {
	pool := newTestPool("cat", "bat", "rat")
	eng, err := NewProgressive(pool, 2, []int{LevelDissimilar}, levenshtein.Distance)
	require.NoError(t, err)

	// Round 0 is covered
	for i := 0; i < 3; i++ {
		require.NotNil(t, eng.Advance())
	}

	// Round 1 has no schedule entry: caller bug, surfaces as a panic
	assert.Panics(t, func() {
		eng.Advance()
	})
}
