package handler

import (
	"testing"

	"contraster/internal/exercise"

	"github.com/stretchr/testify/assert"
)

func TestLevelBadge(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected string
	}{
		{
			name:     "very similar distractors are the hard mode",
			level:    exercise.LevelVerySimilar,
			expected: "🔴",
		},
		{
			name:     "somewhat similar",
			level:    exercise.LevelSimilar,
			expected: "🟡",
		},
		{
			name:     "dissimilar distractors are the easy mode",
			level:    exercise.LevelDissimilar,
			expected: "🟢",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelBadge(tt.level))
		})
	}
}
