package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()

	assert.Equal(t, "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable", dsn)
}

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []int
		expectError bool
	}{
		{
			name:     "descending schedule",
			input:    "2,1,0",
			expected: []int{2, 1, 0},
		},
		{
			name:     "with spaces",
			input:    "2, 2, 1",
			expected: []int{2, 2, 1},
		},
		{
			name:     "single level",
			input:    "0",
			expected: []int{0},
		},
		{
			name:        "not a number",
			input:       "2,hard,0",
			expectError: true,
		},
		{
			name:        "level out of range",
			input:       "2,3,0",
			expectError: true,
		},
		{
			name:        "negative level",
			input:       "-1,0",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := parseLevels(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, levels)
			}
		})
	}
}

func TestLoadDrill(t *testing.T) {
	tests := []struct {
		name        string
		rounds      string
		levels      string
		expected    DrillConfig
		expectError bool
	}{
		{
			name:     "defaults",
			expected: DrillConfig{Rounds: 3, Levels: []int{2, 1, 0}},
		},
		{
			name:     "custom schedule",
			rounds:   "2",
			levels:   "2,0",
			expected: DrillConfig{Rounds: 2, Levels: []int{2, 0}},
		},
		{
			name:     "schedule longer than rounds",
			rounds:   "1",
			levels:   "2,1,0",
			expected: DrillConfig{Rounds: 1, Levels: []int{2, 1, 0}},
		},
		{
			name:        "schedule shorter than rounds",
			rounds:      "4",
			levels:      "2,1",
			expectError: true,
		},
		{
			name:        "zero rounds",
			rounds:      "0",
			expectError: true,
		},
		{
			name:        "rounds not a number",
			rounds:      "many",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rounds != "" {
				os.Setenv("DRILL_ROUNDS", tt.rounds)
				defer os.Unsetenv("DRILL_ROUNDS")
			}
			if tt.levels != "" {
				os.Setenv("DRILL_LEVELS", tt.levels)
				defer os.Unsetenv("DRILL_LEVELS")
			}

			drill, err := loadDrill()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, drill)
			}
		})
	}
}
