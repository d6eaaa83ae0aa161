package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	Drill       DrillConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// DrillConfig holds contrasting drill settings.
// Rounds is the number of full passes over the word pool per session.
// Levels is the per-round difficulty schedule for progressive drills,
// one entry per round, each in [0,2] (0 = most similar distractors).
type DrillConfig struct {
	Rounds int
	Levels []int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "contraster"),
			User:     getEnv("DB_USER", "contraster"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	drill, err := loadDrill()
	if err != nil {
		return nil, err
	}
	cfg.Drill = drill

	return cfg, nil
}

// loadDrill reads and validates drill settings. The level schedule is
// checked against the round count here so the engine never sees a
// schedule that is too short.
func loadDrill() (DrillConfig, error) {
	rounds, err := strconv.Atoi(getEnv("DRILL_ROUNDS", "3"))
	if err != nil || rounds < 1 {
		return DrillConfig{}, fmt.Errorf("DRILL_ROUNDS must be a positive integer")
	}

	levels, err := parseLevels(getEnv("DRILL_LEVELS", "2,1,0"))
	if err != nil {
		return DrillConfig{}, err
	}
	if len(levels) < rounds {
		return DrillConfig{}, fmt.Errorf("DRILL_LEVELS has %d entries, need one per round (%d)", len(levels), rounds)
	}

	return DrillConfig{Rounds: rounds, Levels: levels}, nil
}

// parseLevels parses a comma-separated level schedule like "2,1,0"
func parseLevels(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, p := range parts {
		lvl, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("DRILL_LEVELS entry %q is not an integer", p)
		}
		if lvl < 0 || lvl > 2 {
			return nil, fmt.Errorf("DRILL_LEVELS entry %d out of range [0,2]", lvl)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
