package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Error represents a configuration error
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrInvalidConfig is returned when a value is out of range
	ErrInvalidConfig Error = "invalid config"
)

// Config holds the settings of a simulation batch
type Config struct {
	RedisAddr     string     `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string     `env:"REDIS_PASSWORD"`
	ResultsDB     string     `env:"RESULTS_DB" envDefault:"monosim.db"`
	Games         int        `env:"GAMES" envDefault:"100"`
	BaseSeed      int64      `env:"BASE_SEED" envDefault:"1000"`
	Players       int        `env:"PLAYERS" envDefault:"2"`
	MaxRounds     int        `env:"MAX_ROUNDS" envDefault:"2000"`
	Workers       int        `env:"WORKERS" envDefault:"4"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads the given env files, .env by default, then parses the environment.
// Missing env files are ignored and variables already set win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the batch can run
func (c *Config) Validate() error {
	switch {
	case c.Games < 1:
		return fmt.Errorf("%w: GAMES must be at least 1, got %d", ErrInvalidConfig, c.Games)
	case c.Players < 2:
		return fmt.Errorf("%w: PLAYERS must be at least 2, got %d", ErrInvalidConfig, c.Players)
	case c.MaxRounds < 1:
		return fmt.Errorf("%w: MAX_ROUNDS must be at least 1, got %d", ErrInvalidConfig, c.MaxRounds)
	case c.Workers < 1:
		return fmt.Errorf("%w: WORKERS must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// PlayerNames returns the seat names of every game in the batch
func (c *Config) PlayerNames() []string {
	names := make([]string, c.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}

// Seed returns the dice seed of the i-th game of the batch
func (c *Config) Seed(i int) int64 {
	return c.BaseSeed + int64(i)
}
