package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lazharichir/blackjack/game"
)

// Config holds everything needed to prepare and play rounds.
type Config struct {
	Decks       int    `env:"BLACKJACK_DECKS" envDefault:"1"`
	Shuffles    int    `env:"BLACKJACK_SHUFFLES" envDefault:"5"`
	CutPosition int    `env:"BLACKJACK_CUT" envDefault:"5"`
	DealerName  string `env:"BLACKJACK_DEALER_NAME" envDefault:"Dealer"`
	PlayerName  string `env:"BLACKJACK_PLAYER_NAME" envDefault:"Glenn"`

	// Seed fixes the shuffle; 0 seeds from the clock.
	Seed int64 `env:"BLACKJACK_SEED" envDefault:"0"`

	// ServerPort switches from a single printed round to the spectator server.
	ServerPort string `env:"BLACKJACK_SERVER_PORT"`
}

// Load reads a .env file if present, then the environment, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Rules returns the shoe preparation rules.
func (c Config) Rules() game.Rules {
	return game.Rules{
		Decks:       c.Decks,
		Shuffles:    c.Shuffles,
		CutPosition: c.CutPosition,
	}
}

// Validate rejects configurations that could not start a round.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DealerName == "" || c.PlayerName == "" {
		return errors.New("invalid config: BLACKJACK_DEALER_NAME and BLACKJACK_PLAYER_NAME must not be empty")
	}
	return nil
}

// RandomSeed returns Seed, or the current time when no seed is configured.
func (c Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
