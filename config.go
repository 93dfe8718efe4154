package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/namsral/flag"

	"github.com/robalobadob/mastermind/internal/session"
)

// Config is read from the environment (and .env), then refined by flags.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	MaxGames  int    `env:"MAX_GAMES" envDefault:"20"`
	NoColor   bool   `env:"NO_COLOR"`

	Games int   // 0 means ask
	Seed  int64 // 0 means crypto randomness
	Daily bool
}

func loadConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSetWithEnvPrefix("mastermind", "MASTERMIND", flag.ContinueOnError)
	fs.IntVar(&cfg.Games, "games", 0, "Number of games to play (1-max); asks when 0")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Seed for reproducible secret codes")
	fs.BoolVar(&cfg.Daily, "daily", false, "Play the shared code of the day")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.MaxGames < 1 || cfg.MaxGames > session.MaxGames {
		return Config{}, fmt.Errorf("MAX_GAMES must be between 1 and %d, got %d", session.MaxGames, cfg.MaxGames)
	}
	if cfg.Games < 0 || cfg.Games > cfg.MaxGames {
		return Config{}, fmt.Errorf("-games must be between 1 and %d", cfg.MaxGames)
	}
	if cfg.Daily && cfg.Seed != 0 {
		return Config{}, fmt.Errorf("-daily and -seed are mutually exclusive")
	}
	if cfg.Daily {
		cfg.Games = 1
	}
	return cfg, nil
}
