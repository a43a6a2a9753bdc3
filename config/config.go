package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
)

// Config carries the process settings. Every field can be supplied
// through the environment, so a series can start without answering the
// interactive seating prompts.
type Config struct {
	Players     int      `env:"UNO_PLAYERS"`
	PlayerNames []string `env:"UNO_PLAYER_NAMES" envSeparator:","`
	TargetScore int      `env:"UNO_TARGET_SCORE" envDefault:"500"`
	NoColor     bool     `env:"UNO_NO_COLOR"`
}

// Load reads an optional .env file and the process environment. A zero
// Players value means the player count is asked for interactively.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Players != 0 && (cfg.Players < consts.MinPlayers || cfg.Players > consts.MaxPlayers) {
		return Config{}, consts.ErrorsPlayerCountInvalid
	}
	if cfg.TargetScore <= 0 {
		return Config{}, consts.ErrorsTargetScoreInvalid
	}
	return cfg, nil
}
