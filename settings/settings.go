// Package settings builds a dots.Config from the environment for the
// frontends.
package settings

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tsujio/game-color-dots/dots"
)

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Init loads .env when present and configures the global logger from
// LOG_LEVEL.
func Init(gameName string) {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.With().Str("game", gameName).Logger()
}

// Load reads GAME_RAND_SEED, GAME_MODE and GAME_DOTS_TOTAL on top of the
// defaults. A numeric fragment (the browser's location hash) overrides the
// total and forces single mode.
func Load(fragment string) (dots.Config, error) {
	cfg := dots.DefaultConfig()
	cfg.Logger = log.Logger

	seed := time.Now().UnixNano()
	if s, err := strconv.Atoi(os.Getenv("GAME_RAND_SEED")); err == nil {
		seed = int64(s)
	}
	cfg.Random = rand.New(rand.NewSource(seed))

	mode, err := dots.ParseMode(os.Getenv("GAME_MODE"))
	if err != nil {
		return cfg, fmt.Errorf("GAME_MODE: %w", err)
	}
	cfg.Mode = mode

	if v := os.Getenv("GAME_DOTS_TOTAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("GAME_DOTS_TOTAL: %w", err)
		}
		cfg.Total = n
	}

	if fragment != "" {
		n, err := strconv.Atoi(fragment)
		if err != nil {
			log.Warn().Str("fragment", fragment).Msg("ignoring non-numeric url fragment")
		} else {
			cfg.Mode = dots.ModeSingle
			cfg.Total = n
		}
	}

	return cfg, cfg.Validate()
}
