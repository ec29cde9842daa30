package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsujio/game-color-dots/dots"
	"github.com/tsujio/game-color-dots/settings"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"GAME_RAND_SEED", "GAME_MODE", "GAME_DOTS_TOTAL"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := settings.Load("")
	require.NoError(t, err)
	assert.Equal(t, dots.ModeSingle, cfg.Mode)
	assert.Equal(t, 50, cfg.Total)
	assert.NotNil(t, cfg.Random)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GAME_MODE", "levels")
	t.Setenv("GAME_DOTS_TOTAL", "12")
	t.Setenv("GAME_RAND_SEED", "7")

	cfg, err := settings.Load("")
	require.NoError(t, err)
	assert.Equal(t, dots.ModeLevels, cfg.Mode)
	assert.Equal(t, 12, cfg.Total)

	other, err := settings.Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg.Random.Int63(), other.Random.Int63())
}

func TestLoadFragmentOverridesTotal(t *testing.T) {
	clearEnv(t)
	t.Setenv("GAME_MODE", "levels")

	cfg, err := settings.Load("25")
	require.NoError(t, err)
	assert.Equal(t, dots.ModeSingle, cfg.Mode)
	assert.Equal(t, 25, cfg.Total)

	cfg, err = settings.Load("abc")
	require.NoError(t, err)
	assert.Equal(t, dots.ModeLevels, cfg.Mode)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("GAME_MODE", "endless")
	_, err := settings.Load("")
	assert.ErrorContains(t, err, "GAME_MODE")

	t.Setenv("GAME_MODE", "")
	t.Setenv("GAME_DOTS_TOTAL", "many")
	_, err = settings.Load("")
	assert.ErrorContains(t, err, "GAME_DOTS_TOTAL")

	t.Setenv("GAME_DOTS_TOTAL", "0")
	_, err = settings.Load("")
	assert.Error(t, err)

	_, err = settings.Load("-3")
	assert.Error(t, err)
}
