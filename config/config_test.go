package config_test

import (
	"os"
	"testing"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"UNO_PLAYERS", "UNO_PLAYER_NAMES", "UNO_TARGET_SCORE", "UNO_NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("applies_defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load()

		require.NoError(t, err)
		require.Zero(t, cfg.Players)
		require.Empty(t, cfg.PlayerNames)
		require.Equal(t, 500, cfg.TargetScore)
		require.False(t, cfg.NoColor)
	})

	t.Run("reads_the_environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("UNO_PLAYERS", "4")
		t.Setenv("UNO_PLAYER_NAMES", "Ann,Ben,Cam,Dee")
		t.Setenv("UNO_TARGET_SCORE", "250")
		t.Setenv("UNO_NO_COLOR", "true")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.Equal(t, 4, cfg.Players)
		require.Equal(t, []string{"Ann", "Ben", "Cam", "Dee"}, cfg.PlayerNames)
		require.Equal(t, 250, cfg.TargetScore)
		require.True(t, cfg.NoColor)
	})

	t.Run("rejects_an_invalid_player_count", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("UNO_PLAYERS", "1")

		_, err := config.Load()
		require.ErrorIs(t, err, consts.ErrorsPlayerCountInvalid)

		t.Setenv("UNO_PLAYERS", "11")

		_, err = config.Load()
		require.ErrorIs(t, err, consts.ErrorsPlayerCountInvalid)
	})

	t.Run("rejects_a_non_positive_target_score", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("UNO_TARGET_SCORE", "0")

		_, err := config.Load()

		require.ErrorIs(t, err, consts.ErrorsTargetScoreInvalid)
	})

	t.Run("rejects_malformed_numbers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("UNO_PLAYERS", "lots")

		_, err := config.Load()

		require.Error(t, err)
	})
}
