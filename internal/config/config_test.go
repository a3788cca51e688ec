package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults are applied to missing keys", func(t *testing.T) {
		// Given: a config file that sets none of the defaulted keys
		path := writeConfig(t, "log-file: \"\"\n")
		t.Setenv("NO_COLOR", "")

		// When: loading it
		conf, err := Load(path)

		// Then: every default is set
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.LogFile)
		assert.Equal(t, FirstPlayerHuman, conf.Game.FirstPlayer)
		assert.False(t, conf.Game.BotStarts())
		assert.True(t, conf.Console.ColorEnabled())

		level, err := conf.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelInfo, level)
	})

	t.Run("Values from the file win over defaults", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
log-file: game.log
game:
  first-player: bot
console:
  no-color: "1"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
		assert.True(t, conf.Game.BotStarts())
		assert.False(t, conf.Console.ColorEnabled())

		level, err := conf.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: the file asks for a human start but the env asks for the bot
		path := writeConfig(t, "game:\n  first-player: human\n")
		t.Setenv("GAME_FIRST_PLAYER", "bot")

		// When: loading the config
		conf, err := Load(path)

		// Then: the env value is used
		require.NoError(t, err)
		assert.True(t, conf.Game.BotStarts())
	})

	t.Run("Unknown first player is rejected", func(t *testing.T) {
		path := writeConfig(t, "game:\n  first-player: nobody\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownFirstPlayer)
	})

	t.Run("Unknown log level is rejected", func(t *testing.T) {
		// Given: a log level slog does not know
		path := writeConfig(t, "log-level: trace\n")

		// When: loading the config
		_, err := Load(path)

		// Then: it is refused instead of falling back to info
		require.ErrorIs(t, err, ErrUnknownLogLevel)
	})

	t.Run("Log level is case insensitive", func(t *testing.T) {
		path := writeConfig(t, "log-level: WARN\n")

		conf, err := Load(path)
		require.NoError(t, err)

		level, err := conf.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, level)
	})

	t.Run("Any NO_COLOR value disables colours", func(t *testing.T) {
		// Given: NO_COLOR holds a value that is not a boolean
		path := writeConfig(t, "log-file: \"\"\n")
		t.Setenv("NO_COLOR", "yes")

		// When: loading the config
		conf, err := Load(path)

		// Then: loading succeeds and colours are off
		require.NoError(t, err)
		assert.False(t, conf.Console.ColorEnabled())
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
