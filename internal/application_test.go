package application

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	t.Run("Plays a full game on the console", func(t *testing.T) {
		// Given: a human who types 1, 2, 3, 4
		conf := &config.Config{
			Game:    config.Game{FirstPlayer: config.FirstPlayerHuman},
			Console: config.Console{NoColor: "1"},
		}
		var out bytes.Buffer

		// When: the app runs
		err := RunApp(logger, conf, strings.NewReader("1\n2\n3\n4\n"), &out)

		// Then: the bot wins with the 2-4-6 diagonal
		require.NoError(t, err)
		assert.Contains(t, out.String(), " X | X | O\n---+---+---\n X | O | 6\n---+---+---\n O | 8 | 9\n")
		assert.Contains(t, out.String(), "The computer won. Better luck next time!")
	})

	t.Run("Closed input ends the app quietly", func(t *testing.T) {
		conf := &config.Config{
			Game:    config.Game{FirstPlayer: config.FirstPlayerBot},
			Console: config.Console{NoColor: "1"},
		}
		var out bytes.Buffer

		err := RunApp(logger, conf, strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "\n O | 2 | 3\n")
	})
}
