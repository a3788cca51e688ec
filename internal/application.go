package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - plays one console game against the bot.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	input := console.NewInput(in, out)
	presenter := console.NewPresenter(out, conf.Console.ColorEnabled())
	botService := service.NewBotService(logger)
	gameUseCase := usecase.NewGameUseCase(logger, input, presenter, botService, conf.Game.BotStarts())

	game, err := gameUseCase.Play(ctx)
	if game != nil && (errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled)) {
		log.Info("game abandoned", "game_id", game.ID, "moves", game.Moves)
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
