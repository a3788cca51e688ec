package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
)

type GameUseCase interface {
	Play(ctx context.Context) (*entity.Game, error)
}

type positionSource interface {
	NextMove(ctx context.Context, board entity.Board) (int, error)
}

type presenter interface {
	Greet() error
	Render(board entity.Board) error
	BotThinking() error
	Announce(game *entity.Game) error
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type gameUseCase struct {
	logger *slog.Logger

	human     positionSource
	presenter presenter
	bot       botService

	botStarts bool
}

func NewGameUseCase(logger *slog.Logger, human positionSource, presenter presenter, bot botService, botStarts bool) GameUseCase {
	return &gameUseCase{
		logger:    logger.With("component", "game"),
		human:     human,
		presenter: presenter,
		bot:       bot,
		botStarts: botStarts,
	}
}

// Play - runs one game to completion, alternating the human and the bot.
func (that *gameUseCase) Play(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	first := entity.PlayerX
	if that.botStarts {
		first = entity.PlayerO
	}

	game := entity.NewGame(gameID, first)
	log := that.logger.With("game_id", game.ID)
	log.Info("game started", "first", first.String())

	if err = that.presenter.Greet(); err != nil {
		return nil, err
	}

	if err = that.presenter.Render(game.Board); err != nil {
		return nil, err
	}

	for game.IsOngoing() {
		if err = ctx.Err(); err != nil {
			log.Info("game interrupted", "moves", game.Moves)
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		if game.Turn == entity.PlayerX {
			err = that.humanTurn(ctx, game)
		} else {
			err = that.botTurn(game)
		}

		if err != nil {
			return game, err
		}

		if err = that.presenter.Render(game.Board); err != nil {
			return game, err
		}
	}

	log.Info("game finished", "status", game.Status, "moves", game.Moves)

	if err = that.presenter.Announce(game); err != nil {
		return game, err
	}

	return game, nil
}

func (that *gameUseCase) humanTurn(ctx context.Context, game *entity.Game) error {
	cell, err := that.human.NextMove(ctx, game.Board)
	if err != nil {
		return fmt.Errorf("failed to read human move: %w", err)
	}

	if err = game.MakeTurn(entity.PlayerX, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("human moved", "game_id", game.ID, "cell", cell)

	return nil
}

func (that *gameUseCase) botTurn(game *entity.Game) error {
	if err := that.presenter.BotThinking(); err != nil {
		return err
	}

	if _, err := that.bot.MakeTurn(game); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
