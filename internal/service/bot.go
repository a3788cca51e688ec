package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the minimax best move for the machine mark.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	log := that.logger.With("game_id", game.ID)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("scored moves", "scores", tictactoe.ScoreMoves(game.Board))
	}

	cell, err := tictactoe.BestMove(game.Board)
	if err != nil {
		return -1, fmt.Errorf("bot could not choose a cell: %w", err)
	}

	if err = game.MakeTurn(entity.PlayerO, cell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Info("bot moved", "cell", cell, "status", game.Status)

	return cell, nil
}
