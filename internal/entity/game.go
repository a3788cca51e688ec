package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWonByX     Status = "won_by_x"
	StatusWonByO     Status = "won_by_o"
	StatusDraw       Status = "draw"
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Cell   `json:"turn"`
	Status Status `json:"status"`
	Moves  int    `json:"moves"`
}

func NewGame(id string, first Cell) *Game {
	return &Game{
		ID:     id,
		Turn:   first,
		Status: StatusInProgress,
	}
}

// MakeTurn - applies a move for playerMark and re-derives the game status.
func (that *Game) MakeTurn(playerMark Cell, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(cell, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Moves++
	that.UpdateGameState(playerMark)

	return nil
}

// UpdateGameState - a win for the side that just moved takes priority over a draw.
func (that *Game) UpdateGameState(justMoved Cell) {
	switch {
	case that.Board.IsWinner(justMoved) && justMoved == PlayerX:
		that.Status = StatusWonByX
		that.Turn = EmptyCell
	case that.Board.IsWinner(justMoved) && justMoved == PlayerO:
		that.Status = StatusWonByO
		that.Turn = EmptyCell
	case that.Board.IsDraw():
		that.Status = StatusDraw
		that.Turn = EmptyCell
	default:
		that.Status = StatusInProgress
		that.Turn = justMoved.Opponent()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWonByX || that.Status == StatusWonByO || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// Winner - the winning mark, or EmptyCell for a draw or an unfinished game.
func (that *Game) Winner() Cell {
	switch that.Status {
	case StatusWonByX:
		return PlayerX
	case StatusWonByO:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
