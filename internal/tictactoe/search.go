// Package tictactoe scores positions with an exhaustive minimax search.
// PlayerO maximizes and PlayerX minimizes.
package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ScoreWin  = 10
	ScoreLoss = -10
	ScoreDraw = 0
)

// MoveScore - the value of playing O at Cell, with X to reply.
type MoveScore struct {
	Cell  int
	Score int
}

// Evaluate returns the minimax value of board. maximizing is true when O is to move.
// The board is passed by value, so every branch works on its own copy.
func Evaluate(board entity.Board, maximizing bool) int {
	if score, terminal := terminalScore(board); terminal {
		return score
	}

	mover := entity.PlayerX
	best := ScoreWin
	if maximizing {
		mover = entity.PlayerO
		best = ScoreLoss
	}

	for i, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		child := board
		child[i] = mover
		score := Evaluate(child, !maximizing)

		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}

// BestMove returns the cell O should play. Ties go to the lowest index.
func BestMove(board entity.Board) (int, error) {
	scores := ScoreMoves(board)
	if len(scores) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	best := scores[0]
	for _, candidate := range scores[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return best.Cell, nil
}

// ScoreMoves scores every legal move for O in ascending cell order.
func ScoreMoves(board entity.Board) []MoveScore {
	moves := board.LegalMoves()
	scores := make([]MoveScore, 0, len(moves))

	for _, move := range moves {
		child := board
		child[move] = entity.PlayerO
		scores = append(scores, MoveScore{Cell: move, Score: Evaluate(child, false)})
	}

	return scores
}

// terminalScore - an O win is checked before an X win, and both before a full board.
func terminalScore(board entity.Board) (int, bool) {
	switch {
	case board.IsWinner(entity.PlayerO):
		return ScoreWin, true
	case board.IsWinner(entity.PlayerX):
		return ScoreLoss, true
	case board.IsDraw():
		return ScoreDraw, true
	default:
		return 0, false
	}
}
