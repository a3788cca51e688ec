package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Cell - state of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	// PlayerX is the human side; the search minimizes for it.
	PlayerX
	// PlayerO is the machine side; the search maximizes for it.
	PlayerO
)

const BoardSize = 9

// WinCombos - the rows, columns and diagonals of the grid.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// IsMark - reports whether the cell is one of the two player marks.
func (that Cell) IsMark() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is a 3x3 grid stored row-major: index 0 is top-left, 8 is bottom-right.
type Board [BoardSize]Cell

// IsWinner - checks whether side occupies a whole line.
func (that Board) IsWinner(side Cell) bool {
	if !side.IsMark() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == side && that[combo[1]] == side && that[combo[2]] == side {
			return true
		}
	}

	return false
}

// IsDraw - reports a full board. It says nothing about winners, so check IsWinner first.
func (that Board) IsDraw() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// LegalMoves - empty cell indices in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Apply - places mark on an empty cell. The board is left untouched on error.
func (that *Board) Apply(index int, mark Cell) error {
	if index < 0 || index >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !mark.IsMark() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = mark

	return nil
}
