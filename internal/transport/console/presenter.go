package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const rowSeparator = "\n---+---+---\n"

// Presenter writes boards and messages. It never changes the board it is given.
type Presenter struct {
	out io.Writer
	au  aurora.Aurora
}

func NewPresenter(out io.Writer, color bool) *Presenter {
	return &Presenter{
		out: out,
		au:  aurora.NewAurora(color),
	}
}

func (that *Presenter) Greet() error {
	return that.write("Welcome to Tic Tac Toe!\nYou are X, the computer is O. Pick a cell by its number (1-9):\n")
}

// Render - empty cells show their 1-based number so the player knows what to type.
func (that *Presenter) Render(board entity.Board) error {
	var sb strings.Builder

	sb.WriteString("\n")
	for i, cell := range board {
		sb.WriteString(" ")
		sb.WriteString(that.cell(i, cell))

		switch {
		case i%3 != 2:
			sb.WriteString(" |")
		case i != len(board)-1:
			sb.WriteString(rowSeparator)
		}
	}
	sb.WriteString("\n")

	return that.write(sb.String())
}

func (that *Presenter) BotThinking() error {
	return that.write("\nComputer's turn...\n")
}

func (that *Presenter) Announce(game *entity.Game) error {
	switch game.Status {
	case entity.StatusWonByX:
		return that.write(that.au.Green("Congratulations, you won!").String() + "\n")
	case entity.StatusWonByO:
		return that.write(that.au.Red("The computer won. Better luck next time!").String() + "\n")
	case entity.StatusDraw:
		return that.write(that.au.Yellow("It's a draw!").String() + "\n")
	default:
		return that.write(fmt.Sprintf("Game stopped after %d moves.\n", game.Moves))
	}
}

func (that *Presenter) cell(i int, cell entity.Cell) string {
	switch cell {
	case entity.PlayerX:
		return that.au.Cyan(cell.String()).String()
	case entity.PlayerO:
		return that.au.Magenta(cell.String()).String()
	default:
		return strconv.Itoa(i + 1)
	}
}

func (that *Presenter) write(s string) error {
	if _, err := io.WriteString(that.out, s); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}
