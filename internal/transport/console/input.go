package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

const (
	msgPrompt      = "\nYour move (1-9): "
	msgNotANumber  = "Please enter a number between 1 and 9.\n"
	msgInvalidMove = "Invalid move, try again.\n"
)

type line struct {
	text string
	err  error
}

// Input reads the human's moves. It owns validation so the board only sees legal cells.
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer

	once  sync.Once
	lines chan line
}

func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
	}
}

// NextMove - prompts until the player names an empty cell and returns its 0-based index.
// A cancelled context ends the wait even while a read is pending.
func (that *Input) NextMove(ctx context.Context, board entity.Board) (int, error) {
	that.once.Do(func() {
		go that.readLines()
	})

	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		if _, err := io.WriteString(that.out, msgPrompt); err != nil {
			return -1, fmt.Errorf("failed to write prompt: %w", err)
		}

		var next line
		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case l, ok := <-that.lines:
			if !ok {
				return -1, ErrInputClosed
			}
			next = l
		}

		if next.err != nil {
			return -1, next.err
		}

		number, err := strconv.Atoi(strings.TrimSpace(next.text))
		if err != nil {
			if _, err = io.WriteString(that.out, msgNotANumber); err != nil {
				return -1, fmt.Errorf("failed to write message: %w", err)
			}

			continue
		}

		cell := number - 1
		if cell < 0 || cell >= len(board) || board[cell] != entity.EmptyCell {
			if _, err = io.WriteString(that.out, msgInvalidMove); err != nil {
				return -1, fmt.Errorf("failed to write message: %w", err)
			}

			continue
		}

		return cell, nil
	}
}

// readLines - the only goroutine touching the scanner. It stops at EOF or on a read error.
func (that *Input) readLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: fmt.Errorf("failed to read move: %w", err)}
	}
}
