package player

import (
	"bufio"
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrNoInput = errors.New("no more input")

// Human reads 1-based column numbers, one per line, re-prompting until a
// playable column is entered.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) FindMove(b *game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	for {
		fmt.Fprintf(h.out, "%s, enter a column (1-%d): ", p, game.Columns)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to read column: %w", err)
			}
			return game.NoMove, metrics.SearchMetric{}, ErrNoInput
		}

		col, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err != nil || col < 1 || col > game.Columns {
			fmt.Fprintf(h.out, "Enter a number from 1 to %d\n", game.Columns)
			continue
		}

		row, ok := b.LowestEmptyRow(col - 1)
		if !ok {
			fmt.Fprintf(h.out, "Column %d is already full\n", col)
			continue
		}
		return game.Move{Row: row, Col: col - 1}, metrics.SearchMetric{}, nil
	}
}
