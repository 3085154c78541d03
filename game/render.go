package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const separator = "---------------"

// Render writes the board as plain text, one "|x|x|..|" line per row
// framed by separators, followed by the 1-based column numbers.
func Render(w io.Writer, b *Board) error {
	return render(w, b, func(p Player) string { return cellSymbol(p) })
}

// RenderColor is Render with discs coloured for the terminal w writes to.
// Colours degrade to plain text when w is not a terminal.
func RenderColor(w io.Writer, b *Board) error {
	out := termenv.NewOutput(w)
	colors := map[Player]termenv.Color{
		PlayerOne: out.Color("1"),
		PlayerTwo: out.Color("3"),
	}
	return render(w, b, func(p Player) string {
		c, ok := colors[p]
		if !ok {
			return cellSymbol(p)
		}
		return out.String(cellSymbol(p)).Foreground(c).Bold().String()
	})
}

func render(w io.Writer, b *Board, symbol func(Player) string) error {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.WriteString(separator)
		sb.WriteString("\n")
		for col := 0; col < Columns; col++ {
			sb.WriteString("|")
			sb.WriteString(symbol(b.cells[row][col]))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator)
	sb.WriteString("\n")
	for col := 1; col <= Columns; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func cellSymbol(p Player) string {
	switch p {
	case Empty:
		return " "
	case PlayerOne:
		return "1"
	case PlayerTwo:
		return "2"
	default:
		return "E"
	}
}
