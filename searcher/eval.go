package searcher

import "connect4/game"

// Line directions through a cell: horizontal, vertical, main diagonal and anti-diagonal.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

const windowSize = 5

// Evaluator scores open two- and three-chains around every occupied cell.
type Evaluator struct {
	ThreeChainScore int
	TwoChainScore   int
}

func NewEvaluator(threeChainScore, twoChainScore int) Evaluator {
	return Evaluator{ThreeChainScore: threeChainScore, TwoChainScore: twoChainScore}
}

// Evaluate sums the chain contributions of every occupied cell in all four
// directions, positive for chains owned by perspective and negative otherwise.
// A pattern is counted once per cell and direction it is seen from.
func (e Evaluator) Evaluate(b *game.Board, perspective game.Player) int {
	score := 0
	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Columns; col++ {
			if b.At(row, col) == game.Empty {
				continue
			}
			for _, d := range directions {
				w := window(b, row, col, d[0], d[1])
				if w[1] == game.Empty && w[3] == game.Empty {
					continue
				}
				score += e.chain(w, perspective)
			}
		}
	}
	return score
}

// window returns the 5 cells centred on (row, col) along (dRow, dCol).
// Cells off the board read as Empty.
func window(b *game.Board, row, col, dRow, dCol int) [windowSize]game.Player {
	var w [windowSize]game.Player
	for i := range w {
		offset := i - windowSize/2
		r, c := row+offset*dRow, col+offset*dCol
		if r < 0 || r >= game.Rows || c < 0 || c >= game.Columns {
			continue
		}
		w[i] = b.At(r, c)
	}
	return w
}

func (e Evaluator) chain(w [windowSize]game.Player, perspective game.Player) int {
	center := w[2]
	if center == game.Empty {
		return 0
	}

	var value int
	switch {
	case w[1] == center && w[3] == center && (w[0] == game.Empty || w[4] == game.Empty):
		value = e.ThreeChainScore
	case w[1] == center && (w[0] == game.Empty || w[3] == game.Empty):
		value = e.TwoChainScore
	case w[3] == center && (w[1] == game.Empty || w[4] == game.Empty):
		value = e.TwoChainScore
	default:
		return 0
	}

	if center == perspective {
		return value
	}
	return -value
}
