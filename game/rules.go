package game

// Outcome of a position right after a move.
type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// HasFourInARow reports whether p owns four consecutive cells horizontally,
// vertically or on either diagonal. Recomputed from scratch on every call.
func HasFourInARow(b *Board, p Player) bool {
	if p == Empty {
		return false
	}

	// Horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if b.run(row, col, 0, 1, p) {
				return true
			}
		}
	}

	// Vertical
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			if b.run(row, col, 1, 0, p) {
				return true
			}
		}
	}

	// Diagonal, top left to bottom right
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if b.run(row, col, 1, 1, p) {
				return true
			}
		}
	}

	// Diagonal, top right to bottom left
	for row := 0; row <= Rows-ToWin; row++ {
		for col := ToWin - 1; col < Columns; col++ {
			if b.run(row, col, 1, -1, p) {
				return true
			}
		}
	}

	return false
}

func (b *Board) run(row, col, dRow, dCol int, p Player) bool {
	for i := 0; i < ToWin; i++ {
		if b.cells[row+i*dRow][col+i*dCol] != p {
			return false
		}
	}
	return true
}

// OutcomeAfter classifies the board after mover has just played.
func OutcomeAfter(b *Board, mover Player) Outcome {
	if HasFourInARow(b, mover) {
		return Win
	}
	if b.IsFull() {
		return Draw
	}
	return Ongoing
}
