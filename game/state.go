package game

import "fmt"

// Board is the 6x7 grid. Row 0 is the top row, row Rows-1 the bottom.
// Within a column occupied cells are contiguous from the bottom up.
type Board struct {
	cells [Rows][Columns]Player
}

func NewBoard() *Board {
	return &Board{}
}

// BoardFromCells builds a board from 1-based cell values, top row first.
// Gravity is not checked.
func BoardFromCells(cells [Rows][Columns]int) *Board {
	b := NewBoard()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			b.cells[row][col] = PlayerFromCell(cells[row][col])
		}
	}
	return b
}

func (b *Board) At(row, col int) Player {
	return b.cells[row][col]
}

// LowestEmptyRow returns the first empty row of the column scanning bottom to top.
// ok is false when the column is full or out of range.
func (b *Board) LowestEmptyRow(col int) (row int, ok bool) {
	if col < 0 || col >= Columns {
		return -1, false
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			return row, true
		}
	}
	return -1, false
}

// LegalMoves returns one move per non-full column, left to right.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, Columns)
	for col := 0; col < Columns; col++ {
		if row, ok := b.LowestEmptyRow(col); ok {
			moves = append(moves, Move{Row: row, Col: col})
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// Place sets a single cell. The caller guarantees the cell is empty.
func (b *Board) Place(row, col int, p Player) {
	b.cells[row][col] = p
}

// Clear empties a single cell. The caller guarantees the cell is occupied.
func (b *Board) Clear(row, col int) {
	b.cells[row][col] = Empty
}

// Play drops a disc for p into col and returns the occupied cell.
func (b *Board) Play(col int, p Player) (Move, error) {
	if col < 0 || col >= Columns {
		return NoMove, fmt.Errorf("column %d: %w", col, ErrInvalidColumn)
	}
	row, ok := b.LowestEmptyRow(col)
	if !ok {
		return NoMove, fmt.Errorf("column %d: %w", col, ErrColumnFull)
	}
	b.Place(row, col, p)
	return Move{Row: row, Col: col}, nil
}

// IsLegal reports whether m is the lowest empty cell of its column.
func (b *Board) IsLegal(m Move) bool {
	row, ok := b.LowestEmptyRow(m.Col)
	return ok && row == m.Row
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Cells returns the board as 1-based cell values, top row first.
func (b *Board) Cells() [Rows][Columns]int {
	var out [Rows][Columns]int
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			out[row][col] = b.cells[row][col].Cell()
		}
	}
	return out
}

// PieceCount returns the number of occupied cells.
func (b *Board) PieceCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] != Empty {
				count++
			}
		}
	}
	return count
}
