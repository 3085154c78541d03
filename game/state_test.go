package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// drawnCells is a full board without four in a row for either player.
var drawnCells = [Rows][Columns]int{
	{1, 2, 1, 2, 1, 2, 1},
	{1, 2, 1, 2, 1, 2, 1},
	{2, 1, 2, 1, 2, 1, 2},
	{2, 1, 2, 1, 2, 1, 2},
	{1, 2, 1, 2, 1, 2, 1},
	{1, 2, 1, 2, 1, 2, 1},
}

func TestPlayerConversions(t *testing.T) {
	t.Run("turn index round trip", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.Equal(t, i, PlayerFromIndex(i).Index())
		}
		require.Equal(t, PlayerOne, PlayerFromIndex(0))
		require.Equal(t, PlayerTwo, PlayerFromIndex(1))
	})

	t.Run("cell value round trip", func(t *testing.T) {
		for v := 0; v <= 2; v++ {
			require.Equal(t, v, PlayerFromCell(v).Cell())
		}
	})

	t.Run("opponent", func(t *testing.T) {
		require.Equal(t, PlayerTwo, PlayerOne.Opponent())
		require.Equal(t, PlayerOne, PlayerTwo.Opponent())
		require.Panics(t, func() { Empty.Opponent() })
	})

	t.Run("out of range values panic", func(t *testing.T) {
		require.Panics(t, func() { PlayerFromIndex(2) })
		require.Panics(t, func() { PlayerFromCell(3) })
		require.Panics(t, func() { Empty.Index() })
	})
}

func TestBoardLegalMoves(t *testing.T) {
	t.Run("empty board has one bottom move per column", func(t *testing.T) {
		b := NewBoard()
		moves := b.LegalMoves()

		require.Len(t, moves, Columns)
		for col, m := range moves {
			require.Equal(t, Rows-1, m.Row, "Every move should land on the bottom row")
			require.Equal(t, col, m.Col, "Columns should be visited left to right")
		}
	})

	t.Run("full columns are skipped", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			_, err := b.Play(2, PlayerFromIndex(i%2))
			require.NoError(t, err)
		}
		_, err := b.Play(4, PlayerOne)
		require.NoError(t, err)

		moves := b.LegalMoves()
		require.Len(t, moves, Columns-1)
		for _, m := range moves {
			require.NotEqual(t, 2, m.Col)
			if m.Col == 4 {
				require.Equal(t, Rows-2, m.Row)
			}
		}
	})

	t.Run("full board has no moves", func(t *testing.T) {
		b := BoardFromCells(drawnCells)
		require.Empty(t, b.LegalMoves())
		require.True(t, b.IsFull())
	})
}

func TestBoardLowestEmptyRow(t *testing.T) {
	b := NewBoard()

	row, ok := b.LowestEmptyRow(0)
	require.True(t, ok)
	require.Equal(t, Rows-1, row)

	b.Place(Rows-1, 0, PlayerOne)
	row, ok = b.LowestEmptyRow(0)
	require.True(t, ok)
	require.Equal(t, Rows-2, row)

	_, ok = b.LowestEmptyRow(-1)
	require.False(t, ok, "Out of range columns have no empty row")
	_, ok = b.LowestEmptyRow(Columns)
	require.False(t, ok, "Out of range columns have no empty row")
}

func TestBoardPlaceClear(t *testing.T) {
	b := NewBoard()
	_, err := b.Play(3, PlayerOne)
	require.NoError(t, err)
	_, err = b.Play(3, PlayerTwo)
	require.NoError(t, err)
	before := *b

	for _, m := range b.LegalMoves() {
		b.Place(m.Row, m.Col, PlayerTwo)
		require.Equal(t, PlayerTwo, b.At(m.Row, m.Col))
		b.Clear(m.Row, m.Col)
		require.Equal(t, before, *b, "Place then Clear should restore the board")
	}
}

func TestBoardPlay(t *testing.T) {
	t.Run("discs stack from the bottom", func(t *testing.T) {
		b := NewBoard()
		m1, err := b.Play(0, PlayerOne)
		require.NoError(t, err)
		m2, err := b.Play(0, PlayerTwo)
		require.NoError(t, err)

		require.Equal(t, Move{Row: 5, Col: 0}, m1)
		require.Equal(t, Move{Row: 4, Col: 0}, m2)
		require.Equal(t, 2, b.PieceCount())
	})

	t.Run("full column is rejected", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			_, err := b.Play(6, PlayerOne)
			require.NoError(t, err)
		}
		before := *b

		m, err := b.Play(6, PlayerTwo)
		require.True(t, errors.Is(err, ErrColumnFull))
		require.True(t, m.IsNone())
		require.Equal(t, before, *b, "Rejected play should not mutate the board")
	})

	t.Run("invalid column is rejected", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Play(7, PlayerOne)
		require.ErrorIs(t, err, ErrInvalidColumn)
		_, err = b.Play(-1, PlayerOne)
		require.ErrorIs(t, err, ErrInvalidColumn)
	})

	t.Run("legality follows gravity", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.IsLegal(Move{Row: 5, Col: 1}))
		require.False(t, b.IsLegal(Move{Row: 4, Col: 1}))
		require.False(t, b.IsLegal(NoMove))
	})
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	_, err := b.Play(1, PlayerOne)
	require.NoError(t, err)

	c := b.Copy()
	_, err = c.Play(1, PlayerTwo)
	require.NoError(t, err)

	require.Equal(t, 1, b.PieceCount(), "Copy should not share cells with the original")
	require.Equal(t, 2, c.PieceCount())
	require.Equal(t, drawnCells, BoardFromCells(drawnCells).Cells())
}

func TestRender(t *testing.T) {
	b := NewBoard()
	_, err := b.Play(0, PlayerOne)
	require.NoError(t, err)
	_, err = b.Play(1, PlayerTwo)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b))

	expected := "" +
		"---------------\n| | | | | | | |\n" +
		"---------------\n| | | | | | | |\n" +
		"---------------\n| | | | | | | |\n" +
		"---------------\n| | | | | | | |\n" +
		"---------------\n| | | | | | | |\n" +
		"---------------\n|1|2| | | | | |\n" +
		"---------------\n" +
		" 1 2 3 4 5 6 7\n"
	require.Equal(t, expected, buf.String())
}

func TestRenderColorWithoutTerminal(t *testing.T) {
	b := NewBoard()
	_, err := b.Play(3, PlayerTwo)
	require.NoError(t, err)

	var plain, colored bytes.Buffer
	require.NoError(t, Render(&plain, b))
	require.NoError(t, RenderColor(&colored, b))
	require.Equal(t, plain.String(), colored.String(), "A buffer has no colour profile")
}
