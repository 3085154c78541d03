package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var drawnCells = [game.Rows][game.Columns]int{
	{1, 2, 1, 2, 1, 2, 1},
	{1, 2, 1, 2, 1, 2, 1},
	{2, 1, 2, 1, 2, 1, 2},
	{2, 1, 2, 1, 2, 1, 2},
	{1, 2, 1, 2, 1, 2, 1},
	{1, 2, 1, 2, 1, 2, 1},
}

func TestNewMinimax(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, DefaultDepth, m.Depth())
		require.Equal(t, NewEvaluator(BestThreeChainScore, BestTwoChainScore), m.Evaluator())
	})

	t.Run("options", func(t *testing.T) {
		m := NewMinimax(WithDepth(3), WithWeights(TestThreeChainScore, TestTwoChainScore), WithSeed(1))
		require.Equal(t, 3, m.Depth())
		require.Equal(t, Evaluator{ThreeChainScore: 10, TwoChainScore: 20}, m.Evaluator())
	})

	t.Run("non-positive depth keeps the default", func(t *testing.T) {
		require.Equal(t, DefaultDepth, NewMinimax(WithDepth(0)).Depth())
	})

	t.Run("instances keep their own weights", func(t *testing.T) {
		best := NewMinimax()
		test := NewMinimax(WithWeights(TestThreeChainScore, TestTwoChainScore))
		require.NotEqual(t, best.Evaluator(), test.Evaluator())
	})
}

func TestDecideImmediateWin(t *testing.T) {
	for depth := 1; depth <= DefaultDepth; depth++ {
		b := boardWith(map[game.Move]game.Player{
			{Row: 5, Col: 0}: game.PlayerOne,
			{Row: 5, Col: 1}: game.PlayerOne,
			{Row: 5, Col: 2}: game.PlayerOne,
			{Row: 4, Col: 0}: game.PlayerTwo,
			{Row: 4, Col: 1}: game.PlayerTwo,
		})
		before := *b

		m := NewMinimax(WithDepth(depth), WithSeed(uint64(depth)))
		score, move := m.Decide(b, game.PlayerOne)

		require.Equal(t, WinScore, score, "depth %d", depth)
		require.Equal(t, game.Move{Row: 5, Col: 3}, move, "depth %d", depth)
		require.Equal(t, before, *b, "Board should be restored after the search")
	}
}

func TestDecideCompletesBottomRow(t *testing.T) {
	b := boardWith(map[game.Move]game.Player{
		{Row: 5, Col: 0}: game.PlayerOne,
		{Row: 5, Col: 1}: game.PlayerOne,
		{Row: 5, Col: 2}: game.PlayerOne,
	})

	score, move := NewMinimax(WithSeed(3)).Decide(b, game.PlayerOne)
	require.Equal(t, WinScore, score)
	require.Equal(t, game.Move{Row: 5, Col: 3}, move)
}

func TestDecideOpponentWinBelowRoot(t *testing.T) {
	// PlayerTwo can complete a vertical four in column 6
	b := boardWith(map[game.Move]game.Player{
		{Row: 5, Col: 6}: game.PlayerTwo,
		{Row: 4, Col: 6}: game.PlayerTwo,
		{Row: 3, Col: 6}: game.PlayerTwo,
		{Row: 5, Col: 0}: game.PlayerOne,
		{Row: 5, Col: 1}: game.PlayerOne,
		{Row: 5, Col: 3}: game.PlayerOne,
	})
	before := *b

	m := NewMinimax(WithDepth(3), WithSeed(5))
	score, move := m.decide(b, game.PlayerTwo, game.PlayerOne, 1)

	require.Equal(t, -WinScore, score, "A win for the minimizing player scores as a loss")
	require.Equal(t, game.Move{Row: 2, Col: 6}, move)
	require.Equal(t, before, *b)
}

func TestDecideDrawnBoard(t *testing.T) {
	b := game.BoardFromCells(drawnCells)
	require.True(t, b.IsFull())

	score, move := NewMinimax(WithSeed(1)).Decide(b, game.PlayerOne)
	require.Equal(t, 0, score)
	require.Equal(t, game.NoMove, move)
}

func TestDecideCutoffPerspective(t *testing.T) {
	b := mixedPosition()
	e := NewEvaluator(BestThreeChainScore, BestTwoChainScore)

	t.Run("depth one maximizes the root player's evaluation", func(t *testing.T) {
		expected := -Infinity
		for _, mv := range b.LegalMoves() {
			b.Place(mv.Row, mv.Col, game.PlayerTwo)
			expected = max(expected, e.Evaluate(b, game.PlayerTwo))
			b.Clear(mv.Row, mv.Col)
		}

		score, _ := NewMinimax(WithDepth(1), WithSeed(1)).Decide(b, game.PlayerTwo)
		require.Equal(t, expected, score)
	})

	t.Run("depth two scores leaves for the player not on move", func(t *testing.T) {
		expected := -Infinity
		for _, mv := range b.LegalMoves() {
			b.Place(mv.Row, mv.Col, game.PlayerTwo)
			reply := Infinity
			for _, r := range b.LegalMoves() {
				b.Place(r.Row, r.Col, game.PlayerOne)
				// PlayerTwo is on move at the cutoff, so PlayerOne's view is used
				reply = min(reply, e.Evaluate(b, game.PlayerOne))
				b.Clear(r.Row, r.Col)
			}
			expected = max(expected, reply)
			b.Clear(mv.Row, mv.Col)
		}

		score, _ := NewMinimax(WithDepth(2), WithSeed(1)).Decide(b, game.PlayerTwo)
		require.Equal(t, expected, score)
	})
}

func TestWithRand(t *testing.T) {
	t.Run("equal sources replay the same root tie-breaks", func(t *testing.T) {
		m1 := NewMinimax(WithDepth(1), WithRand(rand.New(rand.NewSource(5))))
		m2 := NewMinimax(WithDepth(1), WithRand(rand.New(rand.NewSource(5))))
		for i := 0; i < 50; i++ {
			_, move1 := m1.Decide(game.NewBoard(), game.PlayerOne)
			_, move2 := m2.Decide(game.NewBoard(), game.PlayerOne)
			require.Equal(t, move1, move2)
		}
	})

	t.Run("nil keeps the default source", func(t *testing.T) {
		m := NewMinimax(WithDepth(1), WithRand(nil))
		require.NotNil(t, m.rand)
		_, move := m.Decide(game.NewBoard(), game.PlayerOne)
		require.Equal(t, game.Rows-1, move.Row)
	})
}

func TestDecideKnownScores(t *testing.T) {
	b := mixedPosition()
	before := *b

	score, _ := NewMinimax(WithDepth(3), WithSeed(1)).Decide(b, game.PlayerTwo)
	require.Equal(t, 20, score)

	score, move, metric := NewMinimax(WithSeed(2), WithMetrics()).Search(b, game.PlayerTwo)
	require.Equal(t, 20, score)
	require.True(t, b.IsLegal(move))
	require.Equal(t, DefaultDepth, metric.Depth)
	require.Equal(t, 20, metric.Score)
	require.Positive(t, metric.Nodes)
	require.Positive(t, metric.Evaluations)
	require.Equal(t, before, *b)

	_, _, metric = NewMinimax(WithDepth(3), WithSeed(2)).Search(b, game.PlayerTwo)
	require.Equal(t, metrics.SearchMetric{Depth: 3, Score: 20}, metric, "Without metrics only depth and score are reported")
}

func TestDecideTieBreak(t *testing.T) {
	t.Run("root ties are broken at random", func(t *testing.T) {
		// Every first move leaves a lone disc that evaluates to zero
		m := NewMinimax(WithDepth(1), WithSeed(42))
		seen := map[int]bool{}
		for i := 0; i < 200; i++ {
			score, move := m.Decide(game.NewBoard(), game.PlayerOne)
			require.Equal(t, 0, score)
			require.Equal(t, game.Rows-1, move.Row)
			seen[move.Col] = true
		}
		require.Greater(t, len(seen), 1, "Equal root scores should not always pick the same move")
	})

	t.Run("ties below the root keep the last move", func(t *testing.T) {
		b := boardWith(map[game.Move]game.Player{{Row: 5, Col: 0}: game.PlayerOne})
		m := NewMinimax(WithDepth(2), WithSeed(9))

		for i := 0; i < 20; i++ {
			score, move := m.decide(b, game.PlayerTwo, game.PlayerOne, 1)
			require.Equal(t, 0, score)
			require.Equal(t, game.Move{Row: 5, Col: 6}, move)
		}
	})
}

func TestDecideAlwaysReturnsLegalMove(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	m := NewMinimax(WithDepth(2), WithSeed(99))
	for i := 0; i < 200; i++ {
		b := randomPosition(r, r.Intn(game.Rows*game.Columns))
		player := game.PlayerOne
		if b.PieceCount()%2 == 1 {
			player = game.PlayerTwo
		}
		before := *b

		score, move := m.Decide(b, player)
		require.Equal(t, before, *b)
		if len(b.LegalMoves()) == 0 {
			require.Equal(t, 0, score)
			require.True(t, move.IsNone())
			continue
		}
		require.False(t, move.IsNone())
		require.True(t, b.IsLegal(move))
	}
}
