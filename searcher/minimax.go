package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth adversarial searcher over a shared mutable board.
// Each instance owns its evaluator weights and random source; an instance
// must not be used from more than one goroutine at a time.
type Minimax struct {
	evaluator Evaluator
	depth     int
	rand      *rand.Rand
	metrics   metrics.Collector
}

func WithWeights(threeChainScore, twoChainScore int) Option {
	return func(m *Minimax) {
		m.evaluator = NewEvaluator(threeChainScore, twoChainScore)
	}
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rand = rand.New(rand.NewSource(seed))
	}
}

func WithRand(r *rand.Rand) Option {
	return func(m *Minimax) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		evaluator: NewEvaluator(BestThreeChainScore, BestTwoChainScore),
		depth:     DefaultDepth,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Evaluator() Evaluator {
	return m.evaluator
}

// Decide returns the best score and move for player on b. The board is
// mutated during the search and restored before returning. A position
// without legal moves is a draw: (0, game.NoMove).
func (m *Minimax) Decide(b *game.Board, player game.Player) (int, game.Move) {
	score, move, _ := m.Search(b, player)
	return score, move
}

// Search is Decide that also reports the search metrics.
func (m *Minimax) Search(b *game.Board, player game.Player) (int, game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	score, move := m.decide(b, player, player, 0)
	return score, move, m.metrics.Complete(score)
}

func (m *Minimax) decide(b *game.Board, mover, root game.Player, depth int) (int, game.Move) {
	// At the cutoff the board is scored for the player not on move
	if depth == m.depth {
		m.metrics.AddEvaluation()
		return m.evaluator.Evaluate(b, mover.Opponent()), game.NoMove
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, game.NoMove
	}

	maximizing := mover == root
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	bestMove := game.NoMove

	for _, move := range moves {
		m.metrics.AddNode()
		score, won := m.explore(b, move, mover, root, depth)
		if won {
			if maximizing {
				return WinScore, move
			}
			return -WinScore, move
		}

		if depth == 0 && score == best {
			if m.rand.Intn(2) == 1 {
				bestMove = move
			}
			continue
		}
		if (maximizing && score >= best) || (!maximizing && score <= best) {
			best = score
			bestMove = move
		}
	}

	if bestMove.IsNone() {
		bestMove = moves[0]
	}
	return best, bestMove
}

// explore plays move for mover, searches the reply and takes the move back.
// won reports an immediate four in a row, in which case score is unset.
func (m *Minimax) explore(b *game.Board, move game.Move, mover, root game.Player, depth int) (score int, won bool) {
	b.Place(move.Row, move.Col, mover)
	defer b.Clear(move.Row, move.Col)

	if game.HasFourInARow(b, mover) {
		return 0, true
	}
	score, _ = m.decide(b, mover.Opponent(), root, depth+1)
	return score, false
}
