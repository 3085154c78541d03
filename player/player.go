package player

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"time"

	"golang.org/x/exp/rand"
)

// Agent is a move source for the driving loop.
type Agent interface {
	Name() string
	// FindMove returns the move to play for p on b and search metrics (if collected).
	// b must be left as it was received.
	FindMove(b *game.Board, p game.Player) (game.Move, metrics.SearchMetric, error)
}

// Random picks uniformly among the legal moves.
type Random struct {
	rand *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rand: rand.New(rand.NewSource(seed))}
}

// NewRandomFromTime seeds the agent from the wall clock.
func NewRandomFromTime() *Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}

func (r *Random) Name() string {
	return "random"
}

// Choose returns a uniformly drawn legal move. Must not be called on a full board.
func (r *Random) Choose(b *game.Board) game.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		panic("random agent called on a full board")
	}
	return moves[r.rand.Intn(len(moves))]
}

func (r *Random) FindMove(b *game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	return r.Choose(b), metrics.SearchMetric{}, nil
}
