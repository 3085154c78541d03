package player

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	name     string
	searcher *searcher.Minimax
}

// NewMinimaxAgent adapts a searcher to the Agent interface.
func NewMinimaxAgent(name string, s *searcher.Minimax) Agent {
	return &minimaxAgent{name: name, searcher: s}
}

func (a *minimaxAgent) Name() string {
	return a.name
}

func (a *minimaxAgent) FindMove(b *game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	score, move, metric := a.searcher.Search(b, p)
	log.Debug().Msgf("%s (%s) scored %d for column %d", a.name, p, score, move.Col+1)
	return move, metric, nil
}
