package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// Observer is notified as a game progresses. The board passed in must not be modified.
type Observer interface {
	GameStarted(b *game.Board)
	MovePlayed(step int, p game.Player, m game.Move, metric metrics.SearchMetric, b *game.Board)
	GameOver(r Result)
}

type Result struct {
	Outcome     game.Outcome // Win or Draw
	Winner      game.Player  // Empty on a draw
	Board       *game.Board
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}
