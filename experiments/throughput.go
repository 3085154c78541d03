package experiments

import (
	"connect4/experiments/metrics"
	"connect4/searcher"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Depth        int
	Searches     int
	Nodes        int
	Evaluations  int
	SearchTime   time.Duration
	NodesPerSec  float64
	EvalsPerMove float64
}

// RunThroughput plays one mirror game per search depth from 1 to maxDepth
// and measures how the searcher scales.
func (r *Runner) RunThroughput(ctx context.Context, maxDepth int) ([]Throughput, error) {
	results := []Throughput{}
	configs := []metrics.AgentConfig{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting throughput experiment...")

	for depth := 1; depth <= maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		// Same config for both players for similar game length
		config := MinimaxConfig(depth, depth, searcher.BestThreeChainScore, searcher.BestTwoChainScore)
		configs = append(configs, config)

		result, err := r.runGame(depth, MatchUp{First: config, Second: config})
		if err != nil {
			return results, fmt.Errorf("depth %d: %w", depth, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         depth,
			Agent1:     config.ID,
			Agent2:     config.ID,
			GameMetric: result.GameMetric,
		})

		tp := Throughput{Depth: depth}
		for _, mm := range result.MoveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: depth, MoveMetric: mm})
			tp.Searches++
			tp.Nodes += mm.Nodes
			tp.Evaluations += mm.Evaluations
			tp.SearchTime += mm.Duration
		}
		if tp.SearchTime > 0 {
			tp.NodesPerSec = float64(tp.Nodes) / tp.SearchTime.Seconds()
		}
		if tp.Searches > 0 {
			tp.EvalsPerMove = float64(tp.Evaluations) / float64(tp.Searches)
		}
		results = append(results, tp)

		log.Info().Msgf("depth %d: %d searches, %d nodes in %v (%.0f nodes/s, %.1f evaluations/move)",
			depth, tp.Searches, tp.Nodes, tp.SearchTime, tp.NodesPerSec, tp.EvalsPerMove)
	}

	log.Info().Msg("completed throughput experiment")

	if r.OutputDir != "" {
		if err := writeRecords(r.OutputDir, ThroughputName, configs, gameRecords, moveRecords); err != nil {
			return results, err
		}
	}
	return results, nil
}
