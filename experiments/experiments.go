package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
	"connect4/searcher"
	"connect4/store"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

// Experiment names, used for output directories and store keys.
const (
	MinimaxVsRandom  = "minimax_vs_random"
	MinimaxVsMinimax = "minimax_vs_minimax"
	BestVsTest       = "best_vs_test"
	ThroughputName   = "throughput"
)

// MatchUp seats First as PlayerOne and Second as PlayerTwo.
type MatchUp struct {
	First  metrics.AgentConfig
	Second metrics.AgentConfig
}

type Summary struct {
	Games int
	Wins  map[int]int // By AgentConfig.ID
	Draws int
}

// Runner plays batches of self-play games. Zero-valued optional fields are skipped.
type Runner struct {
	Games      int            // Per match-up
	Seed       uint64         // 0 seeds agents from the clock
	OutputDir  string         // CSV metrics root, optional
	Transcript io.Writer      // Board-by-board game log, optional
	Recorder   store.Recorder // Finished game sink, optional
}

func MinimaxConfig(id, depth, threeChainScore, twoChainScore int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:              id,
		Kind:            KindMinimax,
		Depth:           depth,
		ThreeChainScore: threeChainScore,
		TwoChainScore:   twoChainScore,
	}
}

func RandomConfig(id int) metrics.AgentConfig {
	return metrics.AgentConfig{ID: id, Kind: KindRandom}
}

// RunMinimaxVsRandom plays the searcher against the random agent from both seats.
func (r *Runner) RunMinimaxVsRandom(ctx context.Context, depth int) (Summary, error) {
	minimax := MinimaxConfig(1, depth, searcher.BestThreeChainScore, searcher.BestTwoChainScore)
	random := RandomConfig(2)
	matchUps := []MatchUp{
		{First: minimax, Second: random},
		{First: random, Second: minimax},
	}
	return r.Run(ctx, MinimaxVsRandom, []metrics.AgentConfig{minimax, random}, matchUps)
}

// RunMinimaxVsMinimax plays two identically configured searchers. Each seat
// has its own ID so wins are tallied per seat.
func (r *Runner) RunMinimaxVsMinimax(ctx context.Context, depth int) (Summary, error) {
	first := MinimaxConfig(1, depth, searcher.BestThreeChainScore, searcher.BestTwoChainScore)
	second := MinimaxConfig(2, depth, searcher.BestThreeChainScore, searcher.BestTwoChainScore)
	return r.Run(ctx, MinimaxVsMinimax, []metrics.AgentConfig{first, second}, []MatchUp{{First: first, Second: second}})
}

// RunBestVsTest plays the tuned weights (first) against candidate weights (second).
func (r *Runner) RunBestVsTest(ctx context.Context, best, test metrics.AgentConfig) (Summary, error) {
	return r.Run(ctx, BestVsTest, []metrics.AgentConfig{best, test}, []MatchUp{{First: best, Second: test}})
}

func (r *Runner) Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps []MatchUp) (Summary, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := Summary{Wins: map[int]int{}}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp.First, matchUp.Second)

		for i := 0; i < r.Games; i++ {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			count++
			r.printf("Game %d started...\n", count)

			result, err := r.runGame(count, matchUp)
			if err != nil {
				return summary, fmt.Errorf("game %d: %w", count, err)
			}

			record := metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.First.ID,
				Agent2:     matchUp.Second.ID,
				GameMetric: result.GameMetric,
			}
			gameRecords = append(gameRecords, record)
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			summary.Games++
			switch result.Winner {
			case game.PlayerOne:
				summary.Wins[matchUp.First.ID]++
			case game.PlayerTwo:
				summary.Wins[matchUp.Second.ID]++
			default:
				summary.Draws++
			}

			if r.Recorder != nil {
				if err := r.Recorder.Record(ctx, name, record, result.Board); err != nil {
					log.Warn().Err(err).Msgf("failed to record game %d", count)
				}
			}

			outcome := "draw"
			if result.Outcome == game.Win {
				outcome = result.Winner.String() + " wins"
			}
			r.printf("Game over: %s\n%s\n", outcome, summary.tallyLine(configs))
			log.Info().Msgf("completed matchup %d of %d game %d with %s; %s", mi+1, len(matchUps), i+1, outcome, summary.tallyLine(configs))
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	if r.OutputDir != "" {
		if err := writeRecords(r.OutputDir, name, configs, gameRecords, moveRecords); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func writeRecords(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the result
func (r *Runner) runGame(n int, matchUp MatchUp) (engine.Result, error) {
	agents := [2]player.Agent{
		newAgent(matchUp.First, r.seed(n, 0)),
		newAgent(matchUp.Second, r.seed(n, 1)),
	}
	var observers []engine.Observer
	if r.Transcript != nil {
		observers = append(observers, engine.NewTranscript(r.Transcript, false))
	}
	return engine.LocalEngine(agents, observers...).Run()
}

func (r *Runner) seed(n, seat int) uint64 {
	if r.Seed == 0 {
		return uint64(time.Now().UnixNano()) + uint64(seat)
	}
	return r.Seed + uint64(2*n+seat)
}

func newAgent(config metrics.AgentConfig, seed uint64) player.Agent {
	switch config.Kind {
	case KindMinimax:
		s := searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithWeights(config.ThreeChainScore, config.TwoChainScore),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		)
		return player.NewMinimaxAgent(fmt.Sprintf("minimax-%d", config.ID), s)
	case KindRandom:
		return player.NewRandom(seed)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func (r *Runner) printf(format string, args ...any) {
	if r.Transcript == nil {
		return
	}
	if _, err := fmt.Fprintf(r.Transcript, format, args...); err != nil {
		log.Warn().Err(err).Msg("failed to write transcript")
	}
}

func (s Summary) tallyLine(configs []metrics.AgentConfig) string {
	line := ""
	for i, c := range configs {
		if i > 0 {
			line += " - "
		}
		line += fmt.Sprintf("agent%d (%s): %d", c.ID, c.Kind, s.Wins[c.ID])
	}
	return fmt.Sprintf("%s (draws: %d)", line, s.Draws)
}
