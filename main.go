package main

import (
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/player"
	"connect4/searcher"
	"connect4/store"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "human", "One of human, hvh, minimax, selfplay, mvm, bestvstest, throughput")
	envFile := flag.String("env", ".env", "Optional env file")
	games := flag.Int("games", 0, "Games per match-up (overrides GAMES)")
	depth := flag.Int("depth", 0, "Search depth (overrides SEARCH_DEPTH)")
	seed := flag.Uint64("seed", 0, "Random seed (overrides SEED), 0 seeds from the clock")
	first := flag.Int("first", 1, "Seat of the human player in human mode (1 or 2)")
	color := flag.Bool("color", true, "Colour discs in interactive modes")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if *games > 0 {
		cfg.Games = *games
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "human":
		if *first != 1 && *first != 2 {
			log.Fatal().Msgf("invalid seat %d, expected 1 or 2", *first)
		}
		computer := player.NewMinimaxAgent("Computer", newSearcher(cfg))
		human := player.NewHuman("You", os.Stdin, os.Stdout)
		agents := [2]player.Agent{human, computer}
		if *first == 2 {
			agents = [2]player.Agent{computer, human}
		}
		playInteractive(agents, *color)
	case "hvh":
		playInteractive([2]player.Agent{
			player.NewHuman("Player1", os.Stdin, os.Stdout),
			player.NewHuman("Player2", os.Stdin, os.Stdout),
		}, *color)
	case "minimax":
		random := player.NewRandomFromTime()
		if cfg.Seed != 0 {
			random = player.NewRandom(cfg.Seed + 1)
		}
		playInteractive([2]player.Agent{player.NewMinimaxAgent("Min-max", newSearcher(cfg)), random}, *color)
	case "selfplay", "mvm", "bestvstest", "throughput":
		if err := runExperiment(ctx, cfg, *mode); err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *mode)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

func newSearcher(cfg *config.Config) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithDepth(cfg.Depth),
		searcher.WithWeights(cfg.BestThreeChain, cfg.BestTwoChain),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	return searcher.NewMinimax(options...)
}

func playInteractive(agents [2]player.Agent, color bool) {
	e := engine.LocalEngine(agents, engine.NewTranscript(os.Stdout, color))
	if _, err := e.Run(); err != nil {
		if errors.Is(err, player.ErrNoInput) {
			log.Info().Msg("input closed, game abandoned")
			return
		}
		log.Fatal().Err(err).Msg("game failed")
	}
}

func runExperiment(ctx context.Context, cfg *config.Config, mode string) error {
	recorder, tally, err := openRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close recorder")
		}
	}()

	var transcript io.Writer
	if cfg.TranscriptFile != "" {
		f, err := os.Create(cfg.TranscriptFile)
		if err != nil {
			return fmt.Errorf("failed to create transcript: %w", err)
		}
		defer f.Close()
		transcript = f
	}

	r := &experiments.Runner{
		Games:      cfg.Games,
		Seed:       cfg.Seed,
		OutputDir:  cfg.OutputDir,
		Transcript: transcript,
		Recorder:   recorder,
	}

	var summary experiments.Summary
	switch mode {
	case "selfplay":
		summary, err = r.RunMinimaxVsRandom(ctx, cfg.Depth)
	case "mvm":
		summary, err = r.RunMinimaxVsMinimax(ctx, cfg.Depth)
	case "bestvstest":
		best := experiments.MinimaxConfig(1, cfg.Depth, cfg.BestThreeChain, cfg.BestTwoChain)
		test := experiments.MinimaxConfig(2, cfg.Depth, cfg.TestThreeChain, cfg.TestTwoChain)
		summary, err = r.RunBestVsTest(ctx, best, test)
	case "throughput":
		_, err = r.RunThroughput(ctx, cfg.Depth)
		return err
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("%d games played, wins by agent %v, draws %d", summary.Games, summary.Wins, summary.Draws)

	if tally != nil {
		total, err := tally.Tally(ctx, experimentNames[mode])
		if err != nil {
			log.Warn().Err(err).Msg("failed to read redis tally")
		} else {
			log.Info().Msgf("all-time tally for %s: %v", experimentNames[mode], total)
		}
	}
	return nil
}

// experimentNames maps modes to the names their runs are recorded under.
var experimentNames = map[string]string{
	"selfplay":   experiments.MinimaxVsRandom,
	"mvm":        experiments.MinimaxVsMinimax,
	"bestvstest": experiments.BestVsTest,
}

// openRecorder connects the configured result stores. With none configured it
// returns an empty fan-out. The Redis tally is also returned for read-back, nil
// when Redis is not configured.
func openRecorder(ctx context.Context, cfg *config.Config) (store.Recorder, *store.RedisTally, error) {
	recorders := []store.Recorder{}
	if cfg.DatabaseURL != "" {
		pg, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		recorders = append(recorders, pg)
	}
	var tally *store.RedisTally
	if cfg.RedisURL != "" {
		var err error
		tally, err = store.OpenRedis(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			for _, r := range recorders {
				r.Close()
			}
			return nil, nil, err
		}
		recorders = append(recorders, tally)
	}
	return store.Multi(recorders...), tally, nil
}
