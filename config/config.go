package config

import (
	"connect4/searcher"
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Games          int // Games per match-up
	Depth          int
	BestThreeChain int
	BestTwoChain   int
	TestThreeChain int
	TestTwoChain   int
	Seed           uint64 // 0 seeds from the clock
	OutputDir      string
	TranscriptFile string
	DatabaseURL    string
	RedisURL       string
	RedisPassword  string
	LogLevel       zerolog.Level
}

// Load reads the optional env files (".env" when none are given) and then the environment.
// Variables already set in the environment take precedence over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			log.Debug().Msgf("no env file %s, using environment", f)
		}
	}

	level, err := zerolog.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Warn().Msgf("invalid LOG_LEVEL, using info: %v", err)
		level = zerolog.InfoLevel
	}

	return &Config{
		Games:          GetEnvAsInt("GAMES", 100),
		Depth:          GetEnvAsInt("SEARCH_DEPTH", searcher.DefaultDepth),
		BestThreeChain: GetEnvAsInt("BEST_THREE_CHAIN_SCORE", searcher.BestThreeChainScore),
		BestTwoChain:   GetEnvAsInt("BEST_TWO_CHAIN_SCORE", searcher.BestTwoChainScore),
		TestThreeChain: GetEnvAsInt("TEST_THREE_CHAIN_SCORE", searcher.TestThreeChainScore),
		TestTwoChain:   GetEnvAsInt("TEST_TWO_CHAIN_SCORE", searcher.TestTwoChainScore),
		Seed:           GetEnvAsUint("SEED", 0),
		OutputDir:      GetEnv("OUTPUT_DIR", "experiments"),
		TranscriptFile: GetEnv("TRANSCRIPT_FILE", "Connect4SelfPlayData.txt"),
		DatabaseURL:    GetEnv("DATABASE_URL", ""),
		RedisURL:       GetEnv("REDIS_URL", ""),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		LogLevel:       level,
	}, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
