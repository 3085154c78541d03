package store

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	fieldGames = "games"
	fieldDraws = "draws"
)

// RedisTally keeps running per-experiment counts of games, wins and draws in a hash.
type RedisTally struct {
	client *redis.Client
}

// OpenRedis connects to addr and checks the connection.
func OpenRedis(ctx context.Context, addr, password string) (*RedisTally, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	log.Info().Msg("redis connected successfully")
	return NewRedisTally(client), nil
}

func NewRedisTally(client *redis.Client) *RedisTally {
	return &RedisTally{client: client}
}

func tallyKey(experiment string) string {
	return "connect4:tally:" + experiment
}

// tallyFields lists the counters a finished game increments.
func tallyFields(record metrics.GameRecord) []string {
	fields := []string{fieldGames}
	if record.Winner == "" {
		return append(fields, fieldDraws)
	}
	return append(fields,
		"wins:"+record.Winner,
		"wins:agent"+strconv.Itoa(winningAgent(record)),
	)
}

func winningAgent(record metrics.GameRecord) int {
	if record.Winner == game.PlayerOne.String() {
		return record.Agent1
	}
	return record.Agent2
}

func (r *RedisTally) Record(ctx context.Context, experiment string, record metrics.GameRecord, board *game.Board) error {
	key := tallyKey(experiment)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, field := range tallyFields(record) {
			pipe.HIncrBy(ctx, key, field, 1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update tally: %w", err)
	}
	return nil
}

// Tally returns the counters of an experiment.
func (r *RedisTally) Tally(ctx context.Context, experiment string) (map[string]int64, error) {
	values, err := r.client.HGetAll(ctx, tallyKey(experiment)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tally: %w", err)
	}
	return parseTally(values)
}

func parseTally(values map[string]string) (map[string]int64, error) {
	tally := make(map[string]int64, len(values))
	for field, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		tally[field] = n
	}
	return tally, nil
}

func (r *RedisTally) Close() error {
	return r.client.Close()
}
