package store

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS connect4_games (
	id              BIGSERIAL PRIMARY KEY,
	experiment      TEXT NOT NULL,
	game            INTEGER NOT NULL,
	agent1          INTEGER NOT NULL,
	agent2          INTEGER NOT NULL,
	starting_player INTEGER NOT NULL,
	winner          TEXT NOT NULL,
	total_moves     INTEGER NOT NULL,
	started_at      TIMESTAMPTZ NOT NULL,
	finished_at     TIMESTAMPTZ NOT NULL,
	duration_ms     BIGINT NOT NULL,
	board_state     JSONB NOT NULL
);`

const insertGame = `
INSERT INTO connect4_games (experiment, game, agent1, agent2, starting_player, winner, total_moves, started_at, finished_at, duration_ms, board_state)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

type PostgresRecorder struct {
	DB *sql.DB
}

// OpenPostgres connects to connStr and creates the games table if needed.
func OpenPostgres(ctx context.Context, connStr string) (*PostgresRecorder, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	r, err := NewPostgresRecorder(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Msg("database connected successfully")
	return r, nil
}

// NewPostgresRecorder uses an open database, creating the games table if needed.
func NewPostgresRecorder(ctx context.Context, db *sql.DB) (*PostgresRecorder, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return &PostgresRecorder{DB: db}, nil
}

func (r *PostgresRecorder) Record(ctx context.Context, experiment string, record metrics.GameRecord, board *game.Board) error {
	boardJSON, err := json.Marshal(board.Cells())
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, insertGame,
		experiment,
		record.ID,
		record.Agent1,
		record.Agent2,
		record.StartingPlayer,
		record.Winner,
		record.TotalMoves,
		record.StartTime,
		record.EndTime,
		record.Duration.Milliseconds(),
		string(boardJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game record: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Close() error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
