package store

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
	"errors"
)

// Recorder persists finished games of an experiment.
type Recorder interface {
	Record(ctx context.Context, experiment string, record metrics.GameRecord, board *game.Board) error
	Close() error
}

type multi []Recorder

// Multi fans a record out to every recorder, returning all errors joined.
func Multi(recorders ...Recorder) Recorder {
	return multi(recorders)
}

func (m multi) Record(ctx context.Context, experiment string, record metrics.GameRecord, board *game.Board) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, experiment, record, board); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multi) Close() error {
	var errs []error
	for _, r := range m {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
