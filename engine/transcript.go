package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Transcript writes the board after every move, the searcher's score and
// the final outcome to w.
type Transcript struct {
	w      io.Writer
	render func(io.Writer, *game.Board) error
	scores bool
}

// NewTranscript writes plain text boards; with color the discs are coloured for a terminal.
func NewTranscript(w io.Writer, color bool) *Transcript {
	render := game.Render
	if color {
		render = game.RenderColor
	}
	return &Transcript{w: w, render: render, scores: true}
}

// WithoutScores omits search scores, for games between humans.
func (t *Transcript) WithoutScores() *Transcript {
	t.scores = false
	return t
}

func (t *Transcript) GameStarted(b *game.Board) {
	t.board(b)
}

func (t *Transcript) MovePlayed(step int, p game.Player, m game.Move, metric metrics.SearchMetric, b *game.Board) {
	t.printf("Move %d: %s plays column %d\n", step, p, m.Col+1)
	if t.scores && metric.Depth > 0 {
		t.printf("Score: %d\n", metric.Score)
	}
	t.board(b)
}

func (t *Transcript) GameOver(r Result) {
	if r.Outcome == game.Win {
		t.printf("%s wins!\n", r.Winner)
		return
	}
	t.printf("Draw\n")
}

func (t *Transcript) board(b *game.Board) {
	if err := t.render(t.w, b); err != nil {
		log.Warn().Err(err).Msg("failed to write board")
	}
}

func (t *Transcript) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		log.Warn().Err(err).Msg("failed to write transcript")
	}
}
