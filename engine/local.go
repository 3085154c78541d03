package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
	"connect4/utils"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board     *game.Board
	Agents    [2]player.Agent // Indexed by turn index, PlayerOne first
	observers []Observer
}

func LocalEngine(agents [2]player.Agent, observers ...Observer) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	return &Engine{
		Board:     game.NewBoard(),
		Agents:    agents,
		observers: observers,
	}
}

// Run plays the game until a player connects four or the board fills up.
func (e *Engine) Run() (Result, error) {
	start := time.Now()
	current := game.PlayerOne
	var moveMetrics []metrics.MoveMetric

	for _, o := range e.observers {
		o.GameStarted(e.Board)
	}
	log.Debug().Msgf("%s (%s) is starting", current, e.Agents[current.Index()].Name())

	for step := 1; ; step++ {
		agent := e.Agents[current.Index()]
		move, metric, err := e.requestMove(agent, current)
		if err != nil {
			return Result{}, fmt.Errorf("move %d by %s: %w", step, agent.Name(), err)
		}

		if _, err := e.Board.Play(move.Col, current); err != nil {
			return Result{}, fmt.Errorf("move %d by %s: %w", step, agent.Name(), err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       current.Cell(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: metric,
		})
		for _, o := range e.observers {
			o.MovePlayed(step, current, move, metric, e.Board)
		}

		outcome := game.OutcomeAfter(e.Board, current)
		if outcome == game.Ongoing {
			current = current.Opponent()
			continue
		}

		end := time.Now()
		result := Result{
			Outcome:     outcome,
			Board:       e.Board.Copy(),
			MoveMetrics: moveMetrics,
			GameMetric: metrics.GameMetric{
				StartingPlayer: game.PlayerOne.Cell(),
				StartTime:      start,
				EndTime:        end,
				Duration:       end.Sub(start),
				TotalMoves:     step,
			},
		}
		if outcome == game.Win {
			result.Winner = current
			result.GameMetric.Winner = current.String()
		}
		log.Debug().Msgf("game over after %d moves: %s %s", step, outcome, result.GameMetric.Winner)

		for _, o := range e.observers {
			o.GameOver(result)
		}
		return result, nil
	}
}

func (e *Engine) requestMove(agent player.Agent, p game.Player) (game.Move, metrics.SearchMetric, error) {
	before := *e.Board
	move, metric, err := agent.FindMove(e.Board, p)
	if err != nil {
		return game.NoMove, metric, err
	}
	if *e.Board != before {
		panic(fmt.Sprintf("agent %s modified the board", agent.Name()))
	}
	if !utils.Contains(e.Board.LegalMoves(), move) {
		return game.NoMove, metric, fmt.Errorf("illegal move %+v", move)
	}
	return move, metric, nil
}
