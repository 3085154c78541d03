package metrics

import (
	"sync/atomic"
	"time"
)

// AgentConfig describes one seat of a match-up.
type AgentConfig struct {
	ID              int
	Kind            string // "minimax", "random" or "human"
	Depth           int
	ThreeChainScore int
	TwoChainScore   int
}

type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	Nodes       int
	Evaluations int
	Score       int
}

type MoveMetric struct {
	Step   int
	Player int // 1-based player cell value
	Row    int
	Col    int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // 1-based player cell value
	Winner         string // Player name, "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	Complete(score int) SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Score:       score,
	}
}

// dummyCollector keeps only the depth and score, which are free to report.
type dummyCollector struct {
	depth int
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int) { m.depth = depth }
func (m *dummyCollector) AddNode()        {}
func (m *dummyCollector) AddEvaluation()  {}

func (m *dummyCollector) Complete(score int) SearchMetric {
	return SearchMetric{Depth: m.depth, Score: score}
}
