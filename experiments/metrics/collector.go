package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth          int // Requested depth
	CompletedDepth int // Deepest fully searched depth
	Pruning        bool
	Duration       time.Duration
	Nodes          int
	Leaves         int
	Cutoffs        int
	IsAborted      bool // A resource limit stopped a deeper iteration
}

type MoveMetric struct {
	Step   int
	Player game.Side
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Side
	Winner         game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	BlackDiscs     int
	WhiteDiscs     int
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetCompletedDepth(depth int)
	SetAborted(value bool)
	Complete() SearchMetric
}

type collector struct {
	depth          int
	pruning        bool
	startTime      time.Time
	nodes          atomic.Int64
	leaves         atomic.Int64
	cutoffs        atomic.Int64
	completedDepth atomic.Int32
	isAborted      atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.completedDepth.Store(0)
	m.isAborted.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetCompletedDepth(depth int) {
	m.completedDepth.Store(int32(depth))
}

func (m *collector) SetAborted(value bool) {
	m.isAborted.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:          m.depth,
		CompletedDepth: int(m.completedDepth.Load()),
		Pruning:        m.pruning,
		Duration:       time.Since(m.startTime),
		Nodes:          int(m.nodes.Load()),
		Leaves:         int(m.leaves.Load()),
		Cutoffs:        int(m.cutoffs.Load()),
		IsAborted:      m.isAborted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) SetCompletedDepth(depth int)   {}
func (m *dummyCollector) SetAborted(value bool)         {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
