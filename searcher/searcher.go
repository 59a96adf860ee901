package searcher

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"time"
)

type Option func(s *Searcher)

// Searcher runs depth-limited minimax with alpha-beta pruning. Without
// resource limits it searches the requested depth directly; with limits it
// deepens iteratively and keeps the deepest completed iteration. A Searcher
// is not safe for concurrent use.
type Searcher struct {
	evaluate  game.Evaluate
	pruning   bool
	duration  time.Duration
	nodeLimit int
	metrics   metrics.Collector
}

// Result of a search. Line is the principal variation starting with Move.
type Result struct {
	Value  int
	Move   game.Move
	Line   []game.Move
	Depth  int // Depth the result was searched to
	Metric metrics.SearchMetric
}

func WithDuration(duration time.Duration) Option {
	return func(s *Searcher) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithNodeLimit(nodes int) Option {
	return func(s *Searcher) {
		if nodes > 0 {
			s.nodeLimit = nodes
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithoutPruning searches the full tree with plain minimax.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		evaluate: game.EvaluateMaterial,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search returns the value of state searched to depth plies and the move
// reaching it. The move is game.NoMove at depth 0 or in a terminal state.
func (s *Searcher) Search(state game.GameState, depth int, maximizing bool) (int, game.Move, error) {
	result, err := s.Analyze(state, depth, maximizing)
	if err != nil {
		return 0, game.NoMove, err
	}
	return result.Value, result.Move, nil
}

// BestMove searches from the side to move's point of view.
func (s *Searcher) BestMove(state game.GameState, depth int) (game.Move, error) {
	if depth < 0 {
		return game.NoMove, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if depth == 0 {
		return game.NoMove, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if state.IsTerminal() {
		return game.NoMove, ErrNoLegalMoves
	}
	result, err := s.Analyze(state, depth, true)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

// Analyze is Search with the principal variation and search metrics.
func (s *Searcher) Analyze(state game.GameState, depth int, maximizing bool) (Result, error) {
	if depth < 0 {
		return Result{Move: game.NoMove}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	s.metrics.Start(depth, s.pruning)
	limits := newLimiter(s.duration, s.nodeLimit)
	r := &run{
		evaluate: s.evaluate,
		pruning:  s.pruning,
		metrics:  s.metrics,
	}

	var result Result
	if !limits.enabled() || depth <= 1 {
		result = r.root(state, depth, maximizing)
	} else {
		// The first iteration always completes so a move is available
		result = r.root(state, 1, maximizing)
		r.limits = limits
		for d := 2; d <= depth; d++ {
			deeper := r.root(state, d, maximizing)
			if r.aborted {
				s.metrics.SetAborted(true)
				break
			}
			result = deeper
		}
	}
	s.metrics.SetCompletedDepth(result.Depth)
	result.Metric = s.metrics.Complete()
	return result, nil
}

// run holds the bookkeeping of one Analyze call.
type run struct {
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
	limits   limiter
	visited  int
	aborted  bool
}

func (r *run) root(state game.GameState, depth int, maximizing bool) Result {
	var (
		value int
		line  []game.Move
	)
	if r.pruning {
		value, line = r.alphaBeta(state, depth, maximizing, -Infinity, Infinity)
	} else {
		value, line = r.minimax(state, depth, maximizing)
	}

	move := game.NoMove
	if len(line) > 0 {
		move = line[0]
	}
	return Result{Value: value, Move: move, Line: line, Depth: depth}
}

// visit counts a node and reports whether the search may expand it.
func (r *run) visit() bool {
	r.visited++
	r.metrics.AddNode()
	if r.limits.exceeded(r.visited) {
		r.aborted = true
	}
	return !r.aborted
}

func (r *run) leaf(state game.GameState, maximizing bool) int {
	r.metrics.AddLeaf()
	return r.evaluate(state, maximizing)
}

// play applies a generated move, which cannot fail.
func play(state game.GameState, move game.Move) game.GameState {
	child, err := state.Play(move)
	if err != nil {
		panic(fmt.Sprintf("generated move rejected: %v", err))
	}
	return child
}

func (r *run) alphaBeta(state game.GameState, depth int, maximizing bool, alpha, beta int) (int, []game.Move) {
	if !r.visit() {
		return 0, nil
	}

	moves := state.LegalMoves()
	if depth == 0 || len(moves) == 0 {
		return r.leaf(state, maximizing), nil
	}

	bestMove := game.NoMove
	var bestLine []game.Move
	best := Infinity
	if maximizing {
		best = -Infinity
	}

	for _, move := range moves {
		value, line := r.alphaBeta(play(state, move), depth-1, !maximizing, alpha, beta)
		if r.aborted {
			return 0, nil
		}

		// Strict comparisons keep the first best move in generation order
		if maximizing {
			if value > best {
				best, bestMove, bestLine = value, move, line
			}
			alpha = max(alpha, best)
		} else {
			if value < best {
				best, bestMove, bestLine = value, move, line
			}
			beta = min(beta, best)
		}

		if alpha >= beta {
			r.metrics.AddCutoff()
			break
		}
	}

	return best, append([]game.Move{bestMove}, bestLine...)
}
