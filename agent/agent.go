package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns a legal move for the side to move, or game.NoMove if
	// there is none, and the search metrics (if collected)
	FindMove(state game.GameState) (game.Move, metrics.SearchMetric)
}

// NewAgent builds the agent described by an experiment config.
func NewAgent(config metrics.AgentConfig) Agent {
	if config.Random {
		return NewRandomAgent(config.Seed)
	}
	options := []Option{
		WithSearchDuration(config.Duration),
		WithNodeLimit(config.Nodes),
		WithEvaluation(Evaluation(config.Evaluation)),
	}
	if config.NoPruning {
		options = append(options, WithoutPruning())
	}
	return NewSearchAgent(config.Depth, options...)
}
