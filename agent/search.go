package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Evaluation names a leaf evaluation function.
type Evaluation string

const (
	// Material is game.EvaluateMaterial.
	Material Evaluation = "material"
	// Fixed scores leaves as the searching side's disc advantage.
	Fixed Evaluation = "fixed"
)

type Option func(a *searchAgent)

type searchAgent struct {
	depth      int
	evaluation Evaluation
	options    []searcher.Option
}

func WithSearchDuration(duration time.Duration) Option {
	return func(a *searchAgent) {
		if duration > 0 {
			a.options = append(a.options, searcher.WithDuration(duration))
		}
	}
}

func WithNodeLimit(nodes int) Option {
	return func(a *searchAgent) {
		if nodes > 0 {
			a.options = append(a.options, searcher.WithNodeLimit(nodes))
		}
	}
}

func WithEvaluation(evaluation Evaluation) Option {
	return func(a *searchAgent) {
		if evaluation != "" {
			a.evaluation = evaluation
		}
	}
}

func WithoutPruning() Option {
	return func(a *searchAgent) {
		a.options = append(a.options, searcher.WithoutPruning())
	}
}

// NewSearchAgent returns an agent searching depth plies from its own state.
func NewSearchAgent(depth int, options ...Option) Agent {
	if depth < 1 {
		panic("search depth must be positive")
	}
	a := &searchAgent{
		depth:      depth,
		evaluation: Material,
	}
	for _, option := range options {
		option(a)
	}
	if a.evaluation != Material && a.evaluation != Fixed {
		panic("unknown evaluation " + string(a.evaluation))
	}
	return a
}

// NewDifficultyAgent returns the search agent for a difficulty level.
func NewDifficultyAgent(d Difficulty, options ...Option) Agent {
	return NewSearchAgent(d.Depth(), options...)
}

func (a *searchAgent) FindMove(state game.GameState) (game.Move, metrics.SearchMetric) {
	options := append([]searcher.Option{searcher.WithMetrics()}, a.options...)
	if a.evaluation == Fixed {
		options = append(options, searcher.WithEvaluationFn(game.FixedPerspective(state.Turn)))
	}

	result, err := searcher.NewSearcher(options...).Analyze(state, a.depth, true)
	if err != nil {
		log.Warn().Err(err).Msg("search failed")
		return game.NoMove, metrics.SearchMetric{}
	}
	log.Debug().Msgf("%s searched %d plies: move=%+v value=%d nodes=%d", state.Turn, result.Depth, result.Move, result.Value, result.Metric.Nodes)
	return result.Move, result.Metric
}
