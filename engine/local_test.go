package engine

import (
	"testing"

	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/stretchr/testify/require"
)

type stubbornAgent struct{}

func (stubbornAgent) FindMove(game.GameState) (game.Move, metrics.SearchMetric) {
	return game.Move{Row: 0, Col: 0}, metrics.SearchMetric{}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random agents finish under sudden death rules", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2), nil)

		winner, gameMetric, moveMetrics := e.Run()

		require.NotEqual(t, game.Undecided, winner)
		require.True(t, e.State.IsTerminal())
		require.Equal(t, e.State.Decide(), winner)
		require.Equal(t, 0, gameMetric.Passes, "Sudden death rules never pass")
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, 4+gameMetric.TotalMoves, gameMetric.BlackDiscs+gameMetric.WhiteDiscs)
		for i, mm := range moveMetrics {
			want := game.Black
			if i%2 == 1 {
				want = game.White
			}
			require.Equal(t, want, mm.Player, "Sides should alternate")
			require.Equal(t, i+1, mm.Step)
		}
	})

	t.Run("standard rules play until neither side can move", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(3), agent.NewRandomAgent(4), game.NewStandardRules())

		winner, gameMetric, _ := e.Run()

		require.NotEqual(t, game.Undecided, winner)
		require.True(t, e.State.IsTerminal())
		require.True(t, e.State.Pass().IsTerminal(), "Opponent should be stuck too")
		require.Equal(t, 4+gameMetric.TotalMoves, gameMetric.BlackDiscs+gameMetric.WhiteDiscs)
	})

	t.Run("search agent against random agent", func(t *testing.T) {
		e := NewLocalEngine(agent.NewDifficultyAgent(agent.Easy), agent.NewRandomAgent(5), nil)

		winner, _, moveMetrics := e.Run()

		require.NotEqual(t, game.Undecided, winner)
		require.Greater(t, moveMetrics[0].Nodes, 0, "Search agent moves should carry metrics")
		require.Equal(t, 0, moveMetrics[1].Nodes, "Random agent moves should not")
	})

	t.Run("falling back when an agent returns an invalid move", func(t *testing.T) {
		e := NewLocalEngine(stubbornAgent{}, agent.NewRandomAgent(6), nil)
		e.MaxTurns = 1

		_, _, moveMetrics := e.Run()

		require.Len(t, moveMetrics, 1)
		require.Equal(t, game.Move{Row: 2, Col: 3}, moveMetrics[0].Move, "Should play the first legal move instead")
	})

	t.Run("stopping at the turn cap", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(7), agent.NewRandomAgent(8), nil)
		e.MaxTurns = 2

		winner, gameMetric, _ := e.Run()

		require.Equal(t, game.Undecided, winner)
		require.Equal(t, 2, gameMetric.TotalMoves)
	})

	t.Run("panics without agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(nil, agent.NewRandomAgent(1), nil)
		})
	})
}
