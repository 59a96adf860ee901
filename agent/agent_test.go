package agent

import (
	"testing"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func TestDifficulty(t *testing.T) {
	t.Run("mapping difficulty to depth", func(t *testing.T) {
		require.Equal(t, 1, Easy.Depth())
		require.Equal(t, 3, Medium.Depth())
		require.Equal(t, 5, Hard.Depth())
	})

	t.Run("parsing names", func(t *testing.T) {
		d, err := ParseDifficulty("Hard")
		require.NoError(t, err)
		require.Equal(t, Hard, d)

		_, err = ParseDifficulty("impossible")
		require.Error(t, err)
	})
}

func TestSearchAgent(t *testing.T) {
	t.Run("matching the searcher's best move", func(t *testing.T) {
		state := game.NewGame()
		want, err := searcher.NewSearcher().BestMove(state, 3)
		require.NoError(t, err)

		got, metric := NewDifficultyAgent(Medium).FindMove(state)

		require.Equal(t, want, got)
		require.Equal(t, 3, metric.CompletedDepth)
		require.Greater(t, metric.Nodes, 0, "Agent should collect search metrics")
	})

	t.Run("fixed evaluation plays for its own side", func(t *testing.T) {
		// White to move after D3; every reply is scored from White's view
		state, err := game.NewGame().ApplyMove(2, 3)
		require.NoError(t, err)

		move, _ := NewSearchAgent(1, WithEvaluation(Fixed)).FindMove(state)

		next, err := state.Play(move)
		require.NoError(t, err)
		for _, other := range state.LegalMoves() {
			alt, err := state.Play(other)
			require.NoError(t, err)
			_, altWhite := alt.Score()
			_, white := next.Score()
			require.GreaterOrEqual(t, white, altWhite, "Depth 1 should grab the most discs for White")
		}
	})

	t.Run("no move in a terminal state", func(t *testing.T) {
		terminal := game.GameState{Turn: game.Black}
		terminal.Board[0][0] = game.BlackDisc

		move, _ := NewSearchAgent(2).FindMove(terminal)

		require.Equal(t, game.NoMove, move)
	})

	t.Run("panics on invalid configuration", func(t *testing.T) {
		require.Panics(t, func() { NewSearchAgent(0) })
		require.Panics(t, func() { NewSearchAgent(2, WithEvaluation("positional")) })
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed replays the same moves", func(t *testing.T) {
		a, b := NewRandomAgent(9), NewRandomAgent(9)
		state := game.NewGame()
		for i := 0; i < 10 && !state.IsTerminal(); i++ {
			moveA, _ := a.FindMove(state)
			moveB, _ := b.FindMove(state)
			require.Equal(t, moveA, moveB)
			require.True(t, state.IsValidMove(moveA.Row, moveA.Col))

			var err error
			state, err = state.Play(moveA)
			require.NoError(t, err)
		}
	})
}

func TestNewAgent(t *testing.T) {
	require.IsType(t, &randomAgent{}, NewAgent(metrics.AgentConfig{Random: true, Seed: 1}))

	a := NewAgent(metrics.AgentConfig{Depth: 2, Evaluation: "fixed", NoPruning: true})
	require.IsType(t, &searchAgent{}, a)
	require.Equal(t, Fixed, a.(*searchAgent).evaluation)
	require.Len(t, a.(*searchAgent).options, 1, "Only pruning should add a searcher option")
}
