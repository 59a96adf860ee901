package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	// Black is stuck, White can play (0,2)
	stuck := GameState{Turn: Black}
	stuck.Board[0][0] = WhiteDisc
	stuck.Board[0][1] = BlackDisc

	t.Run("sudden death ends when the mover is stuck", func(t *testing.T) {
		rules := NewSuddenDeathRules()

		require.True(t, rules.IsOver(stuck))
		require.Equal(t, stuck, rules.Advance(stuck))
	})

	t.Run("standard rules pass the turn", func(t *testing.T) {
		rules := NewStandardRules()

		require.False(t, rules.IsOver(stuck))
		advanced := rules.Advance(stuck)
		require.Equal(t, White, advanced.Turn)
		require.Equal(t, stuck.Board, advanced.Board, "Passing should not touch the board")
	})

	t.Run("standard rules end when neither side can move", func(t *testing.T) {
		rules := NewStandardRules()
		full := fullBoard(40)

		require.True(t, rules.IsOver(full))
		require.Equal(t, full, rules.Advance(full))
	})

	t.Run("both rules agree while the mover has moves", func(t *testing.T) {
		gs := NewGame()

		require.Equal(t, gs, NewStandardRules().Advance(gs))
		require.False(t, NewStandardRules().IsOver(gs))
		require.False(t, NewSuddenDeathRules().IsOver(gs))
	})
}

func TestEvaluate(t *testing.T) {
	gs, err := NewGame().ApplyMove(2, 3) // Black 4, White 1
	require.NoError(t, err)

	t.Run("material follows the node type", func(t *testing.T) {
		require.Equal(t, 3, EvaluateMaterial(gs, true))
		require.Equal(t, -3, EvaluateMaterial(gs, false))
	})

	t.Run("fixed perspective ignores the node type", func(t *testing.T) {
		white := FixedPerspective(White)

		require.Equal(t, -3, white(gs, true))
		require.Equal(t, -3, white(gs, false))
		require.Equal(t, 3, FixedPerspective(Black)(gs, false))
	})
}
