package searcher

import "othello/game"

// minimax explores every branch. It is the reference alpha-beta must agree with.
func (r *run) minimax(state game.GameState, depth int, maximizing bool) (int, []game.Move) {
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
		value, line := r.minimax(play(state, move), depth-1, !maximizing)
		if r.aborted {
			return 0, nil
		}
		if (maximizing && value > best) || (!maximizing && value < best) {
			best, bestMove, bestLine = value, move, line
		}
	}

	return best, append([]game.Move{bestMove}, bestLine...)
}
