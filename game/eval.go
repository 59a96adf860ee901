package game

// EvaluateMaterial is the disc-count difference, black minus white at a
// maximizing node and white minus black at a minimizing one.
func EvaluateMaterial(gs GameState, maximizing bool) int {
	black, white := gs.Score()
	if maximizing {
		return black - white
	}
	return white - black
}

// FixedPerspective returns an evaluation of side's disc advantage that ignores
// the node type, so values stay comparable across plies.
func FixedPerspective(side Side) Evaluate {
	return func(gs GameState, _ bool) int {
		black, white := gs.Score()
		if side == Black {
			return black - white
		}
		return white - black
	}
}
