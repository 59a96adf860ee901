package game

// Rules decides when a game loop stops and what happens when the side to move
// is stuck. GameState.IsTerminal is unaffected by the choice of rules.
type Rules interface {
	// Advance returns the state the next player should move from.
	Advance(gs GameState) GameState
	// IsOver reports whether no further move can be played.
	IsOver(gs GameState) bool
}

// SuddenDeathRules ends the game as soon as the side to move has no legal move.
type SuddenDeathRules struct{}

func NewSuddenDeathRules() *SuddenDeathRules {
	return &SuddenDeathRules{}
}

func (SuddenDeathRules) Advance(gs GameState) GameState {
	return gs
}

func (SuddenDeathRules) IsOver(gs GameState) bool {
	return gs.IsTerminal()
}

// StandardRules passes the turn when the side to move is stuck but the
// opponent can still play. The game is over once neither side can move.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (StandardRules) Advance(gs GameState) GameState {
	if gs.HasLegalMove() {
		return gs
	}
	if passed := gs.Pass(); passed.HasLegalMove() {
		return passed
	}
	return gs
}

func (sr StandardRules) IsOver(gs GameState) bool {
	return sr.Advance(gs).IsTerminal()
}
