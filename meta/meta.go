// meta/meta.go
package meta

// MAX_TURNS caps the number of plies in a game loop, passes included.
const MAX_TURNS = 128

// EASY_DEPTH, MEDIUM_DEPTH and HARD_DEPTH are the search depths per difficulty.
const (
	EASY_DEPTH   = 1
	MEDIUM_DEPTH = 3
	HARD_DEPTH   = 5
)

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 4
