package searcher

import (
	"errors"
	"math"
)

// Infinity bounds every evaluation (disc differences never exceed 64).
const Infinity = math.MaxInt32

var (
	ErrNegativeDepth = errors.New("search depth must not be negative")
	ErrInvalidDepth  = errors.New("search depth must be positive")
	ErrNoLegalMoves  = errors.New("no legal moves")
)
