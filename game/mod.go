package game

import "errors"

const Size = 8

var (
	ErrOutOfRange  = errors.New("coordinates out of range")
	ErrInvalidMove = errors.New("invalid move")
)

// Cell is the occupancy of one board square.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Side returns the owner of a disc. It returns false for an empty cell.
func (c Cell) Side() (Side, bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return 0, false
	}
}

func (c Cell) String() string {
	switch c {
	case BlackDisc:
		return "B"
	case WhiteDisc:
		return "W"
	default:
		return " "
	}
}

// Side is the color of a player.
type Side uint8

const (
	Black Side = iota + 1
	White
)

func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) Disc() Cell {
	if s == Black {
		return BlackDisc
	}
	return WhiteDisc
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// Move is a disc placement. It is only meaningful relative to a GameState.
type Move struct {
	Row int
	Col int
}

// NoMove is returned where no move exists, e.g. at a leaf of the search.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) InRange() bool {
	return inRange(m.Row, m.Col)
}

func inRange(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

// Outcome of a game.
type Outcome uint8

const (
	Undecided Outcome = iota
	BlackWins
	WhiteWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black"
	case WhiteWins:
		return "White"
	case Tie:
		return "Tie"
	default:
		return ""
	}
}

type StateHash uint64

// Evaluate scores a leaf of the search tree. maximizing tells whether the
// node is a maximizing one.
type Evaluate func(state GameState, maximizing bool) int
