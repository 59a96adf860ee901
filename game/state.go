package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Directions scanned for captures: N, S, E, W, NE, NW, SE, SW.
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
}

// GameState is the board plus the side to move. It is a value type:
// operations never mutate the receiver and return a new copy instead.
type GameState struct {
	Board Board
	Turn  Side
}

// NewGame returns the fixed starting position with Black to move.
func NewGame() GameState {
	return GameState{
		Board: NewBoard(),
		Turn:  Black,
	}
}

func (gs GameState) Player() Side {
	return gs.Turn
}

// IsValidMove reports whether the side to move may place a disc at (row, col).
func (gs GameState) IsValidMove(row, col int) bool {
	if !inRange(row, col) || gs.Board[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if gs.run(row, col, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// run returns the length of the opponent run starting next to (row, col) in
// direction (dr, dc), or 0 if that run is not closed by a disc of the side to
// move.
func (gs *GameState) run(row, col, dr, dc int) int {
	own, opp := gs.Turn.Disc(), gs.Turn.Opponent().Disc()
	r, c := row+dr, col+dc
	n := 0
	for inRange(r, c) && gs.Board[r][c] == opp {
		r += dr
		c += dc
		n++
	}
	if n == 0 || !inRange(r, c) || gs.Board[r][c] != own {
		return 0
	}
	return n
}

// ApplyMove places a disc for the side to move, flips every bracketed run and
// hands the turn to the opponent. On error the returned state is the receiver.
func (gs GameState) ApplyMove(row, col int) (GameState, error) {
	if !inRange(row, col) {
		return gs, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	if !gs.IsValidMove(row, col) {
		return gs, fmt.Errorf("%w: (%d,%d) for %s", ErrInvalidMove, row, col, gs.Turn)
	}

	next := gs
	own := gs.Turn.Disc()
	next.Board[row][col] = own
	for _, d := range directions {
		n := gs.run(row, col, d[0], d[1])
		for i := 1; i <= n; i++ {
			next.Board[row+i*d[0]][col+i*d[1]] = own
		}
	}
	next.Turn = gs.Turn.Opponent()
	return next, nil
}

// Play is ApplyMove for a Move value.
func (gs GameState) Play(move Move) (GameState, error) {
	return gs.ApplyMove(move.Row, move.Col)
}

// LegalMoves returns the valid moves for the side to move in row-major order.
func (gs GameState) LegalMoves() []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if gs.IsValidMove(row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves without the allocation.
func (gs GameState) HasLegalMove() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if gs.IsValidMove(row, col) {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether the side to move has no legal move. The game
// ends there even if the opponent could still move; StandardRules passes
// the turn instead.
func (gs GameState) IsTerminal() bool {
	return !gs.HasLegalMove()
}

// Score returns the number of black and white discs.
func (gs GameState) Score() (black, white int) {
	black, white, _ = gs.Board.Count()
	return
}

// Empty returns the number of empty cells.
func (gs GameState) Empty() int {
	_, _, empty := gs.Board.Count()
	return empty
}

// Decide compares disc counts regardless of whether the game is over.
func (gs GameState) Decide() Outcome {
	black, white := gs.Score()
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Tie
	}
}

// Winner is Undecided until the state is terminal.
func (gs GameState) Winner() Outcome {
	if !gs.IsTerminal() {
		return Undecided
	}
	return gs.Decide()
}

// Pass hands the turn to the opponent without placing a disc.
func (gs GameState) Pass() GameState {
	gs.Turn = gs.Turn.Opponent()
	return gs
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, uint8(gs.Turn))

	// Hash cells
	for row := range gs.Board {
		for _, cell := range gs.Board[row] {
			hasher.Write([]byte{byte(cell)})
		}
	}

	return StateHash(hasher.Sum64())
}

func (gs GameState) String() string {
	return fmt.Sprintf("%sto move: %s", gs.Board, gs.Turn)
}
