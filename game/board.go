package game

import "strings"

// Board is an 8x8 row-major grid. Assigning a Board copies it.
type Board [Size][Size]Cell

// NewBoard returns the starting layout.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = WhiteDisc, WhiteDisc
	b[mid-1][mid], b[mid][mid-1] = BlackDisc, BlackDisc
	return b
}

// At returns the cell at (row, col). The coordinates must be in range.
func (b *Board) At(row, col int) Cell {
	return b[row][col]
}

// Count returns the number of black, white and empty cells.
func (b *Board) Count() (black, white, empty int) {
	for row := range b {
		for _, cell := range b[row] {
			switch cell {
			case BlackDisc:
				black++
			case WhiteDisc:
				white++
			default:
				empty++
			}
		}
	}
	return
}

// String renders the board with column letters and row numbers.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("   A B C D E F G H\n")
	for row := range b {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for _, cell := range b[row] {
			sb.WriteByte('|')
			sb.WriteString(cell.String())
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
