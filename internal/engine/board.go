package engine

import (
	"fmt"

	"github.com/arcadelab/tictacai/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	// CenterCell is the strongest square on a 3x3 board.
	CenterCell = 4

	boardSize = 9
)

var (
	// WinLines - 3 rows, 3 columns and 2 diagonals.
	WinLines = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	CornerCells = [4]int{0, 2, 6, 8}
	EdgeCells   = [4]int{1, 3, 5, 7}
)

// Board is a 3x3 grid in row-major order. Cells hold PlayerX, PlayerO or
// EmptyCell. The board is owned by a single game session and is only ever
// mutated through Apply and Undo.
type Board [boardSize]string

// LegalMoves returns the indices of empty cells in ascending order.
// An empty result signals a full board.
func (that *Board) LegalMoves() []int {
	moves := make([]int, 0, boardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Apply places mark on the given cell.
func (that *Board) Apply(cell int, mark string) error {
	if cell < 0 || cell >= boardSize {
		return fmt.Errorf("%w: cell %d out of range", apperror.ErrIllegalMove, cell)
	}

	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrIllegalMove, mark)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d is occupied", apperror.ErrIllegalMove, cell)
	}

	that[cell] = mark

	return nil
}

// Undo resets a cell back to empty. It is the inverse of Apply and must only
// be used on the cell set by the matching Apply within the same search branch.
func (that *Board) Undo(cell int) {
	that[cell] = EmptyCell
}

// Winner returns the mark holding a full line, or EmptyCell if there is none.
func (that *Board) Winner() string {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Result derives the game outcome from the board alone: the winning mark,
// PlayerTie for a drawn full board, or EmptyCell while the game is ongoing.
func (that *Board) Result() string {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// OpposingMark returns the other player's mark.
func OpposingMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
