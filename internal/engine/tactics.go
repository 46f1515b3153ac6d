package engine

import (
	"fmt"

	"github.com/arcadelab/tictacai/internal/apperror"
)

// TacticalMove picks a move from an ordered rule list, first match wins:
//
//  1. complete a line and win now
//  2. block the opponent's winning move
//  3. take the center
//  4. take the lowest-indexed open corner
//  5. take the lowest-indexed open edge
//
// It is deterministic, search-free and used by the lower difficulty tiers.
func TacticalMove(board Board, aiMark, playerMark string) (int, error) {
	if board.IsFull() {
		return 0, apperror.ErrNoLegalMoves
	}

	if cell, ok := winningMove(&board, aiMark); ok {
		return cell, nil
	}

	if cell, ok := winningMove(&board, playerMark); ok {
		return cell, nil
	}

	if board[CenterCell] == EmptyCell {
		return CenterCell, nil
	}

	for _, corner := range CornerCells {
		if board[corner] == EmptyCell {
			return corner, nil
		}
	}

	for _, edge := range EdgeCells {
		if board[edge] == EmptyCell {
			return edge, nil
		}
	}

	// unreachable: every cell is a center, corner or edge
	return 0, fmt.Errorf("%w: inconsistent board", apperror.ErrNoLegalMoves)
}

// winningMove returns the lowest-indexed cell that completes a line for mark.
func winningMove(board *Board, mark string) (int, bool) {
	for _, cell := range board.LegalMoves() {
		// cells come from LegalMoves, Apply cannot fail here
		_ = board.Apply(cell, mark)
		won := board.Winner() == mark
		board.Undo(cell)

		if won {
			return cell, true
		}
	}

	return 0, false
}
