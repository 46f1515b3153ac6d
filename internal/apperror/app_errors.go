package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")

	// Core engine contract violations. These signal caller misuse and are
	// never retried or silently substituted.
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidSearchState = errors.New("search invoked on a decided board")
	ErrNoLegalMoves       = errors.New("no legal moves")
)
