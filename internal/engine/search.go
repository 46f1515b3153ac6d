package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/arcadelab/tictacai/internal/apperror"
)

// UnlimitedDepth disables the depth cutoff: the search runs to the end of
// the game tree and is provably optimal.
const UnlimitedDepth = -1

// SearchResult is produced fresh per search call. Nodes and Elapsed are
// observational only and never affect the chosen move.
type SearchResult struct {
	Move    int
	Score   int
	Nodes   int
	Elapsed time.Duration
}

// Search runs minimax with alpha-beta pruning for the AI to move and returns
// the best move with its score. depthLimit bounds the search in plies;
// UnlimitedDepth means full search. Among equal-scoring moves the lowest cell
// index wins, so play is deterministic.
//
// Calling Search on a board that is already decided or full is a contract
// violation and returns ErrInvalidSearchState.
func Search(board Board, aiMark, playerMark string, depthLimit int) (SearchResult, error) {
	if board.Winner() != EmptyCell || board.IsFull() {
		return SearchResult{}, fmt.Errorf("%w: winner=%q full=%t",
			apperror.ErrInvalidSearchState, board.Winner(), board.IsFull())
	}

	s := &searcher{
		aiMark:     aiMark,
		playerMark: playerMark,
		depthLimit: depthLimit,
	}

	start := time.Now()
	score, move := s.minimax(&board, 0, true, math.MinInt, math.MaxInt)

	return SearchResult{
		Move:    move,
		Score:   score,
		Nodes:   s.nodes,
		Elapsed: time.Since(start),
	}, nil
}

type searcher struct {
	aiMark     string
	playerMark string
	depthLimit int
	nodes      int
}

// minimax recursively scores the position. The board is mutated in place
// through Apply/Undo pairs; every exit path, including pruning breaks,
// restores the cell before returning.
func (that *searcher) minimax(board *Board, depth int, maximizing bool, alpha, beta int) (int, int) {
	that.nodes++

	// Terminal nodes score the exact game value, depth-weighted so the
	// engine prefers faster wins and slower losses. wonScore sits above
	// the heuristic range, so a bounded search never trades a win inside
	// its horizon for positional score.
	switch board.Winner() {
	case that.aiMark:
		return wonScore - depth, -1
	case that.playerMark:
		return -wonScore + depth, -1
	}

	if board.IsFull() {
		return 0, -1
	}

	// Cutoff node: fall back to the positional heuristic.
	if that.depthLimit != UnlimitedDepth && depth >= that.depthLimit {
		return heuristic(board, that.aiMark, that.playerMark), -1
	}

	if maximizing {
		best, bestMove := math.MinInt, -1

		for _, move := range board.LegalMoves() {
			// moves come from LegalMoves, Apply cannot fail here
			_ = board.Apply(move, that.aiMark)
			score, _ := that.minimax(board, depth+1, false, alpha, beta)
			board.Undo(move)

			if score > best {
				best, bestMove = score, move
			}

			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best, bestMove
	}

	best, bestMove := math.MaxInt, -1

	for _, move := range board.LegalMoves() {
		_ = board.Apply(move, that.playerMark)
		score, _ := that.minimax(board, depth+1, true, alpha, beta)
		board.Undo(move)

		if score < best {
			best, bestMove = score, move
		}

		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best, bestMove
}
