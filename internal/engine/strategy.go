package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arcadelab/tictacai/internal/apperror"
)

// Difficulty selects the move-choice policy for the AI.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyUnbeatable Difficulty = "unbeatable"
)

var ErrUnknownDifficulty = fmt.Errorf("unknown difficulty")

// ParseDifficulty validates a difficulty name from config or user input.
func ParseDifficulty(name string) (Difficulty, error) {
	switch Difficulty(name) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyUnbeatable:
		return Difficulty(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
}

const (
	// DefaultSmartMoveChance is the probability that the easy tier plays an
	// obvious win or block instead of a random move.
	DefaultSmartMoveChance = 0.3

	// DefaultHardDepth bounds the hard tier search in plies.
	DefaultHardDepth = 3
)

// Decision is the outcome of a strategy pick. Search is nil when the move
// came from tactics or a random choice.
type Decision struct {
	Cell   int
	Search *SearchResult
}

// Strategy maps a difficulty tier to a move-choice policy. It is stateless
// between calls: a pick depends only on the tier, the board and the tunables.
type Strategy struct {
	smartMoveChance float64
	hardDepth       int
	rng             *rand.Rand
}

// NewStrategy builds a strategy with the given tunables. A non-positive
// hardDepth falls back to the default.
func NewStrategy(smartMoveChance float64, hardDepth int, rng *rand.Rand) *Strategy {
	if hardDepth <= 0 {
		hardDepth = DefaultHardDepth
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // game move selection, not crypto
	}

	return &Strategy{
		smartMoveChance: smartMoveChance,
		hardDepth:       hardDepth,
		rng:             rng,
	}
}

// ChooseMove picks the AI's move for the given tier. It fails with
// ErrNoLegalMoves on a full board; callers must check the game state first.
func (that *Strategy) ChooseMove(board Board, tier Difficulty, aiMark, playerMark string) (Decision, error) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return Decision{}, apperror.ErrNoLegalMoves
	}

	switch tier {
	case DifficultyEasy:
		return that.chooseEasy(board, legal, aiMark, playerMark), nil

	case DifficultyMedium:
		cell, err := TacticalMove(board, aiMark, playerMark)
		if err != nil {
			return Decision{}, fmt.Errorf("medium tier: %w", err)
		}
		return Decision{Cell: cell}, nil

	case DifficultyHard:
		return that.search(board, aiMark, playerMark, that.hardDepth)

	case DifficultyUnbeatable:
		return that.search(board, aiMark, playerMark, UnlimitedDepth)

	default:
		return Decision{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, tier)
	}
}

// chooseEasy plays mostly random moves, occasionally spotting an immediate
// win or block.
func (that *Strategy) chooseEasy(board Board, legal []int, aiMark, playerMark string) Decision {
	if that.rng.Float64() < that.smartMoveChance {
		if cell, ok := winningMove(&board, aiMark); ok {
			return Decision{Cell: cell}
		}

		if cell, ok := winningMove(&board, playerMark); ok {
			return Decision{Cell: cell}
		}
	}

	return Decision{Cell: legal[that.rng.Intn(len(legal))]}
}

func (that *Strategy) search(board Board, aiMark, playerMark string, depthLimit int) (Decision, error) {
	result, err := Search(board, aiMark, playerMark, depthLimit)
	if err != nil {
		return Decision{}, fmt.Errorf("search failed: %w", err)
	}

	return Decision{Cell: result.Move, Search: &result}, nil
}
