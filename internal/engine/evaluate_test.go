package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Run("Won board scores the terminal value", func(t *testing.T) {
		// Given: X holds the top row
		board := Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: evaluating for both perspectives
		// Then: the winner's perspective is maximal, the loser's minimal
		assert.Equal(t, wonScore, Evaluate(board, PlayerX, PlayerO))
		assert.Equal(t, -wonScore, Evaluate(board, PlayerO, PlayerX))
	})

	t.Run("Empty board is balanced", func(t *testing.T) {
		assert.Zero(t, Evaluate(Board{}, PlayerX, PlayerO))
	})

	t.Run("Drawn full board scores zero", func(t *testing.T) {
		// Given: a full board with no three-in-a-line
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// Then: no positional residue from either perspective
		assert.Zero(t, Evaluate(board, PlayerX, PlayerO))
		assert.Zero(t, Evaluate(board, PlayerO, PlayerX))
	})

	t.Run("Heuristic is symmetric in the two marks", func(t *testing.T) {
		// Given: an asymmetric mid-game position
		board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX, EmptyCell, EmptyCell, PlayerO, EmptyCell}

		// When: evaluating from both sides
		// Then: the scores are exact negatives of each other
		assert.Equal(t, Evaluate(board, PlayerX, PlayerO), -Evaluate(board, PlayerO, PlayerX))
	})

	t.Run("More favorable structure never scores lower", func(t *testing.T) {
		// Given: a baseline position
		base := Board{PlayerX, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, PlayerO}
		baseScore := Evaluate(base, PlayerX, PlayerO)

		// When: X additionally takes the center
		withCenter := base
		withCenter[CenterCell] = PlayerX

		// Then: the score does not drop
		assert.GreaterOrEqual(t, Evaluate(withCenter, PlayerX, PlayerO), baseScore)

		// When: X additionally builds a near-win line
		withThreat := withCenter
		withThreat[1] = PlayerX // 0-1-2 becomes X,X,empty

		// Then: the score climbs further
		assert.Greater(t, Evaluate(withThreat, PlayerX, PlayerO), Evaluate(withCenter, PlayerX, PlayerO))
	})

	t.Run("A fork outweighs a single threat", func(t *testing.T) {
		// Given: X with one open near-win line
		single := Board{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, PlayerX,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// Given: X with two simultaneous near-win lines (0-1-2 and 0-3-6)
		fork := Board{
			PlayerX, PlayerX, EmptyCell,
			PlayerX, PlayerO, PlayerO,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// Then: the fork position scores strictly higher
		assert.Greater(t, Evaluate(fork, PlayerX, PlayerO), Evaluate(single, PlayerX, PlayerO))
		assert.GreaterOrEqual(t, nearWinLines(&fork, PlayerX), 2)
	})
}

func TestEvaluateForDisplay(t *testing.T) {
	t.Run("Empty board advertises center and corners", func(t *testing.T) {
		// When: analyzing the empty board
		score, advice := EvaluateForDisplay(Board{}, PlayerX, PlayerO)

		// Then: positional advice only, balanced score
		assert.Zero(t, score)
		assert.Contains(t, advice, AdviceCenterOpen)
		assert.Contains(t, advice, AdviceCornersOpen)
		assert.NotContains(t, advice, AdviceWinAvailable)
		assert.NotContains(t, advice, AdviceLossThreat)
	})

	t.Run("Flags an immediate winning move", func(t *testing.T) {
		// Given: X to win at cell 2
		board := Board{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: analyzing for X
		_, advice := EvaluateForDisplay(board, PlayerX, PlayerO)

		// Then: both the win and the counter-threat are flagged
		assert.Contains(t, advice, AdviceWinAvailable)
		assert.Contains(t, advice, AdviceLossThreat)
	})

	t.Run("Flags an opponent fork", func(t *testing.T) {
		// Given: O threatens on both diagonals through the center
		board := Board{
			PlayerO, PlayerX, PlayerO,
			EmptyCell, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
		}

		// When: analyzing for X
		_, advice := EvaluateForDisplay(board, PlayerX, PlayerO)

		// Then: the fork threat is flagged
		assert.Contains(t, advice, AdviceForkThreat)
	})
}
