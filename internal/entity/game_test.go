package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadelab/tictacai/internal/apperror"
	"github.com/arcadelab/tictacai/internal/engine"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it reports finished
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it reports ongoing
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// Then: it reports waiting
		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestNewGame(t *testing.T) {
	// When: creating a session where the human opens
	game := NewGame("g1", engine.DifficultyUnbeatable, engine.PlayerO)

	// Then: it is waiting, the human plays O, the bot plays X
	assert.True(t, game.IsWaiting())
	assert.Equal(t, engine.PlayerO, game.Turn)
	require.NotNil(t, game.BotPlayer())
	require.NotNil(t, game.HumanPlayer())
	assert.Equal(t, engine.PlayerX, game.BotPlayer().Mark)
	assert.Equal(t, engine.PlayerO, game.HumanPlayer().Mark)
}

func TestGame_MakeTurn(t *testing.T) {
	newOngoing := func(firstMark string) *Game {
		game := NewGame("g1", engine.DifficultyMedium, firstMark)
		game.Start()
		return game
	}

	t.Run("Applies a move and passes the turn", func(t *testing.T) {
		// Given: an ongoing game with O to move
		game := newOngoing(engine.PlayerO)

		// When: O plays the center
		err := game.MakeTurn(engine.PlayerO, 4)

		// Then: the cell is set, the move counted and X is to move
		require.NoError(t, err)
		assert.Equal(t, engine.PlayerO, game.Board[4])
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, engine.PlayerX, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		// Given: an ongoing game with O to move
		game := newOngoing(engine.PlayerO)

		// When: X tries to move
		err := game.MakeTurn(engine.PlayerX, 0)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Zero(t, game.Moves)
	})

	t.Run("Rejects a move to an occupied cell", func(t *testing.T) {
		// Given: O already took the center
		game := newOngoing(engine.PlayerO)
		require.NoError(t, game.MakeTurn(engine.PlayerO, 4))

		// When: X plays the same cell
		err := game.MakeTurn(engine.PlayerX, 4)

		// Then: the move is rejected as illegal
		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Rejects a move after the game finished", func(t *testing.T) {
		// Given: a finished game
		game := newOngoing(engine.PlayerX)
		game.Status = StatusFinished

		// When: anyone moves
		err := game.MakeTurn(engine.PlayerX, 0)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Finishes the game on a winning move", func(t *testing.T) {
		// Given: X one move away from the top row
		game := newOngoing(engine.PlayerX)
		game.Board = engine.Board{
			engine.PlayerX, engine.PlayerX, engine.EmptyCell,
			engine.PlayerO, engine.PlayerO, engine.EmptyCell,
			engine.EmptyCell, engine.EmptyCell, engine.EmptyCell,
		}

		// When: X completes the row
		err := game.MakeTurn(engine.PlayerX, 2)

		// Then: the game is finished with X as winner and no one to move
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, engine.PlayerX, game.Winner)
		assert.Empty(t, game.Turn)
	})

	t.Run("Finishes the game on a draw", func(t *testing.T) {
		// Given: one empty cell left, filling it draws
		game := newOngoing(engine.PlayerO)
		game.Board = engine.Board{
			engine.PlayerX, engine.PlayerO, engine.PlayerX,
			engine.PlayerX, engine.PlayerO, engine.PlayerO,
			engine.PlayerO, engine.PlayerX, engine.EmptyCell,
		}

		// When: O fills the last cell
		err := game.MakeTurn(engine.PlayerO, 8)

		// Then: the game is a tie
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, engine.PlayerTie, game.Winner)
	})
}
