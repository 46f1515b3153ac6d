package entity

import (
	"fmt"

	"github.com/arcadelab/tictacai/internal/apperror"
	"github.com/arcadelab/tictacai/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = fmt.Errorf("unknown game status")

// Game is one session against the AI. The board is owned by the session and
// mutated only through MakeTurn; win and draw detection is derived from the
// board on demand, never stored independently of it.
type Game struct {
	ID         string            `json:"id"`
	Board      engine.Board      `json:"board"`
	Winner     string            `json:"winner"`
	Status     string            `json:"status"`
	Turn       string            `json:"player_turn"`
	Difficulty engine.Difficulty `json:"difficulty"`
	Moves      int               `json:"moves"`
	Players    []*Player         `json:"players,omitempty"`
}

// NewGame creates a waiting session with the human as O and the AI bot as X,
// mirroring the original terminal game. firstMark decides who opens.
func NewGame(id string, difficulty engine.Difficulty, firstMark string) *Game {
	return &Game{
		ID:         id,
		Board:      engine.Board{},
		Turn:       firstMark,
		Status:     StatusWaiting,
		Difficulty: difficulty,
		Players: []*Player{
			{ID: "human", Mark: engine.PlayerO},
			{ID: "bot", Mark: engine.PlayerX, Bot: true},
		},
	}
}

// Start moves a waiting game into play.
func (that *Game) Start() {
	if that.Status == StatusWaiting {
		that.Status = StatusOngoing
	}
}

// MakeTurn applies one move for the given mark and updates the game state.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(cell, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Moves++
	that.UpdateGameState(playerMark)

	return nil
}

// UpdateGameState derives winner and status from the board after a move.
func (that *Game) UpdateGameState(lastMark string) {
	switch result := that.Board.Result(); result {
	case engine.PlayerX, engine.PlayerO:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = ""
	case engine.PlayerTie:
		that.Winner = engine.PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Turn = engine.OpposingMark(lastMark)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// BotPlayer returns the AI participant, or nil if the session has none.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// HumanPlayer returns the human participant, or nil if the session has none.
func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}
