package entity

import (
	"time"

	"github.com/arcadelab/tictacai/internal/engine"
)

// GameRecord is the persisted outcome of one finished game.
type GameRecord struct {
	ID         string       `json:"id"`
	FinishedAt time.Time    `json:"finished_at"`
	Difficulty string       `json:"difficulty"`
	Moves      int          `json:"moves"`
	Winner     string       `json:"winner"` // mark of the winner, or PlayerTie
	Board      engine.Board `json:"board"`
}

// StatsSummary aggregates win/loss counts across all recorded games. The AI
// always plays X in this application, so the split is by mark.
type StatsSummary struct {
	AIWins    int `json:"ai_wins"`
	HumanWins int `json:"human_wins"`
	Ties      int `json:"ties"`
}

func (that *StatsSummary) TotalGames() int {
	return that.AIWins + that.HumanWins + that.Ties
}
