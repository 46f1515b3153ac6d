package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (engine.Decision, error)
}

type botService struct {
	logger   *slog.Logger
	strategy *engine.Strategy
}

func NewBotService(logger *slog.Logger, strategy *engine.Strategy) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		strategy: strategy,
	}
}

// MakeTurn asks the strategy selector for a move at the game's difficulty
// and applies it. The returned decision carries search statistics when the
// move came from minimax.
func (that *botService) MakeTurn(game *entity.Game) (engine.Decision, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return engine.Decision{}, fmt.Errorf("bot cannot move: %w", err)
	}

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return engine.Decision{}, ErrBotNotFound
	}

	humanMark := engine.OpposingMark(botPlayer.Mark)

	decision, err := that.strategy.ChooseMove(game.Board, game.Difficulty, botPlayer.Mark, humanMark)
	if err != nil {
		return engine.Decision{}, fmt.Errorf("failed to choose move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, decision.Cell); err != nil {
		return engine.Decision{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if decision.Search != nil {
		that.logger.Debug("search finished",
			"game_id", game.ID,
			"difficulty", game.Difficulty,
			"move", decision.Cell,
			"score", decision.Search.Score,
			"nodes", decision.Search.Nodes,
			"elapsed", decision.Search.Elapsed,
		)
	}

	return decision, nil
}
