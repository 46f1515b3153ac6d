package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arcadelab/tictacai/internal/apperror"
	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/entity"
	"github.com/arcadelab/tictacai/internal/service"
)

var ErrGameNotFinished = errors.New("game is not finished")

type statsRepo interface {
	RecordGame(ctx context.Context, record *entity.GameRecord) error
	Summary(ctx context.Context) (*entity.StatsSummary, error)
	RecentGames(ctx context.Context, limit int) ([]*entity.GameRecord, error)
}

// SessionManager drives games between the human and the bot and records their
// outcomes. It owns no board state itself; each game carries its own.
type SessionManager struct {
	logger *slog.Logger

	stats statsRepo
	bot   service.BotService
}

func NewSessionManager(logger *slog.Logger, stats statsRepo, bot service.BotService) *SessionManager {
	return &SessionManager{
		logger: logger.With("component", "session"),

		stats: stats,
		bot:   bot,
	}
}

// StartGame creates and starts a fresh game at the given difficulty.
// firstMark decides whether the human (O) or the bot (X) opens.
func (that *SessionManager) StartGame(difficulty engine.Difficulty, firstMark string) *entity.Game {
	game := entity.NewGame(uuid.NewString(), difficulty, firstMark)
	game.Start()

	that.logger.Debug("game started", "game_id", game.ID, "difficulty", difficulty, "first", firstMark)

	return game
}

// HumanTurn applies the human player's move.
func (that *SessionManager) HumanTurn(game *entity.Game, cell int) error {
	human := game.HumanPlayer()
	if human == nil {
		return fmt.Errorf("%w: no human player", apperror.ErrNotYourTurn)
	}

	if err := game.MakeTurn(human.Mark, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

// BotTurn lets the bot reply at the game's difficulty.
func (that *SessionManager) BotTurn(game *entity.Game) (engine.Decision, error) {
	decision, err := that.bot.MakeTurn(game)
	if err != nil {
		return engine.Decision{}, fmt.Errorf("bot turn failed: %w", err)
	}

	return decision, nil
}

// Analyze scores the current position from the bot's perspective.
func (that *SessionManager) Analyze(game *entity.Game) (int, []engine.Advice) {
	botMark := engine.PlayerX
	if bot := game.BotPlayer(); bot != nil {
		botMark = bot.Mark
	}

	return engine.EvaluateForDisplay(game.Board, botMark, engine.OpposingMark(botMark))
}

// FinishGame persists the outcome of a finished game.
func (that *SessionManager) FinishGame(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return fmt.Errorf("%w: game %s", ErrGameNotFinished, game.ID)
	}

	record := &entity.GameRecord{
		ID:         game.ID,
		FinishedAt: time.Now().UTC(),
		Difficulty: string(game.Difficulty),
		Moves:      game.Moves,
		Winner:     game.Winner,
		Board:      game.Board,
	}

	if err := that.stats.RecordGame(ctx, record); err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	return nil
}

// Summary returns the aggregate win/loss record.
func (that *SessionManager) Summary(ctx context.Context) (*entity.StatsSummary, error) {
	summary, err := that.stats.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	return summary, nil
}

// RecentGames returns the most recently recorded games, newest first.
func (that *SessionManager) RecentGames(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	records, err := that.stats.RecentGames(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent games: %w", err)
	}

	return records, nil
}
