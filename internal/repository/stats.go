package repository

import (
	"context"

	"github.com/arcadelab/tictacai/internal/entity"
)

// StatsRepository persists finished games and serves aggregate statistics.
// Two interchangeable backends exist: SQLite for a local file and Redis for
// a shared instance; the config picks one.
type StatsRepository interface {
	RecordGame(ctx context.Context, record *entity.GameRecord) error
	Summary(ctx context.Context) (*entity.StatsSummary, error)
	RecentGames(ctx context.Context, limit int) ([]*entity.GameRecord, error)
}
