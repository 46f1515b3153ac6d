package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/entity"
	"github.com/arcadelab/tictacai/internal/repository/storage"
)

type sqliteStats struct {
	db *sql.DB
}

func NewSQLiteStatsRepository(store *storage.Storage) StatsRepository {
	return &sqliteStats{
		db: store.Connection,
	}
}

func (that *sqliteStats) RecordGame(ctx context.Context, record *entity.GameRecord) error {
	boardJSON, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	query := `INSERT INTO games (id, finished_at, difficulty, moves, winner, board)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = that.db.ExecContext(ctx, query,
		record.ID,
		record.FinishedAt.Format(time.RFC3339Nano),
		record.Difficulty,
		record.Moves,
		record.Winner,
		string(boardJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game record: %w", err)
	}

	return nil
}

func (that *sqliteStats) Summary(ctx context.Context) (*entity.StatsSummary, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0)
		FROM games`

	summary := &entity.StatsSummary{}

	row := that.db.QueryRowContext(ctx, query, engine.PlayerX, engine.PlayerO, engine.PlayerTie)
	if err := row.Scan(&summary.AIWins, &summary.HumanWins, &summary.Ties); err != nil {
		return nil, fmt.Errorf("failed to scan summary: %w", err)
	}

	return summary, nil
}

func (that *sqliteStats) RecentGames(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	query := `SELECT id, finished_at, difficulty, moves, winner, board
		FROM games ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %w", err)
	}
	defer rows.Close()

	records := make([]*entity.GameRecord, 0, limit)

	for rows.Next() {
		var (
			record     entity.GameRecord
			finishedAt string
			boardJSON  string
		)

		if err = rows.Scan(&record.ID, &finishedAt, &record.Difficulty, &record.Moves, &record.Winner, &boardJSON); err != nil {
			return nil, fmt.Errorf("failed to scan game record: %w", err)
		}

		record.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}

		if err = json.Unmarshal([]byte(boardJSON), &record.Board); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board: %w", err)
		}

		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game records: %w", err)
	}

	return records, nil
}
