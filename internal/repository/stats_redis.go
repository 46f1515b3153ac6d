package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/entity"
)

const (
	aiWinsKey      = "stats:ai_wins"
	humanWinsKey   = "stats:human_wins"
	tiesKey        = "stats:ties"
	recentGamesKey = "stats:recent"
)

type redisStats struct {
	client  *redis.Client
	history int64
}

// NewRedisStatsRepository keeps counters per outcome and a capped list of the
// most recent games, newest first.
func NewRedisStatsRepository(client *redis.Client, history int) StatsRepository {
	return &redisStats{
		client:  client,
		history: int64(history),
	}
}

func (that *redisStats) RecordGame(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	var counterKey string
	switch record.Winner {
	case engine.PlayerX:
		counterKey = aiWinsKey
	case engine.PlayerO:
		counterKey = humanWinsKey
	default:
		counterKey = tiesKey
	}

	pipe := that.client.TxPipeline()
	pipe.Incr(ctx, counterKey)
	pipe.LPush(ctx, recentGamesKey, recordJSON)
	pipe.LTrim(ctx, recentGamesKey, 0, that.history-1)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	return nil
}

func (that *redisStats) Summary(ctx context.Context) (*entity.StatsSummary, error) {
	summary := &entity.StatsSummary{}

	counters := []struct {
		key  string
		dest *int
	}{
		{aiWinsKey, &summary.AIWins},
		{humanWinsKey, &summary.HumanWins},
		{tiesKey, &summary.Ties},
	}

	for _, counter := range counters {
		value, err := that.client.Get(ctx, counter.key).Int()

		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get counter %s: %w", counter.key, err)
		}

		*counter.dest = value
	}

	return summary, nil
}

func (that *redisStats) RecentGames(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	entries, err := that.client.LRange(ctx, recentGamesKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load recent games: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(entries))

	for _, entry := range entries {
		var record entity.GameRecord
		if err = json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}
