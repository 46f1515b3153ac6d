package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/testing/suite"
)

func TestRedisStats_RecordGame(t *testing.T) {
	ctx, client := suite.Redis(t)

	repo := NewRedisStatsRepository(client, 20)

	// Given: a finished game record
	record := sampleRecord("g1", engine.PlayerX, time.Now().UTC())

	// When: recording it
	err := repo.RecordGame(ctx, record)

	// Then: counters and history reflect it
	require.NoError(t, err)

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AIWins)
	assert.Equal(t, 1, summary.TotalGames())

	records, err := repo.RecentGames(ctx, 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, record.Board, records[0].Board)
}

func TestRedisStats_Summary(t *testing.T) {
	ctx, client := suite.Redis(t)

	repo := NewRedisStatsRepository(client, 20)

	// Given: an empty store
	// When: asking for the summary
	summary, err := repo.Summary(ctx)

	// Then: all counters are zero
	require.NoError(t, err)
	assert.Zero(t, summary.TotalGames())

	// Given: one game per outcome
	now := time.Now().UTC()
	require.NoError(t, repo.RecordGame(ctx, sampleRecord("g1", engine.PlayerX, now)))
	require.NoError(t, repo.RecordGame(ctx, sampleRecord("g2", engine.PlayerO, now)))
	require.NoError(t, repo.RecordGame(ctx, sampleRecord("g3", engine.PlayerTie, now)))

	// When: asking again
	summary, err = repo.Summary(ctx)

	// Then: each counter is one
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AIWins)
	assert.Equal(t, 1, summary.HumanWins)
	assert.Equal(t, 1, summary.Ties)
}

func TestRedisStats_HistoryCap(t *testing.T) {
	ctx, client := suite.Redis(t)

	// Given: a repository keeping only the last 2 games
	repo := NewRedisStatsRepository(client, 2)

	now := time.Now().UTC()
	require.NoError(t, repo.RecordGame(ctx, sampleRecord("g1", engine.PlayerX, now)))
	require.NoError(t, repo.RecordGame(ctx, sampleRecord("g2", engine.PlayerX, now)))
	require.NoError(t, repo.RecordGame(ctx, sampleRecord("g3", engine.PlayerX, now)))

	// When: loading the history
	records, err := repo.RecentGames(ctx, 10)

	// Then: the oldest game fell off, newest first
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "g3", records[0].ID)
	assert.Equal(t, "g2", records[1].ID)

	// And: the counters still include every game
	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.AIWins)
}
