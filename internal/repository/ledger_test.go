package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_EnsureAndSave(t *testing.T) {
	database := setupTestDB(t)
	seedFleet(t, database)
	repo := NewLedgerRepository(database)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	w := &models.LedgerWindow{
		CardholderID: "ich_1",
		Interval:     models.IntervalDaily,
		WindowStart:  start,
		WindowEnd:    &end,
	}
	require.NoError(t, repo.Ensure(ctx, w))

	// A second Ensure never clobbers the stored row.
	require.NoError(t, repo.Ensure(ctx, &models.LedgerWindow{
		CardholderID:      "ich_1",
		Interval:          models.IntervalDaily,
		WindowStart:       start.Add(time.Hour),
		AccumulatedAmount: 999,
	}))

	stored, err := repo.GetForUpdate(ctx, "ich_1", models.IntervalDaily)
	require.NoError(t, err)
	assert.True(t, stored.WindowStart.Equal(start))
	require.NotNil(t, stored.WindowEnd)
	assert.True(t, stored.WindowEnd.Equal(end))
	assert.Zero(t, stored.AccumulatedAmount)
	assert.Zero(t, stored.Version)

	stored.AccumulatedAmount = 4000
	require.NoError(t, repo.Save(ctx, stored))
	assert.Equal(t, int64(1), stored.Version)

	reread, err := repo.Get(ctx, "ich_1", models.IntervalDaily)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), reread.AccumulatedAmount)
	assert.Equal(t, int64(1), reread.Version)
}

func TestLedgerRepository_SaveVersionConflict(t *testing.T) {
	database := setupTestDB(t)
	seedFleet(t, database)
	repo := NewLedgerRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, &models.LedgerWindow{CardholderID: "ich_1", Interval: models.IntervalAllTime}))

	first, err := repo.Get(ctx, "ich_1", models.IntervalAllTime)
	require.NoError(t, err)
	second, err := repo.Get(ctx, "ich_1", models.IntervalAllTime)
	require.NoError(t, err)
	assert.Nil(t, first.WindowEnd)

	first.AccumulatedAmount = 100
	require.NoError(t, repo.Save(ctx, first))

	second.AccumulatedAmount = 200
	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, models.ErrVersionConflict)
	assert.True(t, IsTransient(err))

	stored, err := repo.Get(ctx, "ich_1", models.IntervalAllTime)
	require.NoError(t, err)
	assert.Equal(t, int64(100), stored.AccumulatedAmount)
}

func TestLedgerRepository_ReplaceAndList(t *testing.T) {
	database := setupTestDB(t)
	seedFleet(t, database)
	repo := NewLedgerRepository(database)
	ctx := context.Background()

	_, err := repo.Get(ctx, "ich_1", models.IntervalWeekly)
	assert.ErrorIs(t, err, models.ErrNotFound)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	weekly := &models.LedgerWindow{CardholderID: "ich_1", Interval: models.IntervalWeekly, WindowStart: start, WindowEnd: &end, AccumulatedAmount: 700}
	require.NoError(t, repo.Replace(ctx, weekly))
	assert.Equal(t, int64(0), weekly.Version)

	weekly.AccumulatedAmount = 800
	require.NoError(t, repo.Replace(ctx, weekly))
	assert.Equal(t, int64(1), weekly.Version)

	require.NoError(t, repo.Replace(ctx, &models.LedgerWindow{CardholderID: "ich_1", Interval: models.IntervalDaily, WindowStart: start, AccumulatedAmount: 50}))

	stored, err := repo.Get(ctx, "ich_1", models.IntervalWeekly)
	require.NoError(t, err)
	assert.Equal(t, int64(800), stored.AccumulatedAmount)
	assert.Equal(t, int64(1), stored.Version)

	daily, err := repo.Get(ctx, "ich_1", models.IntervalDaily)
	require.NoError(t, err)
	assert.Equal(t, int64(50), daily.AccumulatedAmount)

	_, err = repo.Get(ctx, "ich_2", models.IntervalDaily)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
