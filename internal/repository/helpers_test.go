package repository

import (
	"context"
	"testing"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	return db.NewTestDB(t)
}

// seedFleet writes one business with two cardholders and three cards.
func seedFleet(t *testing.T, database *db.DB) {
	t.Helper()
	ctx := context.Background()
	w := NewConfigWriter(database)

	require.NoError(t, w.UpsertBusiness(ctx, &models.Business{ID: "biz_1", Name: "Acme Haulage", Timezone: "America/New_York"}))
	require.NoError(t, w.UpsertCardholder(ctx, &models.Cardholder{ID: "ich_1", BusinessID: "biz_1", Name: "Dana Driver", Active: true}))
	require.NoError(t, w.UpsertCardholder(ctx, &models.Cardholder{ID: "ich_2", BusinessID: "biz_1", Name: "Sam Spare", Active: false}))
	require.NoError(t, w.UpsertCard(ctx, &models.Card{ID: "ic_1", CardholderID: "ich_1", Last4: "4242", Status: models.CardStatusActive}))
	require.NoError(t, w.UpsertCard(ctx, &models.Card{ID: "ic_2", CardholderID: "ich_1", Last4: "1881", Status: models.CardStatusInactive}))
	require.NoError(t, w.UpsertCard(ctx, &models.Card{ID: "ic_3", CardholderID: "ich_2", Last4: "0005", Status: models.CardStatusActive}))
}
