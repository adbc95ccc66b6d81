package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/infrastructure/persistence"
	"github.com/nightowl-labs/homedash/internal/testdb"
)

func newAsset(ownerID, externalID string) holding.Asset {
	price := 42.5
	return holding.NewAsset(ownerID, externalID, "db-1").
		WithName("Acme Corp").
		WithSymbol("ACME").
		WithCurrentPrice(&price).
		WithIcon("https://img.example.com/acme.png").
		WithProperties(map[string]any{"Name": "Acme Corp", "Ticker": "ACME"}).
		Synced(time.Now().UTC())
}

func TestAssetStoreReconcileAssignsIDs(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)
	ctx := context.Background()

	saved, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{newAsset("u1", "abc123def")}, nil)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotZero(t, saved[0].ID())
	assert.Equal(t, "Acme Corp", saved[0].Name())
	assert.Equal(t, "ACME", saved[0].Symbol())
	require.NotNil(t, saved[0].CurrentPrice())
	assert.Equal(t, 42.5, *saved[0].CurrentPrice())
	assert.Equal(t, map[string]any{"Name": "Acme Corp", "Ticker": "ACME"}, saved[0].Properties())
}

func TestAssetStoreReconcileIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)
	ctx := context.Background()

	first, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{newAsset("u1", "abc123def")}, nil)
	require.NoError(t, err)

	updated := newAsset("u1", "abc123def").WithName("Acme Corporation")
	second, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{updated}, nil)
	require.NoError(t, err)

	assert.Equal(t, first[0].ID(), second[0].ID())
	assert.Equal(t, "Acme Corporation", second[0].Name())

	count, err := store.Count(ctx, holding.WithOwner("u1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAssetStoreReconcileDoesNotClearIconURL(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)
	ctx := context.Background()

	saved, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{newAsset("u1", "abc123def")}, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetIconURL(ctx, saved[0].ID(), "https://cdn.example.com/u1/abc123def.png"))

	// A later sync writes the row again without a mirrored icon URL.
	_, err = store.Reconcile(ctx, "u1", "db-1", []holding.Asset{newAsset("u1", "abc123def")}, nil)
	require.NoError(t, err)

	row, err := store.FindOne(ctx, holding.WithOwner("u1"), holding.WithExternalID("abc123def"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/u1/abc123def.png", row.IconURL())
}

func TestAssetStoreOwnersAreIsolated(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)
	ctx := context.Background()

	_, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{newAsset("u1", "abc123def")}, nil)
	require.NoError(t, err)
	_, err = store.Reconcile(ctx, "u2", "db-1", []holding.Asset{newAsset("u2", "abc123def")}, nil)
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAssetStoreReconcileDeletesRemoved(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)
	ctx := context.Background()

	_, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{
		newAsset("u1", "aaa111"),
		newAsset("u1", "bbb222"),
	}, nil)
	require.NoError(t, err)

	ids, err := store.ExternalIDs(ctx, "u1", "db-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"aaa111", "bbb222"}, ids)

	_, err = store.Reconcile(ctx, "u1", "db-1", []holding.Asset{newAsset("u1", "bbb222")}, []string{"aaa111"})
	require.NoError(t, err)

	ids, err = store.ExternalIDs(ctx, "u1", "db-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bbb222"}, ids)
}

func TestAssetStoreQueryOptions(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)
	ctx := context.Background()

	saved, err := store.Reconcile(ctx, "u1", "db-1", []holding.Asset{
		newAsset("u1", "aaa111"),
		newAsset("u1", "bbb222"),
	}, nil)
	require.NoError(t, err)

	other := holding.NewAsset("u1", "ccc333", "db-2").WithName("Other Corp").Synced(time.Now().UTC())
	_, err = store.Reconcile(ctx, "u1", "db-2", []holding.Asset{other}, nil)
	require.NoError(t, err)

	byDatabase, err := store.Find(ctx, holding.WithOwner("u1"), holding.WithDatabaseID("db-1"))
	require.NoError(t, err)
	externalIDs := make([]string, len(byDatabase))
	for i, a := range byDatabase {
		externalIDs[i] = a.ExternalID()
	}
	assert.ElementsMatch(t, []string{"aaa111", "bbb222"}, externalIDs)

	byIDSet, err := store.Find(ctx, holding.WithOwner("u1"), holding.WithExternalIDIn([]string{"aaa111", "ccc333"}))
	require.NoError(t, err)
	assert.Len(t, byIDSet, 2)

	byID, err := store.FindOne(ctx, holding.WithID(saved[0].ID()))
	require.NoError(t, err)
	assert.Equal(t, "aaa111", byID.ExternalID())
}

func TestAssetStoreFindOneNotFound(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewAssetStore(db)

	_, err := store.FindOne(context.Background(), holding.WithOwner("u1"), holding.WithExternalID("missing"))
	require.Error(t, err)
}
