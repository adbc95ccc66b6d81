package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/syncrun"
	"github.com/nightowl-labs/homedash/infrastructure/persistence"
	"github.com/nightowl-labs/homedash/internal/testdb"
)

func TestLinkStoreSaveUpsertsOnOwnerAndKind(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewLinkStore(db)
	ctx := context.Background()

	link, err := holding.NewDatabaseLink("u1", holding.KindAsset, "db-old")
	require.NoError(t, err)

	saved, err := store.Save(ctx, link)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID())
	assert.Equal(t, "db-old", saved.DatabaseID())

	relinked, err := holding.NewDatabaseLink("u1", holding.KindAsset, "db-new")
	require.NoError(t, err)

	saved, err = store.Save(ctx, relinked)
	require.NoError(t, err)
	assert.Equal(t, "db-new", saved.DatabaseID())

	links, err := store.Find(ctx, holding.WithOwner("u1"))
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestLinkStoreKindsAreIndependent(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewLinkStore(db)
	ctx := context.Background()

	for _, kind := range holding.SyncOrder() {
		link, err := holding.NewDatabaseLink("u1", kind, "db-"+kind.String())
		require.NoError(t, err)
		_, err = store.Save(ctx, link)
		require.NoError(t, err)
	}

	links, err := store.Find(ctx, holding.WithOwner("u1"))
	require.NoError(t, err)
	assert.Len(t, links, 3)

	found, err := store.FindOne(ctx, holding.WithOwner("u1"), holding.WithKind(holding.KindPlace))
	require.NoError(t, err)
	assert.Equal(t, "db-place", found.DatabaseID())
}

func TestSyncRunStoreRoundTrip(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewSyncRunStore(db)
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	run := syncrun.NewRun(uuid.NewString(), "u1", syncrun.TriggerWebhook, syncrun.Result{
		holding.KindAsset: syncrun.Succeeded(2, 1, 10),
		holding.KindPlace: syncrun.Failed("schema fetch: status 404"),
	}, started, started.Add(3*time.Second))

	_, err := store.Save(ctx, run)
	require.NoError(t, err)

	runs, err := store.Find(ctx, holding.WithOwner("u1"))
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID(), got.ID())
	assert.Equal(t, syncrun.TriggerWebhook, got.Trigger())

	asset := got.Results()[holding.KindAsset]
	assert.True(t, asset.Success())
	assert.Equal(t, 2, asset.Added())
	assert.Equal(t, 10, asset.Total())

	place := got.Results()[holding.KindPlace]
	assert.False(t, place.Success())
	assert.Contains(t, place.Err(), "status 404")
}
