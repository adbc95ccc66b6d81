package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/infrastructure/persistence"
	"github.com/nightowl-labs/homedash/internal/config"
	"github.com/nightowl-labs/homedash/internal/testdb"
)

func newResolverFixture(t *testing.T) (*RelationResolver, persistence.AssetStore, persistence.PlaceStore) {
	t.Helper()
	db := testdb.New(t)
	assets := persistence.NewAssetStore(db)
	places := persistence.NewPlaceStore(db)
	resolver := NewRelationResolver(
		config.NewRelationRetryConfigWith(2, time.Millisecond, 2.0),
		assets, places, discardLogger(),
	)
	return resolver, assets, places
}

func TestResolveAssetByNormalizedID(t *testing.T) {
	resolver, assets, _ := newResolverFixture(t)
	ctx := context.Background()

	saved, err := assets.Reconcile(ctx, "u1", "db-1", []holding.Asset{
		holding.NewAsset("u1", "abc123def", "db-1").WithName("Acme Corp"),
	}, nil)
	require.NoError(t, err)

	// The relation property carries the dashed form; the stored row holds
	// the normalized form.
	id := resolver.ResolveAsset(ctx, "u1", "abc-123-def")
	require.NotNil(t, id)
	assert.Equal(t, saved[0].ID(), *id)
}

func TestResolveAssetFallsBackToRawID(t *testing.T) {
	resolver, assets, _ := newResolverFixture(t)
	ctx := context.Background()

	// A row persisted before id normalization was introduced still carries
	// its dashes.
	saved, err := assets.Reconcile(ctx, "u1", "db-1", []holding.Asset{
		holding.NewAsset("u1", "abc-123-def", "db-1").WithName("Acme Corp"),
	}, nil)
	require.NoError(t, err)

	id := resolver.ResolveAsset(ctx, "u1", "abc-123-def")
	require.NotNil(t, id)
	assert.Equal(t, saved[0].ID(), *id)
}

func TestResolveUnknownIDReturnsNil(t *testing.T) {
	resolver, _, _ := newResolverFixture(t)

	assert.Nil(t, resolver.ResolveAsset(context.Background(), "u1", "does-not-exist"))
	assert.Nil(t, resolver.ResolveAsset(context.Background(), "u1", ""))
}

func TestResolveIsScopedToOwner(t *testing.T) {
	resolver, _, places := newResolverFixture(t)
	ctx := context.Background()

	_, err := places.Reconcile(ctx, "u2", "db-1", []holding.Place{
		holding.NewPlace("u2", "abc123def", "db-1").WithName("Lake House"),
	}, nil)
	require.NoError(t, err)

	assert.Nil(t, resolver.ResolvePlace(ctx, "u1", "abc-123-def"))
}
