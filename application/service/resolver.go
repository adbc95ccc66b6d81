package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/record"
	"github.com/nightowl-labs/homedash/internal/config"
	"github.com/nightowl-labs/homedash/internal/retry"
)

// RelationResolver resolves a relation property's referenced external id to
// the internal primary key of an already-synced asset or place row.
//
// Lookups run against the normalized (dashless) id first, with bounded
// backoff to absorb replication lag from a just-completed sync of the
// referenced table. If the normalized form never matches, the raw dashed
// id gets the same retry budget, to tolerate rows stored before id
// normalization was introduced. An unresolved reference is a soft failure:
// the caller stores the record without that foreign key.
type RelationResolver struct {
	assets        holding.AssetStore
	places        holding.PlaceStore
	logger        *slog.Logger
	attempts      int
	initialDelay  time.Duration
	backoffFactor float64
}

// NewRelationResolver creates a RelationResolver.
func NewRelationResolver(
	cfg config.RelationRetryConfig,
	assets holding.AssetStore,
	places holding.PlaceStore,
	logger *slog.Logger,
) *RelationResolver {
	return &RelationResolver{
		assets:        assets,
		places:        places,
		logger:        logger,
		attempts:      cfg.Attempts(),
		initialDelay:  cfg.InitialDelay(),
		backoffFactor: cfg.BackoffFactor(),
	}
}

// ResolveAsset resolves a referenced asset external id to its primary key,
// or nil when unresolved.
func (r *RelationResolver) ResolveAsset(ctx context.Context, ownerID, rawID string) *int64 {
	return r.resolve(ctx, "asset", rawID, func(externalID string) (int64, error) {
		asset, err := r.assets.FindOne(ctx, holding.WithOwner(ownerID), holding.WithExternalID(externalID))
		if err != nil {
			return 0, err
		}
		return asset.ID(), nil
	})
}

// ResolvePlace resolves a referenced place external id to its primary key,
// or nil when unresolved.
func (r *RelationResolver) ResolvePlace(ctx context.Context, ownerID, rawID string) *int64 {
	return r.resolve(ctx, "place", rawID, func(externalID string) (int64, error) {
		place, err := r.places.FindOne(ctx, holding.WithOwner(ownerID), holding.WithExternalID(externalID))
		if err != nil {
			return 0, err
		}
		return place.ID(), nil
	})
}

func (r *RelationResolver) resolve(ctx context.Context, kind, rawID string, lookup func(string) (int64, error)) *int64 {
	if rawID == "" {
		return nil
	}

	candidates := []string{record.NormalizeID(rawID)}
	if rawID != candidates[0] {
		candidates = append(candidates, rawID)
	}

	for _, candidate := range candidates {
		var id int64
		err := retry.Do(ctx, r.attempts, r.initialDelay, r.backoffFactor, func() error {
			found, err := lookup(candidate)
			if err != nil {
				return err
			}
			id = found
			return nil
		})
		if err == nil {
			return &id
		}
	}

	r.logger.Warn("relation unresolved",
		slog.String("kind", kind),
		slog.String("external_id", rawID),
	)
	return nil
}
