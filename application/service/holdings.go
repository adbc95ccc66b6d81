package service

import (
	"context"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/syncrun"
)

// Holdings serves the dashboard's read side: the mirrored rows, the
// owner's database links, and the sync run history.
type Holdings struct {
	assets      holding.AssetStore
	places      holding.PlaceStore
	investments holding.InvestmentStore
	links       holding.LinkStore
	runs        syncrun.Store
}

// NewHoldings creates a Holdings service.
func NewHoldings(
	assets holding.AssetStore,
	places holding.PlaceStore,
	investments holding.InvestmentStore,
	links holding.LinkStore,
	runs syncrun.Store,
) *Holdings {
	return &Holdings{
		assets:      assets,
		places:      places,
		investments: investments,
		links:       links,
		runs:        runs,
	}
}

// Assets lists the owner's mirrored assets. Extra options can page the
// result set.
func (h *Holdings) Assets(ctx context.Context, ownerID string, opts ...holding.Option) ([]holding.Asset, error) {
	return h.assets.Find(ctx, listOptions(ownerID, opts)...)
}

// Places lists the owner's mirrored places.
func (h *Holdings) Places(ctx context.Context, ownerID string, opts ...holding.Option) ([]holding.Place, error) {
	return h.places.Find(ctx, listOptions(ownerID, opts)...)
}

// Investments lists the owner's mirrored investments.
func (h *Holdings) Investments(ctx context.Context, ownerID string, opts ...holding.Option) ([]holding.Investment, error) {
	return h.investments.Find(ctx, listOptions(ownerID, opts)...)
}

func listOptions(ownerID string, extra []holding.Option) []holding.Option {
	opts := []holding.Option{holding.WithOwner(ownerID), holding.WithOrderBy("name", true)}
	return append(opts, extra...)
}

// Links lists the owner's external database links.
func (h *Holdings) Links(ctx context.Context, ownerID string) ([]holding.DatabaseLink, error) {
	return h.links.Find(ctx, holding.WithOwner(ownerID))
}

// SaveLink links the owner's kind to an external database, replacing any
// previous link for that kind.
func (h *Holdings) SaveLink(ctx context.Context, ownerID string, kind holding.Kind, databaseID string) (holding.DatabaseLink, error) {
	link, err := holding.NewDatabaseLink(ownerID, kind, databaseID)
	if err != nil {
		return holding.DatabaseLink{}, err
	}
	return h.links.Save(ctx, link)
}

// DeleteLink removes the owner's link for a kind.
func (h *Holdings) DeleteLink(ctx context.Context, ownerID string, kind holding.Kind) error {
	link, err := h.links.FindOne(ctx, holding.WithOwner(ownerID), holding.WithKind(kind))
	if err != nil {
		return err
	}
	return h.links.Delete(ctx, link)
}

// Runs lists the owner's most recent sync runs, newest first. Extra
// options can page the result set.
func (h *Holdings) Runs(ctx context.Context, ownerID string, opts ...holding.Option) ([]syncrun.Run, error) {
	all := []holding.Option{
		holding.WithOwner(ownerID),
		holding.WithOrderBy("started_at", false),
		holding.WithLimit(20),
	}
	return h.runs.Find(ctx, append(all, opts...)...)
}
