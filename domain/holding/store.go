package holding

import "context"

// AssetStore persists mirrored assets.
type AssetStore interface {
	Find(ctx context.Context, options ...Option) ([]Asset, error)
	FindOne(ctx context.Context, options ...Option) (Asset, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	// ExternalIDs returns the stored external ids for one (owner, database)
	// pair, as persisted (callers normalize before comparing).
	ExternalIDs(ctx context.Context, ownerID, databaseID string) ([]string, error)
	// Reconcile writes the full current record set, keyed on the
	// (owner_id, external_id) conflict pair, and deletes the rows for the
	// given normalized removed ids within the same (owner, database) pair.
	// Both commit in one transaction. It returns the saved rows with
	// primary keys populated.
	Reconcile(ctx context.Context, ownerID, databaseID string, assets []Asset, removedIDs []string) ([]Asset, error)
	// SetIconURL updates only the durable icon URL of one row.
	SetIconURL(ctx context.Context, id int64, url string) error
}

// PlaceStore persists mirrored places.
type PlaceStore interface {
	Find(ctx context.Context, options ...Option) ([]Place, error)
	FindOne(ctx context.Context, options ...Option) (Place, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	ExternalIDs(ctx context.Context, ownerID, databaseID string) ([]string, error)
	Reconcile(ctx context.Context, ownerID, databaseID string, places []Place, removedIDs []string) ([]Place, error)
	SetIconURL(ctx context.Context, id int64, url string) error
}

// InvestmentStore persists mirrored investments.
type InvestmentStore interface {
	Find(ctx context.Context, options ...Option) ([]Investment, error)
	FindOne(ctx context.Context, options ...Option) (Investment, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	ExternalIDs(ctx context.Context, ownerID, databaseID string) ([]string, error)
	Reconcile(ctx context.Context, ownerID, databaseID string, investments []Investment, removedIDs []string) ([]Investment, error)
}

// LinkStore persists owner → external database links.
type LinkStore interface {
	Find(ctx context.Context, options ...Option) ([]DatabaseLink, error)
	FindOne(ctx context.Context, options ...Option) (DatabaseLink, error)
	// Save upserts a link on the (owner_id, kind) pair.
	Save(ctx context.Context, link DatabaseLink) (DatabaseLink, error)
	Delete(ctx context.Context, link DatabaseLink) error
}
