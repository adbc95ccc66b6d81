package holding

import "time"

// Investment is a mirrored row of the owner's external investment database.
// It may reference zero-or-one Asset and zero-or-one Place, always by
// internal primary key, never by external id.
type Investment struct {
	id            int64
	ownerID       string
	externalID    string
	databaseID    string
	name          string
	quantity      *float64
	purchasePrice *float64
	purchaseDate  string
	assetID       *int64
	placeID       *int64
	properties    map[string]any
	createdAt     time.Time
	updatedAt     time.Time
	lastSyncedAt  time.Time
}

// NewInvestment creates an Investment for a freshly fetched external record.
func NewInvestment(ownerID, externalID, databaseID string) Investment {
	now := time.Now().UTC()
	return Investment{
		ownerID:    ownerID,
		externalID: externalID,
		databaseID: databaseID,
		createdAt:  now,
		updatedAt:  now,
	}
}

// ReconstructInvestment rebuilds an Investment from persistence.
func ReconstructInvestment(
	id int64,
	ownerID, externalID, databaseID, name string,
	quantity, purchasePrice *float64,
	purchaseDate string,
	assetID, placeID *int64,
	properties map[string]any,
	createdAt, updatedAt, lastSyncedAt time.Time,
) Investment {
	return Investment{
		id:            id,
		ownerID:       ownerID,
		externalID:    externalID,
		databaseID:    databaseID,
		name:          name,
		quantity:      quantity,
		purchasePrice: purchasePrice,
		purchaseDate:  purchaseDate,
		assetID:       assetID,
		placeID:       placeID,
		properties:    properties,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		lastSyncedAt:  lastSyncedAt,
	}
}

// ID returns the store-generated primary key (0 before first save).
func (i Investment) ID() int64 { return i.id }

// OwnerID returns the opaque owner identifier.
func (i Investment) OwnerID() string { return i.ownerID }

// ExternalID returns the normalized external id.
func (i Investment) ExternalID() string { return i.externalID }

// DatabaseID returns the external database this row was mirrored from.
func (i Investment) DatabaseID() string { return i.databaseID }

// Name returns the record title.
func (i Investment) Name() string { return i.name }

// Quantity returns the held quantity, or nil.
func (i Investment) Quantity() *float64 { return i.quantity }

// PurchasePrice returns the purchase price, or nil.
func (i Investment) PurchasePrice() *float64 { return i.purchasePrice }

// PurchaseDate returns the purchase date string, or "".
func (i Investment) PurchaseDate() string { return i.purchaseDate }

// AssetID returns the referenced asset's primary key, or nil when the
// relation was absent or could not be resolved.
func (i Investment) AssetID() *int64 { return i.assetID }

// PlaceID returns the referenced place's primary key, or nil.
func (i Investment) PlaceID() *int64 { return i.placeID }

// Properties returns the full decoded property bag keyed by display name.
func (i Investment) Properties() map[string]any { return i.properties }

// CreatedAt returns the creation timestamp.
func (i Investment) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last update timestamp.
func (i Investment) UpdatedAt() time.Time { return i.updatedAt }

// LastSyncedAt returns when a sync last confirmed this row.
func (i Investment) LastSyncedAt() time.Time { return i.lastSyncedAt }

// WithID returns a copy with the primary key set (after persistence).
func (i Investment) WithID(id int64) Investment {
	i.id = id
	return i
}

// WithName returns a copy with the name set.
func (i Investment) WithName(name string) Investment {
	i.name = name
	return i
}

// WithQuantity returns a copy with the quantity set.
func (i Investment) WithQuantity(quantity *float64) Investment {
	i.quantity = quantity
	return i
}

// WithPurchasePrice returns a copy with the purchase price set.
func (i Investment) WithPurchasePrice(price *float64) Investment {
	i.purchasePrice = price
	return i
}

// WithPurchaseDate returns a copy with the purchase date set.
func (i Investment) WithPurchaseDate(date string) Investment {
	i.purchaseDate = date
	return i
}

// WithAssetID returns a copy referencing the given asset primary key.
func (i Investment) WithAssetID(id int64) Investment {
	i.assetID = &id
	return i
}

// WithPlaceID returns a copy referencing the given place primary key.
func (i Investment) WithPlaceID(id int64) Investment {
	i.placeID = &id
	return i
}

// WithProperties returns a copy with the decoded property bag set.
func (i Investment) WithProperties(properties map[string]any) Investment {
	i.properties = properties
	return i
}

// Synced returns a copy stamped as confirmed by a sync at t.
func (i Investment) Synced(t time.Time) Investment {
	i.updatedAt = t
	i.lastSyncedAt = t
	return i
}
