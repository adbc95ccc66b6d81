package holding

import "time"

// Place is a mirrored row of the owner's external place database: a
// property, residence, or other location-bound holding.
type Place struct {
	id            int64
	ownerID       string
	externalID    string
	databaseID    string
	name          string
	purchasePrice *float64
	purchaseDate  string
	icon          string
	iconURL       string
	properties    map[string]any
	createdAt     time.Time
	updatedAt     time.Time
	lastSyncedAt  time.Time
}

// NewPlace creates a Place for a freshly fetched external record.
func NewPlace(ownerID, externalID, databaseID string) Place {
	now := time.Now().UTC()
	return Place{
		ownerID:    ownerID,
		externalID: externalID,
		databaseID: databaseID,
		createdAt:  now,
		updatedAt:  now,
	}
}

// ReconstructPlace rebuilds a Place from persistence.
func ReconstructPlace(
	id int64,
	ownerID, externalID, databaseID, name string,
	purchasePrice *float64,
	purchaseDate, icon, iconURL string,
	properties map[string]any,
	createdAt, updatedAt, lastSyncedAt time.Time,
) Place {
	return Place{
		id:            id,
		ownerID:       ownerID,
		externalID:    externalID,
		databaseID:    databaseID,
		name:          name,
		purchasePrice: purchasePrice,
		purchaseDate:  purchaseDate,
		icon:          icon,
		iconURL:       iconURL,
		properties:    properties,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		lastSyncedAt:  lastSyncedAt,
	}
}

// ID returns the store-generated primary key (0 before first save).
func (p Place) ID() int64 { return p.id }

// OwnerID returns the opaque owner identifier.
func (p Place) OwnerID() string { return p.ownerID }

// ExternalID returns the normalized external id.
func (p Place) ExternalID() string { return p.externalID }

// DatabaseID returns the external database this row was mirrored from.
func (p Place) DatabaseID() string { return p.databaseID }

// Name returns the record title.
func (p Place) Name() string { return p.name }

// PurchasePrice returns the purchase price, or nil.
func (p Place) PurchasePrice() *float64 { return p.purchasePrice }

// PurchaseDate returns the purchase date string, or "".
func (p Place) PurchaseDate() string { return p.purchaseDate }

// Icon returns the raw icon descriptor from the source.
func (p Place) Icon() string { return p.icon }

// IconURL returns the durable mirrored icon URL, or "".
func (p Place) IconURL() string { return p.iconURL }

// Properties returns the full decoded property bag keyed by display name.
func (p Place) Properties() map[string]any { return p.properties }

// CreatedAt returns the creation timestamp.
func (p Place) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last update timestamp.
func (p Place) UpdatedAt() time.Time { return p.updatedAt }

// LastSyncedAt returns when a sync last confirmed this row.
func (p Place) LastSyncedAt() time.Time { return p.lastSyncedAt }

// WithID returns a copy with the primary key set (after persistence).
func (p Place) WithID(id int64) Place {
	p.id = id
	return p
}

// WithName returns a copy with the name set.
func (p Place) WithName(name string) Place {
	p.name = name
	return p
}

// WithPurchasePrice returns a copy with the purchase price set.
func (p Place) WithPurchasePrice(price *float64) Place {
	p.purchasePrice = price
	return p
}

// WithPurchaseDate returns a copy with the purchase date set.
func (p Place) WithPurchaseDate(date string) Place {
	p.purchaseDate = date
	return p
}

// WithIcon returns a copy with the raw icon descriptor set.
func (p Place) WithIcon(icon string) Place {
	p.icon = icon
	return p
}

// WithIconURL returns a copy with the durable icon URL set. An empty url is
// ignored so a failed mirror run never clears a previously stored icon.
func (p Place) WithIconURL(url string) Place {
	if url != "" {
		p.iconURL = url
	}
	return p
}

// WithProperties returns a copy with the decoded property bag set.
func (p Place) WithProperties(properties map[string]any) Place {
	p.properties = properties
	return p
}

// Synced returns a copy stamped as confirmed by a sync at t.
func (p Place) Synced(t time.Time) Place {
	p.updatedAt = t
	p.lastSyncedAt = t
	return p
}
