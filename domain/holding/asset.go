package holding

import "time"

// Asset is a mirrored row of the owner's external asset database: a stock,
// fund, account, or similar tracked instrument.
type Asset struct {
	id           int64
	ownerID      string
	externalID   string
	databaseID   string
	name         string
	symbol       string
	currentPrice *float64
	balance      *float64
	icon         string
	iconURL      string
	properties   map[string]any
	createdAt    time.Time
	updatedAt    time.Time
	lastSyncedAt time.Time
}

// NewAsset creates an Asset for a freshly fetched external record.
// externalID is stored in normalized (dashless) form by the caller.
func NewAsset(ownerID, externalID, databaseID string) Asset {
	now := time.Now().UTC()
	return Asset{
		ownerID:    ownerID,
		externalID: externalID,
		databaseID: databaseID,
		createdAt:  now,
		updatedAt:  now,
	}
}

// ReconstructAsset rebuilds an Asset from persistence.
func ReconstructAsset(
	id int64,
	ownerID, externalID, databaseID, name, symbol string,
	currentPrice, balance *float64,
	icon, iconURL string,
	properties map[string]any,
	createdAt, updatedAt, lastSyncedAt time.Time,
) Asset {
	return Asset{
		id:           id,
		ownerID:      ownerID,
		externalID:   externalID,
		databaseID:   databaseID,
		name:         name,
		symbol:       symbol,
		currentPrice: currentPrice,
		balance:      balance,
		icon:         icon,
		iconURL:      iconURL,
		properties:   properties,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		lastSyncedAt: lastSyncedAt,
	}
}

// ID returns the store-generated primary key (0 before first save).
func (a Asset) ID() int64 { return a.id }

// OwnerID returns the opaque owner identifier.
func (a Asset) OwnerID() string { return a.ownerID }

// ExternalID returns the normalized external id.
func (a Asset) ExternalID() string { return a.externalID }

// DatabaseID returns the external database this row was mirrored from.
func (a Asset) DatabaseID() string { return a.databaseID }

// Name returns the record title.
func (a Asset) Name() string { return a.name }

// Symbol returns the ticker symbol, or "".
func (a Asset) Symbol() string { return a.symbol }

// CurrentPrice returns the current price, or nil.
func (a Asset) CurrentPrice() *float64 { return a.currentPrice }

// Balance returns the account balance, or nil.
func (a Asset) Balance() *float64 { return a.balance }

// Icon returns the raw icon descriptor from the source.
func (a Asset) Icon() string { return a.icon }

// IconURL returns the durable mirrored icon URL, or "".
func (a Asset) IconURL() string { return a.iconURL }

// Properties returns the full decoded property bag keyed by display name.
func (a Asset) Properties() map[string]any { return a.properties }

// CreatedAt returns the creation timestamp.
func (a Asset) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last update timestamp.
func (a Asset) UpdatedAt() time.Time { return a.updatedAt }

// LastSyncedAt returns when a sync last confirmed this row.
func (a Asset) LastSyncedAt() time.Time { return a.lastSyncedAt }

// WithID returns a copy with the primary key set (after persistence).
func (a Asset) WithID(id int64) Asset {
	a.id = id
	return a
}

// WithName returns a copy with the name set.
func (a Asset) WithName(name string) Asset {
	a.name = name
	return a
}

// WithSymbol returns a copy with the symbol set.
func (a Asset) WithSymbol(symbol string) Asset {
	a.symbol = symbol
	return a
}

// WithCurrentPrice returns a copy with the current price set.
func (a Asset) WithCurrentPrice(price *float64) Asset {
	a.currentPrice = price
	return a
}

// WithBalance returns a copy with the balance set.
func (a Asset) WithBalance(balance *float64) Asset {
	a.balance = balance
	return a
}

// WithIcon returns a copy with the raw icon descriptor set.
func (a Asset) WithIcon(icon string) Asset {
	a.icon = icon
	return a
}

// WithIconURL returns a copy with the durable icon URL set. An empty url is
// ignored so a failed mirror run never clears a previously stored icon.
func (a Asset) WithIconURL(url string) Asset {
	if url != "" {
		a.iconURL = url
	}
	return a
}

// WithProperties returns a copy with the decoded property bag set.
func (a Asset) WithProperties(properties map[string]any) Asset {
	a.properties = properties
	return a
}

// Synced returns a copy stamped as confirmed by a sync at t.
func (a Asset) Synced(t time.Time) Asset {
	a.updatedAt = t
	a.lastSyncedAt = t
	return a
}
