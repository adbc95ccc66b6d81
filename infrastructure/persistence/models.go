package persistence

import "time"

// AssetModel represents a mirrored asset row in the database.
type AssetModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID      string    `gorm:"column:owner_id;size:255;uniqueIndex:idx_assets_owner_external;index"`
	ExternalID   string    `gorm:"column:external_id;size:64;uniqueIndex:idx_assets_owner_external"`
	DatabaseID   string    `gorm:"column:database_id;size:64;index"`
	Name         string    `gorm:"column:name;size:1024"`
	Symbol       string    `gorm:"column:symbol;size:255"`
	CurrentPrice *float64  `gorm:"column:current_price"`
	Balance      *float64  `gorm:"column:balance"`
	Icon         string    `gorm:"column:icon;size:2048"`
	IconURL      string    `gorm:"column:icon_url;size:2048"`
	Properties   string    `gorm:"column:properties;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
	LastSyncedAt time.Time `gorm:"column:last_synced_at"`
}

// TableName returns the table name.
func (AssetModel) TableName() string {
	return "assets"
}

// PlaceModel represents a mirrored place row in the database.
type PlaceModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID       string    `gorm:"column:owner_id;size:255;uniqueIndex:idx_places_owner_external;index"`
	ExternalID    string    `gorm:"column:external_id;size:64;uniqueIndex:idx_places_owner_external"`
	DatabaseID    string    `gorm:"column:database_id;size:64;index"`
	Name          string    `gorm:"column:name;size:1024"`
	PurchasePrice *float64  `gorm:"column:purchase_price"`
	PurchaseDate  string    `gorm:"column:purchase_date;size:64"`
	Icon          string    `gorm:"column:icon;size:2048"`
	IconURL       string    `gorm:"column:icon_url;size:2048"`
	Properties    string    `gorm:"column:properties;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
	LastSyncedAt  time.Time `gorm:"column:last_synced_at"`
}

// TableName returns the table name.
func (PlaceModel) TableName() string {
	return "places"
}

// InvestmentModel represents a mirrored investment row in the database.
// AssetID and PlaceID reference internal primary keys, never external ids.
type InvestmentModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID       string    `gorm:"column:owner_id;size:255;uniqueIndex:idx_investments_owner_external;index"`
	ExternalID    string    `gorm:"column:external_id;size:64;uniqueIndex:idx_investments_owner_external"`
	DatabaseID    string    `gorm:"column:database_id;size:64;index"`
	Name          string    `gorm:"column:name;size:1024"`
	Quantity      *float64  `gorm:"column:quantity"`
	PurchasePrice *float64  `gorm:"column:purchase_price"`
	PurchaseDate  string    `gorm:"column:purchase_date;size:64"`
	AssetID       *int64    `gorm:"column:asset_id;index"`
	PlaceID       *int64    `gorm:"column:place_id;index"`
	Properties    string    `gorm:"column:properties;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
	LastSyncedAt  time.Time `gorm:"column:last_synced_at"`
}

// TableName returns the table name.
func (InvestmentModel) TableName() string {
	return "investments"
}

// DatabaseLinkModel connects an owner to one external database per kind.
type DatabaseLinkModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID    string    `gorm:"column:owner_id;size:255;uniqueIndex:idx_links_owner_kind;index"`
	Kind       string    `gorm:"column:kind;size:32;uniqueIndex:idx_links_owner_kind"`
	DatabaseID string    `gorm:"column:database_id;size:64"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (DatabaseLinkModel) TableName() string {
	return "database_links"
}

// SyncRunModel records one completed sync invocation.
type SyncRunModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	OwnerID    string    `gorm:"column:owner_id;size:255;index"`
	Trigger    string    `gorm:"column:trigger;size:32"`
	Results    string    `gorm:"column:results;type:text"`
	StartedAt  time.Time `gorm:"column:started_at;index"`
	FinishedAt time.Time `gorm:"column:finished_at"`
}

// TableName returns the table name.
func (SyncRunModel) TableName() string {
	return "sync_runs"
}
