package persistence

import (
	"context"

	"github.com/nightowl-labs/homedash/internal/database"
)

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	return db.Session(context.Background()).AutoMigrate(
		&AssetModel{},
		&PlaceModel{},
		&InvestmentModel{},
		&DatabaseLinkModel{},
		&SyncRunModel{},
	)
}
