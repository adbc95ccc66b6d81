// Package persistence provides database storage implementations.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/internal/database"
)

// AssetStore implements holding.AssetStore using GORM.
type AssetStore struct {
	db   database.Database
	repo database.Repository[holding.Asset, AssetModel]
}

// NewAssetStore creates a new AssetStore.
func NewAssetStore(db database.Database) AssetStore {
	return AssetStore{
		db:   db,
		repo: database.NewRepository[holding.Asset, AssetModel](db, AssetMapper{}, "asset"),
	}
}

// Find retrieves assets matching the given options.
func (s AssetStore) Find(ctx context.Context, options ...holding.Option) ([]holding.Asset, error) {
	return s.repo.Find(ctx, options...)
}

// FindOne retrieves a single asset matching the given options.
func (s AssetStore) FindOne(ctx context.Context, options ...holding.Option) (holding.Asset, error) {
	return s.repo.FindOne(ctx, options...)
}

// Count returns the number of assets matching the given options.
func (s AssetStore) Count(ctx context.Context, options ...holding.Option) (int64, error) {
	return s.repo.Count(ctx, options...)
}

// ExternalIDs returns the stored external ids for one (owner, database) pair.
func (s AssetStore) ExternalIDs(ctx context.Context, ownerID, databaseID string) ([]string, error) {
	var ids []string
	err := s.repo.DB(ctx).Model(&AssetModel{}).
		Where("owner_id = ? AND database_id = ?", ownerID, databaseID).
		Pluck("external_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("asset external ids: %w", err)
	}
	return ids, nil
}

// Reconcile writes the full current record set, keyed on (owner_id,
// external_id), and deletes the removed rows in the same transaction.
func (s AssetStore) Reconcile(ctx context.Context, ownerID, databaseID string, assets []holding.Asset, removedIDs []string) ([]holding.Asset, error) {
	saved := make([]holding.Asset, len(assets))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if len(assets) > 0 {
			models := make([]AssetModel, len(assets))
			for i, a := range assets {
				models[i] = s.repo.Mapper().ToModel(a)
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "owner_id"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"database_id", "name", "symbol", "current_price", "balance",
					"icon", "properties", "updated_at", "last_synced_at",
				}),
			}).Create(&models).Error
			if err != nil {
				return fmt.Errorf("upsert assets: %w", err)
			}
		}

		if len(removedIDs) > 0 {
			err := tx.
				Where("owner_id = ? AND database_id = ? AND external_id IN ?", ownerID, databaseID, removedIDs).
				Delete(&AssetModel{}).Error
			if err != nil {
				return fmt.Errorf("delete assets: %w", err)
			}
		}

		// Re-read to get primary keys for rows that hit the conflict path:
		// the relation resolver and icon mirror need stable internal ids.
		for i, a := range assets {
			var model AssetModel
			err := tx.
				Where("owner_id = ? AND external_id = ?", a.OwnerID(), a.ExternalID()).
				First(&model).Error
			if err != nil {
				return fmt.Errorf("reload upserted asset %s: %w", a.ExternalID(), err)
			}
			saved[i] = s.repo.Mapper().ToDomain(model)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// SetIconURL updates only the durable icon URL of one row.
func (s AssetStore) SetIconURL(ctx context.Context, id int64, url string) error {
	err := s.repo.DB(ctx).Model(&AssetModel{}).
		Where("id = ?", id).
		Update("icon_url", url).Error
	if err != nil {
		return fmt.Errorf("set asset icon url: %w", err)
	}
	return nil
}

var _ holding.AssetStore = AssetStore{}
