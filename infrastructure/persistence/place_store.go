package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/internal/database"
)

// PlaceStore implements holding.PlaceStore using GORM.
type PlaceStore struct {
	db   database.Database
	repo database.Repository[holding.Place, PlaceModel]
}

// NewPlaceStore creates a new PlaceStore.
func NewPlaceStore(db database.Database) PlaceStore {
	return PlaceStore{
		db:   db,
		repo: database.NewRepository[holding.Place, PlaceModel](db, PlaceMapper{}, "place"),
	}
}

// Find retrieves places matching the given options.
func (s PlaceStore) Find(ctx context.Context, options ...holding.Option) ([]holding.Place, error) {
	return s.repo.Find(ctx, options...)
}

// FindOne retrieves a single place matching the given options.
func (s PlaceStore) FindOne(ctx context.Context, options ...holding.Option) (holding.Place, error) {
	return s.repo.FindOne(ctx, options...)
}

// Count returns the number of places matching the given options.
func (s PlaceStore) Count(ctx context.Context, options ...holding.Option) (int64, error) {
	return s.repo.Count(ctx, options...)
}

// ExternalIDs returns the stored external ids for one (owner, database) pair.
func (s PlaceStore) ExternalIDs(ctx context.Context, ownerID, databaseID string) ([]string, error) {
	var ids []string
	err := s.repo.DB(ctx).Model(&PlaceModel{}).
		Where("owner_id = ? AND database_id = ?", ownerID, databaseID).
		Pluck("external_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("place external ids: %w", err)
	}
	return ids, nil
}

// Reconcile writes the full current record set, keyed on (owner_id,
// external_id), and deletes the removed rows in the same transaction.
func (s PlaceStore) Reconcile(ctx context.Context, ownerID, databaseID string, places []holding.Place, removedIDs []string) ([]holding.Place, error) {
	saved := make([]holding.Place, len(places))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if len(places) > 0 {
			models := make([]PlaceModel, len(places))
			for i, p := range places {
				models[i] = s.repo.Mapper().ToModel(p)
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "owner_id"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"database_id", "name", "purchase_price", "purchase_date",
					"icon", "properties", "updated_at", "last_synced_at",
				}),
			}).Create(&models).Error
			if err != nil {
				return fmt.Errorf("upsert places: %w", err)
			}
		}

		if len(removedIDs) > 0 {
			err := tx.
				Where("owner_id = ? AND database_id = ? AND external_id IN ?", ownerID, databaseID, removedIDs).
				Delete(&PlaceModel{}).Error
			if err != nil {
				return fmt.Errorf("delete places: %w", err)
			}
		}

		for i, p := range places {
			var model PlaceModel
			err := tx.
				Where("owner_id = ? AND external_id = ?", p.OwnerID(), p.ExternalID()).
				First(&model).Error
			if err != nil {
				return fmt.Errorf("reload upserted place %s: %w", p.ExternalID(), err)
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
func (s PlaceStore) SetIconURL(ctx context.Context, id int64, url string) error {
	err := s.repo.DB(ctx).Model(&PlaceModel{}).
		Where("id = ?", id).
		Update("icon_url", url).Error
	if err != nil {
		return fmt.Errorf("set place icon url: %w", err)
	}
	return nil
}

var _ holding.PlaceStore = PlaceStore{}
