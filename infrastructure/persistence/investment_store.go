package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/internal/database"
)

// InvestmentStore implements holding.InvestmentStore using GORM.
type InvestmentStore struct {
	db   database.Database
	repo database.Repository[holding.Investment, InvestmentModel]
}

// NewInvestmentStore creates a new InvestmentStore.
func NewInvestmentStore(db database.Database) InvestmentStore {
	return InvestmentStore{
		db:   db,
		repo: database.NewRepository[holding.Investment, InvestmentModel](db, InvestmentMapper{}, "investment"),
	}
}

// Find retrieves investments matching the given options.
func (s InvestmentStore) Find(ctx context.Context, options ...holding.Option) ([]holding.Investment, error) {
	return s.repo.Find(ctx, options...)
}

// FindOne retrieves a single investment matching the given options.
func (s InvestmentStore) FindOne(ctx context.Context, options ...holding.Option) (holding.Investment, error) {
	return s.repo.FindOne(ctx, options...)
}

// Count returns the number of investments matching the given options.
func (s InvestmentStore) Count(ctx context.Context, options ...holding.Option) (int64, error) {
	return s.repo.Count(ctx, options...)
}

// ExternalIDs returns the stored external ids for one (owner, database) pair.
func (s InvestmentStore) ExternalIDs(ctx context.Context, ownerID, databaseID string) ([]string, error) {
	var ids []string
	err := s.repo.DB(ctx).Model(&InvestmentModel{}).
		Where("owner_id = ? AND database_id = ?", ownerID, databaseID).
		Pluck("external_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("investment external ids: %w", err)
	}
	return ids, nil
}

// Reconcile writes the full current record set, keyed on (owner_id,
// external_id), and deletes the removed rows in the same transaction.
func (s InvestmentStore) Reconcile(ctx context.Context, ownerID, databaseID string, investments []holding.Investment, removedIDs []string) ([]holding.Investment, error) {
	saved := make([]holding.Investment, len(investments))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if len(investments) > 0 {
			models := make([]InvestmentModel, len(investments))
			for i, inv := range investments {
				models[i] = s.repo.Mapper().ToModel(inv)
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "owner_id"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"database_id", "name", "quantity", "purchase_price", "purchase_date",
					"asset_id", "place_id", "properties", "updated_at", "last_synced_at",
				}),
			}).Create(&models).Error
			if err != nil {
				return fmt.Errorf("upsert investments: %w", err)
			}
		}

		if len(removedIDs) > 0 {
			err := tx.
				Where("owner_id = ? AND database_id = ? AND external_id IN ?", ownerID, databaseID, removedIDs).
				Delete(&InvestmentModel{}).Error
			if err != nil {
				return fmt.Errorf("delete investments: %w", err)
			}
		}

		for i, inv := range investments {
			var model InvestmentModel
			err := tx.
				Where("owner_id = ? AND external_id = ?", inv.OwnerID(), inv.ExternalID()).
				First(&model).Error
			if err != nil {
				return fmt.Errorf("reload upserted investment %s: %w", inv.ExternalID(), err)
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

var _ holding.InvestmentStore = InvestmentStore{}
