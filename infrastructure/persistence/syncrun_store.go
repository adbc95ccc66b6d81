package persistence

import (
	"context"
	"fmt"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/syncrun"
	"github.com/nightowl-labs/homedash/internal/database"
)

// SyncRunStore implements syncrun.Store using GORM.
type SyncRunStore struct {
	repo database.Repository[syncrun.Run, SyncRunModel]
}

// NewSyncRunStore creates a new SyncRunStore.
func NewSyncRunStore(db database.Database) SyncRunStore {
	return SyncRunStore{
		repo: database.NewRepository[syncrun.Run, SyncRunModel](db, SyncRunMapper{}, "sync run"),
	}
}

// Save persists a completed run.
func (s SyncRunStore) Save(ctx context.Context, run syncrun.Run) (syncrun.Run, error) {
	model := s.repo.Mapper().ToModel(run)
	if err := s.repo.DB(ctx).Save(&model).Error; err != nil {
		return syncrun.Run{}, fmt.Errorf("save sync run: %w", err)
	}
	return s.repo.Mapper().ToDomain(model), nil
}

// Find retrieves runs matching the given options.
func (s SyncRunStore) Find(ctx context.Context, options ...holding.Option) ([]syncrun.Run, error) {
	return s.repo.Find(ctx, options...)
}

var _ syncrun.Store = SyncRunStore{}
