package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/internal/database"
)

// LinkStore implements holding.LinkStore using GORM.
type LinkStore struct {
	repo database.Repository[holding.DatabaseLink, DatabaseLinkModel]
}

// NewLinkStore creates a new LinkStore.
func NewLinkStore(db database.Database) LinkStore {
	return LinkStore{
		repo: database.NewRepository[holding.DatabaseLink, DatabaseLinkModel](db, DatabaseLinkMapper{}, "database link"),
	}
}

// Find retrieves links matching the given options.
func (s LinkStore) Find(ctx context.Context, options ...holding.Option) ([]holding.DatabaseLink, error) {
	return s.repo.Find(ctx, options...)
}

// FindOne retrieves a single link matching the given options.
func (s LinkStore) FindOne(ctx context.Context, options ...holding.Option) (holding.DatabaseLink, error) {
	return s.repo.FindOne(ctx, options...)
}

// Save upserts a link on the (owner_id, kind) pair.
func (s LinkStore) Save(ctx context.Context, link holding.DatabaseLink) (holding.DatabaseLink, error) {
	model := s.repo.Mapper().ToModel(link)

	err := s.repo.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"database_id", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return holding.DatabaseLink{}, fmt.Errorf("save database link: %w", err)
	}

	return s.FindOne(ctx, holding.WithOwner(link.OwnerID()), holding.WithKind(link.Kind()))
}

// Delete removes a link.
func (s LinkStore) Delete(ctx context.Context, link holding.DatabaseLink) error {
	return s.repo.DeleteBy(ctx, holding.WithOwner(link.OwnerID()), holding.WithKind(link.Kind()))
}

var _ holding.LinkStore = LinkStore{}
