package holding

import (
	"errors"
	"time"
)

// ErrEmptyDatabaseID indicates a link was created without a database id.
var ErrEmptyDatabaseID = errors.New("database id cannot be empty")

// DatabaseLink connects an owner to the external database holding one
// entity kind's records. A sync for a kind cannot start without its link.
type DatabaseLink struct {
	id         int64
	ownerID    string
	kind       Kind
	databaseID string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewDatabaseLink creates a DatabaseLink.
func NewDatabaseLink(ownerID string, kind Kind, databaseID string) (DatabaseLink, error) {
	if databaseID == "" {
		return DatabaseLink{}, ErrEmptyDatabaseID
	}
	now := time.Now().UTC()
	return DatabaseLink{
		ownerID:    ownerID,
		kind:       kind,
		databaseID: databaseID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDatabaseLink rebuilds a DatabaseLink from persistence.
func ReconstructDatabaseLink(id int64, ownerID string, kind Kind, databaseID string, createdAt, updatedAt time.Time) DatabaseLink {
	return DatabaseLink{
		id:         id,
		ownerID:    ownerID,
		kind:       kind,
		databaseID: databaseID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ID returns the primary key.
func (l DatabaseLink) ID() int64 { return l.id }

// OwnerID returns the owner identifier.
func (l DatabaseLink) OwnerID() string { return l.ownerID }

// Kind returns the entity kind this link feeds.
func (l DatabaseLink) Kind() Kind { return l.kind }

// DatabaseID returns the external database id.
func (l DatabaseLink) DatabaseID() string { return l.databaseID }

// CreatedAt returns the creation timestamp.
func (l DatabaseLink) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns the last update timestamp.
func (l DatabaseLink) UpdatedAt() time.Time { return l.updatedAt }
