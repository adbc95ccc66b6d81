// Package service provides domain service interfaces for external
// collaborators: the property-database source, object storage, and the
// authentication service.
package service

import (
	"context"

	"github.com/nightowl-labs/homedash/domain/record"
)

// SchemaSource retrieves the current property definitions of one external
// database. The schema is user-defined and can change between syncs, so it
// is re-fetched on every run.
type SchemaSource interface {
	DatabaseSchema(ctx context.Context, databaseID string) (record.Schema, error)
}

// RecordSource retrieves the complete record set of one external database.
// Implementations page through the source until it reports no further
// pages; a partial set is never returned, because deletion detection
// requires completeness.
type RecordSource interface {
	QueryDatabase(ctx context.Context, databaseID string) ([]record.Record, error)
}

// Source is the combined external property-database collaborator.
type Source interface {
	SchemaSource
	RecordSource
}
