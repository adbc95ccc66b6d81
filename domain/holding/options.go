package holding

// WithID filters by the "id" column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithOwner filters by the "owner_id" column.
func WithOwner(ownerID string) Option {
	return WithCondition("owner_id", ownerID)
}

// WithExternalID filters by the "external_id" column. Callers are expected
// to pass the form they want matched; normalization happens at call sites
// via record.NormalizeID.
func WithExternalID(externalID string) Option {
	return WithCondition("external_id", externalID)
}

// WithExternalIDIn filters by the "external_id" column using IN.
func WithExternalIDIn(externalIDs []string) Option {
	return WithConditionIn("external_id", externalIDs)
}

// WithDatabaseID filters by the "database_id" column.
func WithDatabaseID(databaseID string) Option {
	return WithCondition("database_id", databaseID)
}

// WithKind filters by the "kind" column.
func WithKind(kind Kind) Option {
	return WithCondition("kind", string(kind))
}
