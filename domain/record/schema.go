package record

// SchemaEntry describes one property of an external database: its declared
// type tag and display name. The schema is refreshed from the source on
// every sync and used only as the decoding key for that run.
type SchemaEntry struct {
	propertyType PropertyType
	name         string
}

// NewSchemaEntry creates a SchemaEntry.
func NewSchemaEntry(propertyType PropertyType, name string) SchemaEntry {
	return SchemaEntry{propertyType: propertyType, name: name}
}

// Type returns the declared property type tag.
func (e SchemaEntry) Type() PropertyType { return e.propertyType }

// Name returns the property's display name.
func (e SchemaEntry) Name() string { return e.name }

// Schema maps property keys to their declared type and display name.
type Schema map[string]SchemaEntry
