package service

import (
	"time"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/record"
)

// decodeProperties decodes every property into the JSON side-bag, keyed by
// display name. Properties the wire payload delivered without a type tag
// fall back to the schema's declared tag for this run.
func decodeProperties(rec record.Record, schema record.Schema) map[string]any {
	bag := make(map[string]any, len(rec.Properties()))
	for name, prop := range rec.Properties() {
		if prop.Type == "" {
			if entry, ok := schema[name]; ok {
				prop.Type = entry.Type()
			}
		}
		bag[name] = record.Decode(prop)
	}
	return bag
}

// titleOf returns the record's title property value, the free-form name of
// the stored row.
func titleOf(rec record.Record) string {
	for _, prop := range rec.Properties() {
		if prop.Type == record.TypeTitle {
			if s, ok := record.Decode(prop).(string); ok {
				return s
			}
		}
	}
	return ""
}

// semanticString finds the decoded string value mapped to field, or "".
func semanticString(bag map[string]any, mapping record.Mapping, field record.SemanticField) string {
	for name, value := range bag {
		if f, ok := mapping.FieldFor(name); ok && f == field {
			if s, ok := value.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// semanticFloat finds the decoded numeric value mapped to field, or nil.
func semanticFloat(bag map[string]any, mapping record.Mapping, field record.SemanticField) *float64 {
	for name, value := range bag {
		if f, ok := mapping.FieldFor(name); ok && f == field {
			if n, ok := value.(float64); ok {
				return &n
			}
		}
	}
	return nil
}

// relationRef returns the first referenced external id of the relation
// property mapped to field. Additional references are discarded: the data
// model treats these relations as single-valued.
func relationRef(rec record.Record, mapping record.Mapping, field record.SemanticField) string {
	for name, prop := range rec.Properties() {
		if f, ok := mapping.FieldFor(name); ok && f == field {
			if ids := prop.RelationIDs(); len(ids) > 0 {
				return ids[0]
			}
		}
	}
	return ""
}

func buildAsset(ownerID, databaseID string, rec record.Record, schema record.Schema, mapping record.Mapping, now time.Time) holding.Asset {
	bag := decodeProperties(rec, schema)
	return holding.NewAsset(ownerID, rec.NormalizedID(), databaseID).
		WithName(titleOf(rec)).
		WithSymbol(semanticString(bag, mapping, record.FieldSymbol)).
		WithCurrentPrice(semanticFloat(bag, mapping, record.FieldCurrentPrice)).
		WithBalance(semanticFloat(bag, mapping, record.FieldBalance)).
		WithIcon(rec.Icon().Raw()).
		WithProperties(bag).
		Synced(now)
}

func buildPlace(ownerID, databaseID string, rec record.Record, schema record.Schema, mapping record.Mapping, now time.Time) holding.Place {
	bag := decodeProperties(rec, schema)
	return holding.NewPlace(ownerID, rec.NormalizedID(), databaseID).
		WithName(titleOf(rec)).
		WithPurchasePrice(semanticFloat(bag, mapping, record.FieldPurchasePrice)).
		WithPurchaseDate(semanticString(bag, mapping, record.FieldPurchaseDate)).
		WithIcon(rec.Icon().Raw()).
		WithProperties(bag).
		Synced(now)
}

func buildInvestment(ownerID, databaseID string, rec record.Record, schema record.Schema, mapping record.Mapping, now time.Time) holding.Investment {
	bag := decodeProperties(rec, schema)
	return holding.NewInvestment(ownerID, rec.NormalizedID(), databaseID).
		WithName(titleOf(rec)).
		WithQuantity(semanticFloat(bag, mapping, record.FieldQuantity)).
		WithPurchasePrice(semanticFloat(bag, mapping, record.FieldPurchasePrice)).
		WithPurchaseDate(semanticString(bag, mapping, record.FieldPurchaseDate)).
		WithProperties(bag).
		Synced(now)
}
