package record

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SemanticField identifies a dedicated target-store column that a property
// can be mapped to by display name. Properties without a semantic mapping
// land only in the record's JSON property bag.
type SemanticField string

// Semantic fields.
const (
	FieldName          SemanticField = "name"
	FieldSymbol        SemanticField = "symbol"
	FieldCurrentPrice  SemanticField = "current_price"
	FieldBalance       SemanticField = "balance"
	FieldQuantity      SemanticField = "quantity"
	FieldPurchasePrice SemanticField = "purchase_price"
	FieldPurchaseDate  SemanticField = "purchase_date"
	FieldAssetRef      SemanticField = "asset"
	FieldPlaceRef      SemanticField = "place"
)

//go:embed mappings.yaml
var defaultMappingYAML []byte

// defaultAliases maps semantic fields to the property display names that
// feed them. Matching is case-insensitive.
var defaultAliases = func() map[SemanticField][]string {
	aliases, err := parseAliases(defaultMappingYAML)
	if err != nil {
		panic(fmt.Sprintf("record: embedded mappings.yaml: %v", err))
	}
	return aliases
}()

// Mapping resolves property display names to semantic fields.
type Mapping struct {
	byAlias map[string]SemanticField
}

// DefaultMapping returns the built-in display-name mapping.
func DefaultMapping() Mapping {
	return newMapping(defaultAliases)
}

func newMapping(aliases map[SemanticField][]string) Mapping {
	byAlias := make(map[string]SemanticField)
	for field, names := range aliases {
		for _, name := range names {
			byAlias[strings.ToLower(name)] = field
		}
	}
	return Mapping{byAlias: byAlias}
}

// FieldFor resolves a property display name to its semantic field.
func (m Mapping) FieldFor(displayName string) (SemanticField, bool) {
	field, ok := m.byAlias[strings.ToLower(displayName)]
	return field, ok
}

// ParseMappingYAML parses a user-supplied alias override file of the form
//
//	symbol: [Ticker, Kürzel]
//	purchase_date: [Gekauft am]
//
// and returns the default mapping with those aliases added on top. Unknown
// semantic field names are rejected.
func ParseMappingYAML(data []byte) (Mapping, error) {
	overrides, err := parseAliases(data)
	if err != nil {
		return Mapping{}, err
	}

	merged := make(map[SemanticField][]string, len(defaultAliases))
	for field, names := range defaultAliases {
		merged[field] = names
	}
	for field, aliases := range overrides {
		merged[field] = append(merged[field], aliases...)
	}

	return newMapping(merged), nil
}

var knownFields = map[SemanticField]bool{
	FieldName:          true,
	FieldSymbol:        true,
	FieldCurrentPrice:  true,
	FieldBalance:       true,
	FieldQuantity:      true,
	FieldPurchasePrice: true,
	FieldPurchaseDate:  true,
	FieldAssetRef:      true,
	FieldPlaceRef:      true,
}

func parseAliases(data []byte) (map[SemanticField][]string, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse mapping aliases: %w", err)
	}

	aliases := make(map[SemanticField][]string, len(raw))
	for name, names := range raw {
		field := SemanticField(name)
		if !knownFields[field] {
			return nil, fmt.Errorf("unknown semantic field %q in mapping aliases", name)
		}
		aliases[field] = names
	}
	return aliases, nil
}
