package record

import "testing"

func TestDefaultMapping_ResolvesAliases(t *testing.T) {
	m := DefaultMapping()

	tests := []struct {
		alias string
		want  SemanticField
	}{
		{"Ticker", FieldSymbol},
		{"symbol", FieldSymbol},
		{"Current Price", FieldCurrentPrice},
		{"Shares", FieldQuantity},
		{"Cost Basis", FieldPurchasePrice},
		{"Buy Date", FieldPurchaseDate},
		{"Asset", FieldAssetRef},
		{"Property", FieldPlaceRef},
	}
	for _, tt := range tests {
		got, ok := m.FieldFor(tt.alias)
		if !ok {
			t.Errorf("FieldFor(%q) not found", tt.alias)
			continue
		}
		if got != tt.want {
			t.Errorf("FieldFor(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestDefaultMapping_UnknownAlias(t *testing.T) {
	m := DefaultMapping()
	if _, ok := m.FieldFor("Favourite Colour"); ok {
		t.Error("unmapped display name should not resolve")
	}
}

func TestParseMappingYAML_AddsAliases(t *testing.T) {
	m, err := ParseMappingYAML([]byte("symbol: [Kürzel]\npurchase_date: [Gekauft am]\n"))
	if err != nil {
		t.Fatalf("ParseMappingYAML: %v", err)
	}

	if got, ok := m.FieldFor("Kürzel"); !ok || got != FieldSymbol {
		t.Errorf("FieldFor(Kürzel) = %q/%v, want symbol", got, ok)
	}
	// Defaults survive the merge.
	if got, ok := m.FieldFor("Ticker"); !ok || got != FieldSymbol {
		t.Errorf("FieldFor(Ticker) = %q/%v, want symbol", got, ok)
	}
}

func TestParseMappingYAML_RejectsUnknownField(t *testing.T) {
	if _, err := ParseMappingYAML([]byte("dividend_yield: [Yield]\n")); err == nil {
		t.Error("unknown semantic field should be rejected")
	}
}

func TestParseMappingYAML_Malformed(t *testing.T) {
	if _, err := ParseMappingYAML([]byte("symbol: {nested: wrong}")); err == nil {
		t.Error("malformed yaml should be rejected")
	}
}
