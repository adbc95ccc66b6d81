package record

import (
	"reflect"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }

func TestDecode_Title(t *testing.T) {
	p := Property{Type: TypeTitle, Title: []RichText{{PlainText: "Acme Corp"}, {PlainText: "ignored"}}}
	if got := Decode(p); got != "Acme Corp" {
		t.Errorf("Decode(title) = %v, want 'Acme Corp'", got)
	}
}

func TestDecode_RichText(t *testing.T) {
	p := Property{Type: TypeRichText, RichText: []RichText{{PlainText: "notes"}}}
	if got := Decode(p); got != "notes" {
		t.Errorf("Decode(rich_text) = %v, want 'notes'", got)
	}
}

func TestDecode_Number(t *testing.T) {
	p := Property{Type: TypeNumber, Number: floatPtr(42.5)}
	if got := Decode(p); got != 42.5 {
		t.Errorf("Decode(number) = %v, want 42.5", got)
	}
}

func TestDecode_Checkbox(t *testing.T) {
	p := Property{Type: TypeCheckbox, Checkbox: boolPtr(true)}
	if got := Decode(p); got != true {
		t.Errorf("Decode(checkbox) = %v, want true", got)
	}
}

func TestDecode_Select(t *testing.T) {
	p := Property{Type: TypeSelect, Select: &SelectOption{Name: "Active"}}
	if got := Decode(p); got != "Active" {
		t.Errorf("Decode(select) = %v, want 'Active'", got)
	}
}

func TestDecode_MultiSelect(t *testing.T) {
	p := Property{Type: TypeMultiSelect, MultiSelect: []SelectOption{{Name: "a"}, {Name: "b"}}}
	if got := Decode(p); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Decode(multi_select) = %v, want [a b]", got)
	}
}

func TestDecode_Date(t *testing.T) {
	p := Property{Type: TypeDate, Date: &Date{Start: "2024-01-15"}}
	if got := Decode(p); got != "2024-01-15" {
		t.Errorf("Decode(date) = %v, want '2024-01-15'", got)
	}
}

func TestDecode_Relation(t *testing.T) {
	p := Property{Type: TypeRelation, Relation: []Relation{{ID: "abc-123"}, {ID: "def-456"}}}
	if got := Decode(p); !reflect.DeepEqual(got, []string{"abc-123", "def-456"}) {
		t.Errorf("Decode(relation) = %v, want ids", got)
	}
}

func TestDecode_Formula(t *testing.T) {
	tests := []struct {
		name    string
		formula Formula
		want    any
	}{
		{"number", Formula{Type: "number", Number: floatPtr(7)}, 7.0},
		{"string", Formula{Type: "string", String: strPtr("x")}, "x"},
		{"boolean", Formula{Type: "boolean", Boolean: boolPtr(false)}, false},
		{"date", Formula{Type: "date", Date: &Date{Start: "2023-06-01"}}, "2023-06-01"},
		{"empty number", Formula{Type: "number"}, nil},
		{"unknown", Formula{Type: "duration"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Property{Type: TypeFormula, Formula: &tt.formula}
			if got := Decode(p); got != tt.want {
				t.Errorf("Decode(formula %s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDecode_RollupScalar(t *testing.T) {
	p := Property{Type: TypeRollup, Rollup: &Rollup{Type: "number", Number: floatPtr(3)}}
	if got := Decode(p); got != 3.0 {
		t.Errorf("Decode(rollup number) = %v, want 3", got)
	}
}

func TestDecode_RollupNumberArray(t *testing.T) {
	p := Property{Type: TypeRollup, Rollup: &Rollup{
		Type: "array",
		Array: []Property{
			{Type: TypeNumber, Number: floatPtr(1.5)},
			{Type: TypeNumber, Number: floatPtr(2.5)},
		},
	}}
	if got := Decode(p); got != 1.5 {
		t.Errorf("Decode(rollup number array) = %v, want first element 1.5", got)
	}
}

func TestDecode_RollupRelationArray(t *testing.T) {
	p := Property{Type: TypeRollup, Rollup: &Rollup{
		Type: "array",
		Array: []Property{
			{Type: TypeRelation, Relation: []Relation{{ID: "a"}, {ID: "b"}}},
			{Type: TypeRelation, Relation: []Relation{{ID: "c"}}},
		},
	}}
	if got := Decode(p); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Decode(rollup relation array) = %v, want full id list", got)
	}
}

func TestDecode_RollupUnsupportedArray(t *testing.T) {
	p := Property{Type: TypeRollup, Rollup: &Rollup{
		Type:  "array",
		Array: []Property{{Type: TypeDate, Date: &Date{Start: "2024-01-01"}}},
	}}
	if got := Decode(p); got != nil {
		t.Errorf("Decode(rollup date array) = %v, want nil", got)
	}
}

// Every supported tag must decode a zero-value property to its documented
// default without panicking.
func TestDecode_Totality(t *testing.T) {
	defaults := map[PropertyType]any{
		TypeTitle:       "",
		TypeRichText:    "",
		TypeNumber:      nil,
		TypeCheckbox:    false,
		TypeURL:         nil,
		TypeCreatedTime: nil,
		TypeSelect:      nil,
		TypeStatus:      nil,
		TypeMultiSelect: []string{},
		TypeDate:        nil,
		TypeRelation:    []string{},
		TypeFormula:     nil,
		TypeRollup:      nil,
	}

	for tag, want := range defaults {
		got := Decode(Property{Type: tag})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Decode(zero %s) = %#v, want %#v", tag, got, want)
		}
	}
}

func TestDecode_UnknownTag(t *testing.T) {
	if got := Decode(Property{Type: "people"}); got != nil {
		t.Errorf("Decode(unknown tag) = %v, want nil", got)
	}
}
