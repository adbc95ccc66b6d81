// Package record models external property-database records: typed property
// values, their decoding into normalized scalars, and full-dataset diffing.
package record

// PropertyType is the declared type tag of an external property.
type PropertyType string

// Property type tags understood by the decoder. Anything else decodes to nil.
const (
	TypeTitle       PropertyType = "title"
	TypeRichText    PropertyType = "rich_text"
	TypeNumber      PropertyType = "number"
	TypeCheckbox    PropertyType = "checkbox"
	TypeURL         PropertyType = "url"
	TypeCreatedTime PropertyType = "created_time"
	TypeSelect      PropertyType = "select"
	TypeStatus      PropertyType = "status"
	TypeMultiSelect PropertyType = "multi_select"
	TypeDate        PropertyType = "date"
	TypeRelation    PropertyType = "relation"
	TypeFormula     PropertyType = "formula"
	TypeRollup      PropertyType = "rollup"
)

// RichText is one text run of a title or rich_text property.
type RichText struct {
	PlainText string
}

// SelectOption is one option of a select, status, or multi_select property.
type SelectOption struct {
	Name string
}

// Date is the value of a date property. End may be empty.
type Date struct {
	Start string
	End   string
}

// Relation references another external record by id.
type Relation struct {
	ID string
}

// Formula holds a formula property's dynamic result. Type names the variant
// that is populated ("number", "string", "boolean", or "date").
type Formula struct {
	Type    string
	Number  *float64
	String  *string
	Boolean *bool
	Date    *Date
}

// Rollup holds a rollup property's result. Scalar rollups behave like
// formulas; array rollups carry the element properties in Array.
type Rollup struct {
	Type    string
	Number  *float64
	String  *string
	Boolean *bool
	Date    *Date
	Array   []Property
}

// Property is one typed property value of an external record. Exactly one
// variant field is populated, matching Type. The zero value decodes to nil.
type Property struct {
	Type        PropertyType
	Title       []RichText
	RichText    []RichText
	Number      *float64
	Checkbox    *bool
	URL         *string
	CreatedTime *string
	Select      *SelectOption
	Status      *SelectOption
	MultiSelect []SelectOption
	Date        *Date
	Relation    []Relation
	Formula     *Formula
	Rollup      *Rollup
}

// RelationIDs returns the referenced external ids of a relation property.
func (p Property) RelationIDs() []string {
	ids := make([]string, 0, len(p.Relation))
	for _, r := range p.Relation {
		ids = append(ids, r.ID)
	}
	return ids
}
