package record

// Decode maps a typed property value to a normalized scalar or slice.
//
// Decode is total: it never panics and never returns an error. Missing or
// malformed values degrade to the documented defaults: "" for text, false
// for checkboxes, an empty slice for multi-valued types, nil for everything
// else. One bad property can never abort a record.
func Decode(p Property) any {
	switch p.Type {
	case TypeTitle:
		return firstPlainText(p.Title)
	case TypeRichText:
		return firstPlainText(p.RichText)
	case TypeNumber:
		if p.Number == nil {
			return nil
		}
		return *p.Number
	case TypeCheckbox:
		if p.Checkbox == nil {
			return false
		}
		return *p.Checkbox
	case TypeURL:
		if p.URL == nil {
			return nil
		}
		return *p.URL
	case TypeCreatedTime:
		if p.CreatedTime == nil {
			return nil
		}
		return *p.CreatedTime
	case TypeSelect:
		return optionName(p.Select)
	case TypeStatus:
		return optionName(p.Status)
	case TypeMultiSelect:
		names := make([]string, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			names = append(names, opt.Name)
		}
		return names
	case TypeDate:
		if p.Date == nil {
			return nil
		}
		return p.Date.Start
	case TypeRelation:
		return p.RelationIDs()
	case TypeFormula:
		if p.Formula == nil {
			return nil
		}
		return decodeFormula(*p.Formula)
	case TypeRollup:
		if p.Rollup == nil {
			return nil
		}
		return decodeRollup(*p.Rollup)
	default:
		return nil
	}
}

func firstPlainText(runs []RichText) string {
	if len(runs) == 0 {
		return ""
	}
	return runs[0].PlainText
}

func optionName(opt *SelectOption) any {
	if opt == nil {
		return nil
	}
	return opt.Name
}

// decodeFormula dispatches on the formula's dynamic result type.
func decodeFormula(f Formula) any {
	switch f.Type {
	case "number":
		if f.Number == nil {
			return nil
		}
		return *f.Number
	case "string":
		if f.String == nil {
			return nil
		}
		return *f.String
	case "boolean":
		if f.Boolean == nil {
			return nil
		}
		return *f.Boolean
	case "date":
		if f.Date == nil {
			return nil
		}
		return f.Date.Start
	default:
		return nil
	}
}

// decodeRollup handles scalar rollups like formulas. Array rollups return
// the first element's number when the array holds numbers, or the combined
// id list when the array holds relations.
func decodeRollup(r Rollup) any {
	switch r.Type {
	case "number":
		if r.Number == nil {
			return nil
		}
		return *r.Number
	case "string":
		if r.String == nil {
			return nil
		}
		return *r.String
	case "boolean":
		if r.Boolean == nil {
			return nil
		}
		return *r.Boolean
	case "date":
		if r.Date == nil {
			return nil
		}
		return r.Date.Start
	case "array":
		if len(r.Array) == 0 {
			return nil
		}
		switch r.Array[0].Type {
		case TypeNumber:
			if r.Array[0].Number == nil {
				return nil
			}
			return *r.Array[0].Number
		case TypeRelation:
			var ids []string
			for _, elem := range r.Array {
				ids = append(ids, elem.RelationIDs()...)
			}
			return ids
		default:
			return nil
		}
	default:
		return nil
	}
}
