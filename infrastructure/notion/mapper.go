package notion

import (
	"time"

	"github.com/nightowl-labs/homedash/domain/record"
)

func toSchema(dto databaseDTO) record.Schema {
	schema := make(record.Schema, len(dto.Properties))
	for name, prop := range dto.Properties {
		schema[name] = record.NewSchemaEntry(record.PropertyType(prop.Type), name)
	}
	return schema
}

func toRecord(dto pageDTO) record.Record {
	properties := make(map[string]record.Property, len(dto.Properties))
	for name, prop := range dto.Properties {
		properties[name] = toProperty(prop)
	}

	lastEdited, err := time.Parse(time.RFC3339, dto.LastEditedTime)
	if err != nil {
		lastEdited = time.Time{}
	}

	return record.New(dto.ID, properties, toIcon(dto.Icon), lastEdited)
}

func toIcon(dto *iconDTO) record.Icon {
	if dto == nil {
		return record.Icon{}
	}
	switch dto.Type {
	case "emoji":
		return record.NewEmojiIcon(dto.Emoji)
	case "external":
		if dto.External != nil {
			return record.NewImageIcon(record.IconExternal, dto.External.URL)
		}
	case "file":
		if dto.File != nil {
			return record.NewImageIcon(record.IconFile, dto.File.URL)
		}
	}
	return record.Icon{}
}

func toProperty(dto propertyDTO) record.Property {
	p := record.Property{
		Type:        record.PropertyType(dto.Type),
		Title:       toRichText(dto.Title),
		RichText:    toRichText(dto.RichText),
		Number:      dto.Number,
		Checkbox:    dto.Checkbox,
		URL:         dto.URL,
		CreatedTime: dto.CreatedTime,
		Select:      toSelectOption(dto.Select),
		Status:      toSelectOption(dto.Status),
		Date:        toDate(dto.Date),
	}
	for _, opt := range dto.MultiSelect {
		p.MultiSelect = append(p.MultiSelect, record.SelectOption{Name: opt.Name})
	}
	for _, rel := range dto.Relation {
		p.Relation = append(p.Relation, record.Relation{ID: rel.ID})
	}
	if dto.Formula != nil {
		p.Formula = &record.Formula{
			Type:    dto.Formula.Type,
			Number:  dto.Formula.Number,
			String:  dto.Formula.String,
			Boolean: dto.Formula.Boolean,
			Date:    toDate(dto.Formula.Date),
		}
	}
	if dto.Rollup != nil {
		rollup := &record.Rollup{
			Type:   dto.Rollup.Type,
			Number: dto.Rollup.Number,
			Date:   toDate(dto.Rollup.Date),
		}
		for _, elem := range dto.Rollup.Array {
			rollup.Array = append(rollup.Array, toProperty(elem))
		}
		p.Rollup = rollup
	}
	return p
}

func toRichText(runs []richTextDTO) []record.RichText {
	if len(runs) == 0 {
		return nil
	}
	out := make([]record.RichText, len(runs))
	for i, r := range runs {
		out[i] = record.RichText{PlainText: r.PlainText}
	}
	return out
}

func toSelectOption(dto *selectOptionDTO) *record.SelectOption {
	if dto == nil {
		return nil
	}
	return &record.SelectOption{Name: dto.Name}
}

func toDate(dto *dateDTO) *record.Date {
	if dto == nil {
		return nil
	}
	d := &record.Date{Start: dto.Start}
	if dto.End != nil {
		d.End = *dto.End
	}
	return d
}
