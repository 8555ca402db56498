package editor

import (
	"github.com/google/uuid"

	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/schema"
)

// NewRepeaterItem builds a repeater item from schema defaults. Dotted field
// keys ("media.src") are expanded into real nested objects. Every item gets a
// freshly generated unique id.
func NewRepeaterItem(itemSchema []schema.FieldSchema) map[string]interface{} {
	item := map[string]interface{}{"id": uuid.New().String()}
	for _, field := range itemSchema {
		item, _ = SetNestedValue(item, field.Key, FieldDefault(field))
	}
	return item
}

// FieldDefault returns the initial value for a field: its declared default,
// otherwise a type-appropriate zero value.
func FieldDefault(field schema.FieldSchema) interface{} {
	if field.Default != nil {
		return field.Default
	}

	switch field.Type {
	case schema.FieldText, schema.FieldRichText, schema.FieldImage, schema.FieldURL:
		return ""
	case schema.FieldMedia:
		return map[string]interface{}{"type": "image", "src": "", "alt": ""}
	case schema.FieldLink:
		return map[string]interface{}{"label": "", "url": ""}
	case schema.FieldBoolean:
		return false
	case schema.FieldSelect:
		if len(field.Options) > 0 {
			return field.Options[0].Value
		}
		return ""
	case schema.FieldRepeater:
		return []interface{}{}
	}
	return nil
}

// AddItem appends a new schema-seeded item to the repeater addressed by
// field.Key. It reports false when the repeater is full or the field value is
// not an array; the section is returned unchanged in that case.
func AddItem(section models.SectionInstance, field schema.FieldSchema, itemSchema []schema.FieldSchema) (models.SectionInstance, string, bool) {
	items, ok := repeaterItems(section.Data, field.Key)
	if !ok {
		if raw, present := GetNestedValue(section.Data, field.Key); present && raw != nil {
			return section, "", false
		}
		items = []interface{}{}
	}

	if field.MaxItems > 0 && len(items) >= field.MaxItems {
		return section, "", false
	}

	item := NewRepeaterItem(itemSchema)
	updated := make([]interface{}, 0, len(items)+1)
	updated = append(updated, items...)
	updated = append(updated, item)

	data, changed := SetNestedValue(section.Data, field.Key, updated)
	if !changed {
		return section, "", false
	}

	section.Data = data
	return section, item["id"].(string), true
}

// RemoveItem filters the item with the matching id out of the repeater array.
// Unknown ids are a no-op.
func RemoveItem(section models.SectionInstance, fieldKey, itemID string) (models.SectionInstance, bool) {
	items, ok := repeaterItems(section.Data, fieldKey)
	if !ok {
		return section, false
	}

	index := findItemIndex(items, itemID)
	if index < 0 {
		return section, false
	}

	updated := make([]interface{}, 0, len(items)-1)
	updated = append(updated, items[:index]...)
	updated = append(updated, items[index+1:]...)

	data, changed := SetNestedValue(section.Data, fieldKey, updated)
	if !changed {
		return section, false
	}
	section.Data = data
	return section, true
}

// DuplicateItem deep-clones the matched item, assigns the clone a fresh id
// and inserts it immediately after the original.
func DuplicateItem(section models.SectionInstance, fieldKey, itemID string) (models.SectionInstance, string, bool) {
	items, ok := repeaterItems(section.Data, fieldKey)
	if !ok {
		return section, "", false
	}

	index := findItemIndex(items, itemID)
	if index < 0 {
		return section, "", false
	}

	source, ok := items[index].(map[string]interface{})
	if !ok {
		return section, "", false
	}

	clone := DeepClone(source).(map[string]interface{})
	newID := uuid.New().String()
	clone["id"] = newID

	updated := make([]interface{}, 0, len(items)+1)
	updated = append(updated, items[:index+1]...)
	updated = append(updated, clone)
	updated = append(updated, items[index+1:]...)

	data, changed := SetNestedValue(section.Data, fieldKey, updated)
	if !changed {
		return section, "", false
	}
	section.Data = data
	return section, newID, true
}

// UpdateItem applies a partial update to the item with the matching id. Each
// changed key is a dotted path inside the item.
func UpdateItem(section models.SectionInstance, fieldKey, itemID string, fields map[string]interface{}) (models.SectionInstance, bool) {
	items, ok := repeaterItems(section.Data, fieldKey)
	if !ok {
		return section, false
	}

	index := findItemIndex(items, itemID)
	if index < 0 {
		return section, false
	}

	item, ok := items[index].(map[string]interface{})
	if !ok {
		return section, false
	}

	changedAny := false
	for key, value := range fields {
		var changed bool
		item, changed = SetNestedValue(item, key, value)
		changedAny = changedAny || changed
	}
	if !changedAny {
		return section, false
	}

	updated := make([]interface{}, len(items))
	copy(updated, items)
	updated[index] = item

	data, changed := SetNestedValue(section.Data, fieldKey, updated)
	if !changed {
		return section, false
	}
	section.Data = data
	return section, true
}

// ReorderItem moves the item with the matching id to toIndex. The index is
// interpreted against the array after removal: [A,B,C,D] with A moved to
// index 2 yields [B,C,A,D]. Out-of-range targets clamp to the array bounds.
func ReorderItem(section models.SectionInstance, fieldKey, itemID string, toIndex int) (models.SectionInstance, bool) {
	items, ok := repeaterItems(section.Data, fieldKey)
	if !ok {
		return section, false
	}

	index := findItemIndex(items, itemID)
	if index < 0 {
		return section, false
	}

	moved := items[index]
	remaining := make([]interface{}, 0, len(items)-1)
	remaining = append(remaining, items[:index]...)
	remaining = append(remaining, items[index+1:]...)

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(remaining) {
		toIndex = len(remaining)
	}

	updated := make([]interface{}, 0, len(items))
	updated = append(updated, remaining[:toIndex]...)
	updated = append(updated, moved)
	updated = append(updated, remaining[toIndex:]...)

	data, changed := SetNestedValue(section.Data, fieldKey, updated)
	if !changed {
		return section, false
	}
	section.Data = data
	return section, true
}
