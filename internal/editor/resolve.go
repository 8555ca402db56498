package editor

import (
	"strings"

	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/schema"
)

// ResolveField finds the schema field with the exact key in the definition.
func ResolveField(def schema.SectionDefinition, fieldKey string) (schema.FieldSchema, bool) {
	for _, field := range def.Schema {
		if field.Key == fieldKey {
			return field, true
		}
	}
	return schema.FieldSchema{}, false
}

// ResolveItemSchema picks the item schema of a repeater field. Precedence:
// a use-case schema selected by the sibling field named UseCaseKey, then the
// variant-specific schema, then the base item schema.
func ResolveItemSchema(field schema.FieldSchema, variant string, data map[string]interface{}) []schema.FieldSchema {
	if field.Type != schema.FieldRepeater {
		return nil
	}

	if field.UseCaseKey != "" && len(field.UseCaseSchemas) > 0 {
		if value, ok := GetNestedValue(data, field.UseCaseKey); ok {
			if key, ok := value.(string); ok {
				if itemSchema, ok := field.UseCaseSchemas[key]; ok {
					return itemSchema
				}
			}
		}
	}

	if itemSchema, ok := field.VariantSchemas[variant]; ok {
		return itemSchema
	}

	return field.ItemSchema
}

// RepeaterItemID returns the stable id of the item at index inside the array
// addressed by fieldKey. Items without a string id report false; index lookups
// remain available to callers as a fallback for such items.
func RepeaterItemID(section models.SectionInstance, fieldKey string, index int) (string, bool) {
	items, ok := repeaterItems(section.Data, fieldKey)
	if !ok || index < 0 || index >= len(items) {
		return "", false
	}

	item, ok := items[index].(map[string]interface{})
	if !ok {
		return "", false
	}

	id, ok := item["id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// labelKeys are the conventional item label fields, tried in order.
var labelKeys = []string{"headline", "label", "title", "name", "heading", "platform"}

// UntitledLabel is the single placeholder used whenever no label can be
// derived for a repeater item.
const UntitledLabel = "Untitled"

// ItemDisplayLabel derives a human-readable label for a repeater item. It
// tries the conventional label keys on the item itself, then the first
// text-like schema field with a non-blank value, then a fixed placeholder.
func ItemDisplayLabel(item map[string]interface{}, itemSchema []schema.FieldSchema) string {
	for _, key := range labelKeys {
		if value, ok := item[key].(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}

	for _, field := range itemSchema {
		if field.Type != schema.FieldText && field.Type != schema.FieldRichText {
			continue
		}
		if raw, ok := GetNestedValue(item, field.Key); ok {
			if value, ok := raw.(string); ok && strings.TrimSpace(value) != "" {
				return value
			}
		}
	}

	return UntitledLabel
}

// repeaterItems resolves the array value of a repeater field. A missing value
// reports false; a present non-array value also reports false.
func repeaterItems(data map[string]interface{}, fieldKey string) ([]interface{}, bool) {
	raw, ok := GetNestedValue(data, fieldKey)
	if !ok {
		return nil, false
	}
	items, ok := raw.([]interface{})
	return items, ok
}

func findItemIndex(items []interface{}, itemID string) int {
	for i, raw := range items {
		if item, ok := raw.(map[string]interface{}); ok {
			if id, ok := item["id"].(string); ok && id == itemID {
				return i
			}
		}
	}
	return -1
}
