package editor

import (
	"pagecraft-backend/internal/models"
)

// UpdateSectionStyle merges the changed style keys into the section's styles.
// The styles object is replaced wholesale, never mutated in place.
func UpdateSectionStyle(section models.SectionInstance, styles map[string]interface{}) (models.SectionInstance, bool) {
	if len(styles) == 0 {
		return section, false
	}

	merged := make(map[string]interface{}, len(section.Styles)+len(styles))
	for key, value := range section.Styles {
		merged[key] = value
	}
	for key, value := range styles {
		merged[key] = value
	}
	section.Styles = merged
	return section, true
}

// UpdateFieldStyle merges style keys for one field, addressed by dotted path.
func UpdateFieldStyle(section models.SectionInstance, fieldPath string, styles map[string]interface{}) (models.SectionInstance, bool) {
	if fieldPath == "" || len(styles) == 0 {
		return section, false
	}

	merged := make(map[string]interface{}, len(section.FieldStyles[fieldPath])+len(styles))
	for key, value := range section.FieldStyles[fieldPath] {
		merged[key] = value
	}
	for key, value := range styles {
		merged[key] = value
	}

	fieldStyles := make(map[string]map[string]interface{}, len(section.FieldStyles)+1)
	for path, values := range section.FieldStyles {
		fieldStyles[path] = values
	}
	fieldStyles[fieldPath] = merged
	section.FieldStyles = fieldStyles
	return section, true
}

// UpdateItemStyle merges style keys for the items of a repeater. Item styles
// are shared across all items of the repeater, so they are keyed by the
// repeater field key rather than by item id.
func UpdateItemStyle(section models.SectionInstance, fieldKey string, styles map[string]interface{}) (models.SectionInstance, bool) {
	if fieldKey == "" || len(styles) == 0 {
		return section, false
	}

	merged := make(map[string]interface{}, len(section.ItemStyles[fieldKey])+len(styles))
	for key, value := range section.ItemStyles[fieldKey] {
		merged[key] = value
	}
	for key, value := range styles {
		merged[key] = value
	}

	itemStyles := make(map[string]map[string]interface{}, len(section.ItemStyles)+1)
	for key, values := range section.ItemStyles {
		itemStyles[key] = values
	}
	itemStyles[fieldKey] = merged
	section.ItemStyles = itemStyles
	return section, true
}
