package editor

import (
	"pagecraft-backend/internal/schema"
)

// Breadcrumb is one entry of the builder's navigation trail.
type Breadcrumb struct {
	Kind  SelectionKind `json:"kind"`
	Label string        `json:"label"`
	ID    string        `json:"id,omitempty"`
}

// UnknownSectionLabel is shown for section types missing from the registry.
const UnknownSectionLabel = "Unknown section type"

// Breadcrumbs derives the navigation trail for the current selection. It is
// recomputed from the canonical state on every call; there is no cached
// derived selection state that could go stale. An item selection implies its
// owning repeater, so the field crumb always precedes the item crumb.
func (d *Document) Breadcrumbs() []Breadcrumb {
	node := d.Selection.Node()
	if node.Kind == SelectionNone {
		return nil
	}

	section, ok := d.Section(node.SectionID)
	if !ok {
		return nil
	}

	def, known := d.registry.Get(section.Type)
	sectionLabel := UnknownSectionLabel
	if known {
		sectionLabel = def.Name
	}

	crumbs := []Breadcrumb{{Kind: SelectionSection, Label: sectionLabel, ID: section.ID}}
	if node.Kind == SelectionSection {
		return crumbs
	}

	fieldLabel := node.FieldKey
	var field schema.FieldSchema
	var fieldFound bool
	if known {
		if field, fieldFound = ResolveField(def, node.FieldKey); fieldFound && field.Label != "" {
			fieldLabel = field.Label
		}
	}
	crumbs = append(crumbs, Breadcrumb{Kind: SelectionField, Label: fieldLabel, ID: node.FieldKey})
	if node.Kind == SelectionField {
		return crumbs
	}

	items, ok := repeaterItems(section.Data, node.FieldKey)
	if !ok {
		return crumbs
	}
	index := findItemIndex(items, node.ItemID)
	if index < 0 {
		return crumbs
	}

	var itemSchema []schema.FieldSchema
	if fieldFound {
		itemSchema = ResolveItemSchema(field, section.Variant, section.Data)
	}

	item, _ := items[index].(map[string]interface{})
	crumbs = append(crumbs, Breadcrumb{
		Kind:  node.Kind,
		Label: ItemDisplayLabel(item, itemSchema),
		ID:    node.ItemID,
	})
	return crumbs
}
