package editor

// SelectionKind identifies which addressable unit of the page currently has
// focus in the builder.
type SelectionKind string

const (
	SelectionNone    SelectionKind = "none"
	SelectionSection SelectionKind = "section"
	SelectionField   SelectionKind = "field"
	SelectionItem    SelectionKind = "item"
	SelectionForm    SelectionKind = "form"
)

// SelectionNode is the currently focused unit: a section, a field within it,
// a repeater item, or a form sub-field. Item selection is a refinement of
// field selection, so an item node always carries its owning field key.
type SelectionNode struct {
	Kind      SelectionKind `json:"kind"`
	SectionID string        `json:"section_id,omitempty"`
	FieldKey  string        `json:"field_key,omitempty"`
	ItemID    string        `json:"item_id,omitempty"`
}

// Selection is the builder's selection state machine. Transitions happen only
// through the methods below; deletions of the referenced element always move
// the state to the nearest valid ancestor, so the node never points at
// something that no longer exists. Selection carries no history: it is not
// part of undo.
type Selection struct {
	node SelectionNode
}

func NewSelection() Selection {
	return Selection{node: SelectionNode{Kind: SelectionNone}}
}

func (s *Selection) Node() SelectionNode {
	if s.node.Kind == "" {
		return SelectionNode{Kind: SelectionNone}
	}
	return s.node
}

func (s *Selection) SelectSection(sectionID string) {
	s.node = SelectionNode{Kind: SelectionSection, SectionID: sectionID}
}

func (s *Selection) SelectField(sectionID, fieldKey string) {
	s.node = SelectionNode{Kind: SelectionField, SectionID: sectionID, FieldKey: fieldKey}
}

func (s *Selection) SelectItem(sectionID, fieldKey, itemID string) {
	s.node = SelectionNode{Kind: SelectionItem, SectionID: sectionID, FieldKey: fieldKey, ItemID: itemID}
}

func (s *Selection) SelectFormField(sectionID, fieldKey, itemID string) {
	s.node = SelectionNode{Kind: SelectionForm, SectionID: sectionID, FieldKey: fieldKey, ItemID: itemID}
}

// Clear resets the selection, the Escape transition.
func (s *Selection) Clear() {
	s.node = SelectionNode{Kind: SelectionNone}
}

// SectionRemoved transitions to the empty state when the removed section is
// the one any current node lives in.
func (s *Selection) SectionRemoved(sectionID string) {
	if s.node.SectionID == sectionID {
		s.Clear()
	}
}

// FieldRemoved transitions to section-selected when the current node
// references the removed field (directly or through one of its items).
func (s *Selection) FieldRemoved(sectionID, fieldKey string) {
	if s.node.SectionID == sectionID && s.node.FieldKey == fieldKey {
		s.SelectSection(sectionID)
	}
}

// ItemRemoved transitions to field-selected on the owning repeater when the
// removed item is currently selected.
func (s *Selection) ItemRemoved(sectionID, fieldKey, itemID string) {
	if s.node.Kind != SelectionItem && s.node.Kind != SelectionForm {
		return
	}
	if s.node.SectionID == sectionID && s.node.FieldKey == fieldKey && s.node.ItemID == itemID {
		s.SelectField(sectionID, fieldKey)
	}
}
