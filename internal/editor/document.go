package editor

import (
	"github.com/google/uuid"

	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/schema"
)

// Document is the canonical editing state of one page: its sections, the
// current selection and the active editing language. Every mutation goes
// through the methods below; nothing else writes section state. Derived
// values (breadcrumbs, language views) are recomputed on demand from the
// canonical state, never cached.
type Document struct {
	registry *schema.Registry

	Sections        models.PageSections
	Selection       Selection
	CurrentLanguage string
	DefaultLanguage string
}

func NewDocument(registry *schema.Registry, sections models.PageSections, defaultLanguage string) *Document {
	return &Document{
		registry:        registry,
		Sections:        sections,
		Selection:       NewSelection(),
		CurrentLanguage: defaultLanguage,
		DefaultLanguage: defaultLanguage,
	}
}

// Definition resolves the section's definition from the registry. Unknown
// types report false; callers render a display fallback instead of failing.
func (d *Document) Definition(sectionType string) (schema.SectionDefinition, bool) {
	return d.registry.Get(sectionType)
}

func (d *Document) Section(sectionID string) (models.SectionInstance, bool) {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return models.SectionInstance{}, false
	}
	return d.Sections[index], true
}

// DefaultSectionData builds the initial data object for a new section of the
// given definition, expanding dotted field keys into nested objects.
func DefaultSectionData(def schema.SectionDefinition) map[string]interface{} {
	data := map[string]interface{}{}
	for _, field := range def.Schema {
		data, _ = SetNestedValue(data, field.Key, FieldDefault(field))
	}
	return data
}

// DefaultSectionStyles seeds the style object from the definition's declared
// style option defaults (global plus the chosen variant's).
func DefaultSectionStyles(def schema.SectionDefinition, variant string) map[string]interface{} {
	styles := map[string]interface{}{}
	for _, option := range def.StyleOptions.Global {
		if option.Default != "" {
			styles[option.Key] = option.Default
		}
	}
	for _, option := range def.StyleOptions.PerVariant[variant] {
		if option.Default != "" {
			styles[option.Key] = option.Default
		}
	}
	return styles
}

// AddSection creates a section seeded from the definition's defaults and
// inserts it at position (appending when position is out of range). Unknown
// section types report false.
func (d *Document) AddSection(sectionType, variant string, position int) (models.SectionInstance, bool) {
	def, ok := d.registry.Get(sectionType)
	if !ok {
		return models.SectionInstance{}, false
	}

	if variant == "" || !def.HasVariant(variant) {
		variant = def.DefaultVariant()
	}

	section := models.SectionInstance{
		ID:      uuid.New().String(),
		Type:    def.Type,
		Variant: variant,
		Data:    DefaultSectionData(def),
		Styles:  DefaultSectionStyles(def, variant),
	}

	if position < 0 || position > len(d.Sections) {
		position = len(d.Sections)
	}

	sections := make(models.PageSections, 0, len(d.Sections)+1)
	sections = append(sections, d.Sections[:position]...)
	sections = append(sections, section)
	sections = append(sections, d.Sections[position:]...)
	d.Sections = sections

	return section, true
}

// RemoveSection deletes the section and moves the selection off it.
func (d *Document) RemoveSection(sectionID string) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}

	sections := make(models.PageSections, 0, len(d.Sections)-1)
	sections = append(sections, d.Sections[:index]...)
	sections = append(sections, d.Sections[index+1:]...)
	d.Sections = sections

	d.Selection.SectionRemoved(sectionID)
	return true
}

// DuplicateSection deep-copies the section under a fresh id and inserts the
// copy immediately after the original.
func (d *Document) DuplicateSection(sectionID string) (models.SectionInstance, bool) {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return models.SectionInstance{}, false
	}

	source := d.Sections[index]
	clone := source
	clone.ID = uuid.New().String()
	if source.Data != nil {
		clone.Data = DeepClone(source.Data).(map[string]interface{})
	}
	if source.Translations != nil {
		clone.Translations = CloneTranslations(source.Translations)
	}

	sections := make(models.PageSections, 0, len(d.Sections)+1)
	sections = append(sections, d.Sections[:index+1]...)
	sections = append(sections, clone)
	sections = append(sections, d.Sections[index+1:]...)
	d.Sections = sections

	return clone, true
}

// ReorderSections rebuilds the section order from the provided id list.
// Unknown ids are skipped and sections missing from the list keep their
// relative order at the end.
func (d *Document) ReorderSections(sectionIDs []string) {
	byID := make(map[string]models.SectionInstance, len(d.Sections))
	for _, section := range d.Sections {
		byID[section.ID] = section
	}

	used := make(map[string]struct{}, len(sectionIDs))
	sections := make(models.PageSections, 0, len(d.Sections))
	for _, id := range sectionIDs {
		section, ok := byID[id]
		if !ok {
			continue
		}
		if _, seen := used[id]; seen {
			continue
		}
		used[id] = struct{}{}
		sections = append(sections, section)
	}
	for _, section := range d.Sections {
		if _, seen := used[section.ID]; !seen {
			sections = append(sections, section)
		}
	}
	d.Sections = sections
}

// SetVariant switches the section's layout variant. Content is independent of
// the variant, so data is untouched.
func (d *Document) SetVariant(sectionID, variant string) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}

	def, ok := d.registry.Get(d.Sections[index].Type)
	if !ok || !def.HasVariant(variant) {
		return false
	}

	section := d.Sections[index]
	section.Variant = variant
	d.Sections[index] = section
	return true
}

// UpdateContent applies a partial content update to the section, routed
// through the translation overlay when the editing language is not the page
// default.
func (d *Document) UpdateContent(sectionID string, updates map[string]interface{}) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}

	section, changed := ApplyContentUpdate(d.Sections[index], updates, d.CurrentLanguage, d.DefaultLanguage)
	if !changed {
		return false
	}
	d.Sections[index] = section
	return true
}

// SectionDataForLanguage returns the section's content as seen in the given
// language, translation overlay applied.
func (d *Document) SectionDataForLanguage(sectionID, language string) (map[string]interface{}, bool) {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return nil, false
	}
	return DataForLanguage(d.Sections[index], language), true
}

// AddItem appends a schema-seeded item to the section's repeater field and
// returns the new item's id.
func (d *Document) AddItem(sectionID, fieldKey string) (string, bool) {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return "", false
	}

	section := d.Sections[index]
	field, itemSchema, ok := d.repeaterSchema(section, fieldKey)
	if !ok {
		return "", false
	}

	section, itemID, ok := AddItem(section, field, itemSchema)
	if !ok {
		return "", false
	}
	d.Sections[index] = section
	return itemID, true
}

// RemoveItem deletes a repeater item by id and invalidates any selection
// pointing at it.
func (d *Document) RemoveItem(sectionID, fieldKey, itemID string) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}

	section, ok := RemoveItem(d.Sections[index], fieldKey, itemID)
	if !ok {
		return false
	}
	d.Sections[index] = section

	d.Selection.ItemRemoved(sectionID, fieldKey, itemID)
	return true
}

func (d *Document) DuplicateItem(sectionID, fieldKey, itemID string) (string, bool) {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return "", false
	}

	section, newID, ok := DuplicateItem(d.Sections[index], fieldKey, itemID)
	if !ok {
		return "", false
	}
	d.Sections[index] = section
	return newID, true
}

func (d *Document) UpdateItem(sectionID, fieldKey, itemID string, fields map[string]interface{}) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}

	section, ok := UpdateItem(d.Sections[index], fieldKey, itemID, fields)
	if !ok {
		return false
	}
	d.Sections[index] = section
	return true
}

func (d *Document) ReorderItem(sectionID, fieldKey, itemID string, toIndex int) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}

	section, ok := ReorderItem(d.Sections[index], fieldKey, itemID, toIndex)
	if !ok {
		return false
	}
	d.Sections[index] = section
	return true
}

func (d *Document) UpdateStyles(sectionID string, styles map[string]interface{}) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}
	section, ok := UpdateSectionStyle(d.Sections[index], styles)
	if !ok {
		return false
	}
	d.Sections[index] = section
	return true
}

func (d *Document) UpdateFieldStyles(sectionID, fieldPath string, styles map[string]interface{}) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}
	section, ok := UpdateFieldStyle(d.Sections[index], fieldPath, styles)
	if !ok {
		return false
	}
	d.Sections[index] = section
	return true
}

func (d *Document) UpdateItemStyles(sectionID, fieldKey string, styles map[string]interface{}) bool {
	index := d.Sections.FindByID(sectionID)
	if index < 0 {
		return false
	}
	section, ok := UpdateItemStyle(d.Sections[index], fieldKey, styles)
	if !ok {
		return false
	}
	d.Sections[index] = section
	return true
}

// Select moves the selection to the requested node after checking the target
// still resolves against the current sections. Invalid targets report false
// and leave the selection unchanged.
func (d *Document) Select(node SelectionNode) bool {
	switch node.Kind {
	case SelectionNone:
		d.Selection.Clear()
		return true

	case SelectionSection:
		if _, ok := d.Section(node.SectionID); !ok {
			return false
		}
		d.Selection.SelectSection(node.SectionID)
		return true

	case SelectionField:
		section, ok := d.Section(node.SectionID)
		if !ok {
			return false
		}
		if !d.fieldResolves(section, node.FieldKey) {
			return false
		}
		d.Selection.SelectField(node.SectionID, node.FieldKey)
		return true

	case SelectionItem, SelectionForm:
		section, ok := d.Section(node.SectionID)
		if !ok {
			return false
		}
		items, ok := repeaterItems(section.Data, node.FieldKey)
		if !ok || findItemIndex(items, node.ItemID) < 0 {
			return false
		}
		if node.Kind == SelectionForm {
			d.Selection.SelectFormField(node.SectionID, node.FieldKey, node.ItemID)
		} else {
			d.Selection.SelectItem(node.SectionID, node.FieldKey, node.ItemID)
		}
		return true
	}
	return false
}

func (d *Document) fieldResolves(section models.SectionInstance, fieldKey string) bool {
	def, ok := d.registry.Get(section.Type)
	if ok {
		if _, found := ResolveField(def, fieldKey); found {
			return true
		}
	}
	_, present := GetNestedValue(section.Data, fieldKey)
	return present
}

func (d *Document) repeaterSchema(section models.SectionInstance, fieldKey string) (schema.FieldSchema, []schema.FieldSchema, bool) {
	def, ok := d.registry.Get(section.Type)
	if !ok {
		return schema.FieldSchema{}, nil, false
	}
	field, ok := ResolveField(def, fieldKey)
	if !ok || field.Type != schema.FieldRepeater {
		return schema.FieldSchema{}, nil, false
	}
	return field, ResolveItemSchema(field, section.Variant, section.Data), true
}

// CloneTranslations copies a two-level string map, the shape of translation sets.
func CloneTranslations(value map[string]map[string]interface{}) map[string]map[string]interface{} {
	clone := make(map[string]map[string]interface{}, len(value))
	for key, inner := range value {
		clone[key] = DeepClone(inner).(map[string]interface{})
	}
	return clone
}
