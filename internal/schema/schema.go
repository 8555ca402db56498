package schema

// FieldType enumerates the closed set of field kinds a section schema may
// declare. Every consumer switches over this type; there is no catch-all
// fallback for unknown values.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldRichText FieldType = "richText"
	FieldImage    FieldType = "image"
	FieldMedia    FieldType = "media"
	FieldURL      FieldType = "url"
	FieldLink     FieldType = "link"
	FieldBoolean  FieldType = "boolean"
	FieldSelect   FieldType = "select"
	FieldRepeater FieldType = "repeater"
)

// Valid reports whether the field type belongs to the closed set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldRichText, FieldImage, FieldMedia, FieldURL,
		FieldLink, FieldBoolean, FieldSelect, FieldRepeater:
		return true
	}
	return false
}

// SelectOption is a single choice of a select field.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// FieldSchema describes one editable field of a section. The repeater-only
// members (ItemSchema and friends) are nil for scalar field types.
type FieldSchema struct {
	Key     string         `json:"key"`
	Type    FieldType      `json:"type"`
	Label   string         `json:"label,omitempty"`
	Default interface{}    `json:"default,omitempty"`
	Options []SelectOption `json:"options,omitempty"`

	// Repeater configuration. VariantSchemas overrides ItemSchema for a
	// specific section variant; UseCaseSchemas overrides both when the
	// sibling field named by UseCaseKey holds a matching value.
	ItemSchema     []FieldSchema            `json:"item_schema,omitempty"`
	VariantSchemas map[string][]FieldSchema `json:"variant_schemas,omitempty"`
	UseCaseKey     string                   `json:"use_case_key,omitempty"`
	UseCaseSchemas map[string][]FieldSchema `json:"use_case_schemas,omitempty"`
	MaxItems       int                      `json:"max_items,omitempty"`
}

// StyleOption describes one styling control exposed for a section.
type StyleOption struct {
	Key     string   `json:"key"`
	Label   string   `json:"label,omitempty"`
	Values  []string `json:"values,omitempty"`
	Default string   `json:"default,omitempty"`
}

// StyleOptions groups the style controls of a section: the global set applies
// to every variant, PerVariant adds variant-specific controls.
type StyleOptions struct {
	Global     []StyleOption            `json:"global,omitempty"`
	PerVariant map[string][]StyleOption `json:"per_variant,omitempty"`
}

// SectionDefinition is the immutable, registry-owned description of a section
// type: its schema, layout variants and styling surface.
type SectionDefinition struct {
	Type         string              `json:"type"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	Category     string              `json:"category,omitempty"`
	Icon         string              `json:"icon,omitempty"`
	Variants     []string            `json:"variants,omitempty"`
	Schema       []FieldSchema       `json:"schema"`
	StyleOptions StyleOptions        `json:"style_options,omitempty"`
	FieldOrder   map[string][]string `json:"field_order,omitempty"`
}

// DefaultVariant returns the first declared variant, or the empty string for
// single-layout sections.
func (d SectionDefinition) DefaultVariant() string {
	if len(d.Variants) == 0 {
		return ""
	}
	return d.Variants[0]
}

// HasVariant reports whether the named variant is declared by the definition.
func (d SectionDefinition) HasVariant(variant string) bool {
	for _, v := range d.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// OrderedKeys returns the field key ordering for the given variant, falling
// back to schema declaration order when no explicit ordering exists.
func (d SectionDefinition) OrderedKeys(variant string) []string {
	if keys, ok := d.FieldOrder[variant]; ok && len(keys) > 0 {
		return append([]string(nil), keys...)
	}
	keys := make([]string, 0, len(d.Schema))
	for _, field := range d.Schema {
		keys = append(keys, field.Key)
	}
	return keys
}
