package models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreatePageRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Path        string `json:"path" binding:"required"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

type UpdatePageRequest struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,slug"`
	Path        *string `json:"path,omitempty"`
	Description *string `json:"description,omitempty"`
	Published   *bool   `json:"published,omitempty"`
}

// AddSectionRequest adds a new section of the given type, seeded from its
// schema defaults. Position -1 (or absence) appends.
type AddSectionRequest struct {
	Type     string `json:"type" binding:"required"`
	Variant  string `json:"variant"`
	Position *int   `json:"position,omitempty"`
}

type UpdateSectionRequest struct {
	Variant  *string `json:"variant,omitempty"`
	Disabled *bool   `json:"disabled,omitempty"`
}

type ReorderSectionsRequest struct {
	SectionIDs []string `json:"section_ids" binding:"required"`
}

// UpdateContentRequest carries a partial content update: dotted field paths
// mapped to their new values. The editing language decides whether values
// land in the section data or in a translation overlay.
type UpdateContentRequest struct {
	Updates map[string]interface{} `json:"updates" binding:"required"`
}

type UpdateStylesRequest struct {
	Styles map[string]interface{} `json:"styles" binding:"required"`
}

type UpdateFieldStylesRequest struct {
	FieldPath string                 `json:"field_path" binding:"required,fieldpath"`
	Styles    map[string]interface{} `json:"styles" binding:"required"`
}

type UpdateItemStylesRequest struct {
	FieldKey string                 `json:"field_key" binding:"required,fieldpath"`
	Styles   map[string]interface{} `json:"styles" binding:"required"`
}

type AddItemRequest struct {
	FieldKey string `json:"field_key" binding:"required,fieldpath"`
}

type RemoveItemRequest struct {
	FieldKey string `json:"field_key" binding:"required,fieldpath"`
	ItemID   string `json:"item_id" binding:"required"`
}

type DuplicateItemRequest struct {
	FieldKey string `json:"field_key" binding:"required,fieldpath"`
	ItemID   string `json:"item_id" binding:"required"`
}

type UpdateItemRequest struct {
	FieldKey string                 `json:"field_key" binding:"required,fieldpath"`
	ItemID   string                 `json:"item_id" binding:"required"`
	Fields   map[string]interface{} `json:"fields" binding:"required"`
}

type ReorderItemRequest struct {
	FieldKey string `json:"field_key" binding:"required,fieldpath"`
	ItemID   string `json:"item_id" binding:"required"`
	ToIndex  int    `json:"to_index"`
}

type UpdateLanguagesRequest struct {
	DefaultLanguage    string   `json:"default_language" binding:"required,langcode"`
	SupportedLanguages []string `json:"supported_languages" binding:"required,dive,langcode"`
}

// SelectionRequest moves the builder selection. Kind is one of
// section, field, item or form.
type SelectionRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=section field item form"`
	SectionID string `json:"section_id" binding:"required"`
	FieldKey  string `json:"field_key,omitempty" binding:"omitempty,fieldpath"`
	ItemID    string `json:"item_id,omitempty"`
}
