package service

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"pagecraft-backend/internal/editor"
	"pagecraft-backend/internal/metrics"
	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/repository"
	"pagecraft-backend/internal/schema"
	"pagecraft-backend/pkg/cache"
	"pagecraft-backend/pkg/lang"
	"pagecraft-backend/pkg/validator"
)

// BuilderService executes builder operations against a page. Each operation
// loads the page, rebuilds the editing document from its stored sections,
// applies the mutation and persists the result; no document state survives
// between requests except the selection node, which is kept per page so the
// builder UI stays consistent across calls.
type BuilderService struct {
	pageRepo repository.PageRepository
	registry *schema.Registry
	language *LanguageService
	cache    *cache.Cache

	mu         sync.Mutex
	selections map[uint]editor.SelectionNode
}

func NewBuilderService(pageRepo repository.PageRepository, registry *schema.Registry, language *LanguageService, cacheService *cache.Cache) *BuilderService {
	return &BuilderService{
		pageRepo:   pageRepo,
		registry:   registry,
		language:   language,
		cache:      cacheService,
		selections: make(map[uint]editor.SelectionNode),
	}
}

// Definitions returns the section catalog the builder can instantiate,
// in registration order.
func (s *BuilderService) Definitions() []schema.SectionDefinition {
	return s.registry.All()
}

func (s *BuilderService) AddSection(pageID uint, req models.AddSectionRequest, editingLanguage string) (*models.SectionInstance, error) {
	position := -1
	if req.Position != nil {
		position = *req.Position
	}

	var added models.SectionInstance
	err := s.withDocument(pageID, editingLanguage, "add_section", func(doc *editor.Document) error {
		section, ok := doc.AddSection(req.Type, req.Variant, position)
		if !ok {
			return ErrUnknownSectionType
		}
		added = section
		doc.Select(editor.SelectionNode{Kind: editor.SelectionSection, SectionID: section.ID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *BuilderService) UpdateSection(pageID uint, sectionID string, req models.UpdateSectionRequest, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "update_section", func(doc *editor.Document) error {
		index := doc.Sections.FindByID(sectionID)
		if index < 0 {
			return ErrSectionNotFound
		}

		if req.Variant != nil {
			if !doc.SetVariant(sectionID, *req.Variant) {
				return ErrNoChange
			}
		}
		if req.Disabled != nil {
			section := doc.Sections[index]
			section.Disabled = *req.Disabled
			doc.Sections[index] = section
		}
		return nil
	})
}

func (s *BuilderService) DeleteSection(pageID uint, sectionID string, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "delete_section", func(doc *editor.Document) error {
		if !doc.RemoveSection(sectionID) {
			return ErrSectionNotFound
		}
		return nil
	})
}

func (s *BuilderService) DuplicateSection(pageID uint, sectionID string, editingLanguage string) (*models.SectionInstance, error) {
	var duplicated models.SectionInstance
	err := s.withDocument(pageID, editingLanguage, "duplicate_section", func(doc *editor.Document) error {
		section, ok := doc.DuplicateSection(sectionID)
		if !ok {
			return ErrSectionNotFound
		}
		duplicated = section
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &duplicated, nil
}

func (s *BuilderService) ReorderSections(pageID uint, req models.ReorderSectionsRequest, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "reorder_sections", func(doc *editor.Document) error {
		doc.ReorderSections(req.SectionIDs)
		return nil
	})
}

// UpdateContent applies a partial content update to a section. Rich text
// values are sanitised before they reach the document. When the editing
// language is not the site default the update lands in that language's
// translation overlay instead of the base data.
func (s *BuilderService) UpdateContent(pageID uint, sectionID string, req models.UpdateContentRequest, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "update_content", func(doc *editor.Document) error {
		section, ok := doc.Section(sectionID)
		if !ok {
			return ErrSectionNotFound
		}

		updates := req.Updates
		if def, known := doc.Definition(section.Type); known {
			updates = sanitizeContentUpdates(def, updates)
		}

		if !doc.UpdateContent(sectionID, updates) {
			return ErrNoChange
		}
		return nil
	})
}

// SectionContent returns a section's content merged for the given language.
func (s *BuilderService) SectionContent(pageID uint, sectionID, language string) (map[string]interface{}, error) {
	page, err := s.loadPage(pageID)
	if err != nil {
		return nil, err
	}

	index := page.Sections.FindByID(sectionID)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	defaultLanguage, _, _ := s.language.Resolve()
	if language == "" {
		language = defaultLanguage
	}
	return editor.DataForLanguage(page.Sections[index], language), nil
}

// RemoveTranslation drops one language's overlay from a section.
func (s *BuilderService) RemoveTranslation(pageID uint, sectionID, language string) error {
	normalized, err := lang.Normalize(language)
	if err != nil {
		return ErrUnsupportedLanguage
	}

	return s.withDocument(pageID, "", "remove_translation", func(doc *editor.Document) error {
		index := doc.Sections.FindByID(sectionID)
		if index < 0 {
			return ErrSectionNotFound
		}
		section, changed := editor.RemoveTranslation(doc.Sections[index], normalized)
		if !changed {
			return ErrNoChange
		}
		doc.Sections[index] = section
		return nil
	})
}

func (s *BuilderService) UpdateStyles(pageID uint, sectionID string, req models.UpdateStylesRequest) error {
	return s.withDocument(pageID, "", "update_styles", func(doc *editor.Document) error {
		if !doc.UpdateStyles(sectionID, req.Styles) {
			return ErrSectionNotFound
		}
		return nil
	})
}

func (s *BuilderService) UpdateFieldStyles(pageID uint, sectionID string, req models.UpdateFieldStylesRequest) error {
	return s.withDocument(pageID, "", "update_field_styles", func(doc *editor.Document) error {
		if !doc.UpdateFieldStyles(sectionID, req.FieldPath, req.Styles) {
			return ErrSectionNotFound
		}
		return nil
	})
}

func (s *BuilderService) UpdateItemStyles(pageID uint, sectionID string, req models.UpdateItemStylesRequest) error {
	return s.withDocument(pageID, "", "update_item_styles", func(doc *editor.Document) error {
		if !doc.UpdateItemStyles(sectionID, req.FieldKey, req.Styles) {
			return ErrSectionNotFound
		}
		return nil
	})
}

func (s *BuilderService) AddItem(pageID uint, sectionID string, req models.AddItemRequest, editingLanguage string) (string, error) {
	var itemID string
	err := s.withDocument(pageID, editingLanguage, "add_item", func(doc *editor.Document) error {
		id, ok := doc.AddItem(sectionID, req.FieldKey)
		if !ok {
			return ErrNoChange
		}
		itemID = id
		return nil
	})
	return itemID, err
}

func (s *BuilderService) RemoveItem(pageID uint, sectionID string, req models.RemoveItemRequest, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "remove_item", func(doc *editor.Document) error {
		if !doc.RemoveItem(sectionID, req.FieldKey, req.ItemID) {
			return ErrNoChange
		}
		return nil
	})
}

func (s *BuilderService) DuplicateItem(pageID uint, sectionID string, req models.DuplicateItemRequest, editingLanguage string) (string, error) {
	var itemID string
	err := s.withDocument(pageID, editingLanguage, "duplicate_item", func(doc *editor.Document) error {
		id, ok := doc.DuplicateItem(sectionID, req.FieldKey, req.ItemID)
		if !ok {
			return ErrNoChange
		}
		itemID = id
		return nil
	})
	return itemID, err
}

func (s *BuilderService) UpdateItem(pageID uint, sectionID string, req models.UpdateItemRequest, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "update_item", func(doc *editor.Document) error {
		section, ok := doc.Section(sectionID)
		if !ok {
			return ErrSectionNotFound
		}

		fields := req.Fields
		if def, known := doc.Definition(section.Type); known {
			if field, found := editor.ResolveField(def, req.FieldKey); found {
				itemSchema := editor.ResolveItemSchema(field, section.Variant, section.Data)
				fields = sanitizeItemFields(itemSchema, fields)
			}
		}

		if !doc.UpdateItem(sectionID, req.FieldKey, req.ItemID, fields) {
			return ErrNoChange
		}
		return nil
	})
}

func (s *BuilderService) ReorderItem(pageID uint, sectionID string, req models.ReorderItemRequest, editingLanguage string) error {
	return s.withDocument(pageID, editingLanguage, "reorder_item", func(doc *editor.Document) error {
		if !doc.ReorderItem(sectionID, req.FieldKey, req.ItemID, req.ToIndex) {
			return ErrNoChange
		}
		return nil
	})
}

// Select moves the builder selection for a page. The target must resolve
// against the page's current sections; stale targets are rejected and the
// previous selection is kept.
func (s *BuilderService) Select(pageID uint, req models.SelectionRequest) (editor.SelectionNode, error) {
	page, err := s.loadPage(pageID)
	if err != nil {
		return editor.SelectionNode{}, err
	}

	defaultLanguage, _, _ := s.language.Resolve()
	doc := editor.NewDocument(s.registry, page.Sections, defaultLanguage)
	s.restoreSelection(pageID, doc)

	node := editor.SelectionNode{
		Kind:      editor.SelectionKind(req.Kind),
		SectionID: req.SectionID,
		FieldKey:  req.FieldKey,
		ItemID:    req.ItemID,
	}
	if !doc.Select(node) {
		metrics.ObserveRejection("select")
		return doc.Selection.Node(), ErrNoChange
	}

	metrics.ObserveOperation("select")
	s.storeSelection(pageID, doc.Selection.Node())
	return doc.Selection.Node(), nil
}

func (s *BuilderService) ClearSelection(pageID uint) editor.SelectionNode {
	cleared := editor.SelectionNode{Kind: editor.SelectionNone}
	s.storeSelection(pageID, cleared)
	return cleared
}

func (s *BuilderService) Selection(pageID uint) editor.SelectionNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	node, ok := s.selections[pageID]
	if !ok {
		return editor.SelectionNode{Kind: editor.SelectionNone}
	}
	return node
}

// Breadcrumbs derives the selection trail for a page from its current state.
func (s *BuilderService) Breadcrumbs(pageID uint) ([]editor.Breadcrumb, error) {
	page, err := s.loadPage(pageID)
	if err != nil {
		return nil, err
	}

	defaultLanguage, _, _ := s.language.Resolve()
	doc := editor.NewDocument(s.registry, page.Sections, defaultLanguage)
	s.restoreSelection(pageID, doc)
	return doc.Breadcrumbs(), nil
}

func (s *BuilderService) loadPage(pageID uint) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

// withDocument runs one builder mutation: load the page, rebuild the editing
// document, restore the stored selection, apply fn, persist. Failed mutations
// persist nothing and count as rejections.
func (s *BuilderService) withDocument(pageID uint, editingLanguage, operation string, fn func(doc *editor.Document) error) error {
	page, err := s.loadPage(pageID)
	if err != nil {
		metrics.ObserveRejection(operation)
		return err
	}

	defaultLanguage, _, _ := s.language.Resolve()
	current := defaultLanguage
	if editingLanguage != "" {
		normalized, normErr := lang.Normalize(editingLanguage)
		if normErr != nil || !s.language.IsSupported(normalized) {
			metrics.ObserveRejection(operation)
			return ErrUnsupportedLanguage
		}
		current = normalized
	}

	doc := editor.NewDocument(s.registry, page.Sections, defaultLanguage)
	doc.CurrentLanguage = current
	s.restoreSelection(pageID, doc)

	if err := fn(doc); err != nil {
		metrics.ObserveRejection(operation)
		return err
	}

	page.Sections = doc.Sections
	if err := s.pageRepo.Update(page); err != nil {
		metrics.ObserveRejection(operation)
		return err
	}

	s.storeSelection(pageID, doc.Selection.Node())
	s.invalidateViews()
	metrics.ObserveOperation(operation)
	return nil
}

func (s *BuilderService) restoreSelection(pageID uint, doc *editor.Document) {
	s.mu.Lock()
	node, ok := s.selections[pageID]
	s.mu.Unlock()
	if !ok || node.Kind == editor.SelectionNone {
		return
	}
	// A stale node no longer resolves; the selection then stays empty.
	doc.Select(node)
}

func (s *BuilderService) storeSelection(pageID uint, node editor.SelectionNode) {
	s.mu.Lock()
	s.selections[pageID] = node
	s.mu.Unlock()
}

func (s *BuilderService) invalidateViews() {
	if s.cache != nil && s.cache.Enabled() {
		s.cache.DeletePattern("page:view:*")
	}
}

func sanitizeContentUpdates(def schema.SectionDefinition, updates map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		sanitized[key] = sanitizeFieldValue(def.Schema, key, value)
	}
	return sanitized
}

func sanitizeItemFields(itemSchema []schema.FieldSchema, fields map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		sanitized[key] = sanitizeFieldValue(itemSchema, key, value)
	}
	return sanitized
}

func sanitizeFieldValue(fields []schema.FieldSchema, key string, value interface{}) interface{} {
	text, ok := value.(string)
	if !ok {
		return value
	}
	for _, field := range fields {
		if field.Key != key {
			continue
		}
		if field.Type == schema.FieldRichText {
			return validator.SanitizeHTML(text)
		}
		return value
	}
	return value
}
