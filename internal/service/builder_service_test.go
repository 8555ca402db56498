package service

import (
	"errors"
	"os"
	"testing"

	"gorm.io/gorm"

	"pagecraft-backend/internal/config"
	"pagecraft-backend/internal/editor"
	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/schema"
	"pagecraft-backend/pkg/validator"
)

func TestMain(m *testing.M) {
	validator.Init()
	os.Exit(m.Run())
}

type fakePageRepo struct {
	pages  map[uint]*models.Page
	nextID uint
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[uint]*models.Page), nextID: 1}
}

func (r *fakePageRepo) Create(page *models.Page) error {
	page.ID = r.nextID
	r.nextID++
	stored := *page
	r.pages[page.ID] = &stored
	return nil
}

func (r *fakePageRepo) Update(page *models.Page) error {
	if _, ok := r.pages[page.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *page
	r.pages[page.ID] = &stored
	return nil
}

func (r *fakePageRepo) Delete(id uint) error {
	delete(r.pages, id)
	return nil
}

func (r *fakePageRepo) GetByID(id uint) (*models.Page, error) {
	page, ok := r.pages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *page
	return &copied, nil
}

func (r *fakePageRepo) GetBySlug(slug string) (*models.Page, error) {
	for _, page := range r.pages {
		if page.Slug == slug && page.Published {
			copied := *page
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePageRepo) GetByPath(path string) (*models.Page, error) {
	for _, page := range r.pages {
		if page.Path == path && page.Published {
			copied := *page
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePageRepo) GetAll() ([]models.Page, error) {
	var pages []models.Page
	for _, page := range r.pages {
		if page.Published {
			pages = append(pages, *page)
		}
	}
	return pages, nil
}

func (r *fakePageRepo) GetAllAdmin() ([]models.Page, error) {
	var pages []models.Page
	for _, page := range r.pages {
		pages = append(pages, *page)
	}
	return pages, nil
}

func (r *fakePageRepo) ExistsBySlug(slug string) (bool, error) {
	for _, page := range r.pages {
		if page.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePageRepo) ExistsBySlugExceptID(slug string, excludeID uint) (bool, error) {
	for _, page := range r.pages {
		if page.Slug == slug && page.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newTestBuilder(t *testing.T) (*BuilderService, *fakePageRepo, uint) {
	t.Helper()

	repo := newFakePageRepo()
	cfg := &config.Config{DefaultLanguage: "en", SupportedLanguages: []string{"en", "fr"}}
	language := NewLanguageService(cfg, nil)
	builder := NewBuilderService(repo, schema.DefaultRegistry(), language, nil)

	page := &models.Page{Title: "Home", Slug: "home", Path: "/", Sections: models.PageSections{}}
	if err := repo.Create(page); err != nil {
		t.Fatalf("create page: %v", err)
	}
	return builder, repo, page.ID
}

func TestBuilderService_AddSectionPersistsAndSelects(t *testing.T) {
	builder, repo, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if section.ID == "" {
		t.Fatal("expected a generated section id")
	}
	if section.Data["headline"] != "Welcome" {
		t.Fatalf("expected schema default headline, got %v", section.Data["headline"])
	}

	stored, err := repo.GetByID(pageID)
	if err != nil {
		t.Fatalf("load page: %v", err)
	}
	if len(stored.Sections) != 1 || stored.Sections[0].ID != section.ID {
		t.Fatalf("expected persisted section %q, got %+v", section.ID, stored.Sections)
	}

	selected := builder.Selection(pageID)
	if selected.Kind != editor.SelectionSection || selected.SectionID != section.ID {
		t.Fatalf("expected new section selected, got %+v", selected)
	}
}

func TestBuilderService_AddSectionUnknownType(t *testing.T) {
	builder, repo, pageID := newTestBuilder(t)

	if _, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "carousel"}, ""); !errors.Is(err, ErrUnknownSectionType) {
		t.Fatalf("expected ErrUnknownSectionType, got %v", err)
	}

	stored, _ := repo.GetByID(pageID)
	if len(stored.Sections) != 0 {
		t.Fatalf("rejected operation must not persist sections, got %d", len(stored.Sections))
	}
}

func TestBuilderService_UpdateContentRoutesTranslation(t *testing.T) {
	builder, repo, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	updates := models.UpdateContentRequest{Updates: map[string]interface{}{"headline": "Bonjour"}}
	if err := builder.UpdateContent(pageID, section.ID, updates, "fr"); err != nil {
		t.Fatalf("update content: %v", err)
	}

	stored, _ := repo.GetByID(pageID)
	got := stored.Sections[0]
	if got.Data["headline"] != "Welcome" {
		t.Fatalf("default-language data must stay untouched, got %v", got.Data["headline"])
	}
	if got.Translations["fr"]["headline"] != "Bonjour" {
		t.Fatalf("expected translation overlay, got %+v", got.Translations)
	}

	merged, err := builder.SectionContent(pageID, section.ID, "fr")
	if err != nil {
		t.Fatalf("section content: %v", err)
	}
	if merged["headline"] != "Bonjour" {
		t.Fatalf("expected merged headline Bonjour, got %v", merged["headline"])
	}
}

func TestBuilderService_UpdateContentUnsupportedLanguage(t *testing.T) {
	builder, _, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	updates := models.UpdateContentRequest{Updates: map[string]interface{}{"headline": "Hallo"}}
	if err := builder.UpdateContent(pageID, section.ID, updates, "de"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestBuilderService_RichTextContentIsSanitized(t *testing.T) {
	builder, repo, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	payload := `<p>hello</p><script>alert("x")</script>`
	updates := models.UpdateContentRequest{Updates: map[string]interface{}{"body": payload}}
	if err := builder.UpdateContent(pageID, section.ID, updates, ""); err != nil {
		t.Fatalf("update content: %v", err)
	}

	stored, _ := repo.GetByID(pageID)
	got, _ := stored.Sections[0].Data["body"].(string)
	if got != "<p>hello</p>" {
		t.Fatalf("expected script stripped, got %q", got)
	}
}

func TestBuilderService_ItemLifecycle(t *testing.T) {
	builder, repo, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "cards"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	itemID, err := builder.AddItem(pageID, section.ID, models.AddItemRequest{FieldKey: "cards"}, "")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if itemID == "" {
		t.Fatal("expected a generated item id")
	}

	copyID, err := builder.DuplicateItem(pageID, section.ID, models.DuplicateItemRequest{FieldKey: "cards", ItemID: itemID}, "")
	if err != nil {
		t.Fatalf("duplicate item: %v", err)
	}
	if copyID == itemID {
		t.Fatal("duplicate must mint a new item id")
	}

	update := models.UpdateItemRequest{FieldKey: "cards", ItemID: copyID, Fields: map[string]interface{}{"title": "Second"}}
	if err := builder.UpdateItem(pageID, section.ID, update, ""); err != nil {
		t.Fatalf("update item: %v", err)
	}

	if err := builder.RemoveItem(pageID, section.ID, models.RemoveItemRequest{FieldKey: "cards", ItemID: itemID}, ""); err != nil {
		t.Fatalf("remove item: %v", err)
	}

	stored, _ := repo.GetByID(pageID)
	items, _ := stored.Sections[0].Data["cards"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item left, got %d", len(items))
	}
	item, _ := items[0].(map[string]interface{})
	if item["id"] != copyID || item["title"] != "Second" {
		t.Fatalf("unexpected surviving item: %+v", item)
	}
}

func TestBuilderService_RemoveItemUnknownIDIsNoOp(t *testing.T) {
	builder, repo, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "cards"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if _, err := builder.AddItem(pageID, section.ID, models.AddItemRequest{FieldKey: "cards"}, ""); err != nil {
		t.Fatalf("add item: %v", err)
	}

	err = builder.RemoveItem(pageID, section.ID, models.RemoveItemRequest{FieldKey: "cards", ItemID: "ghost"}, "")
	if !errors.Is(err, ErrNoChange) {
		t.Fatalf("expected ErrNoChange, got %v", err)
	}

	stored, _ := repo.GetByID(pageID)
	items, _ := stored.Sections[0].Data["cards"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("no-op removal must keep items, got %d", len(items))
	}
}

func TestBuilderService_SelectionSurvivesAcrossCalls(t *testing.T) {
	builder, _, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	node, err := builder.Select(pageID, models.SelectionRequest{Kind: "field", SectionID: section.ID, FieldKey: "headline"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if node.Kind != editor.SelectionField || node.FieldKey != "headline" {
		t.Fatalf("unexpected selection: %+v", node)
	}

	crumbs, err := builder.Breadcrumbs(pageID)
	if err != nil {
		t.Fatalf("breadcrumbs: %v", err)
	}
	if len(crumbs) != 2 {
		t.Fatalf("expected section and field crumbs, got %+v", crumbs)
	}

	if err := builder.DeleteSection(pageID, section.ID, ""); err != nil {
		t.Fatalf("delete section: %v", err)
	}
	if got := builder.Selection(pageID); got.Kind != editor.SelectionNone {
		t.Fatalf("selection must clear with its section, got %+v", got)
	}
}

func TestBuilderService_SelectStaleTargetRejected(t *testing.T) {
	builder, _, pageID := newTestBuilder(t)

	section, err := builder.AddSection(pageID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	req := models.SelectionRequest{Kind: "item", SectionID: section.ID, FieldKey: "headline", ItemID: "ghost"}
	if _, err := builder.Select(pageID, req); !errors.Is(err, ErrNoChange) {
		t.Fatalf("expected ErrNoChange, got %v", err)
	}
}
