package service

import (
	"errors"
	"testing"

	"pagecraft-backend/internal/config"
	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/schema"
)

func newTestPageService() (*PageService, *fakePageRepo) {
	repo := newFakePageRepo()
	cfg := &config.Config{DefaultLanguage: "en", SupportedLanguages: []string{"en", "fr"}}
	language := NewLanguageService(cfg, nil)
	return NewPageService(repo, schema.DefaultRegistry(), language, nil), repo
}

func TestPageService_CreateStripsMarkupFromPlainFields(t *testing.T) {
	pages, _ := newTestPageService()

	page, err := pages.Create(models.CreatePageRequest{
		Title:       `<b>About</b> us<script>alert("x")</script>`,
		Slug:        "about-us",
		Path:        "/about",
		Description: "Plain <i>text</i> only",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if page.Title != "About us" {
		t.Fatalf("expected markup stripped from title, got %q", page.Title)
	}
	if page.Description != "Plain text only" {
		t.Fatalf("expected markup stripped from description, got %q", page.Description)
	}
}

func TestPageService_CreateRejectsTakenSlug(t *testing.T) {
	pages, _ := newTestPageService()

	if _, err := pages.Create(models.CreatePageRequest{Title: "Home", Slug: "home", Path: "/"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := pages.Create(models.CreatePageRequest{Title: "Other", Slug: "home", Path: "/other"}); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestPageService_UpdateSanitizesTitle(t *testing.T) {
	pages, _ := newTestPageService()

	page, err := pages.Create(models.CreatePageRequest{Title: "Home", Slug: "home", Path: "/"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "<em>Landing</em>"
	updated, err := pages.Update(page.ID, models.UpdatePageRequest{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Landing" {
		t.Fatalf("expected markup stripped, got %q", updated.Title)
	}
}

func TestPageService_DuplicateRegeneratesSectionIDs(t *testing.T) {
	pages, repo := newTestPageService()
	cfg := &config.Config{DefaultLanguage: "en", SupportedLanguages: []string{"en"}}
	builder := NewBuilderService(repo, schema.DefaultRegistry(), NewLanguageService(cfg, nil), nil)

	page, err := pages.Create(models.CreatePageRequest{Title: "Home", Slug: "home", Path: "/"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	section, err := builder.AddSection(page.ID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	copied, err := pages.Duplicate(page.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if copied.Slug != "home-copy" {
		t.Fatalf("expected derived slug, got %q", copied.Slug)
	}
	if copied.Published {
		t.Fatal("duplicated pages must start unpublished")
	}
	if len(copied.Sections) != 1 {
		t.Fatalf("expected 1 copied section, got %d", len(copied.Sections))
	}
	if copied.Sections[0].ID == section.ID {
		t.Fatal("duplicated sections must carry fresh ids")
	}
	if copied.Sections[0].Data["headline"] != "Welcome" {
		t.Fatalf("expected content copied, got %v", copied.Sections[0].Data["headline"])
	}
}

func TestPageService_GetViewByPathSkipsDisabledSections(t *testing.T) {
	pages, repo := newTestPageService()
	cfg := &config.Config{DefaultLanguage: "en", SupportedLanguages: []string{"en"}}
	builder := NewBuilderService(repo, schema.DefaultRegistry(), NewLanguageService(cfg, nil), nil)

	page, err := pages.Create(models.CreatePageRequest{Title: "Home", Slug: "home", Path: "/", Published: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	kept, err := builder.AddSection(page.ID, models.AddSectionRequest{Type: "hero"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	hidden, err := builder.AddSection(page.ID, models.AddSectionRequest{Type: "faq"}, "")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	disabled := true
	if err := builder.UpdateSection(page.ID, hidden.ID, models.UpdateSectionRequest{Disabled: &disabled}, ""); err != nil {
		t.Fatalf("disable section: %v", err)
	}

	view, err := pages.GetViewByPath("/", "en")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Sections) != 1 || view.Sections[0].ID != kept.ID {
		t.Fatalf("expected only the enabled section, got %+v", view.Sections)
	}
}
