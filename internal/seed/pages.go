package seed

import (
	"errors"

	"gorm.io/gorm"

	"pagecraft-backend/internal/editor"
	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/repository"
	"pagecraft-backend/internal/schema"
	"pagecraft-backend/pkg/logger"
)

// EnsureHomePage creates a published home page with a starter layout when no
// page is mapped to the root path yet. Sections are seeded from their schema
// defaults so the builder opens on editable content.
func EnsureHomePage(pageRepo repository.PageRepository, registry *schema.Registry, defaultLanguage string) {
	if pageRepo == nil || registry == nil {
		return
	}

	if _, err := pageRepo.GetByPath("/"); err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error(err, "Failed to check for home page", nil)
		return
	}

	doc := editor.NewDocument(registry, models.PageSections{}, defaultLanguage)
	for _, sectionType := range []string{"hero", "cards", "faq"} {
		if _, ok := doc.AddSection(sectionType, "", len(doc.Sections)); !ok {
			logger.Warn("Skipping unknown starter section", map[string]interface{}{"type": sectionType})
		}
	}

	page := &models.Page{
		Title:     "Home",
		Slug:      "home",
		Path:      "/",
		Published: true,
		Sections:  doc.Sections,
	}

	if err := pageRepo.Create(page); err != nil {
		logger.Error(err, "Failed to seed home page", nil)
		return
	}

	logger.Info("Seeded home page", map[string]interface{}{
		"id":       page.ID,
		"sections": len(page.Sections),
	})
}
