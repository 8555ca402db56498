package service

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"pagecraft-backend/internal/editor"
	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/repository"
	"pagecraft-backend/internal/schema"
	"pagecraft-backend/pkg/cache"
	"pagecraft-backend/pkg/validator"
)

const pageCacheTTL = time.Hour

type PageService struct {
	pageRepo repository.PageRepository
	registry *schema.Registry
	language *LanguageService
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, registry *schema.Registry, language *LanguageService, cacheService *cache.Cache) *PageService {
	return &PageService{
		pageRepo: pageRepo,
		registry: registry,
		language: language,
		cache:    cacheService,
	}
}

// SectionView is a section as delivered to a public reader: the variant plus
// content already merged for the requested language.
type SectionView struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Variant string                 `json:"variant"`
	Data    map[string]interface{} `json:"data"`
	Styles  map[string]interface{} `json:"styles,omitempty"`
}

// PageView is the rendered shape of a page for one language.
type PageView struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Path        string        `json:"path"`
	Description string        `json:"description"`
	Language    string        `json:"language"`
	Sections    []SectionView `json:"sections"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func generateSlug(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func normalizePagePath(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}

	trimmed = strings.ReplaceAll(trimmed, "\\", "/")
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}

	cleaned := path.Clean(trimmed)
	if cleaned == "." {
		cleaned = "/"
	}
	if cleaned != "/" && strings.HasSuffix(cleaned, "/") {
		cleaned = strings.TrimSuffix(cleaned, "/")
	}
	if strings.ContainsAny(cleaned, " \t\n\r") {
		return "", errors.New("page path cannot contain spaces")
	}

	return cleaned, nil
}

func defaultPathFromSlug(slug string) string {
	if slug == "" || slug == "home" {
		return "/"
	}
	return "/" + slug
}

func (s *PageService) Create(req models.CreatePageRequest) (*models.Page, error) {
	slug := generateSlug(req.Slug)
	if slug == "" {
		slug = generateSlug(req.Title)
	}
	if slug == "" {
		return nil, errors.New("page slug is required")
	}

	normalizedPath, err := normalizePagePath(req.Path)
	if err != nil {
		return nil, err
	}
	if normalizedPath == "" {
		normalizedPath = defaultPathFromSlug(slug)
	}

	exists, err := s.pageRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check page existence: %w", err)
	}
	if exists {
		return nil, ErrSlugTaken
	}

	page := &models.Page{
		Title:       validator.SanitizeString(strings.TrimSpace(req.Title)),
		Slug:        slug,
		Path:        normalizedPath,
		Description: validator.SanitizeString(req.Description),
		Published:   req.Published,
		Sections:    models.PageSections{},
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	s.invalidate(page)
	return s.pageRepo.GetByID(page.ID)
}

func (s *PageService) Update(id uint, req models.UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		page.Title = validator.SanitizeString(strings.TrimSpace(*req.Title))
	}
	if req.Slug != nil {
		slug := generateSlug(*req.Slug)
		if slug == "" {
			return nil, errors.New("page slug is required")
		}
		taken, err := s.pageRepo.ExistsBySlugExceptID(slug, page.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
		page.Slug = slug
	}
	if req.Path != nil {
		normalizedPath, err := normalizePagePath(*req.Path)
		if err != nil {
			return nil, err
		}
		if normalizedPath == "" {
			normalizedPath = defaultPathFromSlug(page.Slug)
		}
		page.Path = normalizedPath
	}
	if req.Description != nil {
		page.Description = validator.SanitizeString(*req.Description)
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidate(page)
	return page, nil
}

func (s *PageService) Delete(id uint) error {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return err
	}

	if err := s.pageRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate(page)
	return nil
}

// Duplicate copies a page under a derived slug. Section ids are regenerated so
// the copy never shares identity with the source.
func (s *PageService) Duplicate(id uint) (*models.Page, error) {
	source, err := s.pageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	slug := source.Slug + "-copy"
	for i := 2; ; i++ {
		taken, err := s.pageRepo.ExistsBySlug(slug)
		if err != nil {
			return nil, err
		}
		if !taken {
			break
		}
		slug = fmt.Sprintf("%s-copy-%d", source.Slug, i)
	}

	defaultLanguage, _, _ := s.language.Resolve()
	doc := editor.NewDocument(s.registry, models.PageSections{}, defaultLanguage)
	for _, section := range source.Sections {
		copied, ok := doc.AddSection(section.Type, section.Variant, len(doc.Sections))
		if !ok {
			continue
		}
		index := doc.Sections.FindByID(copied.ID)
		clone := section
		clone.ID = copied.ID
		if section.Data != nil {
			clone.Data = editor.DeepClone(section.Data).(map[string]interface{})
		}
		if section.Translations != nil {
			clone.Translations = editor.CloneTranslations(section.Translations)
		}
		doc.Sections[index] = clone
	}

	page := &models.Page{
		Title:       source.Title + " (copy)",
		Slug:        slug,
		Path:        defaultPathFromSlug(slug),
		Description: source.Description,
		Published:   false,
		Sections:    doc.Sections,
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, err
	}

	s.invalidate(page)
	return s.pageRepo.GetByID(page.ID)
}

func (s *PageService) GetByID(id uint) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) GetAll() ([]models.Page, error) {
	return s.pageRepo.GetAll()
}

func (s *PageService) GetAllAdmin() ([]models.Page, error) {
	return s.pageRepo.GetAllAdmin()
}

// GetViewByPath returns the published page at the given path rendered for one
// language: each section's translation overlay is merged over its base data,
// disabled sections are dropped and unknown section types are skipped.
func (s *PageService) GetViewByPath(pagePath, language string) (*PageView, error) {
	normalizedPath, err := normalizePagePath(pagePath)
	if err != nil {
		return nil, err
	}
	if normalizedPath == "" {
		normalizedPath = "/"
	}

	defaultLanguage, _, _ := s.language.Resolve()
	if language == "" || !s.language.IsSupported(language) {
		language = defaultLanguage
	}

	cacheKey := fmt.Sprintf("page:view:%s:%s", normalizedPath, language)
	if s.cache != nil && s.cache.Enabled() {
		var cached PageView
		if err := s.cache.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.pageRepo.GetByPath(normalizedPath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	view := s.renderView(page, language)
	if s.cache != nil && s.cache.Enabled() {
		s.cache.Set(cacheKey, view, pageCacheTTL)
	}
	return view, nil
}

func (s *PageService) renderView(page *models.Page, language string) *PageView {
	view := &PageView{
		ID:          page.ID,
		Title:       page.Title,
		Slug:        page.Slug,
		Path:        page.Path,
		Description: page.Description,
		Language:    language,
		Sections:    make([]SectionView, 0, len(page.Sections)),
	}

	for _, section := range page.Sections {
		if section.Disabled {
			continue
		}
		if _, known := s.registry.Get(section.Type); !known {
			continue
		}
		view.Sections = append(view.Sections, SectionView{
			ID:      section.ID,
			Type:    section.Type,
			Variant: section.Variant,
			Data:    editor.DataForLanguage(section, language),
			Styles:  section.Styles,
		})
	}

	return view
}

func (s *PageService) invalidate(page *models.Page) {
	if s.cache == nil || !s.cache.Enabled() {
		return
	}
	s.cache.DeletePattern("page:view:*")
	if page != nil {
		s.cache.Delete(fmt.Sprintf("page:%d", page.ID))
	}
}
