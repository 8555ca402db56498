package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pagecraft-backend/internal/config"
	"pagecraft-backend/internal/repository"
	"pagecraft-backend/pkg/lang"

	"gorm.io/gorm"
)

const (
	languageCacheTTL = time.Minute

	settingKeyDefaultLanguage    = "site_default_language"
	settingKeySupportedLanguages = "site_supported_languages"
)

// LanguageService resolves the site's editing languages. Configuration
// supplies the fallback values; the settings repository can override them at
// runtime. Results are cached briefly so every builder request does not hit
// the database.
type LanguageService struct {
	cfg  *config.Config
	repo repository.SettingRepository

	mu            sync.RWMutex
	cachedDefault string
	cachedList    []string
	lastLoaded    time.Time
}

func NewLanguageService(cfg *config.Config, repo repository.SettingRepository) *LanguageService {
	s := &LanguageService{cfg: cfg, repo: repo}

	defaultLang, supported := s.configured()
	s.cachedDefault = defaultLang
	s.cachedList = append([]string(nil), supported...)
	s.lastLoaded = time.Now()

	return s
}

// Resolve returns the effective default language and the full supported list.
// The default language is always the first entry of the list.
func (s *LanguageService) Resolve() (string, []string, error) {
	s.mu.RLock()
	cachedDefault := s.cachedDefault
	cachedList := append([]string(nil), s.cachedList...)
	lastLoaded := s.lastLoaded
	s.mu.RUnlock()

	if time.Since(lastLoaded) < languageCacheTTL && len(cachedList) > 0 {
		return cachedDefault, cachedList, nil
	}

	resolvedDefault, resolvedSupported := s.configured()
	var combinedErr error

	if s.repo != nil {
		if setting, err := s.repo.Get(settingKeyDefaultLanguage); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				combinedErr = errors.Join(combinedErr, err)
			}
		} else if trimmed := strings.TrimSpace(setting.Value); trimmed != "" {
			resolvedDefault = trimmed
		}

		if setting, err := s.repo.Get(settingKeySupportedLanguages); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				combinedErr = errors.Join(combinedErr, err)
			}
		} else if trimmed := strings.TrimSpace(setting.Value); trimmed != "" {
			parsed, parseErr := lang.DecodeList(trimmed)
			if parseErr != nil {
				combinedErr = errors.Join(combinedErr, parseErr)
			} else if len(parsed) > 0 {
				resolvedSupported = parsed
			}
		}
	}

	normalizedDefault, normalizedSupported, err := lang.EnsureDefault(resolvedDefault, resolvedSupported)
	if err != nil {
		combinedErr = errors.Join(combinedErr, err)
		normalizedDefault, normalizedSupported = s.configured()
	}

	s.mu.Lock()
	s.cachedDefault = normalizedDefault
	s.cachedList = append([]string(nil), normalizedSupported...)
	s.lastLoaded = time.Now()
	s.mu.Unlock()

	return normalizedDefault, normalizedSupported, combinedErr
}

// IsSupported reports whether code is one of the enabled languages.
func (s *LanguageService) IsSupported(code string) bool {
	normalized, err := lang.Normalize(code)
	if err != nil {
		return false
	}

	_, supported, _ := s.Resolve()
	for _, candidate := range supported {
		if candidate == normalized {
			return true
		}
	}
	return false
}

// DefaultLanguage returns the effective default language.
func (s *LanguageService) DefaultLanguage() string {
	defaultLang, _, _ := s.Resolve()
	return defaultLang
}

// Update persists a new language configuration and refreshes the cache.
func (s *LanguageService) Update(defaultLanguage string, supported []string) error {
	normalizedDefault, normalizedSupported, err := lang.EnsureDefault(defaultLanguage, supported)
	if err != nil {
		return fmt.Errorf("invalid language configuration: %w", err)
	}

	if s.repo != nil {
		encoded, encodeErr := lang.EncodeList(normalizedSupported)
		if encodeErr != nil {
			return fmt.Errorf("failed to encode supported languages: %w", encodeErr)
		}
		if err := s.repo.Set(settingKeyDefaultLanguage, normalizedDefault); err != nil {
			return err
		}
		if err := s.repo.Set(settingKeySupportedLanguages, encoded); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cachedDefault = normalizedDefault
	s.cachedList = append([]string(nil), normalizedSupported...)
	s.lastLoaded = time.Now()
	s.mu.Unlock()

	return nil
}

func (s *LanguageService) configured() (string, []string) {
	defaultLang := lang.Default
	supported := []string{defaultLang}

	if s.cfg != nil {
		if normalized, err := lang.Normalize(s.cfg.DefaultLanguage); err == nil && normalized != "" {
			defaultLang = normalized
		}
		if len(s.cfg.SupportedLanguages) > 0 {
			if normalized, err := lang.NormalizeList(s.cfg.SupportedLanguages); err == nil && len(normalized) > 0 {
				supported = normalized
			}
		}
	}

	if normalizedDefault, normalizedSupported, err := lang.EnsureDefault(defaultLang, supported); err == nil {
		return normalizedDefault, normalizedSupported
	}
	return lang.Default, []string{lang.Default}
}
