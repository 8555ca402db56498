package editor

import (
	"sort"

	"pagecraft-backend/internal/models"
)

// DataForLanguage produces the content of a section as seen in the given
// language: the default-language data shallow-merged with the language's
// translation overlay. Keys the overlay does not cover fall back to the
// default value independently of each other.
func DataForLanguage(section models.SectionInstance, language string) map[string]interface{} {
	result := make(map[string]interface{}, len(section.Data))
	for key, value := range section.Data {
		result[key] = value
	}

	overlay := section.Translations[language]
	for key, value := range overlay {
		result[key] = value
	}
	return result
}

// ApplyContentUpdate routes a partial content update based on the active
// editing language. When the editing language differs from the page default,
// changed keys are written into the section's translation overlay for that
// language and the default data stays untouched; otherwise they are written
// into the data directly. Either way the write is copy-on-write.
func ApplyContentUpdate(section models.SectionInstance, updates map[string]interface{}, currentLanguage, defaultLanguage string) (models.SectionInstance, bool) {
	if len(updates) == 0 {
		return section, false
	}

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	translated := currentLanguage != "" && currentLanguage != defaultLanguage

	if !translated {
		data := section.Data
		changedAny := false
		for _, key := range keys {
			var changed bool
			data, changed = SetNestedValue(data, key, updates[key])
			changedAny = changedAny || changed
		}
		if !changedAny {
			return section, false
		}
		section.Data = data
		return section, true
	}

	overlay := section.Translations[currentLanguage]
	changedAny := false
	for _, key := range keys {
		var changed bool
		overlay, changed = SetNestedValue(overlay, key, updates[key])
		changedAny = changedAny || changed
	}
	if !changedAny {
		return section, false
	}

	translations := make(map[string]map[string]interface{}, len(section.Translations)+1)
	for language, values := range section.Translations {
		translations[language] = values
	}
	translations[currentLanguage] = overlay
	section.Translations = translations
	return section, true
}

// RemoveTranslation drops the whole overlay for a language, reverting every
// field of the section to its default-language value.
func RemoveTranslation(section models.SectionInstance, language string) (models.SectionInstance, bool) {
	if _, ok := section.Translations[language]; !ok {
		return section, false
	}

	translations := make(map[string]map[string]interface{}, len(section.Translations)-1)
	for key, values := range section.Translations {
		if key == language {
			continue
		}
		translations[key] = values
	}
	section.Translations = translations
	return section, true
}
