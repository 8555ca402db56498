package editor

import (
	"reflect"
	"testing"

	"pagecraft-backend/internal/models"
)

func TestDataForLanguage_OverlayShadowsDefaults(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{"headline": "Hello", "body": "World"},
		Translations: map[string]map[string]interface{}{
			"fr": {"headline": "Bonjour"},
		},
	}

	got := DataForLanguage(section, "fr")
	want := map[string]interface{}{"headline": "Bonjour", "body": "World"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDataForLanguage_EmptyOverlayEqualsData(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{"headline": "Hello", "body": "World"},
		Translations: map[string]map[string]interface{}{
			"fr": {},
		},
	}

	if got := DataForLanguage(section, "fr"); !reflect.DeepEqual(got, section.Data) {
		t.Fatalf("expected data to pass through, got %v", got)
	}
	if got := DataForLanguage(section, "de"); !reflect.DeepEqual(got, section.Data) {
		t.Fatalf("expected missing overlay to fall back entirely, got %v", got)
	}
}

func TestApplyContentUpdate_DefaultLanguageWritesData(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{"headline": "Hello"},
	}

	updated, changed := ApplyContentUpdate(section, map[string]interface{}{"headline": "Hi"}, "en", "en")
	if !changed {
		t.Fatalf("expected update to apply")
	}
	if updated.Data["headline"] != "Hi" {
		t.Fatalf("expected data write, got %v", updated.Data)
	}
	if updated.Translations != nil {
		t.Fatalf("expected no overlay, got %v", updated.Translations)
	}
}

func TestApplyContentUpdate_OtherLanguageWritesOverlayOnly(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{"headline": "Hello", "body": "World"},
	}

	updated, changed := ApplyContentUpdate(section, map[string]interface{}{"headline": "Bonjour"}, "fr", "en")
	if !changed {
		t.Fatalf("expected update to apply")
	}

	if updated.Data["headline"] != "Hello" {
		t.Fatalf("default data must stay untouched, got %v", updated.Data)
	}

	overlay := updated.Translations["fr"]
	if !reflect.DeepEqual(overlay, map[string]interface{}{"headline": "Bonjour"}) {
		t.Fatalf("expected partial overlay with only the changed key, got %v", overlay)
	}

	merged := DataForLanguage(updated, "fr")
	want := map[string]interface{}{"headline": "Bonjour", "body": "World"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("expected %v, got %v", want, merged)
	}
}

func TestApplyContentUpdate_KeepsOtherOverlays(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{"headline": "Hello"},
		Translations: map[string]map[string]interface{}{
			"de": {"headline": "Hallo"},
		},
	}

	updated, _ := ApplyContentUpdate(section, map[string]interface{}{"headline": "Bonjour"}, "fr", "en")

	if updated.Translations["de"]["headline"] != "Hallo" {
		t.Fatalf("sibling overlay was lost: %v", updated.Translations)
	}
	if section.Translations["fr"] != nil {
		t.Fatalf("original translation set was mutated: %v", section.Translations)
	}
}

func TestRemoveTranslation(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{"headline": "Hello"},
		Translations: map[string]map[string]interface{}{
			"fr": {"headline": "Bonjour"},
			"de": {"headline": "Hallo"},
		},
	}

	updated, ok := RemoveTranslation(section, "fr")
	if !ok {
		t.Fatalf("expected removal to succeed")
	}
	if _, present := updated.Translations["fr"]; present {
		t.Fatalf("fr overlay should be gone")
	}
	if updated.Translations["de"] == nil {
		t.Fatalf("de overlay should survive")
	}

	if _, ok := RemoveTranslation(section, "es"); ok {
		t.Fatalf("expected removal of absent overlay to be a no-op")
	}
}
