package editor

import (
	"testing"

	"pagecraft-backend/internal/models"
)

func TestUpdateSectionStyle_MergesWithoutMutating(t *testing.T) {
	section := models.SectionInstance{
		Styles: map[string]interface{}{"background": "none", "spacing": "normal"},
	}

	updated, ok := UpdateSectionStyle(section, map[string]interface{}{"background": "tint"})
	if !ok {
		t.Fatalf("expected style update to apply")
	}
	if updated.Styles["background"] != "tint" || updated.Styles["spacing"] != "normal" {
		t.Fatalf("expected key-scoped merge, got %v", updated.Styles)
	}
	if section.Styles["background"] != "none" {
		t.Fatalf("original styles were mutated: %v", section.Styles)
	}
}

func TestUpdateFieldStyle_KeyedByPath(t *testing.T) {
	section := models.SectionInstance{}

	updated, ok := UpdateFieldStyle(section, "media.src", map[string]interface{}{"rounding": "full"})
	if !ok {
		t.Fatalf("expected field style update to apply")
	}
	if updated.FieldStyles["media.src"]["rounding"] != "full" {
		t.Fatalf("expected style under field path, got %v", updated.FieldStyles)
	}

	updated, _ = UpdateFieldStyle(updated, "media.src", map[string]interface{}{"border": "thin"})
	styles := updated.FieldStyles["media.src"]
	if styles["rounding"] != "full" || styles["border"] != "thin" {
		t.Fatalf("expected merge of both keys, got %v", styles)
	}
}

func TestUpdateItemStyle_SharedAcrossItems(t *testing.T) {
	section := models.SectionInstance{}

	updated, ok := UpdateItemStyle(section, "cards", map[string]interface{}{"shadow": "soft"})
	if !ok {
		t.Fatalf("expected item style update to apply")
	}
	if updated.ItemStyles["cards"]["shadow"] != "soft" {
		t.Fatalf("expected shared item style keyed by repeater, got %v", updated.ItemStyles)
	}

	if _, ok := UpdateItemStyle(section, "", map[string]interface{}{"x": 1}); ok {
		t.Fatalf("expected empty field key to be refused")
	}
}
