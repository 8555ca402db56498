package editor

import (
	"testing"

	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/schema"
)

func repeaterFixture() schema.FieldSchema {
	return schema.FieldSchema{
		Key:  "items",
		Type: schema.FieldRepeater,
		ItemSchema: []schema.FieldSchema{
			{Key: "quote", Type: schema.FieldRichText},
			{Key: "name", Type: schema.FieldText},
		},
		VariantSchemas: map[string][]schema.FieldSchema{
			"compact": {
				{Key: "name", Type: schema.FieldText},
			},
		},
		UseCaseKey: "kind",
		UseCaseSchemas: map[string][]schema.FieldSchema{
			"logos": {
				{Key: "logo", Type: schema.FieldImage},
				{Key: "name", Type: schema.FieldText},
			},
		},
	}
}

func TestResolveItemSchema_UseCaseWinsOverVariant(t *testing.T) {
	field := repeaterFixture()
	data := map[string]interface{}{"kind": "logos"}

	resolved := ResolveItemSchema(field, "compact", data)
	if len(resolved) != 2 || resolved[0].Key != "logo" {
		t.Fatalf("expected use-case schema to win, got %+v", resolved)
	}
}

func TestResolveItemSchema_VariantWinsOverBase(t *testing.T) {
	field := repeaterFixture()
	data := map[string]interface{}{"kind": "quotes"} // no matching use case entry

	resolved := ResolveItemSchema(field, "compact", data)
	if len(resolved) != 1 || resolved[0].Key != "name" {
		t.Fatalf("expected variant schema, got %+v", resolved)
	}
}

func TestResolveItemSchema_FallsBackToBase(t *testing.T) {
	field := repeaterFixture()
	data := map[string]interface{}{"kind": "quotes"}

	resolved := ResolveItemSchema(field, "cards", data)
	if len(resolved) != 2 || resolved[0].Key != "quote" {
		t.Fatalf("expected base item schema, got %+v", resolved)
	}
}

func TestResolveField_ExactMatchOnly(t *testing.T) {
	def := schema.SectionDefinition{
		Type: "hero",
		Schema: []schema.FieldSchema{
			{Key: "headline", Type: schema.FieldText},
			{Key: "media", Type: schema.FieldMedia},
		},
	}

	if _, ok := ResolveField(def, "headline"); !ok {
		t.Fatalf("expected headline to resolve")
	}
	if _, ok := ResolveField(def, "media.src"); ok {
		t.Fatalf("expected dotted sub-path to miss at definition level")
	}
	if _, ok := ResolveField(def, "unknown"); ok {
		t.Fatalf("expected unknown key to miss")
	}
}

func TestRepeaterItemID(t *testing.T) {
	section := models.SectionInstance{
		Data: map[string]interface{}{
			"form": map[string]interface{}{
				"fields": []interface{}{
					map[string]interface{}{"id": "f1", "label": "Name"},
					map[string]interface{}{"label": "Legacy, no id"},
				},
			},
		},
	}

	id, ok := RepeaterItemID(section, "form.fields", 0)
	if !ok || id != "f1" {
		t.Fatalf("expected f1, got %q (ok=%v)", id, ok)
	}
	if _, ok := RepeaterItemID(section, "form.fields", 1); ok {
		t.Fatalf("expected item without id to report absence")
	}
	if _, ok := RepeaterItemID(section, "form.fields", 7); ok {
		t.Fatalf("expected out-of-range index to report absence")
	}
}

func TestItemDisplayLabel_ConventionalKeysInOrder(t *testing.T) {
	item := map[string]interface{}{
		"title": "Card title",
		"name":  "Should lose to title",
	}

	if got := ItemDisplayLabel(item, nil); got != "Card title" {
		t.Fatalf("expected title to win, got %q", got)
	}
}

func TestItemDisplayLabel_SchemaFallback(t *testing.T) {
	itemSchema := []schema.FieldSchema{
		{Key: "icon", Type: schema.FieldImage},
		{Key: "question", Type: schema.FieldText},
	}
	item := map[string]interface{}{
		"icon":     "/icons/a.svg",
		"question": "How does billing work?",
	}

	if got := ItemDisplayLabel(item, itemSchema); got != "How does billing work?" {
		t.Fatalf("expected first text field value, got %q", got)
	}
}

func TestItemDisplayLabel_Placeholder(t *testing.T) {
	item := map[string]interface{}{"title": "   "}

	if got := ItemDisplayLabel(item, nil); got != UntitledLabel {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
