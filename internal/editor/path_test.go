package editor

import (
	"reflect"
	"testing"
)

func TestSetNestedValue_RoundTrip(t *testing.T) {
	cases := []struct {
		path  string
		value interface{}
	}{
		{"headline", "Hello"},
		{"media.src", "/img/a.png"},
		{"media.type", "video"},
		{"form.fields.1.label", "Email"},
	}

	obj := map[string]interface{}{
		"headline": "Old",
		"media":    map[string]interface{}{"src": "", "type": "image"},
		"form": map[string]interface{}{
			"fields": []interface{}{
				map[string]interface{}{"label": "Name"},
				map[string]interface{}{"label": "Phone"},
			},
		},
	}

	for _, tc := range cases {
		updated, changed := SetNestedValue(obj, tc.path, tc.value)
		if !changed {
			t.Fatalf("expected %s to be written", tc.path)
		}
		got, ok := GetNestedValue(updated, tc.path)
		if !ok {
			t.Fatalf("expected %s to resolve after write", tc.path)
		}
		if !reflect.DeepEqual(got, tc.value) {
			t.Fatalf("round trip for %s: got %v, want %v", tc.path, got, tc.value)
		}
	}
}

func TestSetNestedValue_DoesNotMutateOriginal(t *testing.T) {
	obj := map[string]interface{}{
		"media":  map[string]interface{}{"src": "a.png"},
		"footer": map[string]interface{}{"text": "untouched"},
	}

	updated, changed := SetNestedValue(obj, "media.src", "b.png")
	if !changed {
		t.Fatalf("expected write to happen")
	}

	if got, _ := GetNestedValue(obj, "media.src"); got != "a.png" {
		t.Fatalf("original was mutated: media.src = %v", got)
	}
	if got, _ := GetNestedValue(updated, "media.src"); got != "b.png" {
		t.Fatalf("updated copy missing new value: media.src = %v", got)
	}
}

func TestSetNestedValue_SharesSiblingSubtrees(t *testing.T) {
	footer := map[string]interface{}{"text": "shared"}
	obj := map[string]interface{}{
		"media":  map[string]interface{}{"src": "a.png"},
		"footer": footer,
	}

	updated, _ := SetNestedValue(obj, "media.src", "b.png")

	got, ok := updated["footer"].(map[string]interface{})
	if !ok {
		t.Fatalf("footer missing from updated object")
	}
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(footer).Pointer() {
		t.Fatalf("sibling subtree was copied instead of shared")
	}
}

func TestSetNestedValue_CreatesMissingObjects(t *testing.T) {
	updated, changed := SetNestedValue(map[string]interface{}{}, "media.src", "a.png")
	if !changed {
		t.Fatalf("expected write into created intermediate")
	}
	if got, _ := GetNestedValue(updated, "media.src"); got != "a.png" {
		t.Fatalf("expected created nested object, got %v", updated)
	}
}

func TestSetNestedValue_PathThroughScalarIsNoOp(t *testing.T) {
	obj := map[string]interface{}{"headline": "plain string"}

	updated, changed := SetNestedValue(obj, "headline.nested", "x")
	if changed {
		t.Fatalf("expected write through scalar to be a no-op")
	}
	if !reflect.DeepEqual(updated, obj) {
		t.Fatalf("no-op write altered the object: %v", updated)
	}
}

func TestSetNestedValue_ArrayIndexOutOfRangeIsNoOp(t *testing.T) {
	obj := map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"label": "one"}},
	}

	if _, changed := SetNestedValue(obj, "items.5.label", "x"); changed {
		t.Fatalf("expected out-of-range index to be a no-op")
	}
}

func TestGetNestedValue_MissingIntermediate(t *testing.T) {
	obj := map[string]interface{}{"media": map[string]interface{}{"src": "a.png"}}

	if _, ok := GetNestedValue(obj, "media.missing.deep"); ok {
		t.Fatalf("expected miss for path through absent key")
	}
	if _, ok := GetNestedValue(obj, "media.src.deeper"); ok {
		t.Fatalf("expected miss for path through scalar")
	}
	if _, ok := GetNestedValue(nil, "anything"); ok {
		t.Fatalf("expected miss on nil object")
	}
}
