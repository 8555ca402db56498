package editor

import "testing"

func TestSelection_Transitions(t *testing.T) {
	sel := NewSelection()

	if node := sel.Node(); node.Kind != SelectionNone {
		t.Fatalf("expected empty initial selection, got %+v", node)
	}

	sel.SelectSection("s1")
	if node := sel.Node(); node.Kind != SelectionSection || node.SectionID != "s1" {
		t.Fatalf("unexpected node after section select: %+v", node)
	}

	sel.SelectField("s1", "cards")
	sel.SelectItem("s1", "cards", "i1")
	if node := sel.Node(); node.Kind != SelectionItem || node.ItemID != "i1" {
		t.Fatalf("unexpected node after item select: %+v", node)
	}

	sel.Clear()
	if node := sel.Node(); node.Kind != SelectionNone {
		t.Fatalf("expected cleared selection, got %+v", node)
	}
}

func TestSelection_ItemRemovedFallsBackToField(t *testing.T) {
	sel := NewSelection()
	sel.SelectItem("s1", "cards", "i1")

	sel.ItemRemoved("s1", "cards", "i2")
	if node := sel.Node(); node.Kind != SelectionItem {
		t.Fatalf("removal of a different item must not move selection: %+v", node)
	}

	sel.ItemRemoved("s1", "cards", "i1")
	node := sel.Node()
	if node.Kind != SelectionField || node.FieldKey != "cards" {
		t.Fatalf("expected field-selected on owning repeater, got %+v", node)
	}
}

func TestSelection_FormFieldRemovedFallsBackToField(t *testing.T) {
	sel := NewSelection()
	sel.SelectFormField("s1", "form.fields", "f1")

	sel.ItemRemoved("s1", "form.fields", "f1")
	node := sel.Node()
	if node.Kind != SelectionField || node.FieldKey != "form.fields" {
		t.Fatalf("expected fallback to form repeater, got %+v", node)
	}
}

func TestSelection_FieldAndSectionRemoval(t *testing.T) {
	sel := NewSelection()
	sel.SelectField("s1", "headline")

	sel.FieldRemoved("s1", "headline")
	if node := sel.Node(); node.Kind != SelectionSection || node.SectionID != "s1" {
		t.Fatalf("expected section-selected, got %+v", node)
	}

	sel.SectionRemoved("s2")
	if node := sel.Node(); node.Kind != SelectionSection {
		t.Fatalf("removal of another section must not move selection: %+v", node)
	}

	sel.SectionRemoved("s1")
	if node := sel.Node(); node.Kind != SelectionNone {
		t.Fatalf("expected empty selection, got %+v", node)
	}
}
