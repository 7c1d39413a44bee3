package widgetconf

import (
	"slices"
	"testing"
)

func TestOptionalButtonsAreKnown(t *testing.T) {
	expected := []string{
		ButtonAnchor,
		ButtonEditorLink,
		ButtonLink,
		ButtonUnlink,
		ButtonImage,
		ButtonImageGallery,
		ButtonStyle,
		"table",
		"source",
		"find",
		"replace",
		"format-select",
	}
	for _, name := range expected {
		if !IsOptionalButton(name) {
			t.Fatalf("expected %q to be optional", name)
		}
	}

	available := AvailableButtons()
	optional := OptionalButtons()
	if !slices.IsSorted(available) || !slices.IsSorted(optional) {
		t.Fatalf("expected sorted button lists")
	}
	for _, name := range optional {
		if !slices.Contains(available, name) {
			t.Fatalf("optional button %q missing from available list", name)
		}
	}
	if IsOptionalButton("bold") || !IsKnownButton("bold") {
		t.Fatalf("bold should be a known, always visible button")
	}
	if IsKnownButton("no-such-button") || IsOptionalButton("no-such-button") {
		t.Fatalf("unknown buttons are neither known nor optional")
	}
}

func TestDefaultToolbarUsesKnownButtons(t *testing.T) {
	if err := ValidateToolbar(defaultToolbarSpec); err != nil {
		t.Fatalf("default toolbar invalid: %v", err)
	}
}

func TestButtonSet(t *testing.T) {
	set := NewButtonSet(" b ", "a", "", "b")
	if !slices.Equal(set.Names(), []string{"a", "b"}) {
		t.Fatalf("unexpected names: %v", set.Names())
	}
	var empty ButtonSet
	if empty.Has("a") {
		t.Fatalf("nil set must be empty")
	}
}

func TestVisibilityRulesHasStyles(t *testing.T) {
	if (VisibilityRules{}).HasStyles() {
		t.Fatalf("expected no styles source")
	}
	if (VisibilityRules{StylesXMLPath: "  "}).HasStyles() {
		t.Fatalf("blank path is not a styles source")
	}
	if !(VisibilityRules{StylesFormatPath: "/f.json"}).HasStyles() {
		t.Fatalf("expected styles source")
	}
}
