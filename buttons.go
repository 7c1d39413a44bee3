package widgetconf

import (
	"sort"
	"strings"
)

// Button names with special visibility rules.
const (
	ButtonLink         = "link"
	ButtonEditorLink   = "editor-link"
	ButtonAnchor       = "anchor"
	ButtonUnlink       = "unlink"
	ButtonImage        = "image"
	ButtonImageGallery = "image-gallery"
	ButtonStyle        = "style"
)

// ButtonSet is a set of button names.
type ButtonSet map[string]struct{}

// NewButtonSet returns a set holding names.
func NewButtonSet(names ...string) ButtonSet {
	set := make(ButtonSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts name, ignoring surrounding whitespace and empty names.
func (s ButtonSet) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether name is in the set. A nil set is empty.
func (s ButtonSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the sorted members of the set.
func (s ButtonSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VisibilityRules decide which buttons of a toolbar are shown.
type VisibilityRules struct {
	// Additional holds buttons explicitly enabled by the widget.
	Additional ButtonSet
	// Hidden holds buttons explicitly disabled. Hidden wins over Additional.
	Hidden ButtonSet
	// StylesXMLPath and StylesFormatPath locate style definitions; the
	// style button needs one of them.
	StylesXMLPath    string
	StylesFormatPath string
}

// HasStyles reports whether a styles source is configured.
func (r VisibilityRules) HasStyles() bool {
	return strings.TrimSpace(r.StylesXMLPath) != "" || strings.TrimSpace(r.StylesFormatPath) != ""
}

// Shows reports whether the button name is displayed under r. Unknown
// buttons are treated as always visible.
func (r VisibilityRules) Shows(name string) bool {
	if r.Hidden.Has(name) {
		return false
	}
	info, ok := builtinButtons[name]
	if !ok || !info.optional {
		return true
	}
	if info.gate != nil {
		return info.gate(r)
	}
	return r.Additional.Has(name)
}

type buttonInfo struct {
	optional bool
	gate     func(VisibilityRules) bool
}

var (
	buttonAlways   = buttonInfo{}
	buttonOptional = buttonInfo{optional: true}
)

var builtinButtons = map[string]buttonInfo{
	"undo":           buttonAlways,
	"redo":           buttonAlways,
	"cut":            buttonAlways,
	"copy":           buttonAlways,
	"paste":          buttonAlways,
	"paste-text":     buttonAlways,
	"select-all":     buttonAlways,
	"remove-format":  buttonAlways,
	"bold":           buttonAlways,
	"italic":         buttonAlways,
	"underline":      buttonAlways,
	"strikethrough":  buttonAlways,
	"subscript":      buttonAlways,
	"superscript":    buttonAlways,
	"align-left":     buttonAlways,
	"align-center":   buttonAlways,
	"align-right":    buttonAlways,
	"justify":        buttonAlways,
	"ordered-list":   buttonAlways,
	"unordered-list": buttonAlways,
	"outdent":        buttonAlways,
	"indent":         buttonAlways,
	"special-char":   buttonAlways,
	"print":          buttonAlways,
	"spellcheck":     buttonAlways,
	"fullscreen":     buttonAlways,

	ButtonAnchor:       buttonOptional,
	ButtonEditorLink:   buttonOptional,
	ButtonLink:         buttonOptional,
	ButtonImage:        buttonOptional,
	"download-gallery": buttonOptional,
	"link-gallery":     buttonOptional,
	"html-gallery":     buttonOptional,
	"table-gallery":    buttonOptional,
	"table":            buttonOptional,
	"source":           buttonOptional,
	"find":             buttonOptional,
	"replace":          buttonOptional,
	"format-select":    buttonOptional,
	"font-select":      buttonOptional,
	"font-size-select": buttonOptional,
	"text-color":       buttonOptional,
	"background-color": buttonOptional,
	"horizontal-rule":  buttonOptional,

	ButtonImageGallery: {optional: true, gate: func(r VisibilityRules) bool {
		return r.Additional.Has(ButtonImageGallery) || r.Additional.Has(ButtonImage)
	}},
	ButtonUnlink: {optional: true, gate: func(r VisibilityRules) bool {
		return r.Additional.Has(ButtonLink) || r.Additional.Has(ButtonEditorLink) || r.Additional.Has(ButtonAnchor)
	}},
	ButtonStyle: {optional: true, gate: VisibilityRules.HasStyles},
}

// AvailableButtons returns the names of all known buttons.
func AvailableButtons() []string {
	names := make([]string, 0, len(builtinButtons))
	for name := range builtinButtons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OptionalButtons returns the names of buttons shown only when enabled.
func OptionalButtons() []string {
	var names []string
	for name, info := range builtinButtons {
		if info.optional {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// IsKnownButton reports whether name is a known button.
func IsKnownButton(name string) bool {
	_, ok := builtinButtons[name]
	return ok
}

// IsOptionalButton reports whether name is only shown when enabled.
func IsOptionalButton(name string) bool {
	return builtinButtons[name].optional
}

const defaultToolbarSpec = "[;undo;redo;-;find;replace;-;select-all;remove-format;-;cut;copy;paste;-;" +
	"bold;italic;underline;strikethrough;-;subscript;superscript;];" +
	"[;align-left;align-center;align-right;justify;-;ordered-list;unordered-list;-;outdent;indent;];" +
	"[;source;-;format-select;style;-;editor-link;link;anchor;unlink;];" +
	"[;image-gallery;download-gallery;link-gallery;html-gallery;table-gallery;-;table;-;" +
	"special-char;-;print;spellcheck;-;fullscreen;];"

// DefaultToolbar returns the built-in raw toolbar used when neither the
// widget nor the system-wide defaults provide one.
func DefaultToolbar() []ToolbarToken {
	return SplitToolbar(defaultToolbarSpec)
}
