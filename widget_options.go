package widgetconf

import (
	"log/slog"
	"strings"
)

const (
	widgetOptionDelimiter = ","
	widgetKeyDelimiter    = ':'
	formatDelimiter       = ";"
)

const (
	widgetKeyButtonBar    = "buttonbar"
	widgetKeyHideButtons  = "hidebuttons"
	widgetKeyStylesXML    = "stylesxml"
	widgetKeyStylesFormat = "stylesformat"
	widgetKeyFormatSelect = "formatselect.options"
	widgetKeyCSS          = "css"
	widgetKeyHeight       = "height"
	widgetFlagFullPage    = "fullpage"
)

// WidgetOptions is the parsed configuration string of a rich text widget:
// a ',' delimited list of `key:value` options and bare button names.
type WidgetOptions struct {
	// ButtonBar is the individual toolbar specification (buttonbar:).
	ButtonBar string
	// Hidden lists buttons removed from the toolbar (hidebuttons:a;b).
	Hidden ButtonSet
	// Additional lists buttons enabled by bare names.
	Additional ButtonSet
	// StylesXMLPath (stylesxml:) and StylesFormatPath (stylesformat:)
	// locate style definitions.
	StylesXMLPath    string
	StylesFormatPath string
	// FormatSelect lists the block formats offered (formatselect.options:p;h1).
	FormatSelect []string
	CSSPath      string
	Height       string
	FullPage     bool
}

// ParseWidgetOptions parses a widget configuration string. Unknown
// `key:value` options are dropped and logged.
func ParseWidgetOptions(input string, opts ...ParseOption) WidgetOptions {
	cfg := newParseConfig(opts)
	wo := WidgetOptions{
		Hidden:     NewButtonSet(),
		Additional: NewButtonSet(),
	}
	for _, part := range strings.Split(input, widgetOptionDelimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, string(widgetKeyDelimiter))
		if !hasValue {
			if strings.EqualFold(part, widgetFlagFullPage) {
				wo.FullPage = true
				continue
			}
			wo.Additional.Add(part)
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case widgetKeyButtonBar:
			wo.ButtonBar = value
		case widgetKeyHideButtons:
			for _, name := range strings.Split(value, formatDelimiter) {
				wo.Hidden.Add(name)
			}
		case widgetKeyStylesXML:
			wo.StylesXMLPath = value
		case widgetKeyStylesFormat:
			wo.StylesFormatPath = value
		case widgetKeyFormatSelect:
			wo.FormatSelect = wo.FormatSelect[:0]
			for _, f := range strings.Split(value, formatDelimiter) {
				if f = strings.TrimSpace(f); f != "" {
					wo.FormatSelect = append(wo.FormatSelect, f)
				}
			}
		case widgetKeyCSS:
			wo.CSSPath = value
		case widgetKeyHeight:
			wo.Height = value
		default:
			cfg.logger.Info("widgetconf: widget option ignored",
				slog.String("option", part),
				slog.String("reason", "unknown key"),
			)
		}
	}
	return wo
}

// Rules returns the toolbar visibility rules configured by wo.
func (wo WidgetOptions) Rules() VisibilityRules {
	return VisibilityRules{
		Additional:       wo.Additional,
		Hidden:           wo.Hidden,
		StylesXMLPath:    wo.StylesXMLPath,
		StylesFormatPath: wo.StylesFormatPath,
	}
}

// ToolbarRequest returns a request building the toolbar of a widget of the
// given class configured by wo.
func (wo WidgetOptions) ToolbarRequest(class string, defaults DefaultsSource) ToolbarRequest {
	return ToolbarRequest{
		Spec:     wo.ButtonBar,
		Class:    class,
		Defaults: defaults,
		Rules:    wo.Rules(),
		Wrap:     true,
	}
}

// String returns the canonical configuration string of wo.
func (wo WidgetOptions) String() string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+string(widgetKeyDelimiter)+value)
		}
	}
	add(widgetKeyHeight, wo.Height)
	add(widgetKeyCSS, wo.CSSPath)
	add(widgetKeyStylesXML, wo.StylesXMLPath)
	add(widgetKeyStylesFormat, wo.StylesFormatPath)
	add(widgetKeyFormatSelect, strings.Join(wo.FormatSelect, formatDelimiter))
	if wo.FullPage {
		parts = append(parts, widgetFlagFullPage)
	}
	parts = append(parts, wo.Additional.Names()...)
	add(widgetKeyHideButtons, strings.Join(wo.Hidden.Names(), formatDelimiter))
	add(widgetKeyButtonBar, wo.ButtonBar)
	return strings.Join(parts, widgetOptionDelimiter)
}
