// Package widgetconf parses the configuration mini-language used by CMS
// editing widgets.
//
// Two independent parsers live here:
//   - Option lists for select style widgets, a `|` delimited list of
//     `value='..' default='..' option='..' help='..'` parts with positional
//     shorthands (`value*` marks the default, `value:label` sets the label).
//   - Toolbar specifications for the rich text widget, a `;` delimited list
//     of button names with `[`/`]` blocks and `-` separators, normalized
//     against the buttons a widget enables or hides.
//
// Both parsers are best effort: malformed fragments are dropped and reported
// to a *slog.Logger rather than returned as errors. ValidateOptions and
// ValidateToolbar provide a strict check for callers that want one.
//
// Example:
//
//	opts := widgetconf.ParseOptions("de:Deutsch*|en:English")
//	for _, o := range opts {
//		fmt.Println(o.Value, o.Label(), o.Default)
//	}
//
//	toolbar := widgetconf.BuildToolbar(widgetconf.ToolbarRequest{
//		Spec:  "[;bold;italic;-;link;unlink;]",
//		Rules: widgetconf.ParseWidgetOptions("link").Rules(),
//	})
//	fmt.Println(widgetconf.FormatToolbar(toolbar))
package widgetconf
