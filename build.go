package widgetconf

import (
	"log/slog"
	"strings"
)

// DefaultsSource provides the system-wide widget configuration string of a
// widget class.
type DefaultsSource interface {
	WidgetConfiguration(class string) (string, bool)
}

// ToolbarRequest configures BuildToolbar.
type ToolbarRequest struct {
	// Spec is the widget's own toolbar specification. It wins when non-empty.
	Spec string
	// Class names the widget class whose system-wide default applies.
	Class string
	// Defaults provides system-wide widget configurations. Nil skips them.
	Defaults DefaultsSource
	// Cache holds computed system-wide toolbars. Nil uses the process-wide
	// cache, which is keyed by class only: the first Defaults to compute a
	// class wins for the life of the process. Callers reading more than one
	// defaults source pass a ToolbarCache per source.
	Cache *ToolbarCache
	// Fallback replaces DefaultToolbar as the last resort when non-nil.
	Fallback []ToolbarToken
	Rules    VisibilityRules
	// Wrap encloses the result in a single block unless already bracketed.
	Wrap    bool
	Options []ParseOption
}

// ResolveToolbar returns the raw toolbar for req: the individual spec, then
// the cached or freshly computed system-wide default, then the fallback.
func ResolveToolbar(req ToolbarRequest) []ToolbarToken {
	if strings.TrimSpace(req.Spec) != "" {
		return SplitToolbar(req.Spec)
	}
	if req.Defaults != nil {
		cache := req.Cache
		if cache == nil {
			cache = &defaultToolbarCache
		}
		tokens, ok := cache.Load(req.Class, func() ([]ToolbarToken, bool) {
			return systemToolbar(req.Defaults, req.Class, req.Options)
		})
		if ok {
			return tokens
		}
	}
	if req.Fallback != nil {
		return cloneTokens(req.Fallback)
	}
	return DefaultToolbar()
}

func systemToolbar(src DefaultsSource, class string, opts []ParseOption) ([]ToolbarToken, bool) {
	conf, ok := src.WidgetConfiguration(class)
	if !ok {
		return nil, false
	}
	tokens := SplitToolbar(ParseWidgetOptions(conf, opts...).ButtonBar)
	if len(tokens) == 0 {
		return nil, false
	}
	cfg := newParseConfig(opts)
	cfg.logger.Debug("widgetconf: system default toolbar loaded",
		slog.String("class", class),
		slog.Int("tokens", len(tokens)),
	)
	return tokens, true
}

// BuildToolbar resolves the raw toolbar for req and normalizes it against
// req.Rules.
func BuildToolbar(req ToolbarRequest) []ToolbarToken {
	tokens := NormalizeToolbar(ResolveToolbar(req), req.Rules)
	if req.Wrap {
		tokens = WrapToolbar(tokens)
	}
	return tokens
}
