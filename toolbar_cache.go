package widgetconf

import "sync"

// ToolbarCache holds the system-wide default toolbar per widget class.
// Each entry is computed at most once and read-only afterwards; Reset
// discards all entries.
type ToolbarCache struct {
	mu      sync.Mutex
	entries map[string]cachedToolbar
}

type cachedToolbar struct {
	tokens []ToolbarToken
	ok     bool
}

// Load returns the cached toolbar for class, calling compute on first use.
// A negative result of compute is cached as well.
func (c *ToolbarCache) Load(class string, compute func() ([]ToolbarToken, bool)) ([]ToolbarToken, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[class]; ok {
		return cloneTokens(entry.tokens), entry.ok
	}
	tokens, ok := compute()
	if c.entries == nil {
		c.entries = make(map[string]cachedToolbar)
	}
	c.entries[class] = cachedToolbar{tokens: cloneTokens(tokens), ok: ok}
	return cloneTokens(tokens), ok
}

// Cached reports whether an entry for class has been computed.
func (c *ToolbarCache) Cached(class string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[class]
	return ok
}

// Reset drops every cached entry.
func (c *ToolbarCache) Reset() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

var defaultToolbarCache ToolbarCache

// ResetDefaultToolbarCache drops the process-wide default toolbar cache used
// by BuildToolbar when a request carries no cache of its own.
func ResetDefaultToolbarCache() {
	defaultToolbarCache.Reset()
}
