package model

import "golang.org/x/net/html"

// Cache holds element produced by renderer for a node. Any structural change
// of the owning node marks it dirty and drops the element, so stale element
// is never handed out.
type Cache struct {
	element *html.Node
	dirty   bool
}

// CachedElement returns cached element or nil when node was changed since it
// was cached.
func (c *Cache) CachedElement() *html.Node {
	if c.dirty {
		return nil
	}
	return c.element
}

// SetCachedElement stores element and clears dirty state.
func (c *Cache) SetCachedElement(el *html.Node) {
	c.element, c.dirty = el, false
}

// Touch marks owning node as modified.
func (c *Cache) Touch() {
	c.element, c.dirty = nil, true
}

// Dirty reports whether node was modified after element had been cached (or
// since creation if it never was).
func (c *Cache) Dirty() bool {
	return c.dirty
}
