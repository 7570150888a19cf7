package domain

import catalogdomain "eventdeck/internal/modules/catalog/domain"

// Cursor walks a catalog front to back. 0 <= pos <= Len() always holds.
type Cursor struct {
	catalog catalogdomain.Catalog
	pos     int
}

func NewCursor(catalog catalogdomain.Catalog) Cursor {
	return Cursor{catalog: catalog}
}

// Current returns the event under the cursor, or false once exhausted.
func (c *Cursor) Current() (catalogdomain.Event, bool) {
	return c.catalog.At(c.pos)
}

// Advance moves forward one item. It is a no-op at the end.
func (c *Cursor) Advance() {
	if c.pos < c.catalog.Len() {
		c.pos++
	}
}

func (c *Cursor) Exhausted() bool { return c.pos >= c.catalog.Len() }

func (c *Cursor) Position() int { return c.pos }

func (c *Cursor) Len() int { return c.catalog.Len() }

func (c *Cursor) Remaining() int { return c.catalog.Len() - c.pos }

func (c *Cursor) back() {
	if c.pos > 0 {
		c.pos--
	}
}
