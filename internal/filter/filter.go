// Package filter implements the category selection state of one dashboard
// instance and the visible subset of the catalog derived from it.
package filter

import (
	"github.com/studioutils/studioutils/internal/catalog"
)

// Observer is notified of every selection attempt. accepted is false when
// the id was rejected and the state left unchanged.
type Observer func(requested string, accepted bool)

// Controller holds the currently selected category. A Controller belongs to
// exactly one dashboard instance and is not safe for concurrent mutation;
// independent dashboards each create their own.
type Controller struct {
	reg      *catalog.Registry
	selected catalog.Category
	observe  Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers a callback for selection attempts.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observe = fn
	}
}

// New returns a controller over reg with the all category selected.
func New(reg *catalog.Registry, opts ...Option) *Controller {
	c := &Controller{reg: reg, selected: catalog.All}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Select transitions to the category with the given id. Unknown ids are
// rejected: the state is left unchanged and Select returns false.
// Selecting the current category is a no-op.
func (c *Controller) Select(id string) bool {
	cat, ok := catalog.ParseCategory(id)
	if ok {
		c.selected = cat
	}
	if c.observe != nil {
		c.observe(id, ok)
	}
	return ok
}

// Selected returns the current category.
func (c *Controller) Selected() catalog.Category { return c.selected }

// Visible returns the full catalog when all is selected, otherwise the tools
// in the selected category, in catalog order.
func (c *Controller) Visible() []catalog.Tool {
	return c.reg.InCategory(c.selected)
}

// Empty reports whether the visible set is empty. Renderers show an
// empty-state message in that case; it is not an error.
func (c *Controller) Empty() bool {
	return len(c.Visible()) == 0
}

// Heading returns the display name of the selected category.
func (c *Controller) Heading() string {
	info, ok := catalog.CategoryByID(c.selected)
	if !ok {
		return string(c.selected)
	}
	return info.Name
}
