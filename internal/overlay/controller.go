package overlay

import (
	"context"
	"sync"
)

// Surface is the overlay window
type Surface interface {
	Show()
	Hide()
	Visible() bool
}

// Controller owns the overlay surface lifecycle. The surface is created on
// the first toggle and only hidden afterwards, so its state survives.
type Controller struct {
	mu      sync.Mutex
	create  func() Surface
	surface Surface
}

// NewController creates a controller that builds the surface with create
func NewController(create func() Surface) *Controller {
	return &Controller{create: create}
}

// Toggle shows a new surface, or flips the visibility of the existing one.
// It returns the visibility after the call.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.surface == nil {
		c.surface = c.create()
		c.surface.Show()
		return true
	}
	if c.surface.Visible() {
		c.surface.Hide()
		return false
	}
	c.surface.Show()
	return true
}

// Surface returns the surface, nil before the first toggle
func (c *Controller) Surface() Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface
}

// Run toggles the surface for every toggle message until ctx is done
func (c *Controller) Run(ctx context.Context, msgs <-chan Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if msg.Kind == KindToggleOverlay {
				visible := c.Toggle()
				logger.WithField("visible", visible).Debug("overlay toggled")
			}
		}
	}
}
