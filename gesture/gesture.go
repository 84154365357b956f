// Package gesture turns pointer down/move/up events into a crop rectangle in
// display space.
package gesture

import (
	"log/slog"

	"github.com/sebnyberg/cropbox/geom"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// DragState is replaced as a whole on every transition, never mutated.
type DragState struct {
	Active  bool
	Origin  geom.Point
	Current geom.Point
}

// Rect returns the signed rectangle spanned from Origin to Current.
func (d DragState) Rect() geom.SignedRect {
	return geom.SignedRect{
		X: d.Origin.X,
		Y: d.Origin.Y,
		W: d.Current.X - d.Origin.X,
		H: d.Current.Y - d.Origin.Y,
	}
}

// Controller tracks one drag at a time. Events are expected in order from a
// single event source; it is not safe for concurrent use.
//
// Move and up events that arrive while idle are ignored, as are down events
// that arrive mid-drag.
type Controller struct {
	drag      DragState
	last      geom.SignedRect
	committed bool
	logger    *slog.Logger
}

func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{logger: logger}
}

func (c *Controller) State() State {
	if c.drag.Active {
		return Dragging
	}
	return Idle
}

func (c *Controller) Drag() DragState {
	return c.drag
}

// PointerDown starts a new drag at p. The previous drag and any committed
// rectangle are discarded. ok is false when a drag is already in progress.
func (c *Controller) PointerDown(p geom.Point) (r geom.SignedRect, ok bool) {
	if c.drag.Active {
		c.logger.Debug("pointer down ignored", "state", c.State(), "point", p)
		return c.last, false
	}
	c.drag = DragState{Active: true, Origin: p, Current: p}
	c.last = c.drag.Rect()
	c.committed = false
	return c.last, true
}

func (c *Controller) PointerMove(p geom.Point) (r geom.SignedRect, ok bool) {
	if !c.drag.Active {
		return geom.SignedRect{}, false
	}
	c.drag = DragState{Active: true, Origin: c.drag.Origin, Current: p}
	c.last = c.drag.Rect()
	return c.last, true
}

// PointerUp ends the drag. The last emitted rectangle becomes the committed
// crop candidate.
func (c *Controller) PointerUp() (r geom.SignedRect, ok bool) {
	if !c.drag.Active {
		return geom.SignedRect{}, false
	}
	c.drag = DragState{Active: false, Origin: c.drag.Origin, Current: c.drag.Current}
	c.committed = true
	c.logger.Debug("drag committed", "rect", geom.Normalize(c.last))
	return c.last, true
}

// Committed returns the rectangle of the last completed drag.
func (c *Controller) Committed() (geom.SignedRect, bool) {
	return c.last, c.committed
}

// Live returns the normalized rectangle of the drag in progress, or of the
// last completed drag, for drawing an overlay.
func (c *Controller) Live() (geom.Rect, bool) {
	if !c.drag.Active && !c.committed {
		return geom.Rect{}, false
	}
	return geom.Normalize(c.last), true
}

// Reset forgets everything, e.g. when a new image is loaded.
func (c *Controller) Reset() {
	c.drag = DragState{}
	c.last = geom.SignedRect{}
	c.committed = false
}
