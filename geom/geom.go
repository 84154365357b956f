// Package geom holds the rectangle types shared by the crop pipeline.
//
// A SignedRect is what a drag produces: an anchor plus a signed extent, so
// dragging up or left yields a negative width or height. A Rect is the
// canonical form with a top-left corner and non-negative extent.
package geom

import (
	"fmt"
	"image"
	"math"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// SignedRect is anchored at (X, Y). W and H may be negative.
type SignedRect struct {
	X, Y float64
	W, H float64
}

// Rect is a normalized rectangle. Width and Height are never negative.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Normalize returns the canonical form of r regardless of drag direction.
func Normalize(r SignedRect) Rect {
	return Rect{
		Left:   math.Min(r.X, r.X+r.W),
		Top:    math.Min(r.Y, r.Y+r.H),
		Width:  math.Abs(r.W),
		Height: math.Abs(r.H),
	}
}

// Signed returns r as a SignedRect anchored at its top-left corner.
func (r Rect) Signed() SignedRect {
	return SignedRect{X: r.Left, Y: r.Top, W: r.Width, H: r.Height}
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Empty reports whether r has zero area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Pixels rounds every edge of r to the nearest integer. The extent is
// derived from the rounded edges, not rounded on its own.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Right())),
		int(math.Round(r.Bottom())),
	)
}

// FromRectangle converts an integer rectangle, which is assumed to be
// well-formed, to a Rect.
func FromRectangle(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{left:%g top:%g width:%g height:%g}", r.Left, r.Top, r.Width, r.Height)
}
