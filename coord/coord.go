// Package coord maps points and rectangles between display space, where the
// pointer lives, and native pixel space, where extraction happens.
package coord

import (
	"errors"
	"fmt"

	"github.com/sebnyberg/cropbox/geom"
)

// ErrNotReady is returned while the display size is unknown, i.e. the image
// has not been laid out yet.
var ErrNotReady = errors.New("display size not known")

// Space is anything with both a native and a display size.
type Space interface {
	NativeSize() (w, h int)
	DisplaySize() (w, h float64)
}

// Scale returns the native-per-display ratio on each axis.
func Scale(s Space) (sx, sy float64, err error) {
	dw, dh := s.DisplaySize()
	if dw <= 0 || dh <= 0 {
		return 0, 0, fmt.Errorf("%w: display %gx%g", ErrNotReady, dw, dh)
	}
	nw, nh := s.NativeSize()
	return float64(nw) / dw, float64(nh) / dh, nil
}

func ToNative(p geom.Point, s Space) (geom.Point, error) {
	sx, sy, err := Scale(s)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: p.X * sx, Y: p.Y * sy}, nil
}

func ToDisplay(p geom.Point, s Space) (geom.Point, error) {
	sx, sy, err := Scale(s)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: p.X / sx, Y: p.Y / sy}, nil
}

// RectToNative scales both the anchor and the signed extent of r.
func RectToNative(r geom.SignedRect, s Space) (geom.SignedRect, error) {
	sx, sy, err := Scale(s)
	if err != nil {
		return geom.SignedRect{}, err
	}
	return geom.SignedRect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}, nil
}

func RectToDisplay(r geom.SignedRect, s Space) (geom.SignedRect, error) {
	sx, sy, err := Scale(s)
	if err != nil {
		return geom.SignedRect{}, err
	}
	return geom.SignedRect{X: r.X / sx, Y: r.Y / sy, W: r.W / sx, H: r.H / sy}, nil
}
