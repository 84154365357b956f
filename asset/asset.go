// Package asset describes a decoded image together with the size it is
// currently displayed at.
package asset

import (
	"errors"
	"fmt"
	"image"
)

var ErrEmptyImage = errors.New("asset: image has no pixels")

// Asset borrows a decoded raster from whoever loaded it. The cropping code
// only ever reads from Source.
type Asset struct {
	NativeWidth  int
	NativeHeight int

	// DisplayWidth and DisplayHeight are zero until the image is laid out.
	DisplayWidth  float64
	DisplayHeight float64

	Source image.Image
}

// New wraps src. The native size is taken from the bounds of src.
func New(src image.Image) (*Asset, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: bounds %v", ErrEmptyImage, b)
	}
	return &Asset{
		NativeWidth:  b.Dx(),
		NativeHeight: b.Dy(),
		Source:       src,
	}, nil
}

// Layout records the rendered size of the image.
func (a *Asset) Layout(width, height float64) {
	a.DisplayWidth = width
	a.DisplayHeight = height
}

// Laid reports whether the asset has a usable display size.
func (a *Asset) Laid() bool {
	return a.DisplayWidth > 0 && a.DisplayHeight > 0
}

func (a *Asset) NativeSize() (int, int) {
	return a.NativeWidth, a.NativeHeight
}

func (a *Asset) DisplaySize() (float64, float64) {
	return a.DisplayWidth, a.DisplayHeight
}

// Bounds returns the native pixel rectangle, always anchored at (0,0).
func (a *Asset) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.NativeWidth, a.NativeHeight)
}
