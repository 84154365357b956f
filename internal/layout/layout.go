// Package layout decides how large an image is shown and renders it at that
// size, the way a browser renders an <img> with max-width: 100%.
package layout

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"

	"github.com/sebnyberg/cropbox/geom"
)

// Fit returns the display size of a nativeW x nativeH image placed in a box
// maxWidth wide. Images are scaled down to fit, never up. A maxWidth <= 0
// means no limit.
func Fit(nativeW, nativeH int, maxWidth float64) (w, h float64) {
	w, h = float64(nativeW), float64(nativeH)
	if maxWidth <= 0 || w <= maxWidth {
		return w, h
	}
	return maxWidth, h * maxWidth / w
}

// Render scales src to the display size.
func Render(src image.Image, w, h float64) *image.RGBA {
	dw := max(1, int(math.Round(w)))
	dh := max(1, int(math.Round(h)))
	return transform.Resize(src, dw, dh, transform.Linear)
}

// Outline draws the border of r, in display space, onto dst.
func Outline(dst *image.RGBA, r geom.Rect, c color.Color) {
	px := r.Pixels().Intersect(dst.Bounds())
	if px.Empty() {
		return
	}
	for x := px.Min.X; x < px.Max.X; x++ {
		dst.Set(x, px.Min.Y, c)
		dst.Set(x, px.Max.Y-1, c)
	}
	for y := px.Min.Y; y < px.Max.Y; y++ {
		dst.Set(px.Min.X, y, c)
		dst.Set(px.Max.X-1, y, c)
	}
}
