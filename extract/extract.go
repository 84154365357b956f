// Package extract copies a rectangular window of a decoded image into a new,
// independent raster.
package extract

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/sebnyberg/cropbox/asset"
	"github.com/sebnyberg/cropbox/geom"
)

var (
	ErrEmptyRegion = errors.New("crop region has zero area")
	ErrOutOfBounds = errors.New("crop region does not overlap the image")
)

// Raster is the result of an extraction. Image is anchored at (0,0), has
// size Width x Height and shares no memory with the source.
type Raster struct {
	Width  int
	Height int
	Image  image.Image

	// Region is the clamped native rectangle the pixels were copied from.
	Region image.Rectangle
}

// ExtractAsset extracts r, given in native pixel space, from the asset's
// source image.
func ExtractAsset(a *asset.Asset, r geom.Rect) (*Raster, error) {
	return Extract(a.Source, r)
}

// Extract copies the part of src covered by r. Coordinates in r are relative
// to the top-left corner of src, whatever its bounds.
//
// r is clamped to the image. A rectangle that sticks out of the image yields
// the part that is inside; one with no overlap at all fails with
// ErrOutOfBounds. No scaling is done.
func Extract(src image.Image, r geom.Rect) (*Raster, error) {
	if r.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}
	region := r.Pixels()
	if region.Empty() {
		return nil, fmt.Errorf("%w: %v rounds to %v", ErrEmptyRegion, r, region)
	}

	b := src.Bounds()
	dim := image.Rect(0, 0, b.Dx(), b.Dy())
	region = dim.Intersect(region)
	if region.Empty() {
		return nil, fmt.Errorf("%w: %v, image is %dx%d", ErrOutOfBounds, r, dim.Dx(), dim.Dy())
	}

	img := copyRegion(src, region.Add(b.Min))
	return &Raster{
		Width:  region.Dx(),
		Height: region.Dy(),
		Image:  img,
		Region: region,
	}, nil
}

// copyRegion copies r, in the coordinates of src, into a zero-anchored image
// of the same type as src when src is one of the standard image types.
func copyRegion(src image.Image, r image.Rectangle) image.Image {
	dim := image.Rect(0, 0, r.Dx(), r.Dy())
	switch s := src.(type) {
	case *image.RGBA:
		dst := image.NewRGBA(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 4*r.Dx(), r.Dy())
		return dst
	case *image.NRGBA:
		dst := image.NewNRGBA(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 4*r.Dx(), r.Dy())
		return dst
	case *image.RGBA64:
		dst := image.NewRGBA64(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 8*r.Dx(), r.Dy())
		return dst
	case *image.NRGBA64:
		dst := image.NewNRGBA64(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 8*r.Dx(), r.Dy())
		return dst
	case *image.Gray:
		dst := image.NewGray(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, r.Dx(), r.Dy())
		return dst
	case *image.Gray16:
		dst := image.NewGray16(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 2*r.Dx(), r.Dy())
		return dst
	case *image.Alpha:
		dst := image.NewAlpha(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, r.Dx(), r.Dy())
		return dst
	case *image.Alpha16:
		dst := image.NewAlpha16(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 2*r.Dx(), r.Dy())
		return dst
	case *image.CMYK:
		dst := image.NewCMYK(dim)
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, 4*r.Dx(), r.Dy())
		return dst
	case *image.Paletted:
		dst := image.NewPaletted(dim, append(color.Palette(nil), s.Palette...))
		copyRows(dst.Pix, dst.Stride, s.Pix[s.PixOffset(r.Min.X, r.Min.Y):], s.Stride, r.Dx(), r.Dy())
		return dst
	}
	dst := image.NewRGBA(dim)
	draw.Draw(dst, dim, src, r.Min, draw.Src)
	return dst
}

func copyRows(dst []byte, dstStride int, src []byte, srcStride int, rowBytes, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstStride:y*dstStride+rowBytes], src[y*srcStride:y*srcStride+rowBytes])
	}
}
