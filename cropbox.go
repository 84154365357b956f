// Package cropbox turns a pointer drag over a displayed image into an
// independently encoded crop of that image.
//
// The drag is tracked in display space, mapped to the image's native pixel
// space, normalized, clamped to the image and copied 1:1 into a new raster
// before it is encoded.
package cropbox

import (
	"errors"
	"image"
	"io"

	"github.com/sebnyberg/cropbox/coord"
	"github.com/sebnyberg/cropbox/encode"
	"github.com/sebnyberg/cropbox/extract"
	"github.com/sebnyberg/cropbox/geom"
)

var (
	ErrNotReady          = coord.ErrNotReady
	ErrEmptyRegion       = extract.ErrEmptyRegion
	ErrOutOfBounds       = extract.ErrOutOfBounds
	ErrUnsupportedFormat = encode.ErrUnsupportedFormat

	ErrNoSelection = errors.New("no crop region selected")
)

var _ Cropper = new(ImageCropper)

type Cropper interface {
	// Crop crops the provided region, in native pixels, out of an image and
	// puts the encoded result in the provided writer.
	Crop(r image.Rectangle, to io.Writer) error
}

// ImageCropper crops a decoded image and encodes the result in a fixed
// format.
type ImageCropper struct {
	src    image.Image
	format encode.Format
	opts   []encode.Option
}

func NewImageCropper(src image.Image, f encode.Format, opts ...encode.Option) *ImageCropper {
	return &ImageCropper{src: src, format: f, opts: opts}
}

func (c *ImageCropper) Crop(r image.Rectangle, to io.Writer) error {
	res, err := extract.Extract(c.src, geom.FromRectangle(r))
	if err != nil {
		return err
	}
	return encode.Encode(to, res.Image, c.format, c.opts...)
}
