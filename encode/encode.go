// Package encode serializes extracted rasters into standard image
// encodings, either to a writer, to a byte slice or to a data URI.
package encode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for unknown formats and for formats whose
// encoder is not compiled in.
var ErrUnsupportedFormat = errors.New("unsupported format")

const DefaultJPEGQuality = 90

type Options struct {
	JPEGQuality int
	TIFFDeflate bool
}

type Option func(*Options)

// JPEGQuality sets the JPEG quality, 1-100. Out of range values fall back
// to DefaultJPEGQuality.
func JPEGQuality(q int) Option {
	return func(o *Options) {
		o.JPEGQuality = q
	}
}

// TIFFDeflate turns on deflate compression for TIFF output.
func TIFFDeflate(on bool) Option {
	return func(o *Options) {
		o.TIFFDeflate = on
	}
}

// Func writes img to w.
type Func func(w io.Writer, img image.Image, o *Options) error

var (
	mu       sync.RWMutex
	encoders = map[Format]Func{
		PNG: func(w io.Writer, img image.Image, _ *Options) error {
			return png.Encode(w, img)
		},
		JPEG: func(w io.Writer, img image.Image, o *Options) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: o.JPEGQuality})
		},
		GIF: func(w io.Writer, img image.Image, _ *Options) error {
			return gif.Encode(w, img, nil)
		},
		BMP: func(w io.Writer, img image.Image, _ *Options) error {
			return bmp.Encode(w, img)
		},
		TIFF: func(w io.Writer, img image.Image, o *Options) error {
			opts := &tiff.Options{Compression: tiff.Uncompressed}
			if o.TIFFDeflate {
				opts.Compression = tiff.Deflate
			}
			return tiff.Encode(w, img, opts)
		},
		BMPZstd: encodeBMPZstd,
	}
)

// Register installs or replaces the encoder for f.
func Register(f Format, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	encoders[f] = fn
}

// Supported reports whether f can be encoded in this build.
func Supported(f Format) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := encoders[f]
	return ok
}

func lookup(f Format) (Func, error) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := encoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	return fn, nil
}

// Encode writes img to w in format f. The output only depends on the pixels
// of img, f and opts.
func Encode(w io.Writer, img image.Image, f Format, opts ...Option) error {
	fn, err := lookup(f)
	if err != nil {
		return err
	}
	o := Options{JPEGQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&o)
	}
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		o.JPEGQuality = DefaultJPEGQuality
	}
	if err := fn(w, img, &o); err != nil {
		return fmt.Errorf("encode %v err, %w", f, err)
	}
	return nil
}

func Bytes(img image.Image, f Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI returns img as a base64 data URI, e.g. "data:image/png;base64,...".
func DataURI(img image.Image, f Format, opts ...Option) (string, error) {
	b, err := Bytes(img, f, opts...)
	if err != nil {
		return "", err
	}
	return "data:" + f.MIME() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
