package cropbox

import (
	"io"
	"log/slog"

	"github.com/sebnyberg/cropbox/asset"
	"github.com/sebnyberg/cropbox/coord"
	"github.com/sebnyberg/cropbox/encode"
	"github.com/sebnyberg/cropbox/extract"
	"github.com/sebnyberg/cropbox/geom"
	"github.com/sebnyberg/cropbox/gesture"
)

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithEncodeOptions sets the options used by Encode and DataURI.
func WithEncodeOptions(opts ...encode.Option) Option {
	return func(s *Session) {
		s.encOpts = opts
	}
}

// Session holds one image and the crop being drawn over it. Its methods are
// meant to be called from a single event loop.
//
// Failed crops leave both the drag state and the asset untouched, so the
// caller can have the user redraw the box and try again.
type Session struct {
	asset   *asset.Asset
	drag    *gesture.Controller
	encOpts []encode.Option
	logger  *slog.Logger
}

func NewSession(a *asset.Asset, opts ...Option) *Session {
	s := &Session{asset: a}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.drag = gesture.NewController(s.logger)
	return s
}

func (s *Session) Asset() *asset.Asset {
	return s.asset
}

// Load swaps in a new image and clears any selection.
func (s *Session) Load(a *asset.Asset) {
	s.asset = a
	s.drag.Reset()
}

// Reset clears the selection.
func (s *Session) Reset() {
	s.drag.Reset()
}

// Pointer coordinates are in display space, relative to the top-left corner
// of the rendered image.

func (s *Session) PointerDown(p geom.Point) (geom.SignedRect, bool) {
	return s.drag.PointerDown(p)
}

func (s *Session) PointerMove(p geom.Point) (geom.SignedRect, bool) {
	return s.drag.PointerMove(p)
}

func (s *Session) PointerUp() (geom.SignedRect, bool) {
	return s.drag.PointerUp()
}

func (s *Session) State() gesture.State {
	return s.drag.State()
}

// Overlay returns the rectangle to draw over the image, in display space.
func (s *Session) Overlay() (geom.Rect, bool) {
	return s.drag.Live()
}

// Selection returns the committed crop in display space.
func (s *Session) Selection() (geom.Rect, error) {
	r, ok := s.drag.Committed()
	if !ok {
		return geom.Rect{}, ErrNoSelection
	}
	return geom.Normalize(r), nil
}

// NativeSelection returns the committed crop in native pixel space. It is
// not clamped to the image.
func (s *Session) NativeSelection() (geom.Rect, error) {
	r, ok := s.drag.Committed()
	if !ok {
		return geom.Rect{}, ErrNoSelection
	}
	n, err := coord.RectToNative(r, s.asset)
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.Normalize(n), nil
}

// Crop extracts the committed selection from the image.
func (s *Session) Crop() (*extract.Raster, error) {
	r, err := s.NativeSelection()
	if err != nil {
		return nil, err
	}
	res, err := extract.ExtractAsset(s.asset, r)
	if err != nil {
		s.logger.Debug("crop rejected", "native", r, "error", err)
		return nil, err
	}
	s.logger.Debug("cropped", "native", r, "region", res.Region)
	return res, nil
}

// Encode crops and writes the result to w in format f.
func (s *Session) Encode(w io.Writer, f encode.Format) (*extract.Raster, error) {
	res, err := s.Crop()
	if err != nil {
		return nil, err
	}
	if err := encode.Encode(w, res.Image, f, s.encOpts...); err != nil {
		return nil, err
	}
	return res, nil
}

// DataURI crops and returns the result as a data URI.
func (s *Session) DataURI(f encode.Format) (string, error) {
	res, err := s.Crop()
	if err != nil {
		return "", err
	}
	return encode.DataURI(res.Image, f, s.encOpts...)
}
