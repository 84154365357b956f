package layout

import (
	"image"
	"image/color"
	"testing"

	"github.com/sebnyberg/cropbox/geom"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	for _, tc := range []struct {
		nw, nh int
		max    float64
		wantW  float64
		wantH  float64
	}{
		{200, 100, 800, 200, 100},
		{1600, 900, 800, 800, 450},
		{1600, 900, 0, 1600, 900},
		{1000, 1000, 250, 250, 250},
	} {
		w, h := Fit(tc.nw, tc.nh, tc.max)
		require.Equal(t, tc.wantW, w)
		require.Equal(t, tc.wantH, h)
	}
}

func TestRender(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := Render(src, 40, 20)
	require.Equal(t, image.Rect(0, 0, 40, 20), out.Bounds())

	out = Render(src, 0.2, 0.2)
	require.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())
}

func TestOutline(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{0xff, 0, 0, 0xff}
	Outline(dst, geom.Rect{Left: 2, Top: 2, Width: 4, Height: 3}, red)
	require.Equal(t, red, dst.RGBAAt(2, 2))
	require.Equal(t, red, dst.RGBAAt(5, 4))
	require.Equal(t, color.RGBA{}, dst.RGBAAt(3, 3))
	require.Equal(t, color.RGBA{}, dst.RGBAAt(6, 2))

	// partly outside, clipped to dst
	Outline(dst, geom.Rect{Left: 8, Top: 8, Width: 5, Height: 5}, red)
	require.Equal(t, red, dst.RGBAAt(9, 9))
}
