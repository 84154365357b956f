package main

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebnyberg/cropbox/config"
	"github.com/sebnyberg/cropbox/encode"
	"github.com/sebnyberg/cropbox/geom"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var discardLogger = slog.New(slog.DiscardHandler)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("5, 30.5")
	require.NoError(t, err)
	require.Equal(t, geom.Pt(5, 30.5), p)

	for _, s := range []string{"", "5", "a,1", "1,b"} {
		_, err := parsePoint(s)
		require.Error(t, err, s)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			src.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 0xff})
		}
	}
	in := filepath.Join(dir, "in.png")
	b, err := encode.Bytes(src, encode.PNG)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, b, 0644))

	out := filepath.Join(dir, "out.bmp")
	preview := filepath.Join(dir, "preview.png")
	err = run(opts{
		in:       in,
		out:      out,
		from:     "55,30",
		to:       "5,5",
		maxWidth: 100,
		preview:  preview,
	}, config.Default(), discardLogger)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	// display is 100x50, so the drag maps to native (10,10)-(110,60)
	require.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())
	require.Equal(t, color.RGBAModel.Convert(src.At(10, 10)), color.RGBAModel.Convert(img.At(0, 0)))

	_, err = os.Stat(preview)
	require.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	require.Error(t, run(opts{from: "0,0", to: "1,1"}, cfg, discardLogger))
	require.Error(t, run(opts{in: "x.png", from: "0,0"}, cfg, discardLogger))
	require.ErrorIs(t, run(opts{in: "x.png", from: "0,0", to: "1,1", format: "heic"}, cfg, discardLogger), encode.ErrUnsupportedFormat)
	require.ErrorIs(t, run(opts{in: filepath.Join(t.TempDir(), "missing.png"), from: "0,0", to: "1,1"}, cfg, discardLogger), os.ErrNotExist)
}
