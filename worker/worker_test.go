package worker

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/sebnyberg/cropbox/encode"
	"github.com/sebnyberg/cropbox/extract"
	"github.com/sebnyberg/cropbox/geom"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 0xff})
		}
	}
	return img
}

func TestRun(t *testing.T) {
	p := NewPool(2, nil)
	res, err := p.Run(context.Background(), Job{
		Source: testImage(),
		Region: geom.Rect{Left: 10, Top: 5, Width: 20, Height: 10},
		Format: encode.PNG,
	})
	require.NoError(t, err)
	require.Equal(t, 20, res.Raster.Width)
	require.Equal(t, 10, res.Raster.Height)

	img, err := png.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())
	require.Equal(t, color.RGBA{10, 5, 0, 0xff}, color.RGBAModel.Convert(img.At(0, 0)))
}

func TestRunErrors(t *testing.T) {
	p := NewPool(1, nil)
	_, err := p.Run(context.Background(), Job{Source: testImage(), Region: geom.Rect{Width: 0, Height: 3}, Format: encode.PNG})
	require.ErrorIs(t, err, extract.ErrEmptyRegion)

	_, err = p.Run(context.Background(), Job{Source: testImage(), Region: geom.Rect{Width: 3, Height: 3}, Format: encode.None})
	require.ErrorIs(t, err, encode.ErrUnsupportedFormat)
}

func TestCancelledBeforeStart(t *testing.T) {
	p := NewPool(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	p.started = func() { called = true }
	_, err := p.Run(ctx, Job{Source: testImage(), Region: geom.Rect{Width: 3, Height: 3}, Format: encode.PNG})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestCancelledWhileWaiting(t *testing.T) {
	p := NewPool(1, nil)
	require.NoError(t, p.sem.Acquire(context.Background(), 1))
	defer p.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res := <-p.Submit(ctx, Job{Source: testImage(), Region: geom.Rect{Width: 3, Height: 3}, Format: encode.PNG})
	require.ErrorIs(t, res.Err, context.DeadlineExceeded)
	require.Nil(t, res.Raster)
}

func TestNotCancellableOnceStarted(t *testing.T) {
	p := NewPool(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.started = cancel
	res := <-p.Submit(ctx, Job{Source: testImage(), Region: geom.Rect{Width: 3, Height: 3}, Format: encode.BMP})
	require.NoError(t, res.Err)
	require.NotEmpty(t, res.Data)
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestSubmitConcurrent(t *testing.T) {
	p := NewPool(2, nil)
	src := testImage()
	var chans []<-chan Result
	for i := 1; i <= 8; i++ {
		chans = append(chans, p.Submit(context.Background(), Job{
			Source: src,
			Region: geom.Rect{Width: float64(i), Height: float64(i)},
			Format: encode.PNG,
		}))
	}
	for i, ch := range chans {
		res := <-ch
		require.NoError(t, res.Err)
		require.Equal(t, i+1, res.Raster.Width)
	}
}
