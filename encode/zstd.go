package encode

import (
	"bufio"
	"fmt"
	"image"
	"io"

	seekable "github.com/SaveTheRbtz/zstd-seekable-format-go"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
)

// Every write to a seekable writer becomes its own zstd frame, so writes are
// batched into frames of this size.
const zstdFrameSize = 1 << 20

func encodeBMPZstd(w io.Writer, img image.Image, _ *Options) error {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return err
	}
	defer enc.Close()
	sw, err := seekable.NewWriter(w, enc)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(sw, zstdFrameSize)
	if err := bmp.Encode(bw, img); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return sw.Close()
}

// DecodeBMPZstd decodes an image written in the BMPZstd format.
func DecodeBMPZstd(rs io.ReadSeeker) (image.Image, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	r, err := seekable.NewReader(rs, dec)
	if err != nil {
		return nil, fmt.Errorf("read seek table err, %w", err)
	}
	defer r.Close()
	return bmp.Decode(r)
}
