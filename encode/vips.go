//go:build vips

package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/davidbyttow/govips/v2/vips"
)

func init() {
	vips.LoggingSettings(nil, vips.LogLevelCritical)
	vips.Startup(nil)
	Register(WebP, encodeWebP)
}

// encodeWebP hands the raster to libvips as PNG and exports lossless WebP.
func encodeWebP(w io.Writer, img image.Image, _ *Options) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	ref, err := vips.NewImageFromBuffer(buf.Bytes())
	if err != nil {
		return fmt.Errorf("vips load err, %w", err)
	}
	defer ref.Close()

	params := vips.NewWebpExportParams()
	params.Lossless = true
	params.StripMetadata = true
	b, _, err := ref.ExportWebp(params)
	if err != nil {
		return fmt.Errorf("vips export err, %w", err)
	}
	_, err = w.Write(b)
	return err
}
