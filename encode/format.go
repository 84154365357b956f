package encode

import (
	"fmt"
	"strings"
)

// Format is a transportable raster encoding.
type Format int32

const (
	None Format = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF

	// BMPZstd is an uncompressed BMP stored in seekable zstd frames.
	BMPZstd

	// WebP is only available when built with the vips tag.
	WebP
)

var formatNames = map[Format]string{
	None:    "none",
	PNG:     "png",
	JPEG:    "jpeg",
	GIF:     "gif",
	BMP:     "bmp",
	TIFF:    "tiff",
	BMPZstd: "bmp.zst",
	WebP:    "webp",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

func (f Format) MIME() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	case BMPZstd:
		return "application/zstd"
	case WebP:
		return "image/webp"
	}
	return "application/octet-stream"
}

// Ext returns the file name extension, including the leading dot.
func (f Format) Ext() string {
	switch f {
	case None:
		return ""
	case JPEG:
		return ".jpg"
	}
	return "." + f.String()
}

// ParseFormat accepts a format name, a file extension with or without the
// leading dot, or a full file name.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return None, fmt.Errorf("%w: empty format", ErrUnsupportedFormat)
	}
	s = strings.TrimPrefix(strings.ToLower(s), "image/")
	if s == "zst" || strings.HasSuffix(s, ".zst") {
		return BMPZstd, nil
	}
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	switch s {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("%w: %q not recognized", ErrUnsupportedFormat, s)
}
