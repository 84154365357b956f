// Package loader decodes image files into assets for the command line tool.
package loader

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/sebnyberg/cropbox/asset"
	"github.com/sebnyberg/cropbox/encode"
)

// Open decodes the image at srcPath. EXIF orientation is applied so that
// native pixels match what a viewer shows. Files ending in .zst are read as
// seekable zstd BMPs.
func Open(srcPath string) (*asset.Asset, error) {
	srcPath = path.Clean(srcPath)
	if strings.HasSuffix(strings.ToLower(srcPath), ".zst") {
		f, err := os.Open(srcPath)
		if err != nil {
			return nil, fmt.Errorf("open file %q err, %w", srcPath, err)
		}
		defer f.Close()
		img, err := encode.DecodeBMPZstd(f)
		if err != nil {
			return nil, fmt.Errorf("decode %q err, %w", srcPath, err)
		}
		return asset.New(img)
	}
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %q err, %w", srcPath, err)
	}
	return asset.New(img)
}
