package scenes

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	gfx "github.com/evilkuma/affine2d"
)

// LoadImage decodes a PNG, JPEG, GIF, BMP or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %s", path)
	}
	logger.Debug("texture decoded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Stringer("bounds", img.Bounds()))
	return img, nil
}

// Checkerboard returns a size x size image of cells x cells squares
// alternating between a and b, starting with a in the top-left corner.
func Checkerboard(size, cells int, a, b gfx.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if cells < 1 {
		cells = 1
	}
	ca, cb := a.NRGBA(), b.NRGBA()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := ca
			if (x*cells/size+y*cells/size)%2 == 1 {
				c = cb
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
