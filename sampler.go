package gfx

import (
	"image"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"golang.org/x/image/draw"
)

// Sampler is a texture that can be bound to a sampler uniform.
type Sampler interface {
	bind()
	Release()
}

type Sampler2D struct {
	tex           uint32
	width, height int
}

// MaxTextureSize bounds either side of an uploaded image. Larger images are
// scaled down, keeping their aspect ratio.
var MaxTextureSize = 2048

// Image takes an image and returns a 2D Sampler. *image.NRGBA, *image.RGBA,
// *image.Alpha and *image.Gray are uploaded as they are; anything else is
// converted to NRGBA first. No premultiplication or linearization is done.
func Image(img image.Image) (*Sampler2D, error) {
	img = fitImage(img, MaxTextureSize)
	switch img := img.(type) {
	case *image.NRGBA:
		return imageRGBA(img.Pix, img.Stride, img.Rect.Size())
	case *image.RGBA:
		return imageRGBA(img.Pix, img.Stride, img.Rect.Size())
	case *image.Alpha:
		return imageAlpha(img.Pix, img.Stride, img.Rect.Size())
	case *image.Gray:
		return imageAlpha(img.Pix, img.Stride, img.Rect.Size())
	default:
		n := toNRGBA(img)
		return imageRGBA(n.Pix, n.Stride, n.Rect.Size())
	}
}

// toNRGBA copies img into a new NRGBA image with a zero origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// fitImage scales img down so neither side exceeds max.
func fitImage(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return img
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func (s *Sampler2D) Size() (width, height int) {
	return s.width, s.height
}

// Release deletes the texture now. It must be called on the GL thread.
func (s *Sampler2D) Release() {
	runtime.SetFinalizer(s, nil)
	if s.tex != 0 {
		gl.DeleteTextures(1, &s.tex)
		s.tex = 0
	}
}

func (s *Sampler2D) collect() {
	trashbin.addTexture(s.tex)
}

func (s *Sampler2D) bind() {
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
}

func newSampler2D(size image.Point) *Sampler2D {
	s := &Sampler2D{width: size.X, height: size.Y}
	gl.GenTextures(1, &s.tex)
	runtime.SetFinalizer(s, (*Sampler2D).collect)
	s.bind()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return s
}

func imageRGBA(pix []byte, stride int, size image.Point) (*Sampler2D, error) {
	if size.X == 0 || size.Y == 0 {
		return nil, image.ErrFormat
	}
	s := newSampler2D(size)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	return s, nil
}

func imageAlpha(pix []byte, stride int, size image.Point) (*Sampler2D, error) {
	if size.X == 0 || size.Y == 0 {
		return nil, image.ErrFormat
	}
	s := newSampler2D(size)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(stride))
	// GL 2.1 has no single red channel format; luminance spreads the
	// value over rgb.
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.LUMINANCE8, int32(size.X), int32(size.Y), 0, gl.LUMINANCE, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	return s, nil
}
