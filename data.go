package gfx

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a non-premultiplied RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float32
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Green = Color{0, 1, 0, 1}
)

// ColorFrom converts any color.Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// NRGBA implements color.Color through its 8-bit form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A),
	}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func unit8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
