// Package transform composes the 2D affine transforms used by the demos.
//
// Matrices are homogeneous 3x3, column-major, and multiply column vectors
// on the right, matching what GL expects for a mat3 uniform. Pixel space
// has its origin at the top-left corner of the canvas with y growing down.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Params holds the transform a demo is drawn with. Angle is in radians.
type Params struct {
	TranslationX float32
	TranslationY float32
	Angle        float32
	ScaleX       float32
	ScaleY       float32
}

// DefaultParams returns params that leave a shape where it was built.
func DefaultParams() Params {
	return Params{ScaleX: 1, ScaleY: 1}
}

func (p Params) Translation() mgl32.Vec2 {
	return mgl32.Vec2{p.TranslationX, p.TranslationY}
}

func (p Params) Scale() mgl32.Vec2 {
	return mgl32.Vec2{p.ScaleX, p.ScaleY}
}

// SetAngleDegrees stores deg as radians.
func (p *Params) SetAngleDegrees(deg float64) {
	p.Angle = float32(deg * math.Pi / 180)
}

func (p Params) AngleDegrees() float64 {
	return float64(p.Angle) * 180 / math.Pi
}

// Model returns T·R·S: scale first, then rotation about the local origin,
// then translation.
func (p Params) Model() mgl32.Mat3 {
	return Translate(p.TranslationX, p.TranslationY).
		Mul3(Rotate(p.Angle)).
		Mul3(Scale(p.ScaleX, p.ScaleY))
}

// Matrix returns the full pixel-to-clip transform for a canvas of the
// given size.
func (p Params) Matrix(width, height float32) mgl32.Mat3 {
	return Projection(width, height).Mul3(p.Model())
}

// Projection maps pixel space onto clip space: x in [0,width] goes to
// [-1,1] and y in [0,height] goes to [1,-1].
func Projection(width, height float32) mgl32.Mat3 {
	if width == 0 || height == 0 {
		return mgl32.Ident3()
	}
	return mgl32.Mat3{
		2 / width, 0, 0,
		0, -2 / height, 0,
		-1, 1, 1,
	}
}

func Translate(tx, ty float32) mgl32.Mat3 {
	return mgl32.Translate2D(tx, ty)
}

// Rotate turns points counter-clockwise on screen, where y grows
// downwards: (1,0) goes to (0,-1) for a quarter turn.
func Rotate(radians float32) mgl32.Mat3 {
	return mgl32.HomogRotate2D(-radians)
}

func Scale(sx, sy float32) mgl32.Mat3 {
	return mgl32.Scale2D(sx, sy)
}

// Apply transforms the point v by m.
func Apply(m mgl32.Mat3, v mgl32.Vec2) mgl32.Vec2 {
	r := m.Mul3x1(mgl32.Vec3{v[0], v[1], 1})
	return mgl32.Vec2{r[0], r[1]}
}
