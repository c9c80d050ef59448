package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec2) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestProjectionCorners(t *testing.T) {
	m := Projection(800, 500)
	assertVec(t, mgl32.Vec2{-1, 1}, Apply(m, mgl32.Vec2{0, 0}))
	assertVec(t, mgl32.Vec2{1, -1}, Apply(m, mgl32.Vec2{800, 500}))
	assertVec(t, mgl32.Vec2{0, 0}, Apply(m, mgl32.Vec2{400, 250}))
}

func TestProjectionZeroSize(t *testing.T) {
	assert.Equal(t, mgl32.Ident3(), Projection(0, 100))
}

func TestDefaultParamsIsProjection(t *testing.T) {
	p := DefaultParams()
	assert.True(t, Projection(640, 480).ApproxEqualThreshold(p.Matrix(640, 480), eps))
	assert.True(t, mgl32.Ident3().ApproxEqualThreshold(p.Model(), eps))
}

func TestModelOrder(t *testing.T) {
	p := DefaultParams()
	p.TranslationX = 100
	p.TranslationY = 50
	p.ScaleX = 2
	p.ScaleY = 3
	p.SetAngleDegrees(90)

	// (1,1) scaled to (2,3), rotated 90 degrees to (3,-2), then translated.
	assertVec(t, mgl32.Vec2{103, 48}, Apply(p.Model(), mgl32.Vec2{1, 1}))
}

func TestRotateCounterClockwiseOnScreen(t *testing.T) {
	quarter := float32(math.Pi / 2)
	// y grows downwards, so (0,-1) is above the origin.
	assertVec(t, mgl32.Vec2{0, -1}, Apply(Rotate(quarter), mgl32.Vec2{1, 0}))
	assertVec(t, mgl32.Vec2{1, 0}, Apply(Rotate(quarter), mgl32.Vec2{0, 1}))
	assertVec(t, mgl32.Vec2{1, 0}, Apply(Rotate(-quarter), mgl32.Vec2{0, -1}))
}

func TestTranslateOnlyMovesPoints(t *testing.T) {
	p := DefaultParams()
	p.TranslationX = 10
	p.TranslationY = -4
	assertVec(t, mgl32.Vec2{15, 1}, Apply(p.Model(), mgl32.Vec2{5, 5}))
}

func TestNegativeScaleMirrors(t *testing.T) {
	p := DefaultParams()
	p.ScaleX = -1
	assertVec(t, mgl32.Vec2{-7, 3}, Apply(p.Model(), mgl32.Vec2{7, 3}))
}

func TestAngleDegreesRoundTrip(t *testing.T) {
	var p Params
	for _, deg := range []float64{-360, -45, 0, 30, 180, 360} {
		p.SetAngleDegrees(deg)
		assert.InDelta(t, deg, p.AngleDegrees(), 1e-3)
	}
	p.SetAngleDegrees(180)
	assert.InDelta(t, math.Pi, float64(p.Angle), 1e-6)
}

func TestMatrixComposition(t *testing.T) {
	p := Params{TranslationX: 400, TranslationY: 250, ScaleX: 1, ScaleY: 1}
	// The local origin lands in the middle of the canvas.
	assertVec(t, mgl32.Vec2{0, 0}, Apply(p.Matrix(800, 500), mgl32.Vec2{0, 0}))
}

func TestAccessors(t *testing.T) {
	p := Params{TranslationX: 1, TranslationY: 2, ScaleX: 3, ScaleY: 4}
	assert.Equal(t, mgl32.Vec2{1, 2}, p.Translation())
	assert.Equal(t, mgl32.Vec2{3, 4}, p.Scale())
}
