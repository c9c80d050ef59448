package shapes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	got := Rect(10, 20, 30, 40)
	want := []mgl32.Vec2{
		{10, 20}, {40, 20}, {10, 60},
		{10, 60}, {40, 20}, {40, 60},
	}
	assert.Equal(t, want, got)
}

func TestCircleTriangles(t *testing.T) {
	const n = 25
	pts := Circle(0, 0, 50, n)
	require.Len(t, pts, 3*n)

	for k := 0; k < n; k++ {
		a, c, b := pts[3*k], pts[3*k+1], pts[3*k+2]
		assert.Equal(t, mgl32.Vec2{0, 0}, c, "triangle %d centre", k)
		assert.InDelta(t, 50, a.Len(), 1e-3, "triangle %d rim", k)
		assert.InDelta(t, 50, b.Len(), 1e-3, "triangle %d rim", k)
		if k+1 < n {
			// Neighbouring triangles share a rim point.
			assert.Equal(t, b, pts[3*(k+1)])
		}
	}
	assert.Equal(t, mgl32.Vec2{0, 50}, pts[0])
	assert.Equal(t, pts[0], pts[len(pts)-1], "rim closes")
}

func TestCircleCentreOffset(t *testing.T) {
	pts := Circle(100, 200, 10, 4)
	require.Len(t, pts, 12)
	assert.True(t, mgl32.Vec2{100, 210}.ApproxEqualThreshold(pts[0], 1e-4))
	assert.True(t, mgl32.Vec2{110, 200}.ApproxEqualThreshold(pts[2], 1e-4))
	assert.Equal(t, mgl32.Vec2{100, 200}, pts[1])
}

func TestCircleClampsSegments(t *testing.T) {
	assert.Len(t, Circle(0, 0, 1, 0), 3*MinSegments)
	assert.Len(t, Circle(0, 0, 1, -5), 3*MinSegments)
}

func TestCircleArea(t *testing.T) {
	// The polygon area approaches pi r^2 as segments grow.
	pts := Circle(0, 0, 1, 256)
	var area float64
	for i := 0; i < len(pts); i += 3 {
		a, b := pts[i], pts[i+2]
		area += math.Abs(float64(a[0]*b[1]-a[1]*b[0])) / 2
	}
	assert.InDelta(t, math.Pi, area, 1e-3)
}

func TestQuad(t *testing.T) {
	q := Quad(-50, -50, 100, 100)
	assert.Equal(t, mgl32.Vec2{-50, -50}, q[0].Position)
	assert.Equal(t, mgl32.Vec2{50, 50}, q[3].Position)
	assert.Equal(t, mgl32.Vec2{0, 0}, q[0].Texcoord)
	assert.Equal(t, mgl32.Vec2{1, 0}, q[1].Texcoord)
	assert.Equal(t, mgl32.Vec2{0, 1}, q[2].Texcoord)
	assert.Equal(t, mgl32.Vec2{1, 1}, q[3].Texcoord)
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 3}, QuadIndices)
}

func TestBounds(t *testing.T) {
	min, max := Bounds(Rect(5, 6, 7, 8))
	assert.Equal(t, mgl32.Vec2{5, 6}, min)
	assert.Equal(t, mgl32.Vec2{12, 14}, max)

	min, max = Bounds(nil)
	assert.Equal(t, mgl32.Vec2{}, min)
	assert.Equal(t, mgl32.Vec2{}, max)
}

func TestRandomInt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := RandomInt(rng, 2, 5)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "both ends are reachable")
	assert.Equal(t, 7, RandomInt(rng, 7, 3))
}

func TestRandomRectInsideCanvas(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		x, y, w, h := RandomRect(rng, 800, 500)
		assert.GreaterOrEqual(t, x, float32(0))
		assert.GreaterOrEqual(t, y, float32(0))
		assert.LessOrEqual(t, x+w, float32(800))
		assert.LessOrEqual(t, y+h, float32(500))
	}
}

func TestRandomCircleInsideCanvas(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		cx, cy, r := RandomCircle(rng, 800, 500)
		assert.GreaterOrEqual(t, r, float32(1))
		assert.LessOrEqual(t, r, float32(250))
		assert.GreaterOrEqual(t, cx-r, float32(0))
		assert.GreaterOrEqual(t, cy-r, float32(0))
		assert.LessOrEqual(t, cx+r, float32(800))
		assert.LessOrEqual(t, cy+r, float32(500))
	}
}

func TestRandomColorOpaque(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		c := RandomColor(rng)
		assert.Equal(t, float32(1), c.A)
		assert.True(t, c.R >= 0 && c.R < 1)
	}
}
