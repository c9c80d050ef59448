// Package shapes generates vertex positions for the demo shapes in pixel
// space. Nothing here touches GL.
package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect returns two triangles covering the rectangle at (x, y) with size
// (w, h).
func Rect(x, y, w, h float32) []mgl32.Vec2 {
	x1, y1 := x, y
	x2, y2 := x+w, y+h
	return []mgl32.Vec2{
		{x1, y1},
		{x2, y1},
		{x1, y2},
		{x1, y2},
		{x2, y1},
		{x2, y2},
	}
}

// MinSegments is the fewest triangles a circle is built from.
const MinSegments = 3

// Circle approximates a circle of radius r centred on (cx, cy) with n
// triangles, each joining two neighbouring rim points to the centre. The
// first rim point is straight "up" in a y-up frame, (cx, cy+r), and the
// rim is walked clockwise. The last triangle closes on the first rim point.
func Circle(cx, cy, r float32, n int) []mgl32.Vec2 {
	if n < MinSegments {
		n = MinSegments
	}
	rim := func(k int) mgl32.Vec2 {
		if k == n {
			k = 0
		}
		a := 2 * math.Pi * float64(k) / float64(n)
		return mgl32.Vec2{
			cx + r*float32(math.Sin(a)),
			cy + r*float32(math.Cos(a)),
		}
	}
	centre := mgl32.Vec2{cx, cy}
	positions := make([]mgl32.Vec2, 0, 3*n)
	for k := 0; k < n; k++ {
		positions = append(positions, rim(k), centre, rim(k+1))
	}
	return positions
}

// Corner is a quad vertex with its texture coordinate.
type Corner struct {
	Position mgl32.Vec2
	Texcoord mgl32.Vec2
}

// QuadIndices index the corners returned by Quad as two triangles.
var QuadIndices = []uint16{0, 1, 2, 2, 1, 3}

// Quad returns the four corners of the rectangle at (x, y) with size
// (w, h): top-left, top-right, bottom-left, bottom-right in pixel space.
// The texture's first row maps to the top edge.
func Quad(x, y, w, h float32) [4]Corner {
	return [4]Corner{
		{mgl32.Vec2{x, y}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{x + w, y}, mgl32.Vec2{1, 0}},
		{mgl32.Vec2{x, y + h}, mgl32.Vec2{0, 1}},
		{mgl32.Vec2{x + w, y + h}, mgl32.Vec2{1, 1}},
	}
}

// Bounds returns the axis-aligned box around pts.
func Bounds(pts []mgl32.Vec2) (min, max mgl32.Vec2) {
	if len(pts) == 0 {
		return
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		for i := 0; i < 2; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}
