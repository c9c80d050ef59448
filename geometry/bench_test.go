package geometry_test

import (
	"testing"

	gfx "github.com/evilkuma/affine2d"
	"github.com/evilkuma/affine2d/geometry"
)

const builderQuads = 40 * 40

func BenchmarkBuilderTinyVerts(b *testing.B) {
	bdr := geometry.NewBuilder(gfx.VertexPosition)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Position(0, 0)
			bdr.Position(1, 0)
			bdr.Position(0, 1)
			bdr.Position(1, 1)
			bdr.Indices(0, 1, 2, 2, 1, 3)
		}
	}
}

func BenchmarkBuilderFatVerts(b *testing.B) {
	bdr := geometry.NewBuilder(gfx.VertexPosition | gfx.VertexColor |
		gfx.VertexTexcoord)
	c := gfx.Color{R: 0.5, B: 1, A: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Position(0, 0).Color(c).Texcoord(0, 0)
			bdr.Position(1, 0)
			bdr.Position(0, 1)
			bdr.Position(1, 1)
			bdr.Indices(0, 1, 2, 2, 1, 3)
		}
	}
}
