package scenes

import (
	"image"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	gfx "github.com/evilkuma/affine2d"
	"github.com/evilkuma/affine2d/geometry"
	"github.com/evilkuma/affine2d/shapes"
)

var ErrUnknownVariant = errors.New("scenes: unknown variant")

// Options feed the variant builders.
type Options struct {
	// Canvas size in pixels.
	Width, Height int
	// Segments per circle.
	Segments int
	// Shapes in the random variants.
	Count int
	Rand  *rand.Rand
	// Texture for the texture variant; a checkerboard when nil.
	Texture image.Image
}

// DefaultOptions returns the options the demos start with.
func DefaultOptions() Options {
	return Options{
		Width:    800,
		Height:   500,
		Segments: 25,
		Count:    10,
		Rand:     rand.New(rand.NewSource(1)),
	}
}

func (o Options) rng() *rand.Rand {
	if o.Rand == nil {
		return rand.New(rand.NewSource(1))
	}
	return o.Rand
}

// Mesh is the CPU side of a variant, ready for upload.
type Mesh struct {
	*geometry.Builder
	Primitive gfx.Primitive
	Textured  bool
}

type variant struct {
	description string
	build       func(Options) Mesh
}

var variants = map[string]variant{
	"rects": {
		description: "random rectangles, one colour each",
		build:       buildRects,
	},
	"circles": {
		description: "random circles, one colour each",
		build:       buildCircles,
	},
	"circle": {
		description: "a circle at the origin with a random colour per vertex",
		build:       buildCircle,
	},
	"texture": {
		description: "a textured quad centred on the origin",
		build:       buildTexture,
	},
}

// Default is the variant shown when none is chosen.
const Default = "circle"

// Names lists the variants in a stable order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Known(name string) bool {
	_, ok := variants[name]
	return ok
}

func Describe(name string) string {
	return variants[name].description
}

// Build runs the named variant's builder.
func Build(name string, opts Options) (Mesh, error) {
	v, ok := variants[name]
	if !ok {
		return Mesh{}, errors.Wrap(ErrUnknownVariant, name)
	}
	return v.build(opts), nil
}

func colorBuilder() *geometry.Builder {
	return geometry.NewBuilder(gfx.VertexPosition | gfx.VertexColor)
}

func appendSolid(b *geometry.Builder, pts []mgl32.Vec2, c gfx.Color) {
	for _, p := range pts {
		b.Position(p[0], p[1]).Color(c)
	}
}

func buildRects(opts Options) Mesh {
	rng := opts.rng()
	b := colorBuilder()
	for i := 0; i < opts.Count; i++ {
		x, y, w, h := shapes.RandomRect(rng, opts.Width, opts.Height)
		appendSolid(b, shapes.Rect(x, y, w, h), shapes.RandomColor(rng))
	}
	return Mesh{Builder: b}
}

func buildCircles(opts Options) Mesh {
	rng := opts.rng()
	b := colorBuilder()
	for i := 0; i < opts.Count; i++ {
		cx, cy, r := shapes.RandomCircle(rng, opts.Width, opts.Height)
		appendSolid(b, shapes.Circle(cx, cy, r, opts.Segments), shapes.RandomColor(rng))
	}
	return Mesh{Builder: b}
}

// CircleRadius is the radius of the single circle variant.
const CircleRadius = 50

func buildCircle(opts Options) Mesh {
	rng := opts.rng()
	b := colorBuilder()
	for _, p := range shapes.Circle(0, 0, CircleRadius, opts.Segments) {
		b.Position(p[0], p[1]).Color(shapes.RandomColor(rng))
	}
	return Mesh{Builder: b}
}

// QuadSize is the side of the textured quad, centred on the origin.
const QuadSize = 100

func buildTexture(opts Options) Mesh {
	b := geometry.NewBuilder(gfx.VertexPosition | gfx.VertexTexcoord)
	for _, c := range shapes.Quad(-QuadSize/2, -QuadSize/2, QuadSize, QuadSize) {
		b.Position(c.Position[0], c.Position[1]).Texcoord(c.Texcoord[0], c.Texcoord[1])
	}
	b.Indices(shapes.QuadIndices...)
	return Mesh{Builder: b, Textured: true}
}
