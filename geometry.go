package gfx

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
)

type Usage uint16

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (u Usage) gl() uint32 {
	switch u {
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

// Primitive selects how vertices are assembled into triangles.
type Primitive uint8

const (
	Triangles Primitive = iota
	TriangleFan
	TriangleStrip
)

func (p Primitive) gl() uint32 {
	switch p {
	case TriangleFan:
		return gl.TRIANGLE_FAN
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

type VertexFormat uint32

const (
	VertexPosition VertexFormat = 1 << iota
	VertexColor
	VertexTexcoord
	MaxVertexFormat = VertexTexcoord
)

const floatBytes = 4

// AttribElems gives the number of float32 elements for a specific piece of
// vertex data.
func (v VertexFormat) AttribElems() int {
	switch v {
	case VertexColor:
		// RGBA
		return 4
	default:
		return 2
	}
}

// AttribBytes gives the byte size of a specific piece of vertex data.
func (v VertexFormat) AttribBytes() int {
	return v.AttribElems() * floatBytes
}

// Stride gives the stride in bytes for a vertex buffer.
func (v VertexFormat) Stride() int {
	stride := 0
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			stride += i.AttribBytes()
		}
	}
	return stride
}

func (v VertexFormat) Count() int {
	count := 0
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			count++
		}
	}
	return count
}

// Offset gives the byte offset of attr within an interleaved vertex, or -1
// if attr is not part of the format.
func (v VertexFormat) Offset(attr VertexFormat) int {
	if v&attr == 0 {
		return -1
	}
	offs := 0
	for i := VertexFormat(1); i < attr; i <<= 1 {
		if v&i != 0 {
			offs += i.AttribBytes()
		}
	}
	return offs
}

// VertexAttributes maps shader attributes by name to specific vertex data,
// and as a whole a complete VertexFormat for geometry.
type VertexAttributes map[VertexFormat]string

// DefaultVertexAttributes names the attributes the way the demo shaders do.
var DefaultVertexAttributes = VertexAttributes{
	VertexPosition: "a_position",
	VertexColor:    "a_color",
	VertexTexcoord: "a_texcoord",
}

// Format returns a VertexFormat bitmask determined by the mapped attributes.
func (v VertexAttributes) Format() VertexFormat {
	var mask VertexFormat
	for k := range v {
		mask |= k
	}
	return mask
}

// Subset returns the attributes present in vf.
func (v VertexAttributes) Subset(vf VertexFormat) VertexAttributes {
	v2 := make(VertexAttributes, len(v))
	for k, name := range v {
		if vf&k != 0 {
			v2[k] = name
		}
	}
	return v2
}

func (v VertexAttributes) clone() VertexAttributes {
	return v.Subset(v.Format())
}

var ErrBadVertexFormat = errors.New("gfx: bad vertex format")

// VertexBuffer represents interleaved vertices for a VertexFormat set.
type VertexBuffer struct {
	buf    uint32
	count  int
	format VertexFormat
}

func (b *VertexBuffer) bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.buf)
}

func (b *VertexBuffer) Release() {
	if b.buf != 0 {
		gl.DeleteBuffers(1, &b.buf)
		b.buf = 0
	}
}

func (b *VertexBuffer) Count() int {
	return b.count
}

func (b *VertexBuffer) Format() VertexFormat {
	return b.format
}

// SetVertices replaces the buffer contents. len(src) must be a multiple of
// the format stride.
func (b *VertexBuffer) SetVertices(src []byte, usage Usage) error {
	stride := b.format.Stride()
	if stride == 0 || len(src)%stride != 0 {
		return errors.Wrapf(ErrBadVertexFormat, "%d bytes for stride %d", len(src), stride)
	}
	b.bind()
	if len(src) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(src), gl.Ptr(src), usage.gl())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage.gl())
	}
	b.count = len(src) / stride
	return nil
}

type IndexBuffer struct {
	buf   uint32
	count int
}

func (b *IndexBuffer) bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.buf)
}

func (b *IndexBuffer) Release() {
	if b.buf != 0 {
		gl.DeleteBuffers(1, &b.buf)
		b.buf = 0
	}
}

func (b *IndexBuffer) Count() int {
	return b.count
}

func (b *IndexBuffer) SetIndices(src []uint16, usage Usage) error {
	if b.buf == 0 {
		gl.GenBuffers(1, &b.buf)
	}
	b.bind()
	if len(src) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(src), gl.Ptr(src), usage.gl())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, usage.gl())
	}
	b.count = len(src)
	return nil
}

type VertexData interface {
	VertexCount() int
	VertexFormat() VertexFormat
	CopyVertices(dest *VertexBuffer, usage Usage) error
}

type IndexData interface {
	IndexCount() int
	CopyIndices(dest *IndexBuffer, usage Usage) error
}

// Geometry represents a piece of mesh that can be rendered in a single
// draw call. It may or may not contain an index buffer, but always has
// a vertex buffer.
type Geometry struct {
	Primitive Primitive

	usage Usage
	VertexBuffer
	IndexBuffer
}

// NewGeometry copies vertices from src as well as indices if IndexData
// is implemented, into newly allocated buffer objects.
func NewGeometry(src VertexData, usage Usage) (*Geometry, error) {
	geom := &Geometry{usage: usage}
	gl.GenBuffers(1, &geom.VertexBuffer.buf)
	geom.VertexBuffer.format = src.VertexFormat()
	runtime.SetFinalizer(geom, (*Geometry).collect)
	if err := geom.CopyFrom(src); err != nil {
		geom.Release()
		return nil, err
	}
	return geom, nil
}

// Indexed reports whether the last copy carried indices.
func (g *Geometry) Indexed() bool {
	return g.IndexBuffer.count > 0
}

// Release deletes the GL buffers now. It must be called on the GL thread.
func (g *Geometry) Release() {
	runtime.SetFinalizer(g, nil)
	g.VertexBuffer.Release()
	g.IndexBuffer.Release()
}

// collect hands the buffers of an unreachable Geometry to the trash bin.
func (g *Geometry) collect() {
	trashbin.addBuffer(g.VertexBuffer.buf)
	trashbin.addBuffer(g.IndexBuffer.buf)
}

// CopyFrom copies vertices from src as well as indices if IndexData
// is implemented. Indices left from a previous copy are dropped when src
// has none.
func (g *Geometry) CopyFrom(src VertexData) error {
	if src.VertexFormat() != g.VertexBuffer.format {
		return errors.Wrap(ErrBadVertexFormat, "copy into geometry")
	}
	if err := src.CopyVertices(&g.VertexBuffer, g.usage); err != nil {
		return err
	}
	if srcidx, ok := src.(IndexData); ok && srcidx.IndexCount() > 0 {
		return srcidx.CopyIndices(&g.IndexBuffer, g.usage)
	}
	g.IndexBuffer.count = 0
	return nil
}
