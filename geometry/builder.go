// Package geometry builds interleaved vertex and index data on the CPU for
// upload into gfx buffers.
package geometry

import (
	"unsafe"

	gfx "github.com/evilkuma/affine2d"
)

type Builder struct {
	VertexBuilder
	IndexBuilder
}

func NewBuilder(vf gfx.VertexFormat) *Builder {
	return &Builder{
		VertexBuilder: *NewVertexBuilder(vf),
	}
}

func (b *Builder) Clear() {
	b.VertexBuilder.Clear()
	b.IndexBuilder.Clear()
}

// Indices appends indices relative to the first vertex not yet referenced
// by an earlier call, so each shape can number its own vertices from zero.
func (b *Builder) Indices(idxs ...uint16) *Builder {
	b.IndexBuilder.Indices(idxs...)
	return b
}

type VertexBuilder struct {
	vf       gfx.VertexFormat
	stride   int
	cur      int
	curvf    gfx.VertexFormat // data that's been set on the current vertex
	lastdata map[gfx.VertexFormat]int
	verts    []byte
}

func NewVertexBuilder(vf gfx.VertexFormat) *VertexBuilder {
	return &VertexBuilder{
		vf:       vf,
		stride:   vf.Stride(),
		lastdata: make(map[gfx.VertexFormat]int, vf.Count()),
	}
}

// Clear resets buffers to zero length.
func (b *VertexBuilder) Clear() {
	b.lastdata = make(map[gfx.VertexFormat]int, len(b.lastdata))
	b.cur = 0
	b.curvf = 0
	b.verts = b.verts[:0]
}

func (b *VertexBuilder) offset(v gfx.VertexFormat) int {
	if b.vf&v == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	return b.vf.Offset(v)
}

func (b *VertexBuilder) next() {
	if len(b.verts) != 0 {
		b.cur += b.stride
	}
	b.curvf = 0
	b.verts = append(b.verts, make([]byte, b.stride)...)
}

// fillVertex fills the rest of the vertex data using the last set data
// from a previous vertex
func (b *VertexBuilder) fillVertex() {
	if len(b.verts) == 0 {
		return
	}
	for i, offs := range b.lastdata {
		if b.curvf&i == 0 {
			data := b.verts[offs : offs+i.AttribBytes()]
			b.set(i, data)
		}
	}
}

func (b *VertexBuilder) set(v gfx.VertexFormat, data []byte) {
	if len(b.verts) == 0 {
		panic("geometry: attribute set before Position")
	}
	b.curvf |= v
	offs := b.cur + b.offset(v)
	b.lastdata[v] = offs
	copy(b.verts[offs:offs+len(data)], data)
}

func (b *VertexBuilder) setf(v gfx.VertexFormat, data ...float32) {
	b.set(v, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4))
}

// Position creates a new vertex and sets the vertex position.
func (b *VertexBuilder) Position(x, y float32) *VertexBuilder {
	b.fillVertex()
	b.next()
	b.setf(gfx.VertexPosition, x, y)
	return b
}

// Color sets the vertex color.
func (b *VertexBuilder) Color(c gfx.Color) *VertexBuilder {
	b.setf(gfx.VertexColor, c.R, c.G, c.B, c.A)
	return b
}

// Texcoord sets the vertex texture coordinate.
func (b *VertexBuilder) Texcoord(u, v float32) *VertexBuilder {
	b.setf(gfx.VertexTexcoord, u, v)
	return b
}

// VertexCount returns the number of vertices available.
func (b *VertexBuilder) VertexCount() int {
	if b.stride == 0 {
		return 0
	}
	return len(b.verts) / b.stride
}

// Vertices returns the interleaved vertex bytes in host order.
func (b *VertexBuilder) Vertices() []byte {
	b.fillVertex()
	return b.verts
}

// Floats returns a float32 view of the vertex data. It aliases the
// builder's storage and is invalidated by the next Position call.
func (b *VertexBuilder) Floats() []float32 {
	verts := b.Vertices()
	if len(verts) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&verts[0])), len(verts)/4)
}

// CopyVertices copies the vertices to dest.
func (b *VertexBuilder) CopyVertices(dest *gfx.VertexBuffer, usage gfx.Usage) error {
	if b.VertexFormat() != dest.Format() {
		return gfx.ErrBadVertexFormat
	}
	return dest.SetVertices(b.Vertices(), usage)
}

func (b *VertexBuilder) VertexFormat() gfx.VertexFormat {
	return b.vf
}

type IndexBuilder struct {
	idxs    []uint16
	nextidx uint16
}

// Indices appends new indices to the buffer that are relative to the maximum index in the buffer.
func (b *IndexBuilder) Indices(idxs ...uint16) *IndexBuilder {
	newnext := b.nextidx
	for _, idx := range idxs {
		idx += b.nextidx
		if idx >= newnext {
			newnext = idx + 1
		}
		b.idxs = append(b.idxs, idx)
	}
	b.nextidx = newnext
	return b
}

// SetIndices copies idxs into a new buffer.
func (b *IndexBuilder) SetIndices(idxs ...uint16) {
	b.nextidx = 0
	b.idxs = make([]uint16, len(idxs))
	copy(b.idxs, idxs)
}

// IndexCount returns the number of indices available.
func (b *IndexBuilder) IndexCount() int {
	return len(b.idxs)
}

func (b *IndexBuilder) IndexSlice() []uint16 {
	return b.idxs
}

// CopyIndices copies the indices to dest.
func (b *IndexBuilder) CopyIndices(dest *gfx.IndexBuffer, usage gfx.Usage) error {
	return dest.SetIndices(b.idxs, usage)
}

// Clear resets buffers to zero length.
func (b *IndexBuilder) Clear() {
	b.idxs = b.idxs[:0]
	b.nextidx = 0
}
