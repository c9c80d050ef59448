// Package scenes holds the demo variants: what each one uploads and how it
// is drawn with the current transform.
package scenes

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	gfx "github.com/evilkuma/affine2d"
	"github.com/evilkuma/affine2d/transform"
)

var logger = zap.NewNop()

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("scenes")
}

// Scene is a loaded variant. Its vertex buffer holds the last set of
// vertices uploaded; nothing else is retained between draws.
type Scene struct {
	Name string

	shader     *gfx.Shader
	geom       *gfx.Geometry
	sampler    *gfx.Sampler2D
	ownsShader bool

	Matrix  mgl32.Mat3  `uniform:"u_matrix"`
	Texture gfx.Sampler `uniform:"u_texture"`
}

// Load builds the named variant and uploads it. It needs a current GL
// context. shader is used for untextured variants when non-nil, so several
// scenes can share one program.
func Load(name string, opts Options, shader *gfx.Shader) (*Scene, error) {
	mesh, err := Build(name, opts)
	if err != nil {
		return nil, err
	}
	s := &Scene{Name: name}
	switch {
	case mesh.Textured:
		s.shader, err = TextureShader()
		s.ownsShader = true
	case shader != nil:
		s.shader = shader
	default:
		s.shader, err = ColorShader()
		s.ownsShader = true
	}
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", name)
	}

	s.geom, err = gfx.NewGeometry(mesh, gfx.StaticDraw)
	if err != nil {
		s.Release()
		return nil, errors.Wrapf(err, "scene %s: upload", name)
	}
	s.geom.Primitive = mesh.Primitive

	if mesh.Textured {
		img := opts.Texture
		if img == nil {
			img = Checkerboard(64, 8, gfx.White, gfx.Black)
		}
		s.sampler, err = gfx.Image(img)
		if err != nil {
			s.Release()
			return nil, errors.Wrapf(err, "scene %s: texture", name)
		}
		s.Texture = s.sampler
	}
	logger.Debug("scene loaded",
		zap.String("variant", name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", mesh.IndexCount()))
	return s, nil
}

// Rebuild regenerates the variant's vertices with opts and replaces the
// buffer contents.
func (s *Scene) Rebuild(opts Options) error {
	mesh, err := Build(s.Name, opts)
	if err != nil {
		return err
	}
	return s.geom.CopyFrom(mesh)
}

// Draw draws the scene on a width x height canvas transformed by p.
func (s *Scene) Draw(p transform.Params, width, height float32) error {
	s.Matrix = p.Matrix(width, height)
	s.shader.Use()
	s.shader.SetUniforms(s)
	if err := s.shader.SetGeometry(s.geom); err != nil {
		return err
	}
	s.shader.Draw()
	return nil
}

// Release frees the GL objects the scene owns.
func (s *Scene) Release() {
	if s.geom != nil {
		s.geom.Release()
		s.geom = nil
	}
	if s.sampler != nil {
		s.sampler.Release()
		s.sampler = nil
		s.Texture = nil
	}
	if s.ownsShader && s.shader != nil {
		s.shader.Release()
	}
	s.shader = nil
}
