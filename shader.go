package gfx

import (
	"reflect"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrCompile = errors.New("gfx: shader compile failed")
	ErrLink    = errors.New("gfx: program link failed")
)

type Shader struct {
	prog         uint32
	vertexAttrs  VertexAttributes
	vertexFormat VertexFormat

	attribs  map[VertexFormat]int32
	uniforms map[string]int32

	primitive   uint32
	vertexCount int
	indexCount  int

	prevArrays []uint32
}

type ShaderSource interface {
	typ() uint32
	source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) typ() uint32 {
	return gl.VERTEX_SHADER
}

func (v VertexShader) source() string {
	return string(v)
}

func (f FragmentShader) typ() uint32 {
	return gl.FRAGMENT_SHADER
}

func (f FragmentShader) source() string {
	return string(f)
}

func stageName(typ uint32) string {
	switch typ {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

// BuildShader compiles and links srcs into a program. On failure the info
// log is logged, every GL object created so far is deleted and the error is
// returned; nothing is retried.
func BuildShader(attrs VertexAttributes, srcs ...ShaderSource) (*Shader, error) {
	shader := &Shader{
		vertexAttrs:  attrs.clone(),
		vertexFormat: attrs.Format(),
		attribs:      make(map[VertexFormat]int32, len(attrs)),
		uniforms:     make(map[string]int32),
	}
	ss := make([]uint32, 0, len(srcs))
	deleteShaders := func() {
		for _, s := range ss {
			gl.DeleteShader(s)
		}
	}
	for _, src := range srcs {
		s, err := compileShader(src)
		if err != nil {
			deleteShaders()
			return nil, err
		}
		ss = append(ss, s)
	}

	shader.prog = gl.CreateProgram()
	for _, s := range ss {
		gl.AttachShader(shader.prog, s)
	}
	gl.LinkProgram(shader.prog)

	// No longer need shader objects with a fully built program.
	for _, s := range ss {
		gl.DetachShader(shader.prog, s)
	}
	deleteShaders()

	var status int32
	gl.GetProgramiv(shader.prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(shader.prog, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(shader.prog, logLength, nil, buf)
		})
		logger.Error("program link failed", zap.String("log", log))
		gl.DeleteProgram(shader.prog)
		return nil, errors.Wrap(ErrLink, log)
	}

	for attr, name := range shader.vertexAttrs {
		shader.attribs[attr] = gl.GetAttribLocation(shader.prog, gl.Str(name+"\x00"))
	}
	return shader, nil
}

func compileShader(src ShaderSource) (uint32, error) {
	s := gl.CreateShader(src.typ())
	csources, free := gl.Strs(src.source() + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(s, logLength, nil, buf)
		})
		logger.Error("shader compile failed",
			zap.String("stage", stageName(src.typ())),
			zap.String("log", log))
		gl.DeleteShader(s)
		return 0, errors.Wrapf(ErrCompile, "%s shader: %s", stageName(src.typ()), log)
	}
	return s, nil
}

func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	read(gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

// Use makes the program current.
func (s *Shader) Use() {
	// checkpoint here for releasing unused GL resources
	releaseGarbage()

	gl.UseProgram(s.prog)
}

// Release deletes the program.
func (s *Shader) Release() {
	if s.prog != 0 {
		gl.DeleteProgram(s.prog)
		s.prog = 0
	}
}

func (s *Shader) Format() VertexFormat {
	return s.vertexFormat
}

func (s *Shader) uniform(name string) int32 {
	loc, ok := s.uniforms[name]
	if !ok {
		loc = gl.GetUniformLocation(s.prog, gl.Str(name+"\x00"))
		s.uniforms[name] = loc
	}
	return loc
}

// SetUniforms takes struct fields with "uniform" tag and assigns their values
// to the shader's uniform variables. Embedded structs are searched as well.
// The program must be in use.
func (s *Shader) SetUniforms(data interface{}) {
	unit := int32(0)
	s.setUniforms(reflect.Indirect(reflect.ValueOf(data)), &unit)
}

func (s *Shader) setUniforms(val reflect.Value, unit *int32) {
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		f := typ.Field(i)
		v := val.Field(i)
		if f.Anonymous && reflect.Indirect(v).Kind() == reflect.Struct {
			if v.Kind() == reflect.Pointer && v.IsNil() {
				continue
			}
			s.setUniforms(reflect.Indirect(v), unit)
			continue
		}
		name := f.Tag.Get("uniform")
		if name == "" || !f.IsExported() {
			continue
		}
		loc := s.uniform(name)
		if loc < 0 {
			continue
		}
		switch u := v.Interface().(type) {
		case float32:
			gl.Uniform1f(loc, u)
		case int32:
			gl.Uniform1i(loc, u)
		case mgl32.Vec2:
			gl.Uniform2f(loc, u[0], u[1])
		case mgl32.Vec4:
			gl.Uniform4f(loc, u[0], u[1], u[2], u[3])
		case Color:
			gl.Uniform4f(loc, u.R, u.G, u.B, u.A)
		case mgl32.Mat3:
			gl.UniformMatrix3fv(loc, 1, false, &u[0])
		case Sampler:
			if u == nil || reflect.ValueOf(u).IsNil() {
				continue
			}
			gl.ActiveTexture(gl.TEXTURE0 + uint32(*unit))
			u.bind()
			gl.Uniform1i(loc, *unit)
			*unit++
		case nil:
		default:
			logger.Warn("unsupported uniform type",
				zap.String("uniform", name),
				zap.String("type", f.Type.String()))
		}
	}
}

// SetGeometry sets the vertex attributes and binds the index buffer.
func (s *Shader) SetGeometry(geom *Geometry) error {
	vf := geom.VertexBuffer.Format()
	if vf&s.vertexFormat != s.vertexFormat {
		return errors.Wrapf(ErrBadVertexFormat, "shader wants %b, geometry has %b", s.vertexFormat, vf)
	}
	geom.VertexBuffer.bind()

	for _, a := range s.prevArrays {
		gl.DisableVertexAttribArray(a)
	}
	s.prevArrays = s.prevArrays[:0]

	stride := int32(vf.Stride())
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if s.vertexFormat&i == 0 {
			continue
		}
		loc := s.attribs[i]
		if loc < 0 {
			// optimized out by the compiler
			continue
		}
		a := uint32(loc)
		gl.EnableVertexAttribArray(a)
		gl.VertexAttribPointer(a, int32(i.AttribElems()), gl.FLOAT, false, stride, gl.PtrOffset(vf.Offset(i)))
		s.prevArrays = append(s.prevArrays, a)
	}

	s.primitive = geom.Primitive.gl()
	s.vertexCount = geom.VertexBuffer.Count()
	s.indexCount = 0
	if geom.Indexed() {
		s.indexCount = geom.IndexBuffer.Count()
		geom.IndexBuffer.bind()
	}
	return nil
}

// Draw issues one draw call using the previously set uniforms and geometry.
func (s *Shader) Draw() {
	if s.indexCount > 0 {
		gl.DrawElements(s.primitive, int32(s.indexCount), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
		return
	}
	gl.DrawArrays(s.primitive, 0, int32(s.vertexCount))
}
