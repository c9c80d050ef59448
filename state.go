package gfx

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Init loads the GL entry points for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}
	logger.Info("gl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))
	return nil
}

// Viewport sets the GL viewport and scissor box. r is given in framebuffer
// pixels with the origin at the bottom-left.
func Viewport(r image.Rectangle) {
	gl.Viewport(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	gl.Scissor(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
}

// Clear fills the current scissor box with c.
func Clear(c Color) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EnableBlend turns on straight alpha blending.
func EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// GLError is a non-zero glGetError code.
type GLError uint32

func (e GLError) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "gl: invalid enum"
	case gl.INVALID_VALUE:
		return "gl: invalid value"
	case gl.INVALID_OPERATION:
		return "gl: invalid operation"
	case gl.OUT_OF_MEMORY:
		return "gl: out of memory"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "gl: invalid framebuffer operation"
	}
	return fmt.Sprintf("gl: error 0x%x", uint32(e))
}

// CheckError drains the GL error queue, logging every code, and returns the
// first one.
func CheckError(op string) error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		err := GLError(code)
		logger.Warn("gl error", zap.String("op", op), zap.Error(err))
		if first == nil {
			first = errors.Wrap(err, op)
		}
	}
	return first
}

// ReadPixels reads r of the current read buffer into an NRGBA image with
// the first row at the top.
func ReadPixels(r image.Rectangle) *image.NRGBA {
	w, h := r.Dx(), r.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	buf := make([]byte, 4*w*h)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(r.Min.X), int32(r.Min.Y), int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	flipRows(img.Pix, buf, 4*w)
	return img
}

// flipRows copies src into dst reversing the order of rows of n bytes.
func flipRows(dst, src []byte, n int) {
	rows := len(src) / n
	for y := 0; y < rows; y++ {
		copy(dst[y*n:(y+1)*n], src[(rows-1-y)*n:(rows-y)*n])
	}
}
