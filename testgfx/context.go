// Package testgfx provides shaders and a throwaway GL context for tests
// that need a driver. Those tests only run with GFX_GL_TESTS=1 set, since
// most CI machines have no display.
package testgfx

import (
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	gfx "github.com/evilkuma/affine2d"
)

const EnvVar = "GFX_GL_TESTS"

// Context makes a hidden window's GL 2.1 context current on the calling
// goroutine's thread, or skips the test. The window is destroyed when the
// test ends. Subtests run on other goroutines and so have no context;
// keep GL calls in the test that called Context.
func Context(t testing.TB) {
	t.Helper()
	if os.Getenv(EnvVar) != "1" {
		t.Skipf("set %s=1 to run tests against a GL driver", EnvVar)
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("glfw: %v", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	w, err := glfw.CreateWindow(64, 64, t.Name(), nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		t.Skipf("glfw window: %v", err)
	}
	w.MakeContextCurrent()
	if err := gfx.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		t.Fatal(err)
	}
	t.Cleanup(func() {
		w.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
	})
}
