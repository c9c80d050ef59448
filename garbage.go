package gfx

import (
	"sync"

	"github.com/go-gl/gl/v2.1/gl"
)

// garbage collects GL names from finalizers, which run on their own
// goroutine, until the GL thread reaches a checkpoint.
type garbage struct {
	sync.Mutex
	buffers  []uint32
	textures []uint32
}

var trashbin garbage

func (g *garbage) addBuffer(b uint32) {
	if b == 0 {
		return
	}
	g.Lock()
	g.buffers = append(g.buffers, b)
	g.Unlock()
}

func (g *garbage) addTexture(t uint32) {
	if t == 0 {
		return
	}
	g.Lock()
	g.textures = append(g.textures, t)
	g.Unlock()
}

// take empties the bin and returns what it held.
func (g *garbage) take() (buffers, textures []uint32) {
	g.Lock()
	defer g.Unlock()
	buffers, textures = g.buffers, g.textures
	g.buffers, g.textures = nil, nil
	return buffers, textures
}

func (g *garbage) release() {
	buffers, textures := g.take()
	if len(buffers) > 0 {
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	}
	if len(textures) > 0 {
		gl.DeleteTextures(int32(len(textures)), &textures[0])
	}
}

// releaseGarbage is called at certain checkpoints to release GPU resources
// after their references have been GCed. This is needed to make the GL calls
// on the correct thread.
func releaseGarbage() {
	trashbin.release()
}
