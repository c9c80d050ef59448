package shapes

import (
	"math/rand"

	gfx "github.com/evilkuma/affine2d"
)

// RandomInt returns an integer in [min, max]. It returns min when max < min.
func RandomInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// RandomColor returns an opaque color with random rgb channels.
func RandomColor(rng *rand.Rand) gfx.Color {
	return gfx.Color{
		R: rng.Float32(),
		G: rng.Float32(),
		B: rng.Float32(),
		A: 1,
	}
}

// RandomRect returns a rectangle that lies inside a width x height canvas.
func RandomRect(rng *rand.Rand, width, height int) (x, y, w, h float32) {
	xi := RandomInt(rng, 0, width)
	yi := RandomInt(rng, 0, height)
	wi := RandomInt(rng, 0, width-xi)
	hi := RandomInt(rng, 0, height-yi)
	return float32(xi), float32(yi), float32(wi), float32(hi)
}

// RandomCircle returns a circle that lies inside a width x height canvas,
// with a radius between 1 and half the shorter side.
func RandomCircle(rng *rand.Rand, width, height int) (cx, cy, r float32) {
	ri := RandomInt(rng, 1, min(width, height)/2)
	xi := RandomInt(rng, ri, width-ri)
	yi := RandomInt(rng, ri, height-ri)
	return float32(xi), float32(yi), float32(ri)
}
