package ui

import "github.com/evilkuma/affine2d/transform"

// TransformSliders builds the five sliders that drive p on a width x height
// canvas: translate X, translate Y, rotate (degrees), scale x and scale y.
// changed runs after p has been updated.
func TransformSliders(p *transform.Params, width, height int, changed func()) []*Slider {
	notify := func() {
		if changed != nil {
			changed()
		}
	}
	return []*Slider{
		{
			Label: "translate X", Min: 0, Max: float64(width), Step: 1,
			Value: float64(p.TranslationX),
			OnInput: func(v float64) {
				p.TranslationX = float32(v)
				notify()
			},
		},
		{
			Label: "translate Y", Min: 0, Max: float64(height), Step: 1,
			Value: float64(p.TranslationY),
			OnInput: func(v float64) {
				p.TranslationY = float32(v)
				notify()
			},
		},
		{
			Label: "rotate", Min: -360, Max: 360, Step: 1,
			Value: p.AngleDegrees(),
			OnInput: func(v float64) {
				p.SetAngleDegrees(v)
				notify()
			},
		},
		{
			Label: "scale x", Min: -5, Max: 5, Step: 0.1,
			Value: float64(p.ScaleX),
			OnInput: func(v float64) {
				p.ScaleX = float32(v)
				notify()
			},
		},
		{
			Label: "scale y", Min: -5, Max: 5, Step: 0.1,
			Value: float64(p.ScaleY),
			OnInput: func(v float64) {
				p.ScaleY = float32(v)
				notify()
			},
		},
	}
}
