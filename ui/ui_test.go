package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evilkuma/affine2d/transform"
)

func TestSliderSetClampsAndSnaps(t *testing.T) {
	var got []float64
	s := &Slider{Min: -5, Max: 5, Step: 0.1, Value: 1, OnInput: func(v float64) { got = append(got, v) }}

	assert.True(t, s.Set(0.3))
	assert.Equal(t, 0.3, s.Value)

	assert.False(t, s.Set(0.26), "snaps onto the current value")
	assert.Equal(t, 0.3, s.Value)
	assert.Len(t, got, 1, "no input event without a change")

	s.Set(99)
	assert.Equal(t, 5.0, s.Value)
	s.Set(-99)
	assert.Equal(t, -5.0, s.Value)
	assert.Equal(t, []float64{0.3, 5, -5}, got)
}

func TestSliderSnapRelativeToMin(t *testing.T) {
	s := &Slider{Min: 1, Max: 10, Step: 2}
	s.Set(4.2)
	assert.Equal(t, 5.0, s.Value)
}

func TestSliderNudge(t *testing.T) {
	s := &Slider{Min: -360, Max: 360, Step: 1}
	assert.True(t, s.Nudge(5))
	assert.Equal(t, 5.0, s.Value)
	s.Nudge(-1000)
	assert.Equal(t, -360.0, s.Value)

	free := &Slider{Min: 0, Max: 200}
	free.Nudge(1)
	assert.Equal(t, 2.0, free.Value)
}

func TestSliderFraction(t *testing.T) {
	s := &Slider{Min: 0, Max: 800, Step: 1}
	s.SetFraction(0.5)
	assert.Equal(t, 400.0, s.Value)
	assert.Equal(t, 0.5, s.Fraction())

	empty := &Slider{Min: 3, Max: 3}
	assert.Equal(t, 0.0, empty.Fraction())
}

func TestSliderText(t *testing.T) {
	s := &Slider{Label: "scale x", Step: 0.1, Value: 1.5}
	assert.Equal(t, "scale x: 1.5", s.Text())
	s = &Slider{Label: "rotate", Step: 1, Value: -90}
	assert.Equal(t, "rotate: -90", s.Text())
}

func newTestPanel() (*Panel, *Slider, *Slider) {
	a := &Slider{Label: "a", Min: 0, Max: 100, Step: 1}
	b := &Slider{Label: "b", Min: 0, Max: 100, Step: 1}
	p := NewPanel(a, b)
	// track of row 0 spans x in [160, 260), row 1 starts at y = 28
	p.Layout(10, 0, LabelWidth+100+Padding)
	return p, a, b
}

func TestPanelPressAndDrag(t *testing.T) {
	p, a, b := newTestPanel()

	assert.True(t, p.Press(160+25, 10))
	assert.Equal(t, 25.0, a.Value)
	assert.True(t, p.Dragging())

	assert.True(t, p.Drag(160+75, 500), "drags follow x outside the row")
	assert.Equal(t, 75.0, a.Value)
	assert.Equal(t, 0.0, b.Value)

	p.Release()
	assert.False(t, p.Drag(160+10, 10))
	assert.Equal(t, 75.0, a.Value)

	assert.False(t, p.Press(160+100+50, RowHeight+5))
	assert.Equal(t, 0.0, b.Value, "outside the track misses")
	assert.False(t, p.Dragging())

	assert.True(t, p.Press(160+90, RowHeight+5))
	assert.Equal(t, 90.0, b.Value)
	assert.Equal(t, 1, p.FocusIndex())
}

func TestPanelPressOnLabelMisses(t *testing.T) {
	p, a, _ := newTestPanel()
	assert.False(t, p.Press(20, 10))
	assert.Equal(t, 0.0, a.Value)
	assert.False(t, p.Dragging())
}

func TestPanelFocus(t *testing.T) {
	p, a, b := newTestPanel()
	assert.Same(t, a, p.Focused())
	p.FocusNext()
	assert.Same(t, b, p.Focused())
	p.FocusNext()
	assert.Same(t, a, p.Focused())
	p.FocusPrev()
	assert.Same(t, b, p.Focused())

	p.Focus(7)
	assert.Same(t, b, p.Focused())

	assert.True(t, p.Nudge(3))
	assert.Equal(t, 3.0, b.Value)

	empty := NewPanel()
	empty.FocusNext()
	assert.Nil(t, empty.Focused())
	assert.False(t, empty.Nudge(1))
	assert.Equal(t, 0, empty.Height())
}

func TestPanelRects(t *testing.T) {
	p, a, _ := newTestPanel()
	a.Set(50)

	boxes := p.Rects()
	require.Len(t, boxes, 6)

	track, fill, thumb := boxes[0], boxes[1], boxes[2]
	assert.Equal(t, Track, track.Part)
	assert.Equal(t, float32(160), track.X)
	assert.Equal(t, float32(100), track.W)
	assert.Equal(t, float32(50), fill.W)
	assert.Equal(t, float32(160+50-ThumbWidth/2), thumb.X)
	assert.True(t, track.Focused)
	assert.False(t, boxes[3].Focused)
	assert.Equal(t, float32(RowHeight), boxes[3].Y-track.Y)

	assert.Equal(t, 2*RowHeight+Padding, p.Height())
}

func TestTransformSliders(t *testing.T) {
	params := transform.DefaultParams()
	redraws := 0
	sliders := TransformSliders(&params, 800, 500, func() { redraws++ })
	require.Len(t, sliders, 5)

	assert.Equal(t, 800.0, sliders[0].Max)
	assert.Equal(t, 500.0, sliders[1].Max)
	assert.Equal(t, 1.0, sliders[3].Value)
	assert.Equal(t, 1.0, sliders[4].Value)

	sliders[0].Set(120)
	sliders[1].Set(80)
	sliders[2].Set(90)
	sliders[3].Set(-2)
	sliders[4].Set(0.5)

	assert.Equal(t, float32(120), params.TranslationX)
	assert.Equal(t, float32(80), params.TranslationY)
	assert.InDelta(t, 90, params.AngleDegrees(), 1e-4)
	assert.Equal(t, float32(-2), params.ScaleX)
	assert.Equal(t, float32(0.5), params.ScaleY)
	assert.Equal(t, 5, redraws)

	sliders[2].Set(400)
	assert.InDelta(t, 360, params.AngleDegrees(), 1e-4)
}
