package ui

// Layout metrics in window pixels.
const (
	RowHeight   = 28
	LabelWidth  = 150
	TrackHeight = 6
	ThumbWidth  = 10
	Padding     = 10
)

// Part names the piece of a slider a Box draws.
type Part uint8

const (
	Track Part = iota
	Fill
	Thumb
)

// Box is an axis-aligned rectangle in window pixels, origin top-left.
type Box struct {
	X, Y, W, H float32
	Part       Part
	Focused    bool
}

func (b Box) contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Panel stacks sliders in rows.
type Panel struct {
	Sliders []*Slider

	x, y, width float32
	focus       int
	active      int
	dragging    bool
}

func NewPanel(sliders ...*Slider) *Panel {
	return &Panel{Sliders: sliders}
}

// Height is the space the panel needs below its origin.
func (p *Panel) Height() int {
	if len(p.Sliders) == 0 {
		return 0
	}
	return len(p.Sliders)*RowHeight + Padding
}

// Layout places the panel's top-left corner at (x, y) with the given
// width.
func (p *Panel) Layout(x, y, width float32) {
	p.x, p.y, p.width = x, y, width
}

// Row returns the row rectangle of slider i.
func (p *Panel) Row(i int) Box {
	return Box{X: p.x, Y: p.y + float32(i*RowHeight), W: p.width, H: RowHeight}
}

// LabelAt returns where the text of slider i starts.
func (p *Panel) LabelAt(i int) (x, y float32) {
	r := p.Row(i)
	return r.X + Padding, r.Y + (RowHeight-16)/2
}

// track returns the full-height hit area of slider i's track.
func (p *Panel) track(i int) Box {
	r := p.Row(i)
	x := r.X + LabelWidth
	w := r.W - LabelWidth - Padding
	if w < ThumbWidth {
		w = ThumbWidth
	}
	return Box{X: x, Y: r.Y, W: w, H: RowHeight}
}

// Rects returns the boxes to draw, back to front.
func (p *Panel) Rects() []Box {
	boxes := make([]Box, 0, 3*len(p.Sliders))
	for i, s := range p.Sliders {
		t := p.track(i)
		focused := i == p.focus
		cy := t.Y + (RowHeight-TrackHeight)/2
		fx := t.X + float32(s.Fraction())*t.W
		boxes = append(boxes,
			Box{X: t.X, Y: cy, W: t.W, H: TrackHeight, Part: Track, Focused: focused},
			Box{X: t.X, Y: cy, W: fx - t.X, H: TrackHeight, Part: Fill, Focused: focused},
			Box{X: fx - ThumbWidth/2, Y: t.Y + 4, W: ThumbWidth, H: RowHeight - 8, Part: Thumb, Focused: focused},
		)
	}
	return boxes
}

// Focused returns the slider receiving keyboard input, or nil.
func (p *Panel) Focused() *Slider {
	if p.focus < 0 || p.focus >= len(p.Sliders) {
		return nil
	}
	return p.Sliders[p.focus]
}

func (p *Panel) FocusIndex() int {
	return p.focus
}

func (p *Panel) Focus(i int) {
	if i >= 0 && i < len(p.Sliders) {
		p.focus = i
	}
}

func (p *Panel) FocusNext() {
	if n := len(p.Sliders); n > 0 {
		p.focus = (p.focus + 1) % n
	}
}

func (p *Panel) FocusPrev() {
	if n := len(p.Sliders); n > 0 {
		p.focus = (p.focus + n - 1) % n
	}
}

// Nudge moves the focused slider by steps.
func (p *Panel) Nudge(steps int) bool {
	if s := p.Focused(); s != nil {
		return s.Nudge(steps)
	}
	return false
}

// Press starts a drag if (x, y) hits a slider track and moves the slider
// under it. It reports whether a slider value changed.
func (p *Panel) Press(x, y float32) bool {
	for i := range p.Sliders {
		if p.track(i).contains(x, y) {
			p.active = i
			p.focus = i
			p.dragging = true
			return p.drag(x)
		}
	}
	p.dragging = false
	return false
}

// Drag follows the pointer while a drag is active.
func (p *Panel) Drag(x, y float32) bool {
	if !p.dragging || p.active >= len(p.Sliders) {
		return false
	}
	return p.drag(x)
}

func (p *Panel) drag(x float32) bool {
	t := p.track(p.active)
	return p.Sliders[p.active].SetFraction(float64((x - t.X) / t.W))
}

func (p *Panel) Release() {
	p.dragging = false
}

// Dragging reports whether a drag is in progress.
func (p *Panel) Dragging() bool {
	return p.dragging
}
