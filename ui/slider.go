// Package ui lays out and drives the range sliders shown under the canvas.
// It knows nothing about GL; the command turns Panel.Rects into geometry.
package ui

import (
	"fmt"
	"math"
	"strconv"
)

// Slider is a range control over [Min, Max] moving in multiples of Step.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
	Value float64

	// OnInput is called with the new value whenever Set changes it.
	OnInput func(float64)
}

// Set clamps v to the slider range, snaps it to the nearest step counted
// from Min, and reports whether the value changed.
func (s *Slider) Set(v float64) bool {
	v = s.snap(v)
	if v == s.Value {
		return false
	}
	s.Value = v
	if s.OnInput != nil {
		s.OnInput(v)
	}
	return true
}

func (s *Slider) snap(v float64) float64 {
	if math.IsNaN(v) {
		return s.Value
	}
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		// keep 0.1 steps from drifting into 0.30000000000000004
		v = roundTo(v, s.decimals())
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	return v
}

// Nudge moves the value by steps steps. A slider without a step moves by a
// hundredth of its range.
func (s *Slider) Nudge(steps int) bool {
	step := s.Step
	if step <= 0 {
		step = (s.Max - s.Min) / 100
	}
	return s.Set(s.Value + float64(steps)*step)
}

// Fraction returns where the value sits in the range, from 0 to 1.
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) SetFraction(f float64) bool {
	return s.Set(s.Min + f*(s.Max-s.Min))
}

// Text is the label followed by the current value.
func (s *Slider) Text() string {
	return fmt.Sprintf("%s: %s", s.Label, strconv.FormatFloat(s.Value, 'f', s.decimals(), 64))
}

// decimals is the number of fraction digits the step needs.
func (s *Slider) decimals() int {
	if s.Step <= 0 {
		return 0
	}
	d := 0
	for step := s.Step; d < 6 && math.Abs(step-math.Round(step)) > 1e-9; step *= 10 {
		d++
	}
	return d
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
