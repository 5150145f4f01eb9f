// Package orb implements the motion model of the backdrop orbs.
package orb

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/orb-backdrop/internal/noise"
)

const (
	MinScale = 0.7
	MaxScale = 1.4

	// DefaultStep is added to both time offsets on every update.
	DefaultStep = 0.015

	maxInitialOffset = 1000
)

type Point struct {
	X, Y float64
}

// Orb is one animated circle. Position and Scale are recomputed from the
// time offsets on every Step; the offsets only ever grow.
type Orb struct {
	Position Point
	Scale    float64
	Radius   float64
	TimeX    float64
	TimeY    float64
	Fill     color.RGBA
	Bounds   Bounds

	step float64
}

// NewOrb creates an orb with a radius in [height/6, height/3) and random
// starting offsets in [0, 1000).
func NewOrb(rng *rand.Rand, b Bounds, viewportHeight, step float64, fill color.RGBA) *Orb {
	minR, maxR := viewportHeight/6, viewportHeight/3
	return &Orb{
		Bounds: b,
		Scale:  1,
		Radius: minR + rng.Float64()*(maxR-minR),
		TimeX:  rng.Float64() * maxInitialOffset,
		TimeY:  rng.Float64() * maxInitialOffset,
		Fill:   fill,
		step:   step,
	}
}

// RecomputeBounds replaces the orb's bounds for a new viewport. The orb is
// not moved until the next Step.
func (o *Orb) RecomputeBounds(width, height float64) {
	o.Bounds = ComputeBounds(width, height)
}

// Step samples src at the current offsets, maps the samples into the bounds
// and the scale range, then advances the offsets. Samples outside [-1, 1]
// land outside the bounds; they are not clamped.
func (o *Orb) Step(src noise.Source) {
	b := o.Bounds
	nx := src.Sample(o.TimeX, 0)
	ny := src.Sample(0, o.TimeY)
	ns := src.Sample(o.TimeX*0.5, o.TimeY*0.5)

	o.Position = Point{
		X: mapRange(nx, -1, 1, b.X.Min, b.X.Max),
		Y: mapRange(ny, -1, 1, b.Y.Min, b.Y.Max),
	}
	o.Scale = mapRange(ns, -1, 1, MinScale, MaxScale)

	o.TimeX += o.step
	o.TimeY += o.step
}

// DrawState is what a renderer needs to draw one orb.
type DrawState struct {
	Position Point
	Scale    float64
	Radius   float64
	Fill     color.RGBA
}

func (o *Orb) DrawState() DrawState {
	return DrawState{
		Position: o.Position,
		Scale:    o.Scale,
		Radius:   o.Radius,
		Fill:     o.Fill,
	}
}
