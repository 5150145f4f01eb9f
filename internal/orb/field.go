package orb

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/iburimskiy/orb-backdrop/internal/noise"
)

const DefaultCount = 8

// Renderer receives one draw state per orb per tick.
type Renderer interface {
	DrawOrb(s DrawState)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(s DrawState)

func (f RendererFunc) DrawOrb(s DrawState) { f(s) }

// ColorPicker supplies fill colors, one independent draw per call.
type ColorPicker interface {
	Pick() color.RGBA
}

type FieldOptions struct {
	Count  int
	Step   float64
	Width  float64
	Height float64
}

func (o FieldOptions) withDefaults() FieldOptions {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	return o
}

// Field owns the orbs, their shared bounds and the shared noise source.
type Field struct {
	orbs   []*Orb
	bounds Bounds
	src    noise.Source
}

// NewField creates the orbs for a viewport and colors them from colors.
func NewField(rng *rand.Rand, src noise.Source, colors ColorPicker, opts FieldOptions) *Field {
	opts = opts.withDefaults()
	f := &Field{
		bounds: ComputeBounds(opts.Width, opts.Height),
		src:    src,
	}
	f.orbs = make([]*Orb, opts.Count)
	for i := range f.orbs {
		f.orbs[i] = NewOrb(rng, f.bounds, opts.Height, opts.Step, colors.Pick())
	}
	log.Printf("[OrbField] created %d orbs for %.0fx%.0f viewport", opts.Count, opts.Width, opts.Height)
	return f
}

func (f *Field) Orbs() []*Orb {
	return f.orbs
}

func (f *Field) Bounds() Bounds {
	return f.bounds
}

// Tick steps every orb, then emits each orb's draw state to r.
func (f *Field) Tick(r Renderer) {
	f.Advance()
	f.Render(r)
}

// Advance steps every orb once.
func (f *Field) Advance() {
	for _, o := range f.orbs {
		o.Step(f.src)
	}
}

// Render emits the current draw state of every orb without updating them.
func (f *Field) Render(r Renderer) {
	for _, o := range f.orbs {
		r.DrawOrb(o.DrawState())
	}
}

// OnResize recomputes the bounds and hands them to every orb.
func (f *Field) OnResize(width, height float64) {
	f.bounds = ComputeBounds(width, height)
	for _, o := range f.orbs {
		o.Bounds = f.bounds
	}
	log.Printf("[OrbField] resized to %.0fx%.0f, x=[%.1f, %.1f] y=[%.1f, %.1f]",
		width, height, f.bounds.X.Min, f.bounds.X.Max, f.bounds.Y.Min, f.bounds.Y.Max)
}

// OnPaletteChange recolors every orb with an independent pick. Motion state
// is left untouched.
func (f *Field) OnPaletteChange(p ColorPicker) {
	for _, o := range f.orbs {
		o.Fill = p.Pick()
	}
}
