// Package palette derives small sets of related colors from a random base hue.
package palette

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinBaseHue = 220.0
	MaxBaseHue = 360.0

	HueStep    = 30.0
	Saturation = 95.0
	Lightness  = 50.0

	Size = 3
)

// HueSink receives the hues of every regenerated palette, for display only.
type HueSink interface {
	HuesChanged(hues [Size]float64)
}

// SinkFunc adapts a plain function to HueSink.
type SinkFunc func(hues [Size]float64)

func (f SinkFunc) HuesChanged(hues [Size]float64) { f(hues) }

// Picker holds the current palette.
type Picker struct {
	rng   *rand.Rand
	sinks []HueSink

	hues   [Size]float64
	colors [Size]colorful.Color
}

// NewPicker creates a picker and generates its first palette.
func NewPicker(rng *rand.Rand, sinks ...HueSink) *Picker {
	p := &Picker{rng: rng, sinks: sinks}
	p.Regenerate()
	return p
}

// AddSink registers another receiver for future palettes.
func (p *Picker) AddSink(s HueSink) {
	p.sinks = append(p.sinks, s)
}

// Regenerate draws a new base hue and derives the two companion hues from it.
// Companion hues may exceed 360; they wrap when converted to color.
func (p *Picker) Regenerate() {
	base := MinBaseHue + p.rng.Float64()*(MaxBaseHue-MinBaseHue)
	p.hues = [Size]float64{base, base + HueStep, base + 2*HueStep}
	for i, h := range p.hues {
		p.colors[i] = FromHSL(h, Saturation, Lightness)
	}
	log.Printf("[Palette] base hue %.1f -> %s %s %s", base, p.colors[0].Hex(), p.colors[1].Hex(), p.colors[2].Hex())

	for _, s := range p.sinks {
		s.HuesChanged(p.hues)
	}
}

// Pick returns one of the stored colors uniformly at random. Consecutive calls
// are independent draws.
func (p *Picker) Pick() color.RGBA {
	return ToRGBA(p.colors[p.rng.Intn(Size)])
}

func (p *Picker) Hues() [Size]float64 {
	return p.hues
}

func (p *Picker) Colors() [Size]color.RGBA {
	var out [Size]color.RGBA
	for i, c := range p.colors {
		out[i] = ToRGBA(c)
	}
	return out
}

// Hex returns the stored colors as #rrggbb strings.
func (p *Picker) Hex() [Size]string {
	var out [Size]string
	for i, c := range p.colors {
		out[i] = c.Hex()
	}
	return out
}

// FromHSL converts hue in degrees (any value, wrapped into [0, 360)) and
// saturation/lightness in percent.
func FromHSL(hue, sat, light float64) colorful.Color {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsl(hue, sat/100, light/100).Clamped()
}

// ToRGBA converts to an opaque 8-bit color.
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
