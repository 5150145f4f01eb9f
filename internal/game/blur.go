package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurShader is a separable gaussian. Each pass takes 49 taps spread over
// +-3 sigma along Direction.
var blurShader = []byte(`//kage:unit pixels

package main

var Direction vec2
var Spread float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	sum := vec4(0)
	total := 0.0
	for i := -24; i <= 24; i++ {
		x := float(i)
		w := exp(-(x * x) / 128.0)
		sum += imageSrc0At(srcPos+Direction*(x*Spread)) * w
		total += w
	}
	return sum / total
}
`)

// tapsPerSigma matches the 128 = 2*8*8 denominator in the shader.
const tapsPerSigma = 8

// Blur is the optional post-processing pass.
type Blur struct {
	shader *ebiten.Shader
	sigma  float64
	tmp    *ebiten.Image
}

func NewBlur(sigma float64) (*Blur, error) {
	s, err := ebiten.NewShader(blurShader)
	if err != nil {
		return nil, fmt.Errorf("compile blur shader: %w", err)
	}
	return &Blur{shader: s, sigma: sigma}, nil
}

// Apply draws src blurred onto dst. Both images must have the same size;
// scale is the device pixel ratio they were drawn at.
func (b *Blur) Apply(dst, src *ebiten.Image, scale float64) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if b.tmp == nil || b.tmp.Bounds().Dx() != w || b.tmp.Bounds().Dy() != h {
		if b.tmp != nil {
			b.tmp.Deallocate()
		}
		b.tmp = ebiten.NewImage(w, h)
	}
	b.tmp.Clear()

	spread := float32(b.sigma * scale / tapsPerSigma)
	b.pass(b.tmp, src, w, h, []float32{1, 0}, spread)
	b.pass(dst, b.tmp, w, h, []float32{0, 1}, spread)
}

func (b *Blur) pass(dst, src *ebiten.Image, w, h int, dir []float32, spread float32) {
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Direction": dir,
		"Spread":    spread,
	}
	dst.DrawRectShader(w, h, b.shader, op)
}

func (b *Blur) Close() {
	if b.tmp != nil {
		b.tmp.Deallocate()
		b.tmp = nil
	}
	b.shader.Deallocate()
	log.Printf("[Blur] released")
}
