package orb

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/orb-backdrop/internal/noise"
)

// unitSource keeps samples inside [-1, 1] so the bounds invariant holds exactly.
type unitSource struct{}

func (unitSource) Sample(x, y float64) float64 {
	return noise.Sine{}.Sample(x, y) / 1.6
}

type constSource float64

func (c constSource) Sample(x, y float64) float64 { return float64(c) }

type recordingSource struct {
	calls [][2]float64
}

func (r *recordingSource) Sample(x, y float64) float64 {
	r.calls = append(r.calls, [2]float64{x, y})
	return 0
}

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		maxDist float64
	}{
		{"narrow", 800, 600, 400},
		{"just below threshold", 999, 700, 499.5},
		{"at threshold", 1000, 700, 400},
		{"wide", 1920, 1080, 768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBounds(tt.w, tt.h)
			assert.InDelta(t, 2*tt.maxDist, b.X.Max-b.X.Min, 1e-9)
			assert.InDelta(t, tt.w/2, (b.X.Max+b.X.Min)/2, 1e-9)
			assert.InDelta(t, tt.h/2, (b.Y.Max+b.Y.Min)/2, 1e-9)
			assert.InDelta(t, 2*tt.maxDist, b.Y.Max-b.Y.Min, 1e-9)
		})
	}
}

func TestNewOrb(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := ComputeBounds(1200, 900)
	for i := 0; i < 100; i++ {
		o := NewOrb(rng, b, 900, DefaultStep, color.RGBA{A: 0xff})
		assert.GreaterOrEqual(t, o.Radius, 150.0)
		assert.Less(t, o.Radius, 300.0)
		assert.GreaterOrEqual(t, o.TimeX, 0.0)
		assert.Less(t, o.TimeX, 1000.0)
		assert.GreaterOrEqual(t, o.TimeY, 0.0)
		assert.Less(t, o.TimeY, 1000.0)
		assert.Equal(t, b, o.Bounds)
	}
}

func TestStepSamplesAndAdvances(t *testing.T) {
	o := &Orb{TimeX: 10, TimeY: 20, step: DefaultStep}
	src := &recordingSource{}
	o.Step(src)

	require.Len(t, src.calls, 3)
	assert.Equal(t, [2]float64{10, 0}, src.calls[0])
	assert.Equal(t, [2]float64{0, 20}, src.calls[1])
	assert.Equal(t, [2]float64{5, 10}, src.calls[2])
	assert.InDelta(t, 10.015, o.TimeX, 1e-12)
	assert.InDelta(t, 20.015, o.TimeY, 1e-12)
}

func TestStepMapping(t *testing.T) {
	b := ComputeBounds(800, 600)

	o := &Orb{Bounds: b, step: DefaultStep}
	o.Step(constSource(-1))
	assert.InDelta(t, b.X.Min, o.Position.X, 1e-9)
	assert.InDelta(t, b.Y.Min, o.Position.Y, 1e-9)
	assert.InDelta(t, MinScale, o.Scale, 1e-9)

	o.Step(constSource(1))
	assert.InDelta(t, b.X.Max, o.Position.X, 1e-9)
	assert.InDelta(t, b.Y.Max, o.Position.Y, 1e-9)
	assert.InDelta(t, MaxScale, o.Scale, 1e-9)

	o.Step(constSource(0))
	assert.InDelta(t, 400, o.Position.X, 1e-9)
	assert.InDelta(t, 300, o.Position.Y, 1e-9)
}

func TestStepOutOfRangeNoiseIsNotClamped(t *testing.T) {
	b := ComputeBounds(800, 600)
	o := &Orb{Bounds: b, step: DefaultStep}
	o.Step(constSource(1.5))
	assert.Greater(t, o.Position.X, b.X.Max)
	assert.Greater(t, o.Scale, MaxScale)
}

func TestStepStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := ComputeBounds(1280, 720)
	o := NewOrb(rng, b, 720, DefaultStep, color.RGBA{})
	for i := 0; i < 5000; i++ {
		o.Step(unitSource{})
		require.True(t, b.Contains(o.Position), "step %d: %+v outside %+v", i, o.Position, b)
		require.GreaterOrEqual(t, o.Scale, MinScale)
		require.LessOrEqual(t, o.Scale, MaxScale)
	}
}

func TestRecomputeBoundsDoesNotMove(t *testing.T) {
	o := &Orb{Bounds: ComputeBounds(800, 600), step: DefaultStep}
	o.Step(constSource(0))
	before := o.Position

	o.RecomputeBounds(1600, 1000)
	assert.Equal(t, before, o.Position)
	assert.Equal(t, ComputeBounds(1600, 1000), o.Bounds)

	o.Step(constSource(0))
	assert.Equal(t, Point{X: 800, Y: 500}, o.Position)
}
