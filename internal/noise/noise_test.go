package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSineDeterministic(t *testing.T) {
	var s Sine
	inputs := [][2]float64{{0, 0}, {1.5, 0}, {0, 732.25}, {999.9, 12.3}, {-4, 4}}
	for _, in := range inputs {
		first := s.Sample(in[0], in[1])
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, s.Sample(in[0], in[1]), "input %v", in)
		}
	}
}

func TestSineRange(t *testing.T) {
	var s Sine
	exceeded := false
	for x := 0.0; x < 200; x += 0.37 {
		for y := 0.0; y < 50; y += 0.53 {
			v := s.Sample(x, y)
			assert.LessOrEqual(t, v, 1.6)
			assert.GreaterOrEqual(t, v, -1.6)
			if v > 1 || v < -1 {
				exceeded = true
			}
		}
	}
	// the three-term sum is allowed to leave the unit range
	assert.True(t, exceeded, "expected some samples outside [-1, 1]")
}

func TestSimplexSeeded(t *testing.T) {
	a := NewSimplex(42)
	b := NewSimplex(42)
	for x := 0.0; x < 10; x += 0.7 {
		v := a.Sample(x, x*0.5)
		assert.Equal(t, v, b.Sample(x, x*0.5))
		assert.LessOrEqual(t, v, 1.0)
		assert.GreaterOrEqual(t, v, -1.0)
	}
}

func TestNew(t *testing.T) {
	for _, name := range append([]string{""}, Names...) {
		src, err := New(name, 1)
		assert.NoError(t, err, name)
		assert.NotNil(t, src, name)
	}
	src, err := New("perlin", 1)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Nil(t, src)
}
