package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Source maps a pair of offsets to a smoothly varying value.
type Source interface {
	Sample(x, y float64) float64
}

// Sine is the default source: three weighted sine/cosine products summed and
// scaled by 0.8. Output lies in [-1.6, 1.6], not [-1, 1].
type Sine struct{}

func (Sine) Sample(x, y float64) float64 {
	v := math.Sin(x)*math.Cos(y) +
		0.6*math.Sin(2.1*x+1.7)*math.Cos(1.9*y+0.3) +
		0.4*math.Sin(4.3*x+2.9)*math.Cos(3.7*y+1.1)
	return v * 0.8
}

// Simplex wraps seeded OpenSimplex noise. Its output stays within [-1, 1].
type Simplex struct {
	noise opensimplex.Noise
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

func (s *Simplex) Sample(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

// Names lists the values accepted by New.
var Names = []string{"sine", "simplex"}

var ErrUnknown = errors.New("unknown noise source")

// New returns the source registered under name. An empty name selects Sine.
func New(name string, seed int64) (Source, error) {
	switch name {
	case "", "sine":
		return Sine{}, nil
	case "simplex":
		return NewSimplex(seed), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknown, name, Names)
}
