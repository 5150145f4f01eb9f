package orb

import (
	"fmt"
	"log"
)

type Mode int

const (
	// Animating ticks the field on every frame.
	Animating Mode = iota
	// Static ticks the field once and only redraws afterwards.
	Static
)

func (m Mode) String() string {
	switch m {
	case Animating:
		return "animating"
	case Static:
		return "static"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ModeFor picks the mode for a reduced-motion preference.
func ModeFor(reducedMotion bool) Mode {
	if reducedMotion {
		return Static
	}
	return Animating
}

// Animator drives a Field from a frame clock. The mode is fixed for its
// lifetime.
type Animator struct {
	field *Field
	mode  Mode
	ticks int
}

func NewAnimator(f *Field, mode Mode) *Animator {
	log.Printf("[Animator] mode=%s", mode)
	return &Animator{field: f, mode: mode}
}

func (a *Animator) Mode() Mode {
	return a.mode
}

// Ticks returns how many times the field has been ticked.
func (a *Animator) Ticks() int {
	return a.ticks
}

// Frame runs one display frame against r. It reports whether the orbs were
// updated. A panic raised while updating or drawing is logged and swallowed
// so the next frame runs normally.
func (a *Animator) Frame(r Renderer) (ticked bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Animator] frame %d failed: %v", a.ticks, rec)
		}
	}()

	if a.mode == Static && a.ticks > 0 {
		a.field.Render(r)
		return false
	}
	a.ticks++
	ticked = true
	a.field.Tick(r)
	return ticked
}
