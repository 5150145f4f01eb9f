package game

import (
	"fmt"
	"image/color"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// withAlpha returns an opaque color with its alpha replaced by a in [0, 1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(a)*255 + 0.5)}
}

// catchPanic runs fn and turns a panic into an error wrapping sentinel.
func catchPanic(sentinel error, fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", sentinel, rec)
		}
	}()
	fn()
	return nil
}
