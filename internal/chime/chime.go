// Package chime plays a short tone whenever the palette changes.
package chime

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/orb-backdrop/internal/palette"
)

const (
	SampleRate = beep.SampleRate(44100)

	Duration = 180 * time.Millisecond
	Volume   = 0.2

	// base hues in [220, 360) map onto this frequency range
	MinFreq = 330.0
	MaxFreq = 660.0
)

// Chime is a palette.HueSink that plays one tone per palette.
type Chime struct {
	ready bool
}

// New initializes the speaker. On failure the returned Chime is silent and
// the error is reported to the caller.
func New() (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return &Chime{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{ready: true}, nil
}

func (c *Chime) HuesChanged(hues [palette.Size]float64) {
	if !c.ready {
		return
	}
	speaker.Play(Tone(FrequencyFor(hues[0]), Duration))
}

// Close stops anything still playing.
func (c *Chime) Close() {
	if !c.ready {
		return
	}
	// Clear takes the speaker lock itself
	speaker.Clear()
	c.ready = false
	log.Printf("[Chime] closed")
}

// FrequencyFor maps a base hue onto [MinFreq, MaxFreq].
func FrequencyFor(hue float64) float64 {
	t := (hue - palette.MinBaseHue) / (palette.MaxBaseHue - palette.MinBaseHue)
	t = math.Max(0, math.Min(1, t))
	return MinFreq + t*(MaxFreq-MinFreq)
}

// Tone returns a sine of freq Hz lasting d, with a linear fade out.
func Tone(freq float64, d time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(SampleRate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := Volume * env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
