// Package term renders the orb field as colored cells in a terminal.
package term

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/orb-backdrop/internal/config"
	"github.com/iburimskiy/orb-backdrop/internal/debounce"
	"github.com/iburimskiy/orb-backdrop/internal/orb"
	"github.com/iburimskiy/orb-backdrop/internal/palette"
)

// A cell stands for CellWidth x CellHeight virtual pixels so orb radii keep
// the same proportions as in the window.
const (
	CellWidth  = 8.0
	CellHeight = 16.0

	FrameInterval = time.Second / 30
)

type size struct {
	cols, rows int
}

// Surface owns nothing but the draw buffer; the screen, field, animator and
// picker belong to the caller.
type Surface struct {
	screen   tcell.Screen
	field    *orb.Field
	animator *orb.Animator
	picker   *palette.Picker
	contact  func()

	resize  *debounce.Debouncer[size]
	current size
	frame   []orb.DrawState

	bg    colorful.Color
	alpha float64
}

func New(screen tcell.Screen, cfg *config.Config, field *orb.Field, animator *orb.Animator, picker *palette.Picker) *Surface {
	cols, rows := screen.Size()
	return &Surface{
		screen:   screen,
		field:    field,
		animator: animator,
		picker:   picker,
		resize:   debounce.New[size](cfg.ResizeQuiet()),
		current:  size{cols, rows},
		bg:       cfg.BackgroundColor(),
		alpha:    cfg.Alpha,
	}
}

// OnContact sets the action bound to the 'c' key.
func (s *Surface) OnContact(fn func()) {
	s.contact = fn
}

// Viewport converts a terminal size to virtual pixels.
func Viewport(cols, rows int) (float64, float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

func (s *Surface) DrawOrb(st orb.DrawState) {
	s.frame = append(s.frame, st)
}

// HandleEvent reacts to one terminal event and reports whether to quit.
func (s *Surface) HandleEvent(now time.Time, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.resize.Schedule(now, size{cols, rows})
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'p', 'P':
				s.picker.Regenerate()
				s.field.OnPaletteChange(s.picker)
			case 'c', 'C':
				if s.contact != nil {
					s.contact()
				}
			}
		}
	}
	return false
}

// Frame applies a due resize, runs the animator and paints the screen.
func (s *Surface) Frame(now time.Time) {
	if sz, ok := s.resize.Due(now); ok && sz != s.current {
		s.current = sz
		s.screen.Sync()
		s.field.OnResize(Viewport(sz.cols, sz.rows))
	}

	s.frame = s.frame[:0]
	s.animator.Frame(s)
	s.paint()
}

func (s *Surface) paint() {
	cols, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		py := (float64(y) + 0.5) * CellHeight
		for x := 0; x < cols; x++ {
			px := (float64(x) + 0.5) * CellWidth
			c := s.bg
			for _, st := range s.frame {
				r := st.Radius * st.Scale
				if math.Hypot(px-st.Position.X, py-st.Position.Y) > r {
					continue
				}
				fill := colorful.Color{
					R: float64(st.Fill.R) / 255,
					G: float64(st.Fill.G) / 255,
					B: float64(st.Fill.B) / 255,
				}
				c = c.BlendRgb(fill, s.alpha)
			}
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(cellColor(c)))
		}
	}
	s.screen.Show()
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Run drives s until ctx is done or the user quits. The screen must already
// be initialized; the caller finalizes it.
func Run(ctx context.Context, s *Surface) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	log.Printf("[Term] running at %dx%d cells", s.current.cols, s.current.rows)
	s.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if s.HandleEvent(time.Now(), ev) {
				return nil
			}
		case now := <-ticker.C:
			s.Frame(now)
		}
	}
}
