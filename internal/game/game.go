// Package game draws the orb field in an Ebitengine window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/orb-backdrop/internal/config"
	"github.com/iburimskiy/orb-backdrop/internal/contact"
	"github.com/iburimskiy/orb-backdrop/internal/debounce"
	"github.com/iburimskiy/orb-backdrop/internal/orb"
	"github.com/iburimskiy/orb-backdrop/internal/palette"
)

type viewport struct {
	w, h int
}

// Game implements ebiten.Game on top of an explicitly owned field, animator
// and palette.
type Game struct {
	cfg      *config.Config
	field    *orb.Field
	animator *orb.Animator
	picker   *palette.Picker
	contact  *contact.Button

	now    func() time.Time
	resize *debounce.Debouncer[viewport]

	// size applied to the field, and the latest size reported by Layout,
	// both in device-independent pixels
	applied viewport
	outside viewport

	// device pixels per logical pixel
	deviceScale func() float64
	scale       float64

	frame []orb.DrawState

	bg       color.RGBA
	blur     *Blur
	orbLayer *ebiten.Image
	buttons  []*button
	showHelp bool
}

// New builds the window game. A blur shader that fails to compile is logged
// and the game runs unblurred.
func New(cfg *config.Config, field *orb.Field, animator *orb.Animator, picker *palette.Picker) *Game {
	g := newGame(cfg, field, animator, picker, time.Now)
	if cfg.Blur.Enabled {
		blur, err := NewBlur(cfg.Blur.Sigma)
		if err != nil {
			log.Printf("[Game] Warning: blur unavailable: %v", err)
		} else {
			g.blur = blur
		}
	}
	return g
}

func newGame(cfg *config.Config, field *orb.Field, animator *orb.Animator, picker *palette.Picker, now func() time.Time) *Game {
	r, gr, b := cfg.BackgroundColor().RGB255()
	g := &Game{
		cfg:      cfg,
		field:    field,
		animator: animator,
		picker:   picker,
		contact:  contact.NewButton(cfg.Contact.Email, cfg.Contact.Subject),
		now:      now,
		resize:   debounce.New[viewport](cfg.ResizeQuiet()),
		applied:  viewport{cfg.Width, cfg.Height},
		outside:  viewport{cfg.Width, cfg.Height},
		bg:       color.RGBA{R: r, G: gr, B: b, A: 0xff},
		showHelp: true,
		scale:    1,
	}
	g.deviceScale = monitorScale
	if cfg.PixelRatio > 0 {
		ratio := cfg.PixelRatio
		g.deviceScale = func() float64 { return ratio }
	}
	g.buttons = []*button{
		{
			label:   "New palette",
			x:       config.ButtonX,
			y:       config.ButtonY,
			w:       config.ButtonWidth,
			h:       config.ButtonHeight,
			onClick: g.regeneratePalette,
		},
		{
			label:   "Contact",
			x:       config.ButtonX + config.ButtonWidth + config.ButtonGap,
			y:       config.ButtonY,
			w:       config.ButtonWidth,
			h:       config.ButtonHeight,
			onClick: g.openContact,
		},
	}
	return g
}

func (g *Game) regeneratePalette() {
	g.picker.Regenerate()
	g.field.OnPaletteChange(g.picker)
}

func (g *Game) openContact() {
	// zenity blocks until the dialog closes
	go func() {
		if err := g.contact.Press(); err != nil {
			log.Printf("[Game] Warning: contact failed: %v", err)
		}
	}()
}

// DrawOrb collects the states emitted by the animator for the next Draw.
func (g *Game) DrawOrb(s orb.DrawState) {
	g.frame = append(g.frame, s)
}

func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	mouseX, mouseY := int(float64(cx)/g.scale), int(float64(cy)/g.scale)
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, b := range g.buttons {
		b.track(mouseX, mouseY, pressed, released)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.regeneratePalette()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.openContact()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step(g.now())
	return nil
}

// step applies a due resize and runs one animation frame.
func (g *Game) step(now time.Time) {
	if vp, ok := g.resize.Due(now); ok && vp != g.applied {
		g.applied = vp
		g.field.OnResize(float64(vp.w), float64(vp.h))
	}

	g.frame = g.frame[:0]
	g.animator.Frame(g)
}

var (
	errDrawPanicked = errors.New("draw panicked")
	errBlurPanicked = errors.New("blur pass panicked")
)

// Draw renders one frame. A failing frame is logged and the next one is
// drawn normally.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := catchPanic(errDrawPanicked, func() { g.draw(screen) }); err != nil {
		log.Printf("[Game] %v", err)
	}
}

func (g *Game) draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.orbLayer == nil || g.orbLayer.Bounds().Dx() != w || g.orbLayer.Bounds().Dy() != h {
		if g.orbLayer != nil {
			g.orbLayer.Deallocate()
		}
		g.orbLayer = ebiten.NewImage(w, h)
	}
	g.orbLayer.Clear()

	for _, s := range g.frame {
		x, y, r := g.circle(s)
		vector.DrawFilledCircle(g.orbLayer, x, y, r, withAlpha(s.Fill, g.cfg.Alpha), g.cfg.Antialias)
	}

	if err := g.applyBlur(screen); err != nil {
		log.Printf("[Game] Warning: %v, drawing without blur", err)
		g.blur = nil
		screen.DrawImage(g.orbLayer, nil)
	}

	for _, b := range g.buttons {
		b.draw(screen, g.scale)
	}
	if g.showHelp {
		hues := g.picker.Hues()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("P: new palette  C: contact  H: hide  Q: quit   hues %.0f/%.0f/%.0f  %s",
				hues[0], hues[1], hues[2], g.animator.Mode()),
			int(float64(config.ButtonX)*g.scale), int(float64(config.ButtonY+config.ButtonHeight+8)*g.scale))
	}
}

// circle converts an orb's draw state to device pixels.
func (g *Game) circle(s orb.DrawState) (x, y, r float32) {
	return float32(s.Position.X * g.scale), float32(s.Position.Y * g.scale), float32(s.Radius * s.Scale * g.scale)
}

func (g *Game) applyBlur(screen *ebiten.Image) error {
	if g.blur == nil {
		screen.DrawImage(g.orbLayer, nil)
		return nil
	}
	return catchPanic(errBlurPanicked, func() { g.blur.Apply(screen, g.orbLayer, g.scale) })
}

// Layout renders at device resolution. The orb field works in
// device-independent pixels; size changes are debounced before its bounds
// follow.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.observeSize(g.now(), outsideWidth, outsideHeight)
	g.scale = g.deviceScale()
	return int(math.Ceil(float64(outsideWidth) * g.scale)), int(math.Ceil(float64(outsideHeight) * g.scale))
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

func (g *Game) observeSize(now time.Time, w, h int) {
	vp := viewport{w, h}
	if vp == g.outside {
		return
	}
	g.outside = vp
	g.resize.Schedule(now, vp)
}

// Close releases the GPU resources owned by the game.
func (g *Game) Close() {
	if g.blur != nil {
		g.blur.Close()
		g.blur = nil
	}
	if g.orbLayer != nil {
		g.orbLayer.Deallocate()
		g.orbLayer = nil
	}
	log.Printf("[Game] closed")
}

// TitleSink shows the palette hues in the window title.
func TitleSink(title string) palette.HueSink {
	return palette.SinkFunc(func(h [palette.Size]float64) {
		ebiten.SetWindowTitle(fmt.Sprintf("%s - hues %.0f, %.0f, %.0f", title, h[0], h[1], h[2]))
	})
}
