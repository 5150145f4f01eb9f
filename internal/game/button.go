package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type button struct {
	label      string
	x, y, w, h int
	hovered    bool
	pressed    bool
	onClick    func()
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// track updates hover/press state and fires onClick on a release over the
// button that started with a press over it.
func (b *button) track(mouseX, mouseY int, justPressed, justReleased bool) {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && justPressed {
		b.pressed = true
	}
	if justReleased {
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
}

// draw paints the button at scale device pixels per logical pixel.
func (b *button) draw(screen *ebiten.Image, scale float64) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 200}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 200}
	default:
		bg = color.RGBA{R: 30, G: 34, B: 52, A: 160}
	}
	x, y := float32(float64(b.x)*scale), float32(float64(b.y)*scale)
	w, h := float32(float64(b.w)*scale), float32(float64(b.h)*scale)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, float32(scale), color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	// debug font glyphs are 6x16 device pixels
	textWidth := float32(len(b.label) * 6)
	ebitenutil.DebugPrintAt(screen, b.label, int(x+(w-textWidth)/2), int(y+(h-16)/2))
}
