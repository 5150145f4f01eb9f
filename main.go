package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/orb-backdrop/internal/chime"
	"github.com/iburimskiy/orb-backdrop/internal/config"
	"github.com/iburimskiy/orb-backdrop/internal/contact"
	"github.com/iburimskiy/orb-backdrop/internal/game"
	"github.com/iburimskiy/orb-backdrop/internal/noise"
	"github.com/iburimskiy/orb-backdrop/internal/orb"
	"github.com/iburimskiy/orb-backdrop/internal/palette"
	"github.com/iburimskiy/orb-backdrop/internal/term"
)

const windowTitle = "Orbs"

type scene struct {
	picker   *palette.Picker
	field    *orb.Field
	animator *orb.Animator
}

func newScene(cfg *config.Config, seed int64, width, height float64, sinks ...palette.HueSink) (*scene, error) {
	src, err := noise.New(cfg.Noise, seed)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	picker := palette.NewPicker(rng, sinks...)
	field := orb.NewField(rng, src, picker, orb.FieldOptions{
		Count:  cfg.OrbCount,
		Step:   cfg.Step,
		Width:  width,
		Height: height,
	})
	mode := orb.ModeFor(cfg.ReducedMotion)
	return &scene{
		picker:   picker,
		field:    field,
		animator: orb.NewAnimator(field, mode),
	}, nil
}

func runWindow(cfg *config.Config, seed int64, sinks []palette.HueSink) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	sinks = append(sinks, game.TitleSink(windowTitle))
	sc, err := newScene(cfg, seed, float64(cfg.Width), float64(cfg.Height), sinks...)
	if err != nil {
		return err
	}

	g := game.New(cfg, sc.field, sc.animator, sc.picker)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(cfg *config.Config, seed int64, sinks []palette.HueSink) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	w, h := term.Viewport(cols, rows)
	sc, err := newScene(cfg, seed, w, h, sinks...)
	if err != nil {
		return err
	}

	surface := term.New(screen, cfg, sc.field, sc.animator, sc.picker)
	button := contact.NewButton(cfg.Contact.Email, cfg.Contact.Subject)
	surface.OnContact(func() {
		go func() {
			if err := button.Press(); err != nil {
				log.Printf("[Term] Warning: contact failed: %v", err)
			}
		}()
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.Run(ctx, surface); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// run returns the process exit code. Deferred releases all happen here,
// before main exits.
func run(args []string) int {
	fs := flag.NewFlagSet("orbs", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	surface := fs.String("surface", "", "window or terminal (overrides config)")
	reduced := fs.Bool("reduced-motion", false, "draw a single static frame")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}
	if *surface != "" {
		cfg.Surface = *surface
	}
	cfg.ReducedMotion = cfg.ReducedMotion || *reduced || config.ReducedMotionFromEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	var sinks []palette.HueSink
	if cfg.Sound {
		c, err := chime.New()
		if err != nil {
			log.Printf("[Main] Warning: sound disabled: %v", err)
		} else {
			defer c.Close()
			sinks = append(sinks, c)
		}
	}

	switch cfg.Surface {
	case config.SurfaceTerminal:
		// hold log lines until the screen is released
		var buf bytes.Buffer
		log.SetOutput(&buf)
		err = runTerminal(cfg, *seed, sinks)
		log.SetOutput(os.Stderr)
		os.Stderr.Write(buf.Bytes())
	default:
		err = runWindow(cfg, *seed, sinks)
	}
	if err != nil {
		log.Printf("%s surface: %v", cfg.Surface, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
