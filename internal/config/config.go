package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/orb-backdrop/internal/noise"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 20
	ButtonGap    = 12

	// Orb parameters
	OrbCount  = 8
	OrbStep   = 0.015
	OrbAlpha  = 0.825
	BlurSigma = 24.0

	ResizeQuiet = 250 * time.Millisecond

	ReducedMotionEnv = "ORBS_REDUCED_MOTION"
)

const (
	SurfaceWindow   = "window"
	SurfaceTerminal = "terminal"
)

var (
	ErrInvalidCount   = errors.New("orb count must be positive")
	ErrInvalidStep    = errors.New("step must be positive")
	ErrUnknownSurface = errors.New("unknown surface")
	ErrUnknownNoise   = errors.New("unknown noise source")
)

type Blur struct {
	Enabled bool    `yaml:"enabled"`
	Sigma   float64 `yaml:"sigma"`
}

type Contact struct {
	Email   string `yaml:"email"`
	Subject string `yaml:"subject"`
}

// Config holds everything that can be overridden from the YAML file.
type Config struct {
	Surface       string  `yaml:"surface"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	OrbCount      int     `yaml:"orb_count"`
	Step          float64 `yaml:"step"`
	Alpha         float64 `yaml:"alpha"`
	Noise         string  `yaml:"noise"`
	Background    string  `yaml:"background"`
	Antialias     bool    `yaml:"antialias"`
	PixelRatio    float64 `yaml:"pixel_ratio"`
	ReducedMotion bool    `yaml:"reduced_motion"`
	Sound         bool    `yaml:"sound"`
	DebounceMs    int     `yaml:"debounce_ms"`

	Blur    Blur    `yaml:"blur"`
	Contact Contact `yaml:"contact"`
}

func Default() *Config {
	return &Config{
		Surface:    SurfaceWindow,
		Width:      WindowWidth,
		Height:     WindowHeight,
		OrbCount:   OrbCount,
		Step:       OrbStep,
		Alpha:      OrbAlpha,
		Noise:      "sine",
		Background: "#0b0b14",
		Antialias:  true,
		DebounceMs: int(ResizeQuiet / time.Millisecond),
		Blur: Blur{
			Enabled: true,
			Sigma:   BlurSigma,
		},
		Contact: Contact{
			Email:   "hello@example.com",
			Subject: "Hello",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OrbCount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.OrbCount)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.Step)
	}
	switch c.Surface {
	case SurfaceWindow, SurfaceTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSurface, c.Surface)
	}
	if _, err := noise.New(c.Noise, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownNoise, err)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("background %q: %w", c.Background, err)
	}
	if c.PixelRatio < 0 {
		return fmt.Errorf("pixel ratio %v must not be negative", c.PixelRatio)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}

// BackgroundColor parses Background; call Validate first.
func (c *Config) BackgroundColor() colorful.Color {
	bg, err := colorful.Hex(c.Background)
	if err != nil {
		return colorful.Color{}
	}
	return bg
}

func (c *Config) ResizeQuiet() time.Duration {
	if c.DebounceMs <= 0 {
		return ResizeQuiet
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ReducedMotionFromEnv reports whether the environment asks for reduced
// motion. Any value other than "", "0" and "false" counts as yes.
func ReducedMotionFromEnv(lookup func(string) (string, bool)) bool {
	v, ok := lookup(ReducedMotionEnv)
	if !ok {
		return false
	}
	switch v {
	case "", "0", "false", "no":
		return false
	}
	return true
}
