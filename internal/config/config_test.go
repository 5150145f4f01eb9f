package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/orb-backdrop/internal/noise"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orbs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, OrbCount, cfg.OrbCount)
	assert.Equal(t, OrbStep, cfg.Step)
	assert.Equal(t, ResizeQuiet, cfg.ResizeQuiet())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
surface: terminal
orb_count: 5
noise: simplex
reduced_motion: true
debounce_ms: 100
background: "#102030"
pixel_ratio: 2
blur:
  enabled: false
contact:
  email: me@example.org
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SurfaceTerminal, cfg.Surface)
	assert.Equal(t, 5, cfg.OrbCount)
	assert.Equal(t, "simplex", cfg.Noise)
	assert.True(t, cfg.ReducedMotion)
	assert.Equal(t, 100*time.Millisecond, cfg.ResizeQuiet())
	assert.False(t, cfg.Blur.Enabled)
	assert.Equal(t, BlurSigma, cfg.Blur.Sigma, "unset keys keep defaults")
	assert.Equal(t, 2.0, cfg.PixelRatio)
	assert.Equal(t, "me@example.org", cfg.Contact.Email)
	assert.Equal(t, "Hello", cfg.Contact.Subject)

	r, g, b := cfg.BackgroundColor().RGB255()
	assert.Equal(t, [3]uint8{0x10, 0x20, 0x30}, [3]uint8{r, g, b})
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"zero count", "orb_count: 0", ErrInvalidCount},
		{"negative step", "step: -1", ErrInvalidStep},
		{"bad surface", "surface: webgl", ErrUnknownSurface},
		{"bad noise", "noise: perlin", ErrUnknownNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadUnknownNoiseWrapsSourceError(t *testing.T) {
	_, err := Load(writeConfig(t, "noise: perlin"))
	assert.ErrorIs(t, err, ErrUnknownNoise)
	assert.ErrorIs(t, err, noise.ErrUnknown)
}

func TestLoadNegativePixelRatio(t *testing.T) {
	_, err := Load(writeConfig(t, "pixel_ratio: -1"))
	assert.Error(t, err)
}

func TestLoadBadBackground(t *testing.T) {
	_, err := Load(writeConfig(t, `background: "blue"`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "orb_count: [1, 2"))
	assert.Error(t, err)
}

func TestReducedMotionFromEnv(t *testing.T) {
	env := func(v string, ok bool) func(string) (string, bool) {
		return func(key string) (string, bool) {
			if key != ReducedMotionEnv {
				return "", false
			}
			return v, ok
		}
	}
	assert.False(t, ReducedMotionFromEnv(env("", false)))
	assert.False(t, ReducedMotionFromEnv(env("0", true)))
	assert.False(t, ReducedMotionFromEnv(env("false", true)))
	assert.True(t, ReducedMotionFromEnv(env("1", true)))
	assert.True(t, ReducedMotionFromEnv(env("reduce", true)))
}
