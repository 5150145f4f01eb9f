package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/orb-backdrop/internal/config"
	"github.com/iburimskiy/orb-backdrop/internal/noise"
	"github.com/iburimskiy/orb-backdrop/internal/orb"
)

func TestNewScene(t *testing.T) {
	cfg := config.Default()
	cfg.ReducedMotion = true

	sc, err := newScene(cfg, 1, 800, 600)
	require.NoError(t, err)
	assert.Len(t, sc.field.Orbs(), cfg.OrbCount)
	assert.Equal(t, orb.Static, sc.animator.Mode())
}

func TestNewSceneUnknownNoise(t *testing.T) {
	cfg := config.Default()
	cfg.Noise = "perlin"

	sc, err := newScene(cfg, 1, 800, 600)
	assert.ErrorIs(t, err, noise.ErrUnknown)
	assert.Nil(t, sc)
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"bad flag", []string{"-no-such-flag"}, 2},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, 1},
		{"unknown surface", []string{"-surface", "webgl"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
