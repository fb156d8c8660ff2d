package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/scene"
	"github.com/vovakirdan/shapemotion/internal/shape"
)

const miniScene = `
title: Mini
screen: {width: 32, height: 32}
fence: box
player: {layer: dot, speed: 3}
layers:
  - {name: dot, shape: circle, radius: 2, pos: [10, 10], color: red, velocity: [0, 0]}
  - {name: box, shape: outline, half: [14, 14], pos: [16, 16], color: "#ffff00"}
`

func TestParseMini(t *testing.T) {
	cfg, err := Parse([]byte(miniScene))
	require.NoError(t, err)

	assert.Equal(t, "Mini", cfg.Title)
	assert.Equal(t, 32, cfg.Screen.Width)
	require.Len(t, cfg.Layers, 2)
	assert.True(t, cfg.Layers[0].Moving())
	assert.False(t, cfg.Layers[1].Moving())
	assert.Equal(t, [2]int{14, 14}, cfg.Layers[1].Half)
	assert.Equal(t, 3, cfg.Player.Speed)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("screen: {width: 8, height: 8}\nlayerz: []\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	assert.Error(t, err)
}

func TestRuntimeDefaults(t *testing.T) {
	var cfg Scene
	assert.Equal(t, core.DefaultConfig(), cfg.Runtime())

	cfg.Timing = Timing{TickRate: 30, PhysicsDivisor: 1}
	assert.Equal(t, core.RuntimeConfig{TickRate: 30, PhysicsDivisor: 1}, cfg.Runtime())
}

func TestBuildMini(t *testing.T) {
	cfg, err := Parse([]byte(miniScene))
	require.NoError(t, err)

	sc, err := Build(cfg)
	require.NoError(t, err)

	dot, ok := sc.Lookup("dot")
	require.True(t, ok)
	assert.Equal(t, dot, sc.Player())
	assert.Equal(t, shape.Circle(2), sc.Layer(dot).Shape)
	assert.Equal(t, core.NewRegion(2, 2, 30, 30), sc.Fence())
	assert.Equal(t, scene.DefaultCollision(), sc.Collision())

	box, _ := sc.Lookup("box")
	assert.Equal(t, core.ColorYellow, sc.Layer(box).Color)
	assert.Equal(t, []scene.LayerID{dot, box}, sc.PaintOrder())
	require.Len(t, sc.Motion(), 1)
	assert.Equal(t, dot, sc.Motion()[0].Layer)
}

func TestBuildErrors(t *testing.T) {
	base := func() Scene {
		cfg, err := Parse([]byte(miniScene))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Scene)
		target error
	}{
		{"no screen", func(s *Scene) { s.Screen = Screen{} }, ErrBadScreen},
		{"no fence", func(s *Scene) { s.Fence = "" }, scene.ErrNoFence},
		{"unknown fence", func(s *Scene) { s.Fence = "nope" }, scene.ErrUnknownLayer},
		{"unknown player", func(s *Scene) { s.Player.Layer = "nope" }, scene.ErrUnknownLayer},
		{"static player", func(s *Scene) { s.Player.Layer = "box" }, scene.ErrPlayerNotMoving},
		{"unknown mover", func(s *Scene) { s.Motion = []string{"ghost"} }, scene.ErrUnknownLayer},
		{"duplicate mover", func(s *Scene) { s.Motion = []string{"dot", "dot"} }, scene.ErrDuplicateMover},
		{"mover not painted", func(s *Scene) { s.PaintOrder = []string{"box"} }, scene.ErrNotPainted},
		{"duplicate name", func(s *Scene) { s.Layers[1].Name = "dot" }, scene.ErrDuplicateLayer},
		{"negative scan", func(s *Scene) { s.Collision.ScanLimit = -1 }, scene.ErrBadCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			_, err := Build(cfg)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestBuildBadLayer(t *testing.T) {
	cfg, err := Parse([]byte(miniScene))
	require.NoError(t, err)

	cfg.Layers[0].Shape = "triangle"
	_, err = Build(cfg)
	assert.ErrorContains(t, err, `layer "dot"`)

	cfg.Layers[0].Shape = "circle"
	cfg.Layers[0].Color = "chartreuse-ish"
	_, err = Build(cfg)
	assert.ErrorContains(t, err, `layer "dot"`)
}

func TestEmbeddedDefaultsBuild(t *testing.T) {
	for id, data := range map[string][]byte{
		"asteroids": DefaultAsteroidsYAML(),
		"bounce":    DefaultBounceYAML(),
	} {
		t.Run(id, func(t *testing.T) {
			cfg, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, id, cfg.ID)
			assert.NotEmpty(t, cfg.Title)

			sc, err := Build(cfg)
			require.NoError(t, err)

			screen := core.NewRegion(0, 0, cfg.Screen.Width-1, cfg.Screen.Height-1)
			for _, m := range sc.Motion() {
				l := sc.Layer(m.Layer)
				b := l.Bounds()
				assert.True(t, screen.Contains(b.TopLeft) && screen.Contains(b.BotRight), "%s on screen", l.Name)
				f := sc.Fence()
				assert.True(t, f.Contains(b.TopLeft) && f.Contains(b.BotRight), "%s inside fence", l.Name)
			}
		})
	}
}

func TestAsteroidsPreset(t *testing.T) {
	cfg, err := Parse(DefaultAsteroidsYAML())
	require.NoError(t, err)
	sc, err := Build(cfg)
	require.NoError(t, err)

	ship, ok := sc.Lookup("ship")
	require.True(t, ok)
	assert.Equal(t, ship, sc.Player())
	assert.Equal(t, scene.Collision{Threshold: 5, ScanLimit: 3}, sc.Collision())
	assert.Equal(t, 2, cfg.Player.Speed)
	assert.Len(t, sc.Motion(), 4)
}

func TestBouncePresetHasNoPlayer(t *testing.T) {
	cfg, err := Parse(DefaultBounceYAML())
	require.NoError(t, err)
	sc, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, scene.NoLayer, sc.Player())
	assert.Len(t, sc.Motion(), 2)
}

func TestEmbeddedLevelsStartAtOne(t *testing.T) {
	for name, data := range map[string][]byte{
		"bounce":    DefaultBounceYAML(),
		"asteroids": DefaultAsteroidsYAML(),
	} {
		cfg, err := Parse(data)
		require.NoError(t, err, name)
		assert.Equal(t, 1, cfg.Level, name)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// embedded fallback
	cfg, err := Load("asteroids", "", DefaultAsteroidsYAML())
	require.NoError(t, err)
	assert.Equal(t, "Asteroids", cfg.Title)

	// user directory wins over embedded
	dir := filepath.Join(home, ".shapemotion", "scenes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "asteroids.yaml"), []byte(miniScene), 0o644))
	cfg, err = Load("asteroids", "", DefaultAsteroidsYAML())
	require.NoError(t, err)
	assert.Equal(t, "Mini", cfg.Title)
	assert.Equal(t, "asteroids", cfg.ID, "id filled in from the preset")

	// broken user file falls through to embedded
	require.NoError(t, os.WriteFile(filepath.Join(dir, "asteroids.yaml"), []byte("screen: ["), 0o644))
	cfg, err = Load("asteroids", "", DefaultAsteroidsYAML())
	require.NoError(t, err)
	assert.Equal(t, "Asteroids", cfg.Title)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(miniScene), 0o644))

	cfg, err := Load("bounce", path, DefaultBounceYAML())
	require.NoError(t, err)
	assert.Equal(t, "Mini", cfg.Title)

	_, err = Load("bounce", filepath.Join(t.TempDir(), "missing.yaml"), DefaultBounceYAML())
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("nope: 1"), 0o644))
	_, err = Load("bounce", path, DefaultBounceYAML())
	assert.Error(t, err, "a broken custom file is an error, not a fallback")
}
