package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapemotion/internal/config"
	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/registry"
	"github.com/vovakirdan/shapemotion/internal/scene"
)

// loadedScene is a built scene with its resolved settings.
type loadedScene struct {
	cfg     config.Scene
	scene   *scene.Scene
	runtime core.RuntimeConfig
	fb      *core.Framebuffer
}

// loadScene resolves a preset (or a custom file), builds it, applies the
// global timing overrides and allocates its framebuffer.
func loadScene(id, customPath string) (*loadedScene, error) {
	if !registry.Exists(id) && customPath == "" {
		return nil, fmt.Errorf("unknown scene %q (run 'shapemotion list')", id)
	}

	var (
		cfg config.Scene
		err error
	)
	if registry.Exists(id) {
		cfg, err = registry.Load(id, customPath)
	} else {
		cfg, err = config.Load(id, customPath, nil)
	}
	if err != nil {
		return nil, err
	}

	sc, err := config.Build(cfg)
	if err != nil {
		return nil, err
	}

	rt := cfg.Runtime()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	if flagDivisor > 0 {
		rt.PhysicsDivisor = flagDivisor
	}

	return &loadedScene{
		cfg:     cfg,
		scene:   sc,
		runtime: rt,
		fb:      core.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height, sc.Background()),
	}, nil
}

// newLogger returns a logger writing to path, or one that discards
// everything when path is empty. The returned close func is never nil.
func newLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shapemotion",
	})
	return logger, f.Close, nil
}
