package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/scene"
	"github.com/vovakirdan/shapemotion/internal/shape"
)

// ErrBadScreen is returned for a missing or non-positive screen size.
var ErrBadScreen = errors.New("config: screen size must be positive")

// Build turns a scene description into a validated scene.
// Errors name the offending layer; list invariants are checked by the
// scene builder.
func Build(cfg Scene) (*scene.Scene, error) {
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadScreen, cfg.Screen.Width, cfg.Screen.Height)
	}

	b := scene.NewBuilder()

	if cfg.Background != "" {
		bg, err := core.ParseColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("config: background: %w", err)
		}
		b.Background(bg)
	}

	for _, l := range cfg.Layers {
		sh, err := layerShape(l)
		if err != nil {
			return nil, fmt.Errorf("config: layer %q: %w", l.Name, err)
		}
		color, err := core.ParseColor(l.Color)
		if err != nil {
			return nil, fmt.Errorf("config: layer %q: %w", l.Name, err)
		}
		b.AddLayer(l.Name, sh, core.V(l.Pos[0], l.Pos[1]), color)
	}

	// names resolve against the config, not the builder, so that a
	// misspelled name is reported rather than mapped to a zero id
	ids := make(map[string]scene.LayerID, len(cfg.Layers))
	for i, l := range cfg.Layers {
		if _, dup := ids[l.Name]; dup {
			return nil, fmt.Errorf("config: %w: %q", scene.ErrDuplicateLayer, l.Name)
		}
		ids[l.Name] = scene.LayerID(i)
	}
	lookup := func(what, name string) (scene.LayerID, error) {
		id, ok := ids[name]
		if !ok {
			return scene.NoLayer, fmt.Errorf("config: %s: %w: %q", what, scene.ErrUnknownLayer, name)
		}
		return id, nil
	}

	if len(cfg.PaintOrder) > 0 {
		order := make([]scene.LayerID, 0, len(cfg.PaintOrder))
		for _, name := range cfg.PaintOrder {
			id, err := lookup("paint_order", name)
			if err != nil {
				return nil, err
			}
			order = append(order, id)
		}
		b.PaintOrder(order...)
	}

	motion := cfg.Motion
	if len(motion) == 0 {
		for _, l := range cfg.Layers {
			if l.Moving() {
				motion = append(motion, l.Name)
			}
		}
	}
	for _, name := range motion {
		id, err := lookup("motion", name)
		if err != nil {
			return nil, err
		}
		var v core.Vec2
		if vel := cfg.Layers[id].Velocity; vel != nil {
			v = core.V(vel[0], vel[1])
		}
		b.Move(id, v)
	}

	if cfg.Fence == "" {
		return nil, fmt.Errorf("config: %w", scene.ErrNoFence)
	}
	fence, err := lookup("fence", cfg.Fence)
	if err != nil {
		return nil, err
	}
	b.FenceLayer(fence)

	if cfg.Player.Layer != "" {
		player, err := lookup("player", cfg.Player.Layer)
		if err != nil {
			return nil, err
		}
		b.Player(player)
	}

	collision := scene.DefaultCollision()
	if cfg.Collision.Threshold != 0 {
		collision.Threshold = cfg.Collision.Threshold
	}
	if cfg.Collision.ScanLimit != 0 {
		collision.ScanLimit = cfg.Collision.ScanLimit
	}
	b.Collision(collision)

	sc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("config: scene %q: %w", cfg.ID, err)
	}
	return sc, nil
}

func layerShape(l Layer) (shape.Shape, error) {
	kind, err := shape.ParseKind(l.Shape)
	if err != nil {
		return shape.Shape{}, err
	}
	switch kind {
	case shape.KindCircle:
		return shape.Circle(l.Radius), nil
	case shape.KindRectOutline:
		return shape.RectOutline(l.Half[0], l.Half[1]), nil
	default:
		return shape.Rect(l.Half[0], l.Half[1]), nil
	}
}
