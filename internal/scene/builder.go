package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/shape"
)

// Construction errors returned by Builder.Build.
var (
	ErrNoLayers        = errors.New("scene: no layers")
	ErrDuplicateLayer  = errors.New("scene: duplicate layer name")
	ErrUnknownLayer    = errors.New("scene: unknown layer")
	ErrNotPainted      = errors.New("scene: moving layer missing from paint order")
	ErrDuplicateMover  = errors.New("scene: layer moves twice")
	ErrNoFence         = errors.New("scene: no fence")
	ErrPlayerNotMoving = errors.New("scene: player is not a moving layer")
	ErrBadCollision    = errors.New("scene: invalid collision parameters")
)

// Builder assembles a Scene and enforces the list invariants once, at
// construction. The first error is kept and returned by Build.
type Builder struct {
	layers     []Layer
	index      map[string]LayerID
	paint      []LayerID
	paintSet   bool
	motion     []MovingLayer
	fenceLayer LayerID
	fence      *core.Region
	player     LayerID
	collision  Collision
	background core.Color
	err        error
}

// NewBuilder returns an empty builder with the default collision parameters
// and a black background.
func NewBuilder() *Builder {
	return &Builder{
		index:      make(map[string]LayerID),
		fenceLayer: NoLayer,
		player:     NoLayer,
		collision:  DefaultCollision(),
		background: core.ColorBlack,
	}
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// AddLayer adds a layer to the arena. Unless PaintOrder is called, layers
// paint front-to-back in the order they were added.
func (b *Builder) AddLayer(name string, s shape.Shape, pos core.Vec2, color core.Color) LayerID {
	if _, exists := b.index[name]; exists {
		b.fail(fmt.Errorf("%w: %q", ErrDuplicateLayer, name))
		return b.index[name]
	}
	if err := s.Validate(); err != nil {
		b.fail(fmt.Errorf("scene: layer %q: %w", name, err))
	}
	id := LayerID(len(b.layers))
	b.layers = append(b.layers, Layer{Name: name, Shape: s, Color: color, Pos: pos})
	b.index[name] = id
	return id
}

// PaintOrder replaces the default paint order. The first id is drawn on top.
func (b *Builder) PaintOrder(ids ...LayerID) *Builder {
	b.paint = append([]LayerID(nil), ids...)
	b.paintSet = true
	return b
}

// Move appends a layer to the motion order with an initial velocity.
func (b *Builder) Move(id LayerID, velocity core.Vec2) *Builder {
	b.motion = append(b.motion, MovingLayer{Layer: id, Velocity: velocity})
	return b
}

// FenceLayer designates the layer whose initial bounds become the fence.
func (b *Builder) FenceLayer(id LayerID) *Builder {
	b.fenceLayer = id
	return b
}

// FenceRegion sets an explicit fence instead of deriving it from a layer.
func (b *Builder) FenceRegion(r core.Region) *Builder {
	b.fence = &r
	return b
}

// Player designates the moving layer checked for collisions and steered by input.
func (b *Builder) Player(id LayerID) *Builder {
	b.player = id
	return b
}

// Collision overrides the collision parameters.
func (b *Builder) Collision(c Collision) *Builder {
	b.collision = c
	return b
}

// Background sets the color of uncovered pixels.
func (b *Builder) Background(c core.Color) *Builder {
	b.background = c
	return b
}

// Build validates the lists and returns a scene with every layer's
// PosLast and PosNext initialized to its starting position.
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.layers) == 0 {
		return nil, ErrNoLayers
	}

	paint := b.paint
	if !b.paintSet {
		paint = make([]LayerID, len(b.layers))
		for i := range paint {
			paint[i] = LayerID(i)
		}
	}
	painted := make(map[LayerID]bool, len(paint))
	for _, id := range paint {
		if !b.valid(id) {
			return nil, fmt.Errorf("%w: paint order id %d", ErrUnknownLayer, id)
		}
		painted[id] = true
	}

	moving := make(map[LayerID]bool, len(b.motion))
	for _, m := range b.motion {
		if !b.valid(m.Layer) {
			return nil, fmt.Errorf("%w: moving layer id %d", ErrUnknownLayer, m.Layer)
		}
		name := b.layers[m.Layer].Name
		if !painted[m.Layer] {
			return nil, fmt.Errorf("%w: %q", ErrNotPainted, name)
		}
		if moving[m.Layer] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMover, name)
		}
		moving[m.Layer] = true
	}

	if b.player != NoLayer {
		if !b.valid(b.player) {
			return nil, fmt.Errorf("%w: player id %d", ErrUnknownLayer, b.player)
		}
		if !moving[b.player] {
			return nil, fmt.Errorf("%w: %q", ErrPlayerNotMoving, b.layers[b.player].Name)
		}
	}

	if b.collision.Threshold <= 0 || b.collision.ScanLimit < 0 {
		return nil, fmt.Errorf("%w: threshold %d, scan limit %d",
			ErrBadCollision, b.collision.Threshold, b.collision.ScanLimit)
	}

	var fence core.Region
	switch {
	case b.fence != nil:
		fence = *b.fence
	case b.fenceLayer != NoLayer:
		if !b.valid(b.fenceLayer) {
			return nil, fmt.Errorf("%w: fence id %d", ErrUnknownLayer, b.fenceLayer)
		}
		l := b.layers[b.fenceLayer]
		fence = l.Shape.Bounds(l.Pos)
	default:
		return nil, ErrNoFence
	}

	s := &Scene{
		layers:     make([]Layer, len(b.layers)),
		paint:      append([]LayerID(nil), paint...),
		motion:     append([]MovingLayer(nil), b.motion...),
		movers:     make([]LayerID, len(b.motion)),
		index:      make(map[string]LayerID, len(b.index)),
		fence:      fence,
		player:     b.player,
		collision:  b.collision,
		background: b.background,
	}
	copy(s.layers, b.layers)
	for i, m := range b.motion {
		s.movers[i] = m.Layer
	}
	for name, id := range b.index {
		s.index[name] = id
	}
	for i := range s.layers {
		s.layers[i].PosLast = s.layers[i].Pos
		s.layers[i].PosNext = s.layers[i].Pos
	}
	return s, nil
}

func (b *Builder) valid(id LayerID) bool {
	return id >= 0 && int(id) < len(b.layers)
}
