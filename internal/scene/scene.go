// Package scene implements the layered shape model: a layer arena with a
// front-to-back paint order, a motion order of velocities, fence reflection,
// the bounded collision check and the occlusion-aware incremental renderer.
//
// Scene methods do no locking. The engine package serializes the tick
// handler against Commit; see engine.Engine.
package scene

import (
	"sync/atomic"

	"github.com/vovakirdan/shapemotion/internal/core"
)

// Scene is the aggregate owned by the control loop.
type Scene struct {
	layers []Layer
	paint  []LayerID
	motion []MovingLayer
	movers []LayerID // motion order ids; never written after Build
	index  map[string]LayerID

	fence      core.Region
	player     LayerID
	collision  Collision
	background core.Color

	state atomic.Uint32
	score atomic.Int64
}

// Len returns the number of layers in the arena.
func (s *Scene) Len() int {
	return len(s.layers)
}

// Layer returns a copy of the layer with the given id.
func (s *Scene) Layer(id LayerID) Layer {
	return s.layers[id]
}

// Lookup finds a layer by name.
func (s *Scene) Lookup(name string) (LayerID, bool) {
	id, ok := s.index[name]
	return id, ok
}

// PaintOrder returns the front-to-back paint order.
func (s *Scene) PaintOrder() []LayerID {
	out := make([]LayerID, len(s.paint))
	copy(out, s.paint)
	return out
}

// Motion returns a copy of the motion list.
func (s *Scene) Motion() []MovingLayer {
	out := make([]MovingLayer, len(s.motion))
	copy(out, s.motion)
	return out
}

// Fence returns the region moving layers are kept inside.
func (s *Scene) Fence() core.Region {
	return s.fence
}

// Background returns the color of pixels no layer covers.
func (s *Scene) Background() core.Color {
	return s.background
}

// Collision returns the collision parameters.
func (s *Scene) Collision() Collision {
	return s.collision
}

// Player returns the player layer, or NoLayer.
func (s *Scene) Player() LayerID {
	return s.player
}

// PlayerVelocity returns the player's velocity.
// ok is false when the scene has no player.
func (s *Scene) PlayerVelocity() (v core.Vec2, ok bool) {
	i := s.playerMotion()
	if i < 0 {
		return core.Vec2{}, false
	}
	return s.motion[i].Velocity, true
}

// SetPlayerVelocity replaces the player's velocity. No-op without a player.
func (s *Scene) SetPlayerVelocity(v core.Vec2) {
	if i := s.playerMotion(); i >= 0 {
		s.motion[i].Velocity = v
	}
}

func (s *Scene) playerMotion() int {
	if s.player == NoLayer {
		return -1
	}
	for i, m := range s.motion {
		if m.Layer == s.player {
			return i
		}
	}
	return -1
}

// State returns whether the run is still playing.
func (s *Scene) State() core.GameState {
	return core.GameState(s.state.Load())
}

// GameOver reports whether a collision has ended the run.
func (s *Scene) GameOver() bool {
	return s.State() == core.StateGameOver
}

// endGame moves the scene to GameOver. Returns false if it already was.
func (s *Scene) endGame() bool {
	return s.state.CompareAndSwap(uint32(core.StatePlaying), uint32(core.StateGameOver))
}

// Score returns the number of physics steps survived.
func (s *Scene) Score() int {
	return int(s.score.Load())
}

// AddScore increments the score by n.
func (s *Scene) AddScore(n int) {
	s.score.Add(int64(n))
}
