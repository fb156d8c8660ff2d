package scene

import (
	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/shape"
)

// LayerID is a stable index into a Scene's layer arena.
type LayerID int

// NoLayer marks an absent optional layer (for example, no player).
const NoLayer LayerID = -1

// Layer is a paintable shape instance with position state.
// Only Advance writes PosNext; only Commit writes Pos and PosLast.
type Layer struct {
	Name    string
	Shape   shape.Shape
	Color   core.Color
	Pos     core.Vec2 // center at the committed frame
	PosLast core.Vec2 // center at the previous committed frame
	PosNext core.Vec2 // pending center for the upcoming frame
}

// Bounds returns the layer's bounding box at its committed position.
func (l Layer) Bounds() core.Region {
	return l.Shape.Bounds(l.Pos)
}

// MovingLayer binds a layer to a velocity applied once per physics step.
type MovingLayer struct {
	Layer    LayerID
	Velocity core.Vec2
}

// Collision configures the player proximity check.
type Collision struct {
	// Threshold is the exclusive per-axis distance between centers that counts as a hit.
	Threshold int
	// ScanLimit bounds how many peer moving layers are checked per step.
	// Peers beyond the limit are never checked.
	ScanLimit int
}

// DefaultCollision suits a 160x128 panel; scale the threshold for smaller screens.
func DefaultCollision() Collision {
	return Collision{Threshold: 10, ScanLimit: 3}
}
