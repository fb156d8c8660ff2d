package scene

import (
	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/shape"
)

// Advance moves every moving layer's pending position by its velocity.
// A layer whose bounds would leave the fence on an axis has that velocity
// component negated and the overshoot reflected back, then is clamped so
// its bounds stay inside the fence.
func (s *Scene) Advance() {
	for i := range s.motion {
		m := &s.motion[i]
		l := &s.layers[m.Layer]

		next := l.PosNext.Add(m.Velocity)
		b := l.Shape.Bounds(next)
		for _, a := range core.Axes {
			if b.TopLeft.Axis(a) < s.fence.TopLeft.Axis(a) || b.BotRight.Axis(a) > s.fence.BotRight.Axis(a) {
				v := -m.Velocity.Axis(a)
				m.Velocity = m.Velocity.SetAxis(a, v)
				next = next.SetAxis(a, next.Axis(a)+2*v)
			}
		}
		l.PosNext = clampInto(l.Shape, next, s.fence)
	}
}

// clampInto shifts center so the shape's bounds lie inside fence.
// A shape larger than the fence is aligned to the fence's top-left edge.
func clampInto(sh shape.Shape, center core.Vec2, fence core.Region) core.Vec2 {
	for _, a := range core.Axes {
		b := sh.Bounds(center)
		if over := b.BotRight.Axis(a) - fence.BotRight.Axis(a); over > 0 {
			center = center.SetAxis(a, center.Axis(a)-over)
			b = sh.Bounds(center)
		}
		if under := fence.TopLeft.Axis(a) - b.TopLeft.Axis(a); under > 0 {
			center = center.SetAxis(a, center.Axis(a)+under)
		}
	}
	return center
}
