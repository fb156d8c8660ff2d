package scene

import "github.com/vovakirdan/shapemotion/internal/core"

// Commit makes every moving layer's pending position current:
// PosLast = Pos, Pos = PosNext. Callers running Advance concurrently must
// hold the same lock around both.
func (s *Scene) Commit() {
	for _, id := range s.movers {
		l := &s.layers[id]
		l.PosLast = l.Pos
		l.Pos = l.PosNext
	}
}

// Paint repaints the footprint of every moving layer that moved in the last
// Commit. The footprint is the union of its previous and current bounds, so
// the old image is erased and whatever lies beneath is revealed.
// Pixels outside those footprints are not touched.
// Paint reads only committed positions and the immutable mover ids, so it
// may run outside the lock that guards Advance.
func (s *Scene) Paint(dst core.Surface) {
	for _, id := range s.movers {
		l := &s.layers[id]
		if l.Pos == l.PosLast {
			continue
		}
		s.PaintRegion(dst, l.Shape.Bounds(l.PosLast).Union(l.Shape.Bounds(l.Pos)))
	}
}

// Redraw commits pending positions and paints the changes.
// Single-goroutine callers can use it instead of Commit + Paint.
func (s *Scene) Redraw(dst core.Surface) {
	s.Commit()
	s.Paint(dst)
}

// PaintAll repaints the whole surface.
func (s *Scene) PaintAll(dst core.Surface) {
	s.PaintRegion(dst, dst.Bounds())
}

// PaintRegion resolves and writes every pixel of r, clipped to the surface,
// in row-major order.
func (s *Scene) PaintRegion(dst core.Surface, r core.Region) {
	r, ok := r.Intersect(dst.Bounds())
	if !ok {
		return
	}
	dst.SetDrawWindow(r)
	for y := r.TopLeft.Y; y <= r.BotRight.Y; y++ {
		for x := r.TopLeft.X; x <= r.BotRight.X; x++ {
			dst.WritePixelColor(s.ResolvePixel(core.Vec2{X: x, Y: y}))
		}
	}
}

// ResolvePixel returns the color of the topmost layer covering p at its
// committed position, or the background.
func (s *Scene) ResolvePixel(p core.Vec2) core.Color {
	for _, id := range s.paint {
		l := &s.layers[id]
		if l.Shape.Contains(l.Pos, p) {
			return l.Color
		}
	}
	return s.background
}
