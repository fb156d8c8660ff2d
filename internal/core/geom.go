// Package core provides fundamental types and utilities for the shape engine.
// It contains no external dependencies (especially no Bubble Tea) to keep scene
// logic pure and testable.
package core

import "fmt"

// Axis indexes a coordinate of a Vec2.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// Axes lists both axes in order, for per-axis loops.
var Axes = [2]Axis{AxisX, AxisY}

// Vec2 is a point or offset in pixel space.
// int16 covers any display this engine drives with room for off-screen overshoot.
type Vec2 struct {
	X, Y int16
}

// V is shorthand for constructing a Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: int16(x), Y: int16(y)}
}

// Axis returns the coordinate on the given axis.
func (v Vec2) Axis(a Axis) int16 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// SetAxis returns a copy of v with the coordinate on axis a replaced.
func (v Vec2) SetAxis(a Axis, val int16) Vec2 {
	if a == AxisX {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k on both axes.
func (v Vec2) Scale(k int16) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Region is an inclusive axis-aligned bounding box.
// Both corners belong to the region.
type Region struct {
	TopLeft  Vec2
	BotRight Vec2
}

// NewRegion creates a region from its inclusive corners.
func NewRegion(x0, y0, x1, y1 int) Region {
	return Region{TopLeft: V(x0, y0), BotRight: V(x1, y1)}
}

// Width returns the number of pixel columns covered.
func (r Region) Width() int {
	return int(r.BotRight.X) - int(r.TopLeft.X) + 1
}

// Height returns the number of pixel rows covered.
func (r Region) Height() int {
	return int(r.BotRight.Y) - int(r.TopLeft.Y) + 1
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Translate returns the region shifted by d.
func (r Region) Translate(d Vec2) Region {
	return Region{TopLeft: r.TopLeft.Add(d), BotRight: r.BotRight.Add(d)}
}

// Contains returns true if p lies inside the region, edges included.
func (r Region) Contains(p Vec2) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BotRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BotRight.Y
}

// Union returns the smallest region covering both r and o.
func (r Region) Union(o Region) Region {
	return Region{
		TopLeft:  V(Min(int(r.TopLeft.X), int(o.TopLeft.X)), Min(int(r.TopLeft.Y), int(o.TopLeft.Y))),
		BotRight: V(Max(int(r.BotRight.X), int(o.BotRight.X)), Max(int(r.BotRight.Y), int(o.BotRight.Y))),
	}
}

// Intersect returns the overlap of r and o.
// ok is false when they do not overlap.
func (r Region) Intersect(o Region) (Region, bool) {
	out := Region{
		TopLeft:  V(Max(int(r.TopLeft.X), int(o.TopLeft.X)), Max(int(r.TopLeft.Y), int(o.TopLeft.Y))),
		BotRight: V(Min(int(r.BotRight.X), int(o.BotRight.X)), Min(int(r.BotRight.Y), int(o.BotRight.Y))),
	}
	if out.Empty() {
		return Region{}, false
	}
	return out, true
}

// Intersects returns true if this region overlaps with another.
// Uses standard AABB collision detection on inclusive edges.
func (r Region) Intersects(o Region) bool {
	_, ok := r.Intersect(o)
	return ok
}

func (r Region) String() string {
	return fmt.Sprintf("[%s-%s]", r.TopLeft, r.BotRight)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
