// Package shape defines the closed set of paintable primitives.
// A Shape is an immutable value; many layers may share one.
package shape

import (
	"fmt"

	"github.com/vovakirdan/shapemotion/internal/core"
)

// Kind tags the variant held by a Shape.
type Kind uint8

const (
	KindRect Kind = iota + 1
	KindCircle
	KindRectOutline
)

// OutlineThickness is the width of a RectOutline's border band in pixels.
const OutlineThickness = 1

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindRectOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// ParseKind maps a config name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "rect", "rectangle":
		return KindRect, nil
	case "circle":
		return KindCircle, nil
	case "outline", "rect_outline":
		return KindRectOutline, nil
	}
	return 0, fmt.Errorf("shape: unknown kind %q", s)
}

// Shape is a filled rectangle, filled circle or rectangular outline,
// parameterized by its half-extent (rectangles) or radius (circle).
type Shape struct {
	Kind   Kind
	Half   core.Vec2 // Rect, RectOutline
	Radius int16     // Circle
}

// Rect returns a filled rectangle spanning center ± (halfW, halfH).
func Rect(halfW, halfH int) Shape {
	return Shape{Kind: KindRect, Half: core.V(halfW, halfH)}
}

// Circle returns a filled circle of the given radius.
func Circle(radius int) Shape {
	return Shape{Kind: KindCircle, Radius: int16(radius)}
}

// RectOutline returns a one-pixel rectangular border spanning center ± (halfW, halfH).
func RectOutline(halfW, halfH int) Shape {
	return Shape{Kind: KindRectOutline, Half: core.V(halfW, halfH)}
}

// Validate reports whether the shape has a known kind and positive extent.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindRect, KindRectOutline:
		if s.Half.X <= 0 || s.Half.Y <= 0 {
			return fmt.Errorf("shape: %s half-extent %v must be positive", s.Kind, s.Half)
		}
	case KindCircle:
		if s.Radius <= 0 {
			return fmt.Errorf("shape: circle radius %d must be positive", s.Radius)
		}
	default:
		return fmt.Errorf("shape: unknown kind %d", s.Kind)
	}
	return nil
}

// Extent returns the half-size of the shape's bounding box.
func (s Shape) Extent() core.Vec2 {
	if s.Kind == KindCircle {
		return core.Vec2{X: s.Radius, Y: s.Radius}
	}
	return s.Half
}

// Bounds returns the inclusive bounding box of the shape centered at center.
func (s Shape) Bounds(center core.Vec2) core.Region {
	e := s.Extent()
	return core.Region{TopLeft: center.Sub(e), BotRight: center.Add(e)}
}

// Contains reports whether point is painted by the shape centered at center.
func (s Shape) Contains(center, point core.Vec2) bool {
	dx := core.Abs(int(point.X) - int(center.X))
	dy := core.Abs(int(point.Y) - int(center.Y))

	switch s.Kind {
	case KindRect:
		return dx <= int(s.Half.X) && dy <= int(s.Half.Y)
	case KindRectOutline:
		if dx > int(s.Half.X) || dy > int(s.Half.Y) {
			return false
		}
		// inside the bounds; painted only on the border band
		return dx > int(s.Half.X)-OutlineThickness || dy > int(s.Half.Y)-OutlineThickness
	case KindCircle:
		r := int(s.Radius)
		return dx*dx+dy*dy <= r*r
	}
	return false
}

func (s Shape) String() string {
	if s.Kind == KindCircle {
		return fmt.Sprintf("circle(r=%d)", s.Radius)
	}
	return fmt.Sprintf("%s(%dx%d)", s.Kind, s.Half.X, s.Half.Y)
}
