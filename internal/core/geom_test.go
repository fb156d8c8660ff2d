package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Region
		expected bool
	}{
		{
			name:     "overlapping regions",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(5, 5, 14, 14),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(15, 0, 24, 9),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(0, 15, 9, 24),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(10, 0, 19, 9),
			expected: false,
		},
		{
			name:     "shared edge column (inclusive overlap)",
			a:        NewRegion(0, 0, 10, 10),
			b:        NewRegion(10, 0, 20, 10),
			expected: true,
		},
		{
			name:     "contained region",
			a:        NewRegion(0, 0, 19, 19),
			b:        NewRegion(5, 5, 9, 9),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			// symmetric
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(10, 10, 29, 24)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right corner (inclusive)", V(29, 24), true},
		{"outside left", V(5, 15), false},
		{"outside right", V(30, 15), false},
		{"outside top", V(15, 9), false},
		{"outside bottom", V(15, 25), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.p), "Contains(%v)", tc.p)
		})
	}
}

func TestRegionDimensions(t *testing.T) {
	r := NewRegion(5, 10, 24, 24)

	assert.Equal(t, 20, r.Width())
	assert.Equal(t, 15, r.Height())
	assert.False(t, r.Empty())
	assert.True(t, NewRegion(5, 5, 4, 5).Empty(), "inverted region should be empty")
}

func TestRegionUnionIntersect(t *testing.T) {
	a := NewRegion(0, 0, 10, 10)
	b := NewRegion(5, -3, 20, 8)

	assert.Equal(t, NewRegion(0, -3, 20, 10), a.Union(b))

	got, ok := a.Intersect(b)
	require.True(t, ok, "Intersect() reported no overlap")
	assert.Equal(t, NewRegion(5, 0, 10, 8), got)

	_, ok = a.Intersect(NewRegion(11, 11, 12, 12))
	assert.False(t, ok, "disjoint regions do not intersect")
}

func TestRegionTranslate(t *testing.T) {
	assert.Equal(t, NewRegion(11, 0, 13, 2), NewRegion(1, 2, 3, 4).Translate(V(10, -2)))
}

func TestVec2Axes(t *testing.T) {
	v := V(3, -7)
	assert.Equal(t, int16(3), v.Axis(AxisX))
	assert.Equal(t, int16(-7), v.Axis(AxisY))

	assert.Equal(t, V(3, 9), v.SetAxis(AxisY, 9))
	assert.Equal(t, V(6, 10), V(1, 2).Add(V(3, 4)).Sub(V(1, 1)).Scale(2))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, 5, Min(5, 10))
	assert.Equal(t, 5, Min(10, 5))
	assert.Equal(t, 10, Max(5, 10))
	assert.Equal(t, 10, Max(10, 5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}
