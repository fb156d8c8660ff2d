package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/shape"
)

// arena builds a scene with a player followed by obstacles at the given
// positions, all moving with zero velocity.
func arena(t *testing.T, player core.Vec2, obstacles ...core.Vec2) *Scene {
	t.Helper()
	b := NewBuilder()
	p := b.AddLayer("player", shape.Rect(8, 4), player, core.ColorRed)
	b.Move(p, core.Vec2{}).Player(p)
	for i, o := range obstacles {
		id := b.AddLayer(string(rune('a'+i)), shape.Circle(6), o, core.ColorGray)
		b.Move(id, core.Vec2{})
	}
	b.FenceRegion(core.NewRegion(0, 0, 300, 300))
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func TestCollisionSamePosition(t *testing.T) {
	s := arena(t, core.V(100, 100), core.V(100, 100), core.V(100, 100))

	assert.True(t, s.CheckCollision())
	assert.Equal(t, core.StateGameOver, s.State())
}

func TestCollisionFarApart(t *testing.T) {
	s := arena(t, core.V(200, 200), core.V(100, 100))

	assert.False(t, s.CheckCollision())
	assert.Equal(t, core.StatePlaying, s.State())
}

func TestCollisionThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name     string
		obstacle core.Vec2
		expected bool
	}{
		{"inside on both axes", core.V(109, 91), true},
		{"x at threshold", core.V(110, 100), false},
		{"y at threshold", core.V(100, 90), false},
		{"only x close", core.V(105, 150), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := arena(t, core.V(100, 100), tc.obstacle)
			assert.Equal(t, tc.expected, s.CheckCollision())
			assert.Equal(t, tc.expected, s.GameOver())
		})
	}
}

func TestCollisionBoundedScan(t *testing.T) {
	far := core.V(250, 250)
	hit := core.V(100, 100)

	// the fourth peer is past the default scan limit of 3
	s := arena(t, core.V(100, 100), far, far, far, hit)
	assert.False(t, s.CheckCollision())
	assert.False(t, s.GameOver())

	s = arena(t, core.V(100, 100), far, far, hit, far)
	assert.True(t, s.CheckCollision())
}

func TestCollisionUsesCommittedPosition(t *testing.T) {
	s := arena(t, core.V(100, 100), core.V(200, 100))
	s.motion[1].Velocity = core.V(-50, 0)

	s.Advance()
	s.Advance()
	assert.False(t, s.CheckCollision(), "pending positions are not checked")

	s.Commit()
	assert.True(t, s.CheckCollision())
}

func TestCollisionWithoutPlayer(t *testing.T) {
	b := NewBuilder()
	a := b.AddLayer("a", shape.Circle(2), core.V(10, 10), core.ColorRed)
	c := b.AddLayer("c", shape.Circle(2), core.V(10, 10), core.ColorBlue)
	b.Move(a, core.Vec2{}).Move(c, core.Vec2{}).FenceRegion(core.NewRegion(0, 0, 20, 20))
	s, err := b.Build()
	require.NoError(t, err)

	assert.False(t, s.CheckCollision())
	assert.Equal(t, core.StatePlaying, s.State())
}

func TestGameOverIsSticky(t *testing.T) {
	s := arena(t, core.V(100, 100), core.V(100, 100))
	require.True(t, s.CheckCollision())

	assert.False(t, s.endGame(), "GameOver is set exactly once")
	assert.True(t, s.GameOver())
}
