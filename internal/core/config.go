package core

// RuntimeConfig contains timing configuration passed to the engine.
type RuntimeConfig struct {
	TickRate       int // Tick handler invocations per second (default 15)
	PhysicsDivisor int // Ticks per physics step (default 3)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:       15,
		PhysicsDivisor: 3,
	}
}

// Normalize replaces non-positive fields with their defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.PhysicsDivisor <= 0 {
		c.PhysicsDivisor = def.PhysicsDivisor
	}
	return c
}

// GameState is the terminal-or-not state of a run.
type GameState uint32

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
