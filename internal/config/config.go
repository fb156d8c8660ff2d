// Package config provides YAML-based scene configuration loading for the
// shape engine.
package config

import "github.com/vovakirdan/shapemotion/internal/core"

// Scene describes one playable scene: its layers, motion and timing.
type Scene struct {
	ID         string    `yaml:"id"`
	Title      string    `yaml:"title"`
	Level      int       `yaml:"level"`
	Screen     Screen    `yaml:"screen"`
	Background string    `yaml:"background"`
	Timing     Timing    `yaml:"timing"`
	Player     Player    `yaml:"player"`
	Collision  Collision `yaml:"collision"`
	Fence      string    `yaml:"fence"`      // name of the boundary layer
	Layers     []Layer   `yaml:"layers"`     // paint order, front to back
	Motion     []string  `yaml:"motion"`     // optional explicit motion order
	PaintOrder []string  `yaml:"paint_order"` // optional override of the layer order
}

// Screen is the pixel size of the display.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Timing configures the tick source.
type Timing struct {
	TickRate       int `yaml:"tick_rate"`
	PhysicsDivisor int `yaml:"physics_divisor"`
}

// Player names the steered layer and its steering speed.
type Player struct {
	Layer string `yaml:"layer"`
	Speed int    `yaml:"speed"`
}

// Collision configures the player proximity check.
type Collision struct {
	Threshold int `yaml:"threshold"`
	ScanLimit int `yaml:"scan_limit"`
}

// Layer describes one shape instance.
// A layer with a velocity moves; one without is static.
type Layer struct {
	Name     string  `yaml:"name"`
	Shape    string  `yaml:"shape"`
	Half     [2]int  `yaml:"half,flow"`
	Radius   int     `yaml:"radius"`
	Pos      [2]int  `yaml:"pos,flow"`
	Color    string  `yaml:"color"`
	Velocity *[2]int `yaml:"velocity,flow"`
}

// Moving reports whether the layer has a velocity.
func (l Layer) Moving() bool {
	return l.Velocity != nil
}

// Runtime returns the timing as a runtime config with defaults filled in.
func (s Scene) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate:       s.Timing.TickRate,
		PhysicsDivisor: s.Timing.PhysicsDivisor,
	}.Normalize()
}
