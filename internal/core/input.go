package core

import "sync/atomic"

// Buttons is a bitmask of the four switches, one bit per switch.
// A set bit means the switch is pressed.
type Buttons uint8

const (
	ButtonS1 Buttons = 1 << iota // steer left
	ButtonS2                     // steer right
	ButtonS3
	ButtonS4
)

// Semantic aliases used by the tick handler.
const (
	ButtonLeft  = ButtonS1
	ButtonRight = ButtonS2
)

// Has returns true if every bit of b is pressed.
func (m Buttons) Has(b Buttons) bool {
	return m&b == b && b != 0
}

// String returns a compact "S1+S2" form, or "none".
func (m Buttons) String() string {
	if m == 0 {
		return "none"
	}
	names := [...]string{"S1", "S2", "S3", "S4"}
	out := ""
	for i, n := range names {
		if m&(1<<i) != 0 {
			if out != "" {
				out += "+"
			}
			out += n
		}
	}
	return out
}

// ButtonLatch collects presses from an input goroutine until the tick handler
// samples them. Terminals report key presses, not releases, so a press stays
// visible for exactly one sample.
type ButtonLatch struct {
	bits atomic.Uint32
}

// Press latches the given buttons.
func (l *ButtonLatch) Press(b Buttons) {
	l.bits.Or(uint32(b))
}

// ReadButtons returns the latched buttons and clears them.
func (l *ButtonLatch) ReadButtons() Buttons {
	return Buttons(l.bits.Swap(0))
}
