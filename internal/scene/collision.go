package scene

import "github.com/vovakirdan/shapemotion/internal/core"

// CheckCollision compares the player's committed position with at most
// ScanLimit other moving layers, in motion order. A peer whose center is
// strictly within Threshold on both axes ends the game. Returns true on a hit.
//
// The scan is bounded so a tick costs the same however many obstacles exist;
// peers past the limit are never checked.
func (s *Scene) CheckCollision() bool {
	if s.player == NoLayer {
		return false
	}
	p := s.layers[s.player].Pos
	limit := s.collision.Threshold

	scanned := 0
	for _, m := range s.motion {
		if scanned >= s.collision.ScanLimit {
			break
		}
		if m.Layer == s.player {
			continue
		}
		scanned++

		o := s.layers[m.Layer].Pos
		if core.Abs(int(p.X)-int(o.X)) < limit && core.Abs(int(p.Y)-int(o.Y)) < limit {
			s.endGame()
			return true
		}
	}
	return false
}
