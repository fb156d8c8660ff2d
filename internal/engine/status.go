package engine

import (
	"fmt"

	"github.com/vovakirdan/shapemotion/internal/core"
)

// Text overlay layout, in pixels.
const (
	statusX = 1
	statusY = 0

	GameOverText = "GAME OVER"
)

// StatusLine formats the single status line.
func StatusLine(level, score int) string {
	return fmt.Sprintf("Level:%d Score:%d", level, score)
}

func (e *Engine) drawStatus() {
	e.surface.DrawText(statusX, statusY, StatusLine(e.level, e.scene.Score()),
		core.ColorWhite, e.scene.Background())
}

func (e *Engine) drawGameOver() {
	b := e.surface.Bounds()
	x := int(b.TopLeft.X) + (b.Width()-len(GameOverText))/2
	y := int(b.TopLeft.Y) + b.Height()/2
	e.surface.DrawText(x, y, GameOverText, core.ColorRed, e.scene.Background())
	e.drawStatus()
}
