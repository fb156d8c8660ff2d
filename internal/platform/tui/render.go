package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/shapemotion/internal/core"
)

// Renderer converts framebuffer cells to styled strings.
// Styles are cached per foreground/background pair.
type Renderer struct {
	styles *intmap.Map[uint32, lipgloss.Style]
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: intmap.New[uint32, lipgloss.Style](32)}
}

// lipColor converts an RGB565 color to a lipgloss hex color.
func lipColor(c core.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func (r *Renderer) style(fg, bg core.Color) lipgloss.Style {
	k := uint32(fg)<<16 | uint32(bg)
	if s, ok := r.styles.Get(k); ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipColor(fg)).Background(lipColor(bg))
	r.styles.Put(k, s)
	return s
}

// Len returns the number of cached styles.
func (r *Renderer) Len() int {
	return r.styles.Len()
}

// RenderCells converts rows of cells to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderCells(rows [][]core.Cell) string {
	var sb strings.Builder
	if len(rows) > 0 {
		// Pre-allocate with extra space for ANSI codes
		sb.Grow(len(rows)*len(rows[0])*4 + len(rows))
	}

	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < len(row) {
			start := row[x]

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < len(row) && row[x].FG == start.FG && row[x].BG == start.BG {
				run.WriteRune(row[x].Rune)
				x++
			}

			sb.WriteString(r.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
