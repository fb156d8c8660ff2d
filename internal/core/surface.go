package core

// Surface is the display contract the renderer draws through.
// Pixels are written sequentially into a previously set window, row-major,
// the way a small LCD controller accepts them.
type Surface interface {
	// Bounds returns the visible pixel area.
	Bounds() Region

	// SetDrawWindow selects the rectangle subsequent pixel writes fill.
	SetDrawWindow(r Region)

	// WritePixelColor writes one pixel at the window cursor and advances it.
	WritePixelColor(c Color)

	// DrawText draws a text overlay anchored at pixel (x, y).
	DrawText(x, y int, text string, fg, bg Color)
}
