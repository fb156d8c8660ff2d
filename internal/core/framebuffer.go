package core

import (
	"strings"
	"sync"
)

// HalfBlock is the rune used to show two stacked pixels in one terminal cell:
// the foreground paints the upper pixel, the background the lower one.
const HalfBlock = '▀'

// Cell is one terminal character covering two vertically stacked pixels.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Framebuffer is an in-memory pixel raster implementing Surface.
// It decouples scene rendering from the terminal: the renderer writes pixels
// through the LCD-style window contract while presenters read cells.
// All methods are safe for one writer and concurrent readers.
type Framebuffer struct {
	mu     sync.RWMutex
	width  int
	height int
	bg     Color
	pixels []Color
	text   []Cell // overlay, one entry per cell; Rune 0 means none

	window    Region
	hasWindow bool
	cursor    Vec2

	dirty    Region
	hasDirty bool
}

// NewFramebuffer creates a framebuffer filled with the background color.
func NewFramebuffer(width, height int, bg Color) *Framebuffer {
	f := &Framebuffer{
		width:  width,
		height: height,
		bg:     bg,
		pixels: make([]Color, width*height),
		text:   make([]Cell, width*((height+1)/2)),
	}
	f.Fill(bg)
	return f
}

// Width returns the raster width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the raster height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// CellRows returns the number of terminal rows needed to show the raster.
func (f *Framebuffer) CellRows() int {
	return (f.height + 1) / 2
}

// Background returns the color the raster was created with.
func (f *Framebuffer) Background() Color {
	return f.bg
}

// Bounds returns the full raster as a region.
func (f *Framebuffer) Bounds() Region {
	return NewRegion(0, 0, f.width-1, f.height-1)
}

// Fill paints every pixel and drops the text overlay.
func (f *Framebuffer) Fill(c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.pixels {
		f.pixels[i] = c
	}
	for i := range f.text {
		f.text[i] = Cell{}
	}
	f.markDirty(f.Bounds())
}

// SetDrawWindow selects the window for subsequent WritePixelColor calls and
// moves the cursor to its top-left corner. Parts outside the raster are
// still walked by the cursor but not stored.
func (f *Framebuffer) SetDrawWindow(r Region) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.window = r
	f.hasWindow = !r.Empty()
	f.cursor = r.TopLeft
	if visible, ok := r.Intersect(f.Bounds()); ok {
		f.markDirty(visible)
	}
}

// WritePixelColor stores one pixel at the cursor and advances it row-major,
// wrapping to the window's first row after the last.
func (f *Framebuffer) WritePixelColor(c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.hasWindow {
		return
	}
	x, y := int(f.cursor.X), int(f.cursor.Y)
	if x >= 0 && x < f.width && y >= 0 && y < f.height {
		f.pixels[y*f.width+x] = c
	}

	if f.cursor.X < f.window.BotRight.X {
		f.cursor.X++
		return
	}
	f.cursor.X = f.window.TopLeft.X
	if f.cursor.Y < f.window.BotRight.Y {
		f.cursor.Y++
	} else {
		f.cursor.Y = f.window.TopLeft.Y
	}
}

// DrawText writes a string into the overlay starting at pixel (x, y).
// The overlay has cell resolution: the row is y/2.
// Characters that extend beyond the raster are clipped.
func (f *Framebuffer) DrawText(x, y int, text string, fg, bg Color) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row := y / 2
	if y < 0 || row >= f.CellRows() {
		return
	}
	col := x
	for _, r := range text {
		if col >= 0 && col < f.width {
			f.text[row*f.width+col] = Cell{Rune: r, FG: fg, BG: bg}
		}
		col++
	}
	f.markDirty(NewRegion(Max(x, 0), row*2, Min(col, f.width)-1, Min(row*2+1, f.height-1)))
}

// ClearText removes the overlay on the cell row containing pixel row y.
func (f *Framebuffer) ClearText(y int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row := y / 2
	if y < 0 || row >= f.CellRows() {
		return
	}
	for col := 0; col < f.width; col++ {
		f.text[row*f.width+col] = Cell{}
	}
	f.markDirty(NewRegion(0, row*2, f.width-1, Min(row*2+1, f.height-1)))
}

// Pixel returns the color at (x, y).
// Returns the background color for out-of-bounds coordinates.
func (f *Framebuffer) Pixel(x, y int) Color {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return f.bg
	}
	return f.pixels[y*f.width+x]
}

// Cell returns the terminal cell at (col, row), combining the two pixels it
// covers with any text overlay.
func (f *Framebuffer) Cell(col, row int) Cell {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.cell(col, row)
}

func (f *Framebuffer) cell(col, row int) Cell {
	if col < 0 || col >= f.width || row < 0 || row >= f.CellRows() {
		return Cell{Rune: ' ', FG: f.bg, BG: f.bg}
	}
	if t := f.text[row*f.width+col]; t.Rune != 0 {
		return t
	}
	top := f.pixels[row*2*f.width+col]
	bottom := f.bg
	if row*2+1 < f.height {
		bottom = f.pixels[(row*2+1)*f.width+col]
	}
	return Cell{Rune: HalfBlock, FG: top, BG: bottom}
}

// Cells returns a consistent copy of every cell, row by row.
func (f *Framebuffer) Cells() [][]Cell {
	f.mu.RLock()
	defer f.mu.RUnlock()

	rows := make([][]Cell, f.CellRows())
	for row := range rows {
		rows[row] = make([]Cell, f.width)
		for col := range rows[row] {
			rows[row][col] = f.cell(col, row)
		}
	}
	return rows
}

// TakeDirty returns the pixel area touched since the previous call and
// resets the tracker. ok is false when nothing changed.
func (f *Framebuffer) TakeDirty() (Region, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.dirty, f.hasDirty
	f.hasDirty = false
	return r, ok
}

func (f *Framebuffer) markDirty(r Region) {
	if r.Empty() {
		return
	}
	if f.hasDirty {
		f.dirty = f.dirty.Union(r)
	} else {
		f.dirty = r
		f.hasDirty = true
	}
}

// String converts the raster to text, one line per pixel row.
// Background pixels print as '.', palette colors as a letter, others '#'.
func (f *Framebuffer) String() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height) // Pre-allocate for efficiency

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < f.width; x++ {
			sb.WriteRune(pixelGlyph(f.pixels[y*f.width+x], f.bg))
		}
	}
	return sb.String()
}

var paletteGlyphs = map[Color]rune{
	ColorBlack:   'K',
	ColorWhite:   'W',
	ColorRed:     'R',
	ColorGreen:   'G',
	ColorBlue:    'B',
	ColorYellow:  'Y',
	ColorCyan:    'C',
	ColorMagenta: 'M',
	ColorOrange:  'O',
	ColorGray:    '+',
}

func pixelGlyph(c, bg Color) rune {
	if c == bg {
		return '.'
	}
	if g, ok := paletteGlyphs[c]; ok {
		return g
	}
	return '#'
}
