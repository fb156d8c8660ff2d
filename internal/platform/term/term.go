// Package term provides a tcell host for the shape engine. Only the cells
// covering the framebuffer's dirty area are sent to the terminal per frame.
package term

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/engine"
	"github.com/vovakirdan/shapemotion/internal/scene"
)

// Options configures Run.
type Options struct {
	Runtime     core.RuntimeConfig
	PlayerSpeed int
	Level       int
	Logger      *log.Logger
}

// Host mirrors a framebuffer onto a tcell screen and latches key presses.
type Host struct {
	screen tcell.Screen
	fb     *core.Framebuffer
	latch  *core.ButtonLatch

	mu     sync.Mutex // blits from the render and event goroutines
	styles *intmap.Map[uint32, tcell.Style]
}

// NewHost creates a host drawing fb at the screen's top-left corner.
func NewHost(screen tcell.Screen, fb *core.Framebuffer) *Host {
	return &Host{
		screen: screen,
		fb:     fb,
		latch:  &core.ButtonLatch{},
		styles: intmap.New[uint32, tcell.Style](32),
	}
}

// Buttons returns the latch key presses are recorded in.
func (h *Host) Buttons() *core.ButtonLatch {
	return h.latch
}

func tcellColor(c core.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (h *Host) style(fg, bg core.Color) tcell.Style {
	k := uint32(fg)<<16 | uint32(bg)
	if s, ok := h.styles.Get(k); ok {
		return s
	}
	s := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	h.styles.Put(k, s)
	return s
}

// Blit copies the cells touched since the previous blit and shows them.
func (h *Host) Blit() {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.fb.TakeDirty()
	if !ok {
		return
	}
	h.copyCells(int(r.TopLeft.X), int(r.TopLeft.Y)/2, int(r.BotRight.X), int(r.BotRight.Y)/2)
	h.screen.Show()
}

// Redraw copies every cell and resynchronizes the terminal.
func (h *Host) Redraw() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fb.TakeDirty()
	h.screen.Clear()
	h.copyCells(0, 0, h.fb.Width()-1, h.fb.CellRows()-1)
	h.screen.Sync()
}

func (h *Host) copyCells(col0, row0, col1, row1 int) {
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c := h.fb.Cell(col, row)
			h.screen.SetContent(col, row, c.Rune, nil, h.style(c.FG, c.BG))
		}
	}
}

// HandleKey latches the buttons a key presses and reports a quit request.
func (h *Host) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		h.latch.Press(core.ButtonLeft)
	case tcell.KeyRight:
		h.latch.Press(core.ButtonRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a', 'h', '1':
			h.latch.Press(core.ButtonLeft)
		case 'd', 'l', '2':
			h.latch.Press(core.ButtonRight)
		}
	}
	return false
}

// pollEvents handles terminal events until quit, screen finalization, or
// ctx cancellation.
func (h *Host) pollEvents(ctx context.Context) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			h.Redraw()
		case *tcell.EventKey:
			if h.HandleKey(ev) {
				return nil
			}
		}
	}
}

// Run drives the scene on an initialized screen until the user quits or
// ctx is done. The caller owns the screen's Init and Fini.
func Run(ctx context.Context, screen tcell.Screen, sc *scene.Scene, fb *core.Framebuffer, opts Options) error {
	h := NewHost(screen, fb)
	screen.HideCursor()
	screen.Clear()

	e := engine.New(sc, fb, h.latch, engine.Options{
		Runtime:     opts.Runtime,
		PlayerSpeed: opts.PlayerSpeed,
		Level:       opts.Level,
		Logger:      opts.Logger,
		OnFrame:     h.Blit,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		return h.pollEvents(gctx)
	})
	g.Go(func() error {
		// Post synthetic interrupt to unblock PollEvent
		<-gctx.Done()
		//nolint:errcheck // the poller may already have exited
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	return g.Wait()
}
