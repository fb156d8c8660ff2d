// Package engine drives a scene: a periodic tick handler runs physics and
// input, and a render loop sleeps until a redraw is pending.
//
// The two run on separate goroutines. The tick handler writes pending
// positions and velocities; the render loop's Commit is the only writer of
// committed positions. A mutex brackets both the physics step and the
// Commit, and nothing else is shared.
package engine

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/scene"
)

// DefaultPlayerSpeed is the horizontal speed a steering button sets.
const DefaultPlayerSpeed = 4

// ButtonReader samples the switches. Called once per physics step.
type ButtonReader interface {
	ReadButtons() core.Buttons
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Runtime     core.RuntimeConfig
	PlayerSpeed int
	Level       int
	Logger      *log.Logger

	// OnFrame is called from the render goroutine after each frame is drawn.
	OnFrame func()
}

// Engine owns the control loop for one run of a scene.
type Engine struct {
	scene   *scene.Scene
	surface core.Surface
	buttons ButtonReader
	runtime core.RuntimeConfig
	speed   int16
	level   int
	logger  *log.Logger
	onFrame func()
	runID   string

	mu      sync.Mutex // physics step vs Commit
	pending chan struct{}

	ticks     int  // tick goroutine only
	overShown bool // render goroutine only
}

// New creates an engine. Call Start before ticking or rendering.
func New(sc *scene.Scene, surface core.Surface, buttons ButtonReader, opts Options) *Engine {
	if opts.PlayerSpeed <= 0 {
		opts.PlayerSpeed = DefaultPlayerSpeed
	}
	if opts.Level <= 0 {
		opts.Level = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.OnFrame == nil {
		opts.OnFrame = func() {}
	}
	runID := uuid.NewString()

	return &Engine{
		scene:   sc,
		surface: surface,
		buttons: buttons,
		runtime: opts.Runtime.Normalize(),
		speed:   int16(opts.PlayerSpeed),
		level:   opts.Level,
		logger:  opts.Logger.With("run", runID[:8]),
		onFrame: opts.OnFrame,
		runID:   runID,
		pending: make(chan struct{}, 1),
	}
}

// RunID identifies this run in logs.
func (e *Engine) RunID() string {
	return e.runID
}

// Scene returns the scene being driven.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Start draws the whole scene and the status line once.
func (e *Engine) Start() {
	e.logger.Info("run started",
		"layers", e.scene.Len(),
		"fence", e.scene.Fence().String(),
		"tick_rate", e.runtime.TickRate,
		"divisor", e.runtime.PhysicsDivisor,
	)
	e.scene.PaintAll(e.surface)
	e.drawStatus()
	e.onFrame()
}

// Tick is the periodic handler. It must be called from a single goroutine.
// Every PhysicsDivisor-th call samples the buttons and, while playing,
// checks collisions, advances positions, steers the player and marks a
// redraw pending. Returns true when a physics step ran.
func (e *Engine) Tick() bool {
	e.ticks++
	if e.ticks < e.runtime.PhysicsDivisor {
		return false
	}
	e.ticks = 0

	buttons := e.buttons.ReadButtons()
	if e.scene.GameOver() {
		return false
	}

	e.mu.Lock()
	hit := e.scene.CheckCollision()
	e.scene.Advance()
	e.steer(buttons)
	e.mu.Unlock()

	if hit {
		e.logger.Info("game over", "score", e.scene.Score())
	} else {
		e.scene.AddScore(1)
	}
	e.markPending()
	return true
}

// steer applies the sampled buttons to the player's horizontal velocity.
// Right wins when both are pressed; with neither, the velocity is kept.
func (e *Engine) steer(b core.Buttons) {
	v, ok := e.scene.PlayerVelocity()
	if !ok {
		return
	}
	if b.Has(core.ButtonLeft) {
		v.X = -e.speed
	}
	if b.Has(core.ButtonRight) {
		v.X = e.speed
	}
	e.scene.SetPlayerVelocity(v)
}

func (e *Engine) markPending() {
	select {
	case e.pending <- struct{}{}:
	default: // already pending
	}
}

// RunTicker invokes Tick at the configured rate until ctx is done.
func (e *Engine) RunTicker(ctx context.Context) error {
	t := time.NewTicker(time.Second / time.Duration(e.runtime.TickRate))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			e.Tick()
		}
	}
}

// RunRender idles until a redraw is pending, then draws a frame.
// Returns when ctx is done.
func (e *Engine) RunRender(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("run stopped", "score", e.scene.Score(), "state", e.scene.State().String())
			return nil
		case <-e.pending:
			e.render()
		}
	}
}

// RenderPending draws a frame if one is pending and reports whether it did.
// For callers that drive the engine from a single goroutine.
func (e *Engine) RenderPending() bool {
	select {
	case <-e.pending:
		e.render()
		return true
	default:
		return false
	}
}

// Run draws the initial frame, then ticks and renders until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.Start()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.RunTicker(ctx) })
	g.Go(func() error { return e.RunRender(ctx) })
	return g.Wait()
}

func (e *Engine) render() {
	if e.scene.GameOver() {
		if !e.overShown {
			e.drawGameOver()
			e.overShown = true
			e.onFrame()
		}
		return
	}

	e.mu.Lock()
	e.scene.Commit()
	e.mu.Unlock()

	e.scene.Paint(e.surface)
	e.drawStatus()
	e.onFrame()
}
