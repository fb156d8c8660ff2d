package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/engine"
	"github.com/vovakirdan/shapemotion/internal/scene"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Options configures a Model.
type Options struct {
	SceneID     string
	Title       string
	Runtime     core.RuntimeConfig
	PlayerSpeed int
	Level       int
	Logger      *log.Logger

	// ScreenshotDir defaults to ~/.shapemotion/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one engine run.
type Model struct {
	engine   *engine.Engine
	fb       *core.Framebuffer
	latch    *core.ButtonLatch
	keys     KeyMap
	help     help.Model
	renderer *Renderer
	frames   chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *log.Logger

	sceneID  string
	title    string
	tickRate int
	shotDir  string
	notice   string
	quitting bool
}

// NewModel creates a model for the scene and draws the first frame into fb.
func NewModel(sc *scene.Scene, fb *core.Framebuffer, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".shapemotion", "screenshots")
	}

	frames := make(chan struct{}, 1)
	latch := &core.ButtonLatch{}
	runtime := opts.Runtime.Normalize()
	e := engine.New(sc, fb, latch, engine.Options{
		Runtime:     runtime,
		PlayerSpeed: opts.PlayerSpeed,
		Level:       opts.Level,
		Logger:      opts.Logger,
		OnFrame: func() {
			select {
			case frames <- struct{}{}:
			default:
			}
		},
	})
	e.Start()

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		engine:   e,
		fb:       fb,
		latch:    latch,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: NewRenderer(),
		frames:   frames,
		ctx:      ctx,
		cancel:   cancel,
		logger:   opts.Logger,
		sceneID:  opts.SceneID,
		title:    opts.Title,
		tickRate: runtime.TickRate,
		shotDir:  opts.ScreenshotDir,
	}
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Init starts the tick loop and the render goroutine.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tickRate),
		waitForFrame(m.frames),
		m.renderLoop(),
	)
}

// renderLoop runs the engine's render loop until the model quits.
func (m Model) renderLoop() tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // RunRender only returns on cancel
		m.engine.RunRender(m.ctx)
		return nil
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.engine.Tick()
		return m, tickCmd(m.tickRate)

	case FrameMsg:
		return m, waitForFrame(m.frames)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "err", err)
			m.notice = "screenshot failed"
		} else {
			m.notice = "saved " + path
		}
		return m, nil
	}

	if b := m.keys.Buttons(msg); b != 0 {
		m.latch.Press(b)
	}
	return m, nil
}

// saveScreenshot saves the current frame to a text file.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.sceneID, timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.fb.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteRune('\n')
	sb.WriteString(m.renderer.RenderCells(m.fb.Cells()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	if m.notice != "" {
		sb.WriteRune('\n')
		sb.WriteString(noticeStyle.Render(m.notice))
	}
	return sb.String()
}

// Run starts the Bubble Tea program for the scene.
func Run(sc *scene.Scene, fb *core.Framebuffer, opts Options) error {
	model := NewModel(sc, fb, opts)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
