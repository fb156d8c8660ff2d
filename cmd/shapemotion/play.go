package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapemotion/internal/platform/tui"
	termhost "github.com/vovakirdan/shapemotion/internal/platform/term"
)

var (
	flagConfig  string
	flagBackend string
	flagSpeed   int
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene",
	Long: `Run the specified scene in the terminal. Two pixel rows are drawn
per character cell.

Controls:
  Left/A/1    - S1: steer left
  Right/D/2   - S2: steer right
  Ctrl+S      - Save a text screenshot (tea backend)
  Q/Esc       - Quit

Backends:
  tea    - Bubble Tea program, full frame per update (default)
  tcell  - tcell screen, only changed cells are sent

Examples:
  shapemotion play asteroids
  shapemotion play bounce --backend tcell
  shapemotion play asteroids --config ./my-asteroids.yaml
  shapemotion play mine --config ./scenes/mine.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene YAML")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Presenter: tea or tcell")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Player steering speed override (0 = scene's)")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	ls, err := loadScene(sceneID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Two pixel rows per cell, plus title and help lines for tea.
	needW, needH := ls.cfg.Screen.Width, ls.fb.CellRows()+2
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, scene needs %dx%d; output will be clipped\n",
			w, h, needW, needH)
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	speed := ls.cfg.Player.Speed
	if flagSpeed > 0 {
		speed = flagSpeed
	}

	var runErr error
	switch flagBackend {
	case "tea":
		runErr = playTea(ls, speed, logger)
	case "tcell":
		runErr = playTcell(ls, speed, logger)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want tea or tcell)\n", flagBackend)
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("%s: %s, score %d\n", ls.cfg.Title, ls.scene.State(), ls.scene.Score())
}

func playTea(ls *loadedScene, speed int, logger *log.Logger) error {
	return tui.Run(ls.scene, ls.fb, tui.Options{
		SceneID:     ls.cfg.ID,
		Title:       ls.cfg.Title,
		Runtime:     ls.runtime,
		PlayerSpeed: speed,
		Level:       ls.cfg.Level,
		Logger:      logger,
	})
}

func playTcell(ls *loadedScene, speed int, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return termhost.Run(ctx, screen, ls.scene, ls.fb, termhost.Options{
		Runtime:     ls.runtime,
		PlayerSpeed: speed,
		Level:       ls.cfg.Level,
		Logger:      logger,
	})
}
