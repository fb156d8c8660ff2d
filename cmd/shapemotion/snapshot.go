package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapemotion/internal/core"
	"github.com/vovakirdan/shapemotion/internal/engine"
)

var (
	flagSnapConfig string
	flagSnapSteps  int
	flagSnapPress  []string
	flagSnapFormat string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <scene>",
	Short: "Run a scene headless and print the final frame",
	Long: `Run the specified scene without a terminal UI for a number of physics
steps, then print the framebuffer.

Presses are given as <step>:<button>, where button is left, right, s1..s4.
They are latched before that step's button sample.

Formats:
  text   - one character per pixel ('.' background, letters per color)
  cells  - half-block cells, two pixel rows per line

Examples:
  shapemotion snapshot bounce --steps 20
  shapemotion snapshot asteroids --steps 40 --press 3:left --press 10:right`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSnapshot(cmd.OutOrStdout(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&flagSnapConfig, "config", "", "Path to custom scene YAML")
	snapshotCmd.Flags().IntVar(&flagSnapSteps, "steps", 30, "Number of physics steps to run")
	snapshotCmd.Flags().StringArrayVar(&flagSnapPress, "press", nil, "Button press as <step>:<button> (repeatable)")
	snapshotCmd.Flags().StringVar(&flagSnapFormat, "format", "text", "Output format: text or cells")
}

// parsePresses turns <step>:<button> entries into a per-step button mask.
func parsePresses(entries []string) (map[int]core.Buttons, error) {
	presses := make(map[int]core.Buttons, len(entries))
	for _, e := range entries {
		stepStr, name, ok := strings.Cut(e, ":")
		if !ok {
			return nil, fmt.Errorf("invalid press %q: want <step>:<button>", e)
		}
		step, err := strconv.Atoi(stepStr)
		if err != nil || step < 0 {
			return nil, fmt.Errorf("invalid press %q: bad step", e)
		}
		b, err := parseButton(name)
		if err != nil {
			return nil, fmt.Errorf("invalid press %q: %w", e, err)
		}
		presses[step] |= b
	}
	return presses, nil
}

func parseButton(name string) (core.Buttons, error) {
	switch strings.ToLower(name) {
	case "left", "s1":
		return core.ButtonS1, nil
	case "right", "s2":
		return core.ButtonS2, nil
	case "s3":
		return core.ButtonS3, nil
	case "s4":
		return core.ButtonS4, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

func runSnapshot(w io.Writer, sceneID string) error {
	if flagSnapFormat != "text" && flagSnapFormat != "cells" {
		return fmt.Errorf("unknown format %q (want text or cells)", flagSnapFormat)
	}
	presses, err := parsePresses(flagSnapPress)
	if err != nil {
		return err
	}

	ls, err := loadScene(sceneID, flagSnapConfig)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snapshot"})
	if flagLogPath != "" {
		var closeLog func() error
		logger, closeLog, err = newLogger(flagLogPath)
		if err != nil {
			return err
		}
		//nolint:errcheck // Best-effort close on exit
		defer closeLog()
	}

	latch := &core.ButtonLatch{}
	e := engine.New(ls.scene, ls.fb, latch, engine.Options{
		Runtime:     ls.runtime,
		PlayerSpeed: ls.cfg.Player.Speed,
		Level:       ls.cfg.Level,
		Logger:      logger,
	})
	e.Start()

	steps := simulate(e, latch, flagSnapSteps, presses)
	logger.Info("snapshot done", "steps", steps, "score", ls.scene.Score(), "state", ls.scene.State().String())

	switch flagSnapFormat {
	case "cells":
		for _, row := range ls.fb.Cells() {
			var sb strings.Builder
			for _, c := range row {
				sb.WriteRune(c.Rune)
			}
			fmt.Fprintln(w, sb.String())
		}
	default:
		fmt.Fprintln(w, ls.fb.String())
	}
	fmt.Fprintf(w, "steps=%d score=%d state=%s\n", steps, ls.scene.Score(), ls.scene.State())
	return nil
}

// simulate drives the engine from one goroutine for up to steps physics
// steps, rendering after each, and stops early on game over.
// Returns the number of physics steps run.
func simulate(e *engine.Engine, latch *core.ButtonLatch, steps int, presses map[int]core.Buttons) int {
	sc := e.Scene()
	done := 0
	for done < steps && !sc.GameOver() {
		if b := presses[done]; b != 0 {
			latch.Press(b)
		}
		for !e.Tick() {
			if sc.GameOver() {
				return done
			}
		}
		e.RenderPending()
		done++
	}
	// draw the game-over banner if the last step ended the game
	e.RenderPending()
	return done
}
