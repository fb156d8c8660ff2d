// shapemotion animates layered shapes inside a fence in the terminal.
//
// Usage:
//
//	shapemotion list                - List available scenes
//	shapemotion play <scene>        - Run a scene interactively
//	shapemotion menu                - Pick scenes from a menu
//	shapemotion snapshot <scene>    - Run a scene headless and print the frame
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate (default: scene's, 15)
//	--divisor <n>       - Override ticks per physics step (default: scene's, 3)
//	--log <path>        - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDivisor int
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapemotion",
	Short: "Shape motion - layered shapes bouncing in your terminal",
	Long: `Shape motion runs scenes of layered shapes that move inside a fence.
A player shape steered with the S1/S2 buttons (left/right keys) must avoid
the obstacles; the game ends on the first collision.

Available commands:
  list      - Show all available scenes
  play      - Run a scene interactively
  menu      - Interactive scene picker
  snapshot  - Run a scene headless and print the final frame

Examples:
  shapemotion list
  shapemotion play asteroids
  shapemotion play bounce --backend tcell
  shapemotion menu
  shapemotion snapshot asteroids --steps 40 --press 5:left`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = scene's)")
	rootCmd.PersistentFlags().IntVar(&flagDivisor, "divisor", 0, "Ticks per physics step override (0 = scene's)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default: no logging while playing)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
}
