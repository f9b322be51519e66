package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/game"
	"github.com/vovakirdan/cannon-arcade/internal/platform/tui"
	"github.com/vovakirdan/cannon-arcade/internal/platform/window"
)

// Frontend names accepted by --frontend.
const (
	FrontendTUI    = "tui"
	FrontendWindow = "window"
)

var (
	flagConfig   string
	flagFrontend string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls (terminal):
  Space      - Charge, press again to fire a shell
  Up/Down    - Change power while charging
  Left/Right - Move the cannon
  X          - Shoot a bullet
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

In a window, hold Space to charge and release it to fire.

Examples:
  cannon play
  cannon play --frontend window
  cannon play --config ./my-cannon.yaml
  cannon play --seed 42 --log-level debug --log-file cannon.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", FrontendTUI, "Frontend: tui or window")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFrontend != FrontendTUI && flagFrontend != FrontendWindow {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q (want %s or %s)\n", flagFrontend, FrontendTUI, FrontendWindow)
		os.Exit(1)
	}

	rt, err := runtimeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rt.WorldW = cfg.World.Width
	rt.WorldH = cfg.World.Height

	logger, closeLog, err := newLogger(flagFrontend == FrontendTUI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := game.NewSession(cfg, rt, logger)

	var runErr error
	switch flagFrontend {
	case FrontendWindow:
		runErr = window.Run(session, rt, logger)
	default:
		// Get terminal size before the program starts
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		runErr = tui.Run(session, rt, width, height, logger)
	}

	// Close log before potential exit
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt, nil
}
