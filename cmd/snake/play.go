package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of snake in the terminal.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start
  P            - Pause / resume
  Space        - Pause / resume, or reset after game over
  R            - Reset
  Ctrl+S       - Save a PNG screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at 200ms per move
  normal - Start at 150ms per move
  hard   - Start at 100ms per move
  fixed  - No speed ramp, stays at the config's initial speed

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Directory for ctrl+s screenshots (default: ~/.snake/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	if name := playerName(); name != "" {
		rc.Player = name
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Config:        cfg,
		Runtime:       rc,
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	}
	// A nil *storage.Store must not become a non-nil interface
	if store != nil {
		opts.Store = store
	}

	logger.Info("starting terminal game", "player", rc.Player, "seed", rc.Seed)
	return tui.Run(opts)
}
