package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play snake on a pixel canvas.

The window is grid.size * grid.cell_size pixels square (400x400 by default).
The window title shows the current score.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start
  P            - Pause / resume
  Space        - Pause / resume, or reset after game over
  R            - Reset
  Esc/Q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := desktop.Options{
		Config: cfg,
		Seed:   flagSeed,
		Player: playerName(),
		Logger: logger,
	}
	if store != nil {
		opts.Store = store
	}

	logger.Info("opening window", "size", cfg.Grid.CanvasSize())
	return desktop.Run(opts)
}
