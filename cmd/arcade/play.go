package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossing-arcade/internal/platform/tui"
	"github.com/vovakirdan/crossing-arcade/internal/registry"
	"github.com/vovakirdan/crossing-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/hjkl - Move one tile
  R/Esc       - Back to the start tile (R starts a new run after game over)
  D           - Toggle the collision overlay
  P           - Pause
  Esc/B       - Leave (while paused or after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Bugs spawn far apart, extra lives in hardcore
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fewer lives in hardcore
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play crossing
  arcade play crossing_hardcore --difficulty hard
  arcade play crossing --config ./my-crossing.yaml
  arcade play crossing --seed 42 --log-file crossing.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// The game still works without scores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), logger)
}
