package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// gameID is the registry entry the play command starts.
const gameID = "breakout"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game of Breakout.

Controls:
  Click        - Serve / continue
  Drag         - Move the paddle (it keeps the offset where you grabbed it)
  R            - Restart
  Ctrl+S       - Save a text screenshot to ~/.arcade/screenshots
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Wider paddle, slower ball, one extra ball
  normal - Default settings
  hard   - Narrower paddle, faster ball, one ball fewer

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("game %q is not registered", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
