package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sims/internal/core"
	"github.com/vovakirdan/tui-sims/internal/platform/tui"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

var flagPlayConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Run a simulation in the terminal",
	Long: `Start the specified simulation in the alternate screen.

Controls:
  Left/A/H    - Steer left (rover)
  Right/D/L   - Steer right (rover)
  Q/Esc/Ctrl+C - Quit

Configuration is read from --config, then ~/.sims/configs/<game>.yaml,
then ./configs/<game>.yaml, falling back to built-in defaults.

Examples:
  sims play life
  sims play rover --seed 7
  sims play life --config ./dense-life.yaml
  sims play life --rows 40 --cols 100 --density 0.2`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayConfig, "config", "", "Path to custom game config YAML")
	addLifeFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'sims list' to see available games)", gameID)
	}

	opts, err := gameOptions(cmd, gameID, flagPlayConfig)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs a terminal; use 'sims bench' for headless runs")
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, opts)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(fd); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	if w, h := game.Size(); cfg.ScreenW < w || cfg.ScreenH < h {
		logger.Warn("terminal smaller than the game frame", "need", fmt.Sprintf("%dx%d", w, h),
			"have", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	}

	if _, err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), game.Summary())
	return nil
}
