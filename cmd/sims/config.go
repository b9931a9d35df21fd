package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sims/internal/config"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default configuration",
	Long: `Print the built-in YAML configuration of the specified game.
Save it to ~/.sims/configs/<game>.yaml or pass it with --config and edit
the values you want to change; missing keys keep their defaults.

Examples:
  sims config life > ~/.sims/configs/life.yaml
  sims config rover`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	data := config.GetDefaultYAML(gameID)
	if !registry.Exists(gameID) || data == nil {
		return fmt.Errorf("unknown game %q (run 'sims list' to see available games)", gameID)
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
