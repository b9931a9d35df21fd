package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sims/internal/registry"
)

// lifeFlags maps the Game of Life shortcut flags to their config keys.
var lifeFlags = map[string]string{
	"rows":    "grid.rows",
	"cols":    "grid.cols",
	"density": "grid.density",
}

func addLifeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rows", 0, "Life grid rows (overrides config)")
	cmd.Flags().Int("cols", 0, "Life grid columns (overrides config)")
	cmd.Flags().Float64("density", 0, "Life initial alive probability in [0, 1] (overrides config)")
}

// gameOptions collects the config path and the life flags the user set.
// Unset flags leave the loaded config alone.
func gameOptions(cmd *cobra.Command, gameID, configPath string) (registry.Options, error) {
	opts := registry.Options{ConfigPath: configPath}

	for name, key := range lifeFlags {
		fl := cmd.Flags().Lookup(name)
		if fl == nil || !fl.Changed {
			continue
		}
		if gameID != "life" {
			return opts, fmt.Errorf("--%s only applies to life, not %q", name, gameID)
		}
		if opts.Overrides == nil {
			opts.Overrides = make(map[string]string)
		}
		opts.Overrides[key] = fl.Value.String()
	}
	return opts, nil
}
