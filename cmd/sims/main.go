// sims runs terminal simulations: Conway's Game of Life and a Mars rover
// tunnel game.
//
// Usage:
//
//	sims list                 - List available simulations
//	sims play <game>          - Run a simulation in the terminal
//	sims bench <game>         - Run a simulation headless and print stats
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible runs
//	--log-file <path>  - Write logs to a file instead of stderr
//	--verbose          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-sims/internal/life"
	_ "github.com/vovakirdan/tui-sims/internal/rover"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sims",
	Short: "Terminal simulations: Game of Life and Mars Rover",
	Long: `sims runs small fixed-timestep simulations in your terminal.

Available commands:
  list     - Show all available simulations
  play     - Run a simulation interactively
  bench    - Run a simulation headless and print sampled stats

Examples:
  sims list
  sims play life
  sims play rover --seed 42
  sims bench rover --steps 5000 --every 500`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}
