package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sims/internal/platform/headless"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

var (
	flagBenchConfig string
	flagSteps       int
	flagEvery       int
)

var benchCmd = &cobra.Command{
	Use:   "bench <game>",
	Short: "Run a simulation headless and print sampled stats",
	Long: `Step the specified simulation as fast as possible without a terminal UI.
Statistics are sampled every --every steps and printed as a table.
The rover steers itself with its autopilot.

Examples:
  sims bench life --steps 1000
  sims bench life --rows 200 --cols 200 --density 0.1
  sims bench rover --steps 10000 --every 1000 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&flagBenchConfig, "config", "", "Path to custom game config YAML")
	benchCmd.Flags().IntVar(&flagSteps, "steps", 1000, "Maximum number of steps")
	benchCmd.Flags().IntVar(&flagEvery, "every", 0, "Sample interval in steps (0 = about ten samples)")
	addLifeFlags(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'sims list' to see available games)", gameID)
	}

	opts, err := gameOptions(cmd, gameID, flagBenchConfig)
	if err != nil {
		return err
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := headless.Run(ctx, game, headless.Options{
		Steps:  flagSteps,
		Every:  flagEvery,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), headless.Report(res))
	return nil
}
