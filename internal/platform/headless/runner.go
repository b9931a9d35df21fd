// Package headless runs a simulation without a terminal, sampling its
// statistics at a fixed step interval.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sims/internal/core"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

// ErrNoSteps is returned when a run is asked to take no steps.
var ErrNoSteps = errors.New("headless: steps must be positive")

// Options controls a headless run.
type Options struct {
	Steps  int   // maximum number of steps
	Every  int   // sample interval in steps; 0 picks about ten samples
	Seed   int64 // 0 picks one from the clock
	Logger *log.Logger
}

// Sample is the game's statistics after a given step.
type Sample struct {
	Step  int
	Stats []core.Stat
}

// Result summarises a headless run.
type Result struct {
	Game       string
	Seed       int64
	Steps      int // steps actually taken
	Samples    []Sample
	Final      core.GameState
	Elapsed    time.Duration
	Autopilot  bool
	EndedEarly bool // the game reached game over before Steps
}

// Run resets game and steps it as fast as possible. Games implementing
// registry.Autopilot steer themselves; registry.Reporter games provide the
// sampled statistics, others report their score.
func Run(ctx context.Context, game registry.Game, opts Options) (Result, error) {
	if opts.Steps <= 0 {
		return Result{}, ErrNoSteps
	}
	every := opts.Every
	if every <= 0 {
		every = max(1, opts.Steps/10)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game.Reset(core.RuntimeConfig{Seed: seed})
	pilot, hasPilot := game.(registry.Autopilot)

	res := Result{Game: game.ID(), Seed: seed, Autopilot: hasPilot}
	res.Samples = append(res.Samples, sample(game, 0))

	logger.Debug("bench started", "game", game.ID(), "steps", opts.Steps, "every", every, "seed", seed)
	start := time.Now()

	for res.Steps < opts.Steps {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			res.Final = game.State()
			return res, fmt.Errorf("headless: stopped after %d steps: %w", res.Steps, err)
		}

		in := core.NewInputFrame()
		if hasPilot {
			in.Set(pilot.Autopilot())
		}
		state := game.Step(in).State
		res.Steps++

		if res.Steps%every == 0 || state.GameOver || res.Steps == opts.Steps {
			res.Samples = append(res.Samples, sample(game, res.Steps))
			logger.Debug("sample", "step", res.Steps, "score", state.Score)
		}
		if state.GameOver {
			res.EndedEarly = res.Steps < opts.Steps
			break
		}
	}

	res.Elapsed = time.Since(start)
	res.Final = game.State()
	logger.Info("bench finished",
		"game", res.Game,
		"steps", res.Steps,
		"score", res.Final.Score,
		"game_over", res.Final.GameOver,
		"elapsed", res.Elapsed.Round(time.Microsecond),
	)
	return res, nil
}

func sample(game registry.Game, step int) Sample {
	if r, ok := game.(registry.Reporter); ok {
		return Sample{Step: step, Stats: r.Stats()}
	}
	return Sample{Step: step, Stats: []core.Stat{{Name: "score", Value: game.State().Score}}}
}
