package life

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sims/internal/config"
	"github.com/vovakirdan/tui-sims/internal/core"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

// Game drives a Grid one generation per tick.
type Game struct {
	cfg        config.LifeConfig
	alive      rune
	dead       rune
	grid       Grid
	generation int
	stopped    bool
}

// NewGame creates a Game from a validated config.
func NewGame(cfg config.LifeConfig) *Game {
	return &Game{
		cfg:   cfg,
		alive: config.Rune(cfg.Glyphs.Alive),
		dead:  config.Rune(cfg.Glyphs.Dead),
	}
}

func init() {
	registry.Register("life", "Game of Life", func(opts registry.Options) (registry.Game, error) {
		cfg, _, err := config.LoadLife(opts.ConfigPath, opts.Overrides)
		if err != nil {
			return nil, err
		}
		return NewGame(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "life" }

// Title returns the display name.
func (g *Game) Title() string { return "Game of Life" }

// Reset seeds a fresh random grid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := core.NewRNG(cfg.Seed)
	g.grid = Seed(g.cfg.Grid.Rows, g.cfg.Grid.Cols, g.cfg.Grid.Density, rng)
	g.generation = 0
	g.stopped = false
}

// Step advances one generation. Quit stops the run; the automaton never
// ends on its own.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.stopped {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.stopped = true
		return core.StepResult{State: g.State()}
	}

	g.grid = g.grid.Next()
	g.generation++
	return core.StepResult{State: g.State()}
}

// State returns the generation count as the score.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.generation, GameOver: g.stopped}
}

// Tick returns the delay between generations.
func (g *Game) Tick() time.Duration { return g.cfg.Tick() }

// Size returns the header, boxed grid and footer dimensions.
func (g *Game) Size() (w, h int) {
	w = g.cfg.Grid.Cols + 2
	if hw := len([]rune(g.header())); hw > w {
		w = hw
	}
	return w, g.cfg.Grid.Rows + 4
}

// Grid returns the current generation.
func (g *Game) Grid() Grid { return g.grid }

// Generation returns the number of completed steps.
func (g *Game) Generation() int { return g.generation }

func (g *Game) header() string {
	alive := 0
	if g.grid.cells != nil {
		alive = g.grid.LiveCount()
	}
	return fmt.Sprintf("Generation %d  |  Alive: %d", g.generation, alive)
}

// Render draws the header, the grid inside a box and the quit hint.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, g.header(), core.ColorCyan)

	rows, cols := g.grid.Rows(), g.grid.Cols()
	dst.DrawBox(core.NewRect(0, 1, cols+2, rows+2), core.ColorGray)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.grid.At(r, c) {
				dst.SetColored(c+1, r+2, g.alive, core.ColorBrightGreen)
			} else {
				dst.Set(c+1, r+2, g.dead)
			}
		}
	}

	dst.DrawTextColored(0, rows+3, "Press Ctrl+C to quit.", core.ColorGray)
}

// Summary returns the line printed after the run.
func (g *Game) Summary() string {
	return fmt.Sprintf("Stopped after %d generations.", g.generation)
}

// Stats implements registry.Reporter.
func (g *Game) Stats() []core.Stat {
	return []core.Stat{
		{Name: "generation", Value: g.generation},
		{Name: "alive", Value: g.grid.LiveCount()},
	}
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Reporter = (*Game)(nil)
)
