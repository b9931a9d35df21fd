package rover

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sims/internal/config"
	"github.com/vovakirdan/tui-sims/internal/core"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

const (
	headerRows = 1
	footerRows = 1
)

// Game adapts a Tunnel to the platform's fixed-tick loop.
type Game struct {
	cfg    config.RoverConfig
	geom   Geometry
	rover  rune
	wall   rune
	tunnel *Tunnel
}

// NewGame creates a Game from a validated config.
func NewGame(cfg config.RoverConfig) *Game {
	return &Game{
		cfg:   cfg,
		geom:  GeometryFrom(cfg),
		rover: config.Rune(cfg.Glyphs.Rover),
		wall:  config.Rune(cfg.Glyphs.Wall),
	}
}

// GeometryFrom converts the config sections into a Geometry.
func GeometryFrom(cfg config.RoverConfig) Geometry {
	return Geometry{
		Width:         cfg.Field.Width,
		Height:        cfg.Field.Height,
		CorridorWidth: cfg.Corridor.Width,
		InitialDrift:  cfg.Corridor.InitialDrift,
		Drift:         cfg.Corridor.Drift,
	}
}

func init() {
	registry.Register("rover", "Mars Rover", func(opts registry.Options) (registry.Game, error) {
		cfg, _, err := config.LoadRover(opts.ConfigPath, opts.Overrides)
		if err != nil {
			return nil, err
		}
		return NewGame(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "rover" }

// Title returns the display name.
func (g *Game) Title() string { return "Mars Rover" }

// Reset generates a new tunnel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tunnel = New(g.geom, core.NewRNG(cfg.Seed))
}

// Tunnel exposes the underlying engine.
func (g *Game) Tunnel() *Tunnel { return g.tunnel }

// Step applies the frame's commands in arrival order, then scrolls.
// A quit ends the run before the tunnel moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Sequence() {
		g.tunnel.Apply(CommandFor(a))
	}
	// ErrTerminated only means the run already ended; the state says so.
	_ = g.tunnel.Step()
	return core.StepResult{State: g.State()}
}

// State returns the score and whether the run has ended.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.tunnel.Score(), GameOver: !g.tunnel.Alive()}
}

// Tick returns the delay between steps.
func (g *Game) Tick() time.Duration { return g.cfg.Tick() }

// Size returns the field plus header and footer.
func (g *Game) Size() (w, h int) {
	return g.geom.Width, g.geom.Height + headerRows + footerRows
}

// Render draws the score, the corridor with the rover and the controls line.
// Once the run is over a box with the final score covers the field.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	t := g.tunnel

	dst.DrawTextColored(2, 0, fmt.Sprintf("MARS ROVER  |  Score: %d", t.Score()), core.ColorBrightYellow)

	roverRow := t.RoverRow()
	for r := 0; r < g.geom.Height; r++ {
		y := r + headerRows
		for x := 0; x < g.geom.Width; x++ {
			switch {
			case r == roverRow && x == t.RoverX():
				c := core.ColorCyan
				if t.Crashed() {
					c = core.ColorRed
				}
				dst.SetColored(x, y, g.rover, c)
			case !t.Inside(x, r):
				dst.SetColored(x, y, g.wall, core.ColorOrange)
			}
		}
	}

	dst.DrawTextColored(2, g.geom.Height+headerRows, "Arrow keys to steer  |  Q to quit", core.ColorGray)

	if !t.Alive() {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	msg := fmt.Sprintf("GAME OVER!  Final Score: %d", g.tunnel.Score())
	if len([]rune(msg))+4 > g.geom.Width {
		msg = fmt.Sprintf("Score: %d", g.tunnel.Score())
	}
	w := min(len([]rune(msg))+4, g.geom.Width)
	h := 3
	x := max(0, (g.geom.Width-w)/2)
	y := headerRows + max(0, (g.geom.Height-h)/2)

	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextCentered(y+1, msg, core.ColorRed)
}

// Summary returns the line printed after the run.
func (g *Game) Summary() string {
	return fmt.Sprintf("GAME OVER!  Final Score: %d", g.tunnel.Score())
}

// Stats implements registry.Reporter.
func (g *Game) Stats() []core.Stat {
	t := g.tunnel
	left := t.Row(t.RoverRow())
	return []core.Stat{
		{Name: "score", Value: t.Score()},
		{Name: "rover_x", Value: t.RoverX()},
		{Name: "corridor_left", Value: left},
		{Name: "margin", Value: min(t.RoverX()-left, left+g.geom.CorridorWidth-t.RoverX())},
	}
}

// Autopilot implements registry.Autopilot.
func (g *Game) Autopilot() core.Action {
	return Pilot(g.tunnel).Action()
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Reporter  = (*Game)(nil)
	_ registry.Autopilot = (*Game)(nil)
)
