// Package rover implements a scrolling tunnel the player steers a rover through.
//
// The tunnel is a profile of left-wall offsets, one per row, with row 0 at the
// top. Each step drops the bottom row, pushes a new row in at the top and
// checks whether the rover, fixed two rows above the bottom, sits inside the
// corridor.
package rover

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sims/internal/core"
)

// ErrTerminated is returned by Step once the run has ended.
var ErrTerminated = errors.New("rover: run already ended")

// Geometry describes the playfield and corridor shape.
type Geometry struct {
	Width         int // playfield columns
	Height        int // profile rows
	CorridorWidth int // distance from left wall to right wall
	InitialDrift  int // max per-row drift while generating the first profile
	Drift         int // max per-row drift while scrolling
}

// DefaultGeometry returns the classic 60x25 field with a 14-wide corridor.
func DefaultGeometry() Geometry {
	return Geometry{Width: 60, Height: 25, CorridorWidth: 14, InitialDrift: 1, Drift: 2}
}

// Validate reports every field that cannot form a playable tunnel.
func (g Geometry) Validate() error {
	var errs []error
	if g.Height < 2 {
		errs = append(errs, fmt.Errorf("height must be at least 2, got %d", g.Height))
	}
	if g.CorridorWidth < 1 {
		errs = append(errs, fmt.Errorf("corridor width must be positive, got %d", g.CorridorWidth))
	}
	if g.Width < g.CorridorWidth+2 {
		errs = append(errs, fmt.Errorf("width %d cannot hold a corridor of %d", g.Width, g.CorridorWidth))
	}
	if g.InitialDrift < 0 || g.Drift < 0 {
		errs = append(errs, fmt.Errorf("drift must not be negative, got %d/%d", g.InitialDrift, g.Drift))
	}
	return errors.Join(errs...)
}

func (g Geometry) minLeft() int { return 1 }
func (g Geometry) maxLeft() int { return g.Width - g.CorridorWidth - 1 }

func (g Geometry) clampLeft(left int) int {
	return core.Clamp(left, g.minLeft(), g.maxLeft())
}

// Tunnel is the full game state. It is not safe for concurrent use.
type Tunnel struct {
	geom    Geometry
	rng     core.Source
	profile []int
	roverX  int
	score   int
	alive   bool
	crashed bool
}

// New builds a tunnel with a random initial profile and the rover centred.
// It panics if geom is invalid.
func New(geom Geometry, rng core.Source) *Tunnel {
	mustValidate(geom)

	profile := make([]int, geom.Height)
	left := (geom.Width - geom.CorridorWidth) / 2
	for i := range profile {
		profile[i] = left
		left = geom.clampLeft(left + drift(rng, geom.InitialDrift))
	}

	return &Tunnel{
		geom:    geom,
		rng:     rng,
		profile: profile,
		roverX:  geom.Width / 2,
		alive:   true,
	}
}

// FromProfile builds a live tunnel from an explicit profile and rover column.
// Offsets are clamped into the corridor bounds. It panics if geom is invalid
// or the profile length does not match geom.Height.
func FromProfile(geom Geometry, profile []int, roverX int, rng core.Source) *Tunnel {
	mustValidate(geom)
	if len(profile) != geom.Height {
		panic(fmt.Sprintf("rover: profile has %d rows, geometry expects %d", len(profile), geom.Height))
	}

	p := make([]int, len(profile))
	for i, left := range profile {
		p[i] = geom.clampLeft(left)
	}

	return &Tunnel{
		geom:    geom,
		rng:     rng,
		profile: p,
		roverX:  core.Clamp(roverX, 0, geom.Width-1),
		alive:   true,
	}
}

func mustValidate(geom Geometry) {
	if err := geom.Validate(); err != nil {
		panic(fmt.Sprintf("rover: invalid geometry: %v", err))
	}
}

// drift returns a uniform value in [-d, d].
func drift(rng core.Source, d int) int {
	if d == 0 {
		return 0
	}
	return rng.IntN(2*d+1) - d
}

// Apply executes a command. Moves are clamped to the playfield and Quit ends
// the run. Commands after the run has ended are ignored.
func (t *Tunnel) Apply(cmd Command) {
	if !t.alive {
		return
	}
	switch cmd {
	case CommandLeft:
		if t.roverX > 0 {
			t.roverX--
		}
	case CommandRight:
		if t.roverX < t.geom.Width-1 {
			t.roverX++
		}
	case CommandQuit:
		t.alive = false
	}
}

// Step scrolls the tunnel one row, scores it and checks for a crash.
// It returns ErrTerminated without touching the state if the run has ended.
func (t *Tunnel) Step() error {
	if !t.alive {
		return ErrTerminated
	}

	copy(t.profile[1:], t.profile[:len(t.profile)-1])
	t.profile[0] = t.geom.clampLeft(t.profile[1] + drift(t.rng, t.geom.Drift))
	t.score++

	if !t.Inside(t.roverX, t.RoverRow()) {
		t.alive = false
		t.crashed = true
	}
	return nil
}

// Inside reports whether column x of row is open corridor. Both wall
// columns count as wall.
func (t *Tunnel) Inside(x, row int) bool {
	left := t.profile[row]
	return x > left && x < left+t.geom.CorridorWidth
}

// Row returns the left-wall offset of row i, 0 being the top.
func (t *Tunnel) Row(i int) int { return t.profile[i] }

// Profile returns a copy of all left-wall offsets, top row first.
func (t *Tunnel) Profile() []int {
	return append([]int(nil), t.profile...)
}

// RoverX returns the rover column.
func (t *Tunnel) RoverX() int { return t.roverX }

// RoverRow returns the row the rover occupies, used by both collision and drawing.
func (t *Tunnel) RoverRow() int { return t.geom.Height - 2 }

// Score returns the number of completed steps.
func (t *Tunnel) Score() int { return t.score }

// Alive reports whether the run is still going.
func (t *Tunnel) Alive() bool { return t.alive }

// Crashed reports whether the run ended by hitting a wall rather than quitting.
func (t *Tunnel) Crashed() bool { return t.crashed }

// Geometry returns the tunnel's geometry.
func (t *Tunnel) Geometry() Geometry { return t.geom }
