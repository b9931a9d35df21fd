// Package config provides YAML-based configuration for the simulations.
// Defaults mirror the fixed constants of each game; files only override them.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// LifeConfig contains all configuration for the Game of Life.
type LifeConfig struct {
	Grid   LifeGrid   `yaml:"grid"`
	TickMS int        `yaml:"tick_ms"`
	Glyphs LifeGlyphs `yaml:"glyphs"`
}

// LifeGrid defines the automaton grid.
type LifeGrid struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Density float64 `yaml:"density"` // 0.0 = empty, 1.0 = full
}

// LifeGlyphs defines how cells are drawn.
type LifeGlyphs struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

// RoverConfig contains all configuration for the rover tunnel game.
type RoverConfig struct {
	Field    RoverField    `yaml:"field"`
	Corridor RoverCorridor `yaml:"corridor"`
	TickMS   int           `yaml:"tick_ms"`
	Glyphs   RoverGlyphs   `yaml:"glyphs"`
}

// RoverField defines the playfield size in cells.
type RoverField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoverCorridor defines the tunnel shape.
type RoverCorridor struct {
	Width        int `yaml:"width"`
	InitialDrift int `yaml:"initial_drift"`
	Drift        int `yaml:"drift"`
}

// RoverGlyphs defines how the rover and walls are drawn.
type RoverGlyphs struct {
	Rover string `yaml:"rover"`
	Wall  string `yaml:"wall"`
}

// Tick returns the delay between generations.
func (c LifeConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Tick returns the delay between steps.
func (c RoverConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate reports every invalid field of the life config.
func (c LifeConfig) Validate() error {
	var errs []error
	if c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid.rows must be positive, got %d", c.Grid.Rows))
	}
	if c.Grid.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid.cols must be positive, got %d", c.Grid.Cols))
	}
	if c.Grid.Density < 0 || c.Grid.Density > 1 {
		errs = append(errs, fmt.Errorf("grid.density must be within [0, 1], got %g", c.Grid.Density))
	}
	if c.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.TickMS))
	}
	errs = append(errs, checkGlyph("glyphs.alive", c.Glyphs.Alive), checkGlyph("glyphs.dead", c.Glyphs.Dead))
	return errors.Join(errs...)
}

// Validate reports every invalid field of the rover config.
func (c RoverConfig) Validate() error {
	var errs []error
	if c.Field.Height < 2 {
		errs = append(errs, fmt.Errorf("field.height must be at least 2, got %d", c.Field.Height))
	}
	if c.Corridor.Width <= 0 {
		errs = append(errs, fmt.Errorf("corridor.width must be positive, got %d", c.Corridor.Width))
	}
	// Walls keep one column of frame on each side.
	if c.Field.Width < c.Corridor.Width+2 {
		errs = append(errs, fmt.Errorf("field.width must be at least corridor.width+2 (%d), got %d",
			c.Corridor.Width+2, c.Field.Width))
	}
	if c.Corridor.InitialDrift < 0 {
		errs = append(errs, fmt.Errorf("corridor.initial_drift must not be negative, got %d", c.Corridor.InitialDrift))
	}
	if c.Corridor.Drift < 0 {
		errs = append(errs, fmt.Errorf("corridor.drift must not be negative, got %d", c.Corridor.Drift))
	}
	if c.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.TickMS))
	}
	errs = append(errs, checkGlyph("glyphs.rover", c.Glyphs.Rover), checkGlyph("glyphs.wall", c.Glyphs.Wall))
	return errors.Join(errs...)
}

func checkGlyph(field, g string) error {
	if utf8.RuneCountInString(g) != 1 {
		return fmt.Errorf("%s must be a single character, got %q", field, g)
	}
	return nil
}

// Rune returns the first rune of a validated glyph.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}
