package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

//go:embed defaults/rover.yaml
var defaultRoverYAML []byte

// DefaultLife returns the built-in Game of Life configuration.
func DefaultLife() LifeConfig {
	return LifeConfig{
		Grid: LifeGrid{
			Rows:    30,
			Cols:    60,
			Density: 0.30,
		},
		TickMS: 100,
		Glyphs: LifeGlyphs{
			Alive: "█",
			Dead:  " ",
		},
	}
}

// DefaultRover returns the built-in rover configuration.
func DefaultRover() RoverConfig {
	return RoverConfig{
		Field: RoverField{
			Width:  60,
			Height: 25,
		},
		Corridor: RoverCorridor{
			Width:        14,
			InitialDrift: 1,
			Drift:        2,
		},
		TickMS: 70,
		Glyphs: RoverGlyphs{
			Rover: "A",
			Wall:  "█",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "life":
		return defaultLifeYAML
	case "rover":
		return defaultRoverYAML
	default:
		return nil
	}
}
