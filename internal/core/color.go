package core

// Color is the foreground color of a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

// Colors used by the simulations.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
