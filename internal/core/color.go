package core

// Color is a foreground color for a screen cell, mapped to ANSI colors by
// the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)
