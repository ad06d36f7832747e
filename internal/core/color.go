package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Colors used by the board, the food kinds and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorOrange
	ColorGray
)
