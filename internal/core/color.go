package core

// Color tags a screen cell. The platform layer decides how each tag is
// drawn, so the simulation and renderer never see terminal escapes.
type Color uint8

// Cell colors. Obstacle skins use the warm colors, the runner sprite the
// greens and reds, the ground and HUD the rest.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
