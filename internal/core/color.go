package core

// Color is a foreground colour for a screen cell.
// The platform maps it to an ANSI colour when drawing.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightGreen
	ColorOrange
	ColorGray
)
