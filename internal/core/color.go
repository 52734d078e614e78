package core

// Color is a semantic foreground color for a screen cell.
// The platform layer decides how each color is drawn in the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorWhite
	ColorGray
	ColorCyan
	ColorHighlight // cursor and selection
)

// TokenColors lists the colors used for tokens, in palette order.
var TokenColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}
