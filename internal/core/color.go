package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for scene elements and dream themes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorPurple
	ColorPink
	ColorGold
	ColorBrown
	ColorLavender
)

var colorNames = map[string]Color{
	"default":  ColorDefault,
	"red":      ColorRed,
	"green":    ColorGreen,
	"yellow":   ColorYellow,
	"blue":     ColorBlue,
	"magenta":  ColorMagenta,
	"cyan":     ColorCyan,
	"white":    ColorWhite,
	"gray":     ColorGray,
	"orange":   ColorOrange,
	"purple":   ColorPurple,
	"pink":     ColorPink,
	"gold":     ColorGold,
	"brown":    ColorBrown,
	"lavender": ColorLavender,
}

// ParseColor resolves a color name used in configuration files.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
