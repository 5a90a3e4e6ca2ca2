package core

// Color is the foreground color of a screen cell, mapped to a terminal
// palette entry by the platform layer.
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
	ColorGray
	ColorDim
	ColorOrange
	ColorBrightCyan
)

// String returns the color name, used in test failure output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDim:
		return "dim"
	case ColorOrange:
		return "orange"
	case ColorBrightCyan:
		return "bright-cyan"
	default:
		return "unknown"
	}
}
