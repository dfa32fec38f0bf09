package flatgrid

// Color names one of the 16 standard terminal colors. The zero value
// ColorNone means unset; unset cells keep the terminal's default color.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var colorNames = [...]string{
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "bright black",
	ColorBrightRed:     "bright red",
	ColorBrightGreen:   "bright green",
	ColorBrightYellow:  "bright yellow",
	ColorBrightBlue:    "bright blue",
	ColorBrightMagenta: "bright magenta",
	ColorBrightCyan:    "bright cyan",
	ColorBrightWhite:   "bright white",
}

// String returns the lookup name of the color, or "" when unset.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return ""
}

// ParseColor maps a lookup name to a color. Bright variants are spelled with
// a space, e.g. "bright cyan". Unrecognized names report ok == false. Names
// are lowercase.
func ParseColor(s string) (Color, bool) {
	for c := ColorBlack; c <= ColorBrightWhite; c++ {
		if colorNames[c] == s {
			return c, true
		}
	}
	return ColorNone, false
}
