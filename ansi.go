package flatgrid

import "strings"

// ansiReset clears all colors and styles.
const ansiReset = "\x1b[0m"

// Foreground escape sequences indexed by Color (SGR 30-37, bright 90-97).
var ansiForeground = [...]string{
	ColorBlack:         "\x1b[30m",
	ColorRed:           "\x1b[31m",
	ColorGreen:         "\x1b[32m",
	ColorYellow:        "\x1b[33m",
	ColorBlue:          "\x1b[34m",
	ColorMagenta:       "\x1b[35m",
	ColorCyan:          "\x1b[36m",
	ColorWhite:         "\x1b[37m",
	ColorBrightBlack:   "\x1b[90m",
	ColorBrightRed:     "\x1b[91m",
	ColorBrightGreen:   "\x1b[92m",
	ColorBrightYellow:  "\x1b[93m",
	ColorBrightBlue:    "\x1b[94m",
	ColorBrightMagenta: "\x1b[95m",
	ColorBrightCyan:    "\x1b[96m",
	ColorBrightWhite:   "\x1b[97m",
}

// Background escape sequences indexed by Color (SGR 40-47, bright 100-107).
var ansiBackground = [...]string{
	ColorBlack:         "\x1b[40m",
	ColorRed:           "\x1b[41m",
	ColorGreen:         "\x1b[42m",
	ColorYellow:        "\x1b[43m",
	ColorBlue:          "\x1b[44m",
	ColorMagenta:       "\x1b[45m",
	ColorCyan:          "\x1b[46m",
	ColorWhite:         "\x1b[47m",
	ColorBrightBlack:   "\x1b[100m",
	ColorBrightRed:     "\x1b[101m",
	ColorBrightGreen:   "\x1b[102m",
	ColorBrightYellow:  "\x1b[103m",
	ColorBrightBlue:    "\x1b[104m",
	ColorBrightMagenta: "\x1b[105m",
	ColorBrightCyan:    "\x1b[106m",
	ColorBrightWhite:   "\x1b[107m",
}

// Style escape sequences indexed by FontStyle bit position
// (SGR 1-5 and 7-9; 6 is unused by terminals).
var ansiStyles = [...]string{
	"\x1b[1m", // bold
	"\x1b[2m", // dim
	"\x1b[3m", // italic
	"\x1b[4m", // underline
	"\x1b[5m", // blink
	"\x1b[7m", // reverse
	"\x1b[8m", // hidden
	"\x1b[9m", // strike
}

// applyANSI wraps s with the escape sequences for the given decoration and a
// single trailing reset: foreground first, then background, then styles in
// declaration order. It returns s unchanged when nothing is active, so
// undecorated output stays byte-clean.
func applyANSI(s string, fg, bg Color, style FontStyle) string {
	if fg == ColorNone && bg == ColorNone && style == 0 {
		return s
	}
	var b strings.Builder
	if fg != ColorNone {
		b.WriteString(ansiForeground[fg])
	}
	if bg != ColorNone {
		b.WriteString(ansiBackground[bg])
	}
	for bit := range ansiStyles {
		if style&(FontStyle(1)<<bit) != 0 {
			b.WriteString(ansiStyles[bit])
		}
	}
	b.WriteString(s)
	b.WriteString(ansiReset)
	return b.String()
}
