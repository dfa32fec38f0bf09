package flatgrid

import "strings"

// FontStyle is a bit set of terminal text attributes. Flags combine with
// bitwise OR and render in declaration order.
type FontStyle uint8

const (
	StyleBold FontStyle = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleBlink
	StyleReverse
	StyleHidden
	StyleStrike
)

// styleNames is indexed by bit position.
var styleNames = [...]string{
	"bold",
	"dim",
	"italic",
	"underline",
	"blink",
	"reverse",
	"hidden",
	"strike",
}

// Has reports whether every flag in f is set.
func (s FontStyle) Has(f FontStyle) bool { return s&f == f }

// With returns s with the flags in f added.
func (s FontStyle) With(f FontStyle) FontStyle { return s | f }

// Without returns s with the flags in f removed.
func (s FontStyle) Without(f FontStyle) FontStyle { return s &^ f }

// String returns the active flag names joined by "|", or "" when empty.
func (s FontStyle) String() string {
	if s == 0 {
		return ""
	}
	parts := make([]string, 0, len(styleNames))
	for bit, name := range styleNames {
		if s&(FontStyle(1)<<bit) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFontStyle maps a lookup name ("bold", "underline", ...) to a single
// style flag. Unrecognized names report ok == false. Names are lowercase.
func ParseFontStyle(s string) (FontStyle, bool) {
	for bit, name := range styleNames {
		if s == name {
			return FontStyle(1) << bit, true
		}
	}
	return 0, false
}
