package flatgrid

import "strings"

// Border glyph segments. Every segment carries its surrounding spaces so
// border lines and content lines stay column-aligned without extra padding
// logic in the render loop.
const (
	borderFill     = "─"
	borderVertical = " │ "
)

// borderTier is one horizontal rule of the frame: its cap glyphs and the
// intersection glyph between adjacent columns.
type borderTier struct {
	left, mid, right string
}

var (
	borderTop    = borderTier{left: " ┌─", mid: "─┬─", right: "─┐ "}
	borderMiddle = borderTier{left: " ├─", mid: "─┼─", right: "─┤ "}
	borderBottom = borderTier{left: " └─", mid: "─┴─", right: "─┘ "}
)

// renderBorder draws one border line: a fill run per column width, joined by
// the tier's intersection glyph and capped at both ends. A grid with no
// columns still gets its caps.
func renderBorder(widths []int, tier borderTier) string {
	runs := make([]string, len(widths))
	for i, w := range widths {
		runs[i] = strings.Repeat(borderFill, w)
	}
	return tier.left + strings.Join(runs, tier.mid) + tier.right
}
