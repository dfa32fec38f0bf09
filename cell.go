package flatgrid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cell is a single grid slot: textual content plus optional layout and
// decoration settings. The zero value is an empty, undecorated cell.
//
// Content is stored verbatim. Newlines split it into display lines at render
// time, and measurement counts runes, not display columns.
type Cell struct {
	content string
	halign  HAlign
	valign  VAlign
	fg      Color
	bg      Color
	style   FontStyle

	width     int
	height    int
	widthSet  bool
	heightSet bool
}

// NewCell returns a cell holding text, with no explicit sizing or decoration.
func NewCell(text string) *Cell {
	return &Cell{content: text}
}

// CellOf converts v into a cell. *Cell values are adopted as-is, Cell values
// are copied, strings are taken verbatim, nil becomes an empty cell, and
// anything else renders through fmt.Sprint.
func CellOf(v any) *Cell {
	switch x := v.(type) {
	case *Cell:
		if x == nil {
			return NewCell("")
		}
		return x
	case Cell:
		return &x
	case string:
		return NewCell(x)
	case nil:
		return NewCell("")
	default:
		return NewCell(fmt.Sprint(v))
	}
}

// Clone returns an independent copy of the cell.
func (c *Cell) Clone() *Cell {
	out := *c
	return &out
}

// Content returns the cell's text exactly as stored.
func (c *Cell) Content() string { return c.content }

// SetContent replaces the cell's text. No validation or normalization is
// applied.
func (c *Cell) SetContent(text string) { c.content = text }

// Width returns the explicit width override when one is set, otherwise the
// rune count of the longest content line. An empty cell measures 0.
func (c *Cell) Width() int {
	if c.widthSet {
		return c.width
	}
	w := 0
	for _, line := range splitLines(c.content) {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

// Height returns the explicit height override when one is set, otherwise the
// number of content lines. An empty cell measures 0.
func (c *Cell) Height() int {
	if c.heightSet {
		return c.height
	}
	return len(splitLines(c.content))
}

// SetWidth fixes the cell's measured width regardless of content. Negative
// values clamp to zero.
func (c *Cell) SetWidth(w int) {
	c.width = max(w, 0)
	c.widthSet = true
}

// ClearWidth returns the cell to content-measured width.
func (c *Cell) ClearWidth() {
	c.width = 0
	c.widthSet = false
}

// SetHeight fixes the cell's measured height regardless of content. Negative
// values clamp to zero.
func (c *Cell) SetHeight(h int) {
	c.height = max(h, 0)
	c.heightSet = true
}

// ClearHeight returns the cell to content-measured height.
func (c *Cell) ClearHeight() {
	c.height = 0
	c.heightSet = false
}

// HAlign returns the horizontal alignment, HAlignNone when unset.
func (c *Cell) HAlign() HAlign { return c.halign }

// VAlign returns the vertical alignment, VAlignNone when unset.
func (c *Cell) VAlign() VAlign { return c.valign }

// SetHAlign sets horizontal alignment. HAlignNone returns the axis to unset.
func (c *Cell) SetHAlign(a HAlign) { c.halign = a }

// SetVAlign sets vertical alignment. VAlignNone returns the axis to unset.
func (c *Cell) SetVAlign(a VAlign) { c.valign = a }

// SetAlign sets whichever alignment axis the lookup name belongs to: "left",
// "right", and "center" are horizontal; "top", "bottom", and "middle" are
// vertical. Setting one axis never disturbs the other, and unrecognized
// names change nothing.
func (c *Cell) SetAlign(s string) {
	if h, ok := ParseHAlign(s); ok {
		c.halign = h
		return
	}
	if v, ok := ParseVAlign(s); ok {
		c.valign = v
	}
}

// Foreground returns the text color, ColorNone when unset.
func (c *Cell) Foreground() Color { return c.fg }

// Background returns the highlight color, ColorNone when unset.
func (c *Cell) Background() Color { return c.bg }

// SetForeground sets the text color. ColorNone returns it to unset.
func (c *Cell) SetForeground(col Color) { c.fg = col }

// SetBackground sets the highlight color. ColorNone returns it to unset.
func (c *Cell) SetBackground(col Color) { c.bg = col }

// SetColor sets the text color by lookup name ("red", "bright cyan", ...).
// Unrecognized names keep the current color.
func (c *Cell) SetColor(name string) {
	if col, ok := ParseColor(name); ok {
		c.fg = col
	}
}

// SetHighlight sets the background color by lookup name. Unrecognized names
// keep the current color.
func (c *Cell) SetHighlight(name string) {
	if col, ok := ParseColor(name); ok {
		c.bg = col
	}
}

// FontStyle returns the active style flags.
func (c *Cell) FontStyle() FontStyle { return c.style }

// SetFontStyle adds the given style flags to the cell.
func (c *Cell) SetFontStyle(f FontStyle) { c.style |= f }

// UnsetFontStyle removes the given style flags from the cell.
func (c *Cell) UnsetFontStyle(f FontStyle) { c.style &^= f }

// SetStyle adds one style flag by lookup name ("bold", "underline", ...).
// Unrecognized names change nothing.
func (c *Cell) SetStyle(name string) {
	if f, ok := ParseFontStyle(name); ok {
		c.style |= f
	}
}

// RemoveFormat clears alignment, colors, and style flags. Explicit width and
// height overrides are layout rather than format and stay in place.
func (c *Cell) RemoveFormat() {
	c.halign = HAlignNone
	c.valign = VAlignNone
	c.fg = ColorNone
	c.bg = ColorNone
	c.style = 0
}

// renderLines lays the cell out as exactly targetH lines, each targetW
// visible runes wide: vertical padding per the cell's vertical alignment
// using undecorated all-space lines, then each content line aligned or
// truncated horizontally. Content lines beyond targetH (possible only with
// an explicit height override below the line count) are dropped from the
// bottom.
func (c *Cell) renderLines(targetH, targetW int) []string {
	lines := splitLines(c.content)
	if len(lines) > targetH {
		lines = lines[:targetH]
	}
	pad := targetH - len(lines)
	before := 0
	switch c.valign {
	case VAlignBottom:
		before = pad
	case VAlignMiddle:
		before = pad / 2
	}
	blank := strings.Repeat(" ", targetW)
	out := make([]string, 0, targetH)
	for range before {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, c.renderLine(line, targetW))
	}
	for len(out) < targetH {
		out = append(out, blank)
	}
	return out
}

// renderLine pads or truncates one content line to targetW runes and applies
// the cell's decoration. Measurement happens before decoration, and padding
// spaces stay outside the escape sequences.
func (c *Cell) renderLine(line string, targetW int) string {
	n := utf8.RuneCountInString(line)
	if n > targetW {
		return c.decorate(truncateRunes(line, targetW))
	}
	pad := targetW - n
	left := 0
	switch c.halign {
	case HAlignRight:
		left = pad
	case HAlignCenter:
		left = pad / 2
	}
	return strings.Repeat(" ", left) + c.decorate(line) + strings.Repeat(" ", pad-left)
}

func (c *Cell) decorate(s string) string {
	return applyANSI(s, c.fg, c.bg, c.style)
}

// splitLines splits content into display lines. A trailing newline does not
// produce a final empty line, and empty content has no lines at all. Both \n
// and \r\n terminators are recognized.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// truncateRunes returns the first n runes of s, never slicing mid-rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
