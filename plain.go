package flatgrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Plain renders borderless columns separated by two spaces: multiline cells
// expand to one visual line per content line and trailing spaces are
// trimmed. Sizing uses display width so East Asian wide runes stay aligned
// on screen. Plain reflows content only; explicit cell sizing, vertical
// alignment, and ANSI decoration belong to the Text format.
func (g *Grid) writePlain(w io.Writer) error {
	// Per-column display width over every content line.
	widths := make([]int, g.cols)
	for c := range g.cols {
		for cell := range g.ColCells(c) {
			for _, line := range splitLines(cell.Content()) {
				if lw := runewidth.StringWidth(line); lw > widths[c] {
					widths[c] = lw
				}
			}
		}
	}

	for r := range g.rows {
		height := 0
		lines := make([][]string, g.cols)
		for c := range g.cols {
			lines[c] = splitLines(g.cells[g.index(r, c)].Content())
			height = max(height, len(lines[c]))
		}
		for ln := range height {
			parts := make([]string, g.cols)
			for c := range parts {
				s := ""
				if ln < len(lines[c]) {
					s = lines[c][ln]
				}
				parts[c] = alignCell(s, widths[c], g.cells[g.index(r, c)].HAlign())
			}
			row := strings.TrimRight(strings.Join(parts, "  "), " ")
			if _, err := fmt.Fprintln(w, row); err != nil {
				return err
			}
		}
	}
	return nil
}

// alignCell pads s to width display columns per align. Strings at or beyond
// width pass through unchanged.
func alignCell(s string, width int, align HAlign) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case HAlignRight:
		return strings.Repeat(" ", pad) + s
	case HAlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
