package flatgrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Markdown renders a GitHub-flavored table. The first grid row serves as the
// header row. Markdown cells cannot hold raw newlines, so multiline content
// is flattened with <br> before sizing. Column sizing uses display width and
// alignment markers follow [Grid.columnAligns].
func (g *Grid) writeMarkdown(w io.Writer) error {
	rows := g.Records()
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		for i, cell := range row {
			cell = strings.ReplaceAll(cell, "\r\n", "\n")
			row[i] = strings.ReplaceAll(cell, "\n", "<br>")
		}
	}

	// Column widths (minimum 3 for alignment markers).
	widths := make([]int, g.cols)
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	aligns := g.columnAligns()

	if err := writeMarkdownRow(w, rows[0], widths, aligns); err != nil {
		return err
	}

	sep := make([]string, g.cols)
	for i, width := range widths {
		switch aligns[i] {
		case HAlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case HAlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []HAlign) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
