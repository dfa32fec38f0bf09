package flatgrid

import (
	"fmt"
	"html"
	"io"
)

// HTML renders a <table> with one <td> per cell. Content is escaped, and
// cells with non-default horizontal alignment carry a text-align style.
func (g *Grid) writeHTML(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for r := range g.rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for c := range g.cols {
			cell := g.cells[g.index(r, c)]
			style := alignStyle(cell.HAlign())
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(cell.Content())); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(a HAlign) string {
	switch a {
	case HAlignRight:
		return ` style="text-align: right"`
	case HAlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
