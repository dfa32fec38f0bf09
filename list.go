package flatgrid

import (
	"fmt"
	"io"
)

// List writes every cell's content on its own line, row-major.
func (g *Grid) writeList(w io.Writer) error {
	for cell := range g.Cells() {
		if _, err := fmt.Fprintln(w, cell.Content()); err != nil {
			return err
		}
	}
	return nil
}
