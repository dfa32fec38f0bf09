package flatgrid

import (
	"fmt"
	"io"
)

// ENV writes KEY=VALUE lines: column 0 is the key, column 1 the value, any
// further columns are ignored. Grids narrower than two columns cannot be
// expressed as pairs.
func (g *Grid) writeENV(w io.Writer) error {
	if g.cols < 2 {
		return fmt.Errorf("%w: format %q requires at least 2 columns, grid has %d", ErrGridShape, ENV, g.cols)
	}
	for r := range g.rows {
		key := g.cells[g.index(r, 0)].Content()
		val := g.cells[g.index(r, 1)].Content()
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, val); err != nil {
			return err
		}
	}
	return nil
}
