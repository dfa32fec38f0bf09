package flatgrid

import (
	"fmt"
	"io"
	"strings"
)

// TSV joins fields verbatim: content holding tabs or newlines is the
// caller's concern, matching the usual loose TSV convention.
func (g *Grid) writeTSV(w io.Writer) error {
	for _, row := range g.Records() {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
