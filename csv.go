package flatgrid

import (
	"encoding/csv"
	"io"
)

func (g *Grid) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, row := range g.Records() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
