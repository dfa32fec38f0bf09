package flatgrid

import (
	"encoding/json"
	"io"
)

func (g *Grid) writeJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, row := range g.Records() {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
