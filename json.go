package flatgrid

import (
	"encoding/json"
	"io"
)

func (g *Grid) writeJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(g.Records())
}
