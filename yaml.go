package flatgrid

import (
	"io"

	"gopkg.in/yaml.v3"
)

func (g *Grid) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(g.Records()); err != nil {
		return err
	}
	return enc.Close()
}
