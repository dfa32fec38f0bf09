package flatgrid

import (
	"fmt"
	"io"
	"text/template"
)

func (g *Grid) writeGoTemplate(w io.Writer, tmplStr string) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range g.Records() {
		if err := tmpl.Execute(w, row); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
