package flatgrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling of exports.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrGridShape         = errors.New("unsupported grid shape")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	Plain    Format = "plain"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	List     Format = "list"
	ENV      Format = "env"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, Plain, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML, List, ENV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each grid row through a Go
// text/template. The template executes with the row's cell contents as a
// []string and every row is written on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Export writes the grid to w in the given format. Text is the bordered
// ANSI-decorated block; every other format works from the raw cell content.
func (g *Grid) Export(w io.Writer, f Format) error {
	switch f {
	case Text:
		return g.renderText(w)
	case Plain:
		return g.writePlain(w)
	case CSV:
		return g.writeCSV(w)
	case TSV:
		return g.writeTSV(w)
	case Markdown:
		return g.writeMarkdown(w)
	case HTML:
		return g.writeHTML(w)
	case JSON:
		return g.writeJSON(w)
	case JSONL:
		return g.writeJSONL(w)
	case YAML:
		return g.writeYAML(w)
	case List:
		return g.writeList(w)
	case ENV:
		return g.writeENV(w)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return g.writeGoTemplate(w, tmpl)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the grid in the given format and returns the bytes.
func (g *Grid) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Export(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columnAligns derives one alignment per column for formats that cannot
// express per-cell alignment: the first explicitly aligned cell in each
// column wins, scanning top-down.
func (g *Grid) columnAligns() []HAlign {
	out := make([]HAlign, g.cols)
	for c := range g.cols {
		for cell := range g.ColCells(c) {
			if a := cell.HAlign(); a != HAlignNone {
				out[c] = a
				break
			}
		}
	}
	return out
}
