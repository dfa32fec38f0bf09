package flatgrid_test

import (
	"bytes"
	"errors"
	"iter"
	"testing"

	"github.com/ganpm/flatgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    flatgrid.Format
		wantErr require.ErrorAssertionFunc
	}{
		"text":        {input: "text", want: flatgrid.Text, wantErr: require.NoError},
		"plain":       {input: "plain", want: flatgrid.Plain, wantErr: require.NoError},
		"csv":         {input: "csv", want: flatgrid.CSV, wantErr: require.NoError},
		"tsv":         {input: "tsv", want: flatgrid.TSV, wantErr: require.NoError},
		"markdown":    {input: "markdown", want: flatgrid.Markdown, wantErr: require.NoError},
		"html":        {input: "html", want: flatgrid.HTML, wantErr: require.NoError},
		"json":        {input: "json", want: flatgrid.JSON, wantErr: require.NoError},
		"jsonl":       {input: "jsonl", want: flatgrid.JSONL, wantErr: require.NoError},
		"yaml":        {input: "yaml", want: flatgrid.YAML, wantErr: require.NoError},
		"list":        {input: "list", want: flatgrid.List, wantErr: require.NoError},
		"env":         {input: "env", want: flatgrid.ENV, wantErr: require.NoError},
		"go-template": {input: "go-template={{.}}", want: flatgrid.GoTemplate("{{.}}"), wantErr: require.NoError},
		"unknown":     {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := flatgrid.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatErrorKind(t *testing.T) {
	t.Parallel()
	_, err := flatgrid.ParseFormat("xml")
	assert.ErrorIs(t, err, flatgrid.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := flatgrid.Formats()
	assert.Equal(t, []flatgrid.Format{
		flatgrid.Text, flatgrid.Plain, flatgrid.CSV, flatgrid.TSV,
		flatgrid.Markdown, flatgrid.HTML, flatgrid.JSON, flatgrid.JSONL,
		flatgrid.YAML, flatgrid.List, flatgrid.ENV,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, flatgrid.Text, flatgrid.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "text", flatgrid.Text.String())
	assert.Equal(t, "markdown", flatgrid.Markdown.String())
}

func TestExportUnknownFormat(t *testing.T) {
	t.Parallel()
	g := flatgrid.New(1, 1)
	var buf bytes.Buffer
	err := g.Export(&buf, flatgrid.Format("xml"))
	assert.ErrorIs(t, err, flatgrid.ErrUnsupportedFormat)
}

func TestExportText(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Text))
	assert.Equal(t, g.String(), buf.String())
}

func TestExportCSV(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data [][]string
		want string
	}{
		"simple":           {data: [][]string{{"a", "b"}, {"c", "d"}}, want: "a,b\nc,d\n"},
		"embedded comma":   {data: [][]string{{"a", "b,c"}}, want: "a,\"b,c\"\n"},
		"embedded newline": {data: [][]string{{"x\ny", "z"}}, want: "\"x\ny\",z\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, flatgrid.From(tt.data).Export(&buf, flatgrid.CSV))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExportTSV(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "b"}, {"c", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.TSV))
	assert.Equal(t, "a\tb\nc\td\n", buf.String())
}

func TestExportJSON(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.JSON))
	assert.Equal(t, `[["a","bb"],["ccc","d"]]`+"\n", buf.String())
}

func TestExportJSONEmptyGrid(t *testing.T) {
	t.Parallel()
	g := flatgrid.New(0, 0)
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.JSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExportJSONL(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.JSONL))
	assert.Equal(t, `["a","bb"]`+"\n"+`["ccc","d"]`+"\n", buf.String())
}

func TestExportYAML(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.YAML))
	assert.YAMLEq(t, "[[a, bb], [ccc, d]]", buf.String())
}

func TestExportList(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.List))
	assert.Equal(t, "a\nbb\nccc\nd\n", buf.String())
}

func TestExportENV(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"HOST", "localhost"}, {"PORT", "8080"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.ENV))
	assert.Equal(t, "HOST=localhost\nPORT=8080\n", buf.String())
}

func TestExportENVIgnoresExtraColumns(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"KEY", "value", "comment"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.ENV))
	assert.Equal(t, "KEY=value\n", buf.String())
}

func TestExportENVRejectsNarrowGrid(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"KEY"}})
	var buf bytes.Buffer
	err := g.Export(&buf, flatgrid.ENV)
	assert.ErrorIs(t, err, flatgrid.ErrGridShape)
}

func TestExportMarkdown(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"name", "qty"}, {"apple", "3"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Markdown))
	want := "| name  | qty |\n" +
		"| ----- | --- |\n" +
		"| apple | 3   |\n"
	assert.Equal(t, want, buf.String())
}

func TestExportMarkdownAlignmentMarkers(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"name", "qty"}, {"apple", "3"}})
	g.MustCell(0, 1).SetAlign("right")
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Markdown))
	want := "| name  | qty |\n" +
		"| ----- | --: |\n" +
		"| apple |   3 |\n"
	assert.Equal(t, want, buf.String())
}

func TestExportMarkdownCenterMarker(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"ab"}})
	g.MustCell(0, 0).SetAlign("center")
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Markdown))
	assert.Equal(t, "| ab  |\n| :-: |\n", buf.String())
}

func TestExportMarkdownFlattensNewlines(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"h1", "h2"}, {"a\nb", "c"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Markdown))
	want := "| h1     | h2  |\n" +
		"| ------ | --- |\n" +
		"| a<br>b | c   |\n"
	assert.Equal(t, want, buf.String())
}

func TestExportMarkdownUsesDisplayWidth(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"日本", "x"}, {"ab", "y"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Markdown))
	want := "| 日本 | x   |\n" +
		"| ---- | --- |\n" +
		"| ab   | y   |\n"
	assert.Equal(t, want, buf.String())
}

func TestExportMarkdownEmptyGrid(t *testing.T) {
	t.Parallel()
	g := flatgrid.New(0, 0)
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Markdown))
	assert.Equal(t, "", buf.String())
}

func TestExportHTML(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"<x>", "y"}})
	g.MustCell(0, 1).SetAlign("right")
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.HTML))
	want := "<table>\n" +
		"  <tbody>\n" +
		"    <tr>\n" +
		"      <td>&lt;x&gt;</td>\n" +
		"      <td style=\"text-align: right\">y</td>\n" +
		"    </tr>\n" +
		"  </tbody>\n" +
		"</table>\n"
	assert.Equal(t, want, buf.String())
}

func TestExportPlain(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Plain))
	assert.Equal(t, "a    bb\nccc  d\n", buf.String())
}

func TestExportPlainMultiline(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"1\n2", "x"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Plain))
	assert.Equal(t, "1  x\n2\n", buf.String())
}

func TestExportPlainAlignment(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "x"}, {"bbb", "y"}})
	g.MustCell(0, 0).SetAlign("right")
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Plain))
	assert.Equal(t, "  a  x\nbbb  y\n", buf.String())
}

func TestExportPlainUsesDisplayWidth(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"日本", "x"}, {"ab", "y"}})
	var buf bytes.Buffer
	require.NoError(t, g.Export(&buf, flatgrid.Plain))
	assert.Equal(t, "日本  x\nab    y\n", buf.String())
}

func TestExportGoTemplate(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"HOST", "localhost"}, {"PORT", "8080"}})
	var buf bytes.Buffer
	f := flatgrid.GoTemplate("{{index . 0}} -> {{index . 1}}")
	require.NoError(t, g.Export(&buf, f))
	assert.Equal(t, "HOST -> localhost\nPORT -> 8080\n", buf.String())
}

func TestExportGoTemplateInvalid(t *testing.T) {
	t.Parallel()
	g := flatgrid.New(1, 1)
	var buf bytes.Buffer
	err := g.Export(&buf, flatgrid.GoTemplate("{{"))
	assert.ErrorIs(t, err, flatgrid.ErrInvalidTemplate)
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a", "b"}})
	got, err := g.Marshal(flatgrid.CSV)
	require.NoError(t, err)
	assert.Equal(t, []byte("a,b\n"), got)
}

func TestMarshalError(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"only"}})
	got, err := g.Marshal(flatgrid.ENV)
	assert.ErrorIs(t, err, flatgrid.ErrGridShape)
	assert.Nil(t, got)
}

func TestExportWriteErrors(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"k", "v"}})
	for _, f := range flatgrid.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			assert.Error(t, g.Export(&errWriter{}, f))
		})
	}
}

func TestExportTextMidWriteError(t *testing.T) {
	t.Parallel()
	g := flatgrid.From([][]string{{"a"}, {"b"}})
	w := &failAfterN{n: 2}
	assert.Error(t, g.Export(w, flatgrid.Text))
}

func TestFromSeq(t *testing.T) {
	t.Parallel()
	var seq iter.Seq[[]string] = func(yield func([]string) bool) {
		for _, row := range [][]string{{"a", "b"}, {"c"}} {
			if !yield(row) {
				return
			}
		}
	}
	g := flatgrid.FromSeq(seq)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", ""}}, g.Records())
}

func TestFromSeqEmpty(t *testing.T) {
	t.Parallel()
	var seq iter.Seq[[]string] = func(yield func([]string) bool) {}
	g := flatgrid.FromSeq(seq)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
}

func TestFromChan(t *testing.T) {
	t.Parallel()
	ch := make(chan []int, 2)
	ch <- []int{1, 2}
	ch <- []int{3}
	close(ch)
	g := flatgrid.FromChan(ch)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", ""}}, g.Records())
}
