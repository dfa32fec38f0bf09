// Package flatgrid lays out tabular data as formatted text.
//
// A [Grid] is a rectangular arrangement of [Cell] values stored row-major in
// a single flat slice. Each cell holds verbatim text content plus optional
// layout and decoration settings: alignment on both axes, explicit size
// overrides, one of 16 terminal colors for foreground and background, and a
// bit set of font styles. Rendering measures every cell, sizes each row to
// its tallest cell and each column to its widest, and composes a bordered
// block in which every cell occupies exactly its row height and column
// width:
//
//	g := flatgrid.From([][]string{{"a", "bb"}, {"ccc", "d"}})
//	fmt.Print(g)
//	//  ┌─────┬────┐
//	//  │ a   │ bb │
//	//  ├─────┼────┤
//	//  │ ccc │ d  │
//	//  └─────┴────┘
//
// # Cells
//
// Cells are created implicitly from any value ([CellOf]), or explicitly with
// [NewCell]. Multiline content is split on newlines at render time.
// Measurement counts runes: explicit overrides ([Cell.SetWidth],
// [Cell.SetHeight]) replace the measured size, and content that exceeds its
// target is truncated at rune boundaries, never mid-encoding.
//
// Alignment is set per axis with [Cell.SetHAlign] and [Cell.SetVAlign], or by
// lookup name with [Cell.SetAlign] ("left", "right", "center" horizontal;
// "top", "bottom", "middle" vertical). Colors and styles follow the same
// pattern: typed setters ([Cell.SetForeground], [Cell.SetFontStyle]) next to
// name lookups ([Cell.SetColor], [Cell.SetHighlight], [Cell.SetStyle]).
// Unrecognized names never disturb the current value. [Cell.RemoveFormat]
// clears alignment, colors, and styles but keeps explicit sizing.
//
// # Grid Operations
//
// [New] builds an empty rows×cols grid, [From] converts a 2D slice, and
// [FromSeq]/[FromChan] collect rows from an iterator or channel. Cells are
// addressed by (row, col); structural edits ([Grid.InsertRow],
// [Grid.InsertCol], [Grid.RemoveRow], [Grid.RemoveCol], [Grid.SetRow],
// [Grid.SetCol], [Grid.Resize]) move cells without copying, so formatting
// travels with content. Row and column values are padded with empty cells or
// truncated to fit the crossing dimension.
//
// Bounds-checked operations come in two forms: a reporting form returning an
// error that wraps [ErrRowIndexOutOfBounds], [ErrColIndexOutOfBounds], or
// [ErrRowAndColIndexOutOfBounds], and a panicking Must form for callers that
// treat a bad index as programmer error:
//
//	cell, err := g.Cell(r, c) // reporting
//	cell := g.MustCell(r, c)  // infallible
//
// [Grid.RowCells], [Grid.ColCells], and [Grid.Cells] iterate lazily; an
// out-of-range index yields an empty sequence.
//
// # Rendering and Export
//
// [Grid.String] renders the bordered ANSI-decorated block. [Grid.Export]
// writes the grid to an io.Writer in any [Format], and [Grid.Marshal]
// returns the bytes:
//
//	g.Export(os.Stdout, flatgrid.Markdown)
//	b, err := g.Marshal(flatgrid.JSON)
//
// Structured formats (CSV, TSV, JSON, JSONL, YAML, List, ENV) work from the
// raw cell content. Markdown and Plain lay text out by display width, so
// East Asian wide runes stay aligned in exported tables. Use [GoTemplate] to
// render each row through a Go [text/template] with the row's cell contents
// as a []string:
//
//	g.Export(os.Stdout, flatgrid.GoTemplate("{{index . 0}}={{index . 1}}"))
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]; it
// recognizes all static formats and "go-template=<tmpl>" strings.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrRowIndexOutOfBounds]: row index outside the grid
//   - [ErrColIndexOutOfBounds]: column index outside the grid
//   - [ErrRowAndColIndexOutOfBounds]: both indices outside the grid
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrGridShape]: grid shape unsuited to the format (ENV needs 2 columns)
package flatgrid
