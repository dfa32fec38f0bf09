package flatgrid

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling. Row and column bounds are
// checked independently so the reported kind names the offending axis.
var (
	ErrRowIndexOutOfBounds       = errors.New("row index out of bounds")
	ErrColIndexOutOfBounds       = errors.New("column index out of bounds")
	ErrRowAndColIndexOutOfBounds = errors.New("row and column index out of bounds")
)

// Grid is a rectangular arrangement of cells stored row-major in one flat
// slice. Structural operations move cells rather than copying them, so
// formatting travels with content. A Grid is not safe for concurrent use.
type Grid struct {
	cells []*Cell
	rows  int
	cols  int
}

// New returns a rows×cols grid of empty cells. Negative dimensions clamp to
// zero.
func New(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	g := &Grid{
		cells: make([]*Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
	for i := range g.cells {
		g.cells[i] = NewCell("")
	}
	return g
}

// From builds a grid from rows of values. The column count is the longest
// row's length; shorter rows are padded with empty cells. Values convert per
// [CellOf].
func From[T any](data [][]T) *Grid {
	rows := len(data)
	cols := 0
	for _, row := range data {
		cols = max(cols, len(row))
	}
	g := New(rows, cols)
	for r, row := range data {
		for c, v := range row {
			g.cells[r*cols+c] = CellOf(v)
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(row, col int) int { return row*g.cols + col }

func (g *Grid) checkIndex(row, col int) error {
	rowOOB := row < 0 || row >= g.rows
	colOOB := col < 0 || col >= g.cols
	switch {
	case rowOOB && colOOB:
		return fmt.Errorf("%w: row %d, col %d in %dx%d grid", ErrRowAndColIndexOutOfBounds, row, col, g.rows, g.cols)
	case rowOOB:
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrRowIndexOutOfBounds, row, g.rows, g.cols)
	case colOOB:
		return fmt.Errorf("%w: col %d in %dx%d grid", ErrColIndexOutOfBounds, col, g.rows, g.cols)
	}
	return nil
}

// Cell returns the cell at (row, col) for reading or in-place mutation.
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if err := g.checkIndex(row, col); err != nil {
		return nil, err
	}
	return g.cells[g.index(row, col)], nil
}

// MustCell is [Grid.Cell] for callers that treat a bad index as programmer
// error: it panics where Cell reports.
func (g *Grid) MustCell(row, col int) *Cell {
	c, err := g.Cell(row, col)
	if err != nil {
		panic(err)
	}
	return c
}

// SetCell replaces the cell at (row, col) with v, converted per [CellOf].
func (g *Grid) SetCell(row, col int, v any) error {
	if err := g.checkIndex(row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)] = CellOf(v)
	return nil
}

// MustSetCell is [Grid.SetCell] that panics instead of reporting.
func (g *Grid) MustSetCell(row, col int, v any) {
	if err := g.SetCell(row, col, v); err != nil {
		panic(err)
	}
}

// SetCells overwrites cells row-major from vals. When vals run out the
// remaining cells become empty defaults; extra values are ignored.
func (g *Grid) SetCells(vals ...any) {
	for i := range g.cells {
		if i < len(vals) {
			g.cells[i] = CellOf(vals[i])
		} else {
			g.cells[i] = NewCell("")
		}
	}
}

// RowCells returns a lazy left-to-right traversal of row r. An out-of-range
// index yields an empty sequence.
func (g *Grid) RowCells(r int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		if r < 0 || r >= g.rows {
			return
		}
		for c := range g.cols {
			if !yield(g.cells[g.index(r, c)]) {
				return
			}
		}
	}
}

// ColCells returns a lazy top-to-bottom traversal of column c. An
// out-of-range index yields an empty sequence.
func (g *Grid) ColCells(c int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		if c < 0 || c >= g.cols {
			return
		}
		for r := range g.rows {
			if !yield(g.cells[g.index(r, c)]) {
				return
			}
		}
	}
}

// Cells returns a lazy row-major traversal of every cell.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// cellsOf converts vals to exactly n cells, padding with empty defaults or
// dropping extras.
func cellsOf(vals []any, n int) []*Cell {
	out := make([]*Cell, n)
	for i := range out {
		if i < len(vals) {
			out[i] = CellOf(vals[i])
		} else {
			out[i] = NewCell("")
		}
	}
	return out
}

// InsertRow inserts a row before index row; row == Rows() appends. Values
// convert per [CellOf] and are padded with empty cells or truncated to the
// column count.
func (g *Grid) InsertRow(row int, vals ...any) error {
	if row < 0 || row > g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrRowIndexOutOfBounds, row, g.rows, g.cols)
	}
	g.cells = slices.Insert(g.cells, row*g.cols, cellsOf(vals, g.cols)...)
	g.rows++
	return nil
}

// MustInsertRow is [Grid.InsertRow] that panics instead of reporting.
func (g *Grid) MustInsertRow(row int, vals ...any) {
	if err := g.InsertRow(row, vals...); err != nil {
		panic(err)
	}
}

// InsertCol inserts a column before index col; col == Cols() appends. Values
// convert per [CellOf] and are padded with empty cells or truncated to the
// row count.
func (g *Grid) InsertCol(col int, vals ...any) error {
	if col < 0 || col > g.cols {
		return fmt.Errorf("%w: col %d in %dx%d grid", ErrColIndexOutOfBounds, col, g.rows, g.cols)
	}
	added := cellsOf(vals, g.rows)
	cells := make([]*Cell, 0, g.rows*(g.cols+1))
	for r := range g.rows {
		start := r * g.cols
		cells = append(cells, g.cells[start:start+col]...)
		cells = append(cells, added[r])
		cells = append(cells, g.cells[start+col:start+g.cols]...)
	}
	g.cells = cells
	g.cols++
	return nil
}

// MustInsertCol is [Grid.InsertCol] that panics instead of reporting.
func (g *Grid) MustInsertCol(col int, vals ...any) {
	if err := g.InsertCol(col, vals...); err != nil {
		panic(err)
	}
}

// RemoveRow deletes row r, shifting later rows up by one.
func (g *Grid) RemoveRow(row int) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrRowIndexOutOfBounds, row, g.rows, g.cols)
	}
	g.cells = slices.Delete(g.cells, row*g.cols, (row+1)*g.cols)
	g.rows--
	return nil
}

// MustRemoveRow is [Grid.RemoveRow] that panics instead of reporting.
func (g *Grid) MustRemoveRow(row int) {
	if err := g.RemoveRow(row); err != nil {
		panic(err)
	}
}

// RemoveCol deletes column c, shifting later columns left by one.
func (g *Grid) RemoveCol(col int) error {
	if col < 0 || col >= g.cols {
		return fmt.Errorf("%w: col %d in %dx%d grid", ErrColIndexOutOfBounds, col, g.rows, g.cols)
	}
	cells := make([]*Cell, 0, g.rows*(g.cols-1))
	for r := range g.rows {
		start := r * g.cols
		cells = append(cells, g.cells[start:start+col]...)
		cells = append(cells, g.cells[start+col+1:start+g.cols]...)
	}
	g.cells = cells
	g.cols--
	return nil
}

// MustRemoveCol is [Grid.RemoveCol] that panics instead of reporting.
func (g *Grid) MustRemoveCol(col int) {
	if err := g.RemoveCol(col); err != nil {
		panic(err)
	}
}

// SetRow replaces every cell in row r. Values convert per [CellOf] and are
// padded with empty cells or truncated to the column count.
func (g *Grid) SetRow(row int, vals ...any) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrRowIndexOutOfBounds, row, g.rows, g.cols)
	}
	copy(g.cells[row*g.cols:(row+1)*g.cols], cellsOf(vals, g.cols))
	return nil
}

// MustSetRow is [Grid.SetRow] that panics instead of reporting.
func (g *Grid) MustSetRow(row int, vals ...any) {
	if err := g.SetRow(row, vals...); err != nil {
		panic(err)
	}
}

// SetCol replaces every cell in column c. Values convert per [CellOf] and are
// padded with empty cells or truncated to the row count.
func (g *Grid) SetCol(col int, vals ...any) error {
	if col < 0 || col >= g.cols {
		return fmt.Errorf("%w: col %d in %dx%d grid", ErrColIndexOutOfBounds, col, g.rows, g.cols)
	}
	added := cellsOf(vals, g.rows)
	for r := range g.rows {
		g.cells[g.index(r, col)] = added[r]
	}
	return nil
}

// MustSetCol is [Grid.SetCol] that panics instead of reporting.
func (g *Grid) MustSetCol(col int, vals ...any) {
	if err := g.SetCol(col, vals...); err != nil {
		panic(err)
	}
}

// Resize reshapes the grid to rows×cols. Cells inside the overlapping region
// move; everything outside is dropped and new slots become empty cells.
// Negative dimensions clamp to zero.
func (g *Grid) Resize(rows, cols int) {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([]*Cell, rows*cols)
	for r := range min(rows, g.rows) {
		for c := range min(cols, g.cols) {
			cells[r*cols+c] = g.cells[g.index(r, c)]
		}
	}
	for i, c := range cells {
		if c == nil {
			cells[i] = NewCell("")
		}
	}
	g.cells, g.rows, g.cols = cells, rows, cols
}

// Clear drops every cell and zeroes both dimensions.
func (g *Grid) Clear() {
	g.cells, g.rows, g.cols = nil, 0, 0
}

// Clone returns a deep copy: every cell is cloned, so mutating one grid never
// affects the other.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		cells: make([]*Cell, len(g.cells)),
		rows:  g.rows,
		cols:  g.cols,
	}
	for i, c := range g.cells {
		out.cells[i] = c.Clone()
	}
	return out
}

// Records returns the raw content of every cell as rows of strings, the
// source the structured export formats work from.
func (g *Grid) Records() [][]string {
	out := make([][]string, g.rows)
	for r := range g.rows {
		row := make([]string, g.cols)
		for c := range g.cols {
			row[c] = g.cells[g.index(r, c)].Content()
		}
		out[r] = row
	}
	return out
}

// measure computes the layout pass: per-row heights and per-column widths as
// the maximum cell measurement along each axis.
func (g *Grid) measure() (heights, widths []int) {
	heights = make([]int, g.rows)
	widths = make([]int, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			cell := g.cells[g.index(r, c)]
			heights[r] = max(heights[r], cell.Height())
			widths[c] = max(widths[c], cell.Width())
		}
	}
	return heights, widths
}

// renderText writes the bordered block: top border, each row's cell lines
// interleaved column by column, middle borders between consecutive rows, and
// a bottom border. Output ends with a newline.
func (g *Grid) renderText(w io.Writer) error {
	heights, widths := g.measure()
	if _, err := fmt.Fprintln(w, renderBorder(widths, borderTop)); err != nil {
		return err
	}
	for r := range g.rows {
		if r > 0 {
			if _, err := fmt.Fprintln(w, renderBorder(widths, borderMiddle)); err != nil {
				return err
			}
		}
		cols := make([][]string, g.cols)
		for c := range g.cols {
			cols[c] = g.cells[g.index(r, c)].renderLines(heights[r], widths[c])
		}
		for line := range heights[r] {
			parts := make([]string, g.cols)
			for c := range parts {
				parts[c] = cols[c][line]
			}
			if _, err := fmt.Fprintln(w, borderVertical+strings.Join(parts, borderVertical)+borderVertical); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, renderBorder(widths, borderBottom))
	return err
}

// String renders the grid as a bordered text block with ANSI decoration.
// Rendering never mutates the grid: the same grid always produces identical
// output.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.renderText(&sb) // strings.Builder does not error
	return sb.String()
}
