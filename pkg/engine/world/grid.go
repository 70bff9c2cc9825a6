package world

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid is returned when a grid has no non-border cells.
var ErrEmptyGrid = errors.New("grid has no open cells")

// Grid is an immutable board of fields. Rows may be ragged; any cell beyond
// a row's stored length reads as Border.
type Grid struct {
	fields [][]Field
	cols   int
}

// NewGrid creates a grid from rows of fields. The rows are copied.
func NewGrid(rows [][]Field) *Grid {
	g := &Grid{}
	g.Build(rows)
	return g
}

// ParseGrid creates a grid from text lines using ' ', '.' and '#'.
func ParseGrid(lines []string) (*Grid, error) {
	rows := make([][]Field, 0, len(lines))
	for y, line := range lines {
		row := make([]Field, 0, len(line))
		for x, r := range []rune(line) {
			f, err := FieldFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			row = append(row, f)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows), nil
}

// Build initializes the grid with the given rows
func (g *Grid) Build(rows [][]Field) {
	g.fields = make([][]Field, len(rows))
	g.cols = 0
	for y, row := range rows {
		g.fields[y] = append([]Field(nil), row...)
		if len(row) > g.cols {
			g.cols = len(row)
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return len(g.fields)
}

// Cols returns the length of the longest row
func (g *Grid) Cols() int {
	return g.cols
}

// RowLen returns the stored length of row y, or 0 if out of bounds
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.fields) {
		return 0
	}
	return len(g.fields[y])
}

// IsValidPosition checks if a point is within the bounding box of the grid
func (g *Grid) IsValidPosition(p Point) bool {
	return p.Y >= 0 && p.Y < g.Rows() && p.X >= 0 && p.X < g.cols
}

// FieldAt returns the field at p. Anything outside the stored rows is Border.
func (g *Grid) FieldAt(p Point) Field {
	if p.Y < 0 || p.Y >= len(g.fields) {
		return Border
	}
	row := g.fields[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return Border
	}
	return row[p.X]
}

// IsBorder reports whether p is padding or outside the grid.
func (g *Grid) IsBorder(p Point) bool {
	return g.FieldAt(p).IsBorder()
}

// Start returns the leftmost open cell of the top row.
func (g *Grid) Start() (Point, error) {
	for x := 0; x < g.RowLen(0); x++ {
		if g.FieldAt(Pt(x, 0)) == Open {
			return Pt(x, 0), nil
		}
	}
	return Point{}, ErrEmptyGrid
}

// RowSpan returns the contiguous run of non-border cells in row y.
func (g *Grid) RowSpan(y int) Span {
	return trimmedSpan(g.cols, func(i int) Field { return g.FieldAt(Pt(i, y)) })
}

// ColSpan returns the contiguous run of non-border cells in column x.
func (g *Grid) ColSpan(x int) Span {
	return trimmedSpan(g.Rows(), func(i int) Field { return g.FieldAt(Pt(x, i)) })
}

// SpanThrough returns the row or column run that a step in d from p moves
// along.
func (g *Grid) SpanThrough(p Point, d Direction) (Span, int) {
	if d.IsHorizontal() {
		return g.RowSpan(p.Y), p.X
	}
	return g.ColSpan(p.X), p.Y
}

// ForEachCell iterates over all stored cells, calling the provided function for each
func (g *Grid) ForEachCell(fn func(p Point, f Field)) {
	for y, row := range g.fields {
		for x, f := range row {
			fn(Pt(x, y), f)
		}
	}
}

// CountFields returns how many stored cells carry the given tag
func (g *Grid) CountFields(want Field) int {
	n := 0
	g.ForEachCell(func(_ Point, f Field) {
		if f == want {
			n++
		}
	})
	return n
}

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.Rows() == 0 || g.cols == 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d: %w", g.cols, g.Rows(), ErrEmptyGrid)
	}
	if _, err := g.Start(); err != nil {
		return fmt.Errorf("top row: %w", err)
	}
	return nil
}

func trimmedSpan(n int, at func(int) Field) Span {
	lo := 0
	for lo < n && at(lo).IsBorder() {
		lo++
	}
	hi := n
	for hi > lo && at(hi-1).IsBorder() {
		hi--
	}
	return Span{Lo: lo, Hi: hi}
}
