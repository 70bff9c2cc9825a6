// Package world provides 2D grid primitives for walking a board:
// points, directions, field tags and the board grid itself.
package world

import "fmt"

// Field tags a single cell of the board.
type Field int

// Field constants. The zero value is Border so that cells beyond a ragged
// row read as padding.
const (
	Border Field = iota
	Open
	Wall
)

// FieldFromRune converts a board character into a Field.
func FieldFromRune(r rune) (Field, error) {
	switch r {
	case ' ':
		return Border, nil
	case '.':
		return Open, nil
	case '#':
		return Wall, nil
	default:
		return Border, fmt.Errorf("unknown board character %q", r)
	}
}

// Rune returns the board character for this field.
func (f Field) Rune() rune {
	switch f {
	case Open:
		return '.'
	case Wall:
		return '#'
	default:
		return ' '
	}
}

// String returns the string representation of a field
func (f Field) String() string {
	switch f {
	case Border:
		return "Border"
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// IsBorder returns true for padding cells that are not part of the board
func (f Field) IsBorder() bool {
	return f == Border
}

// IsWalkable returns true if the walker may stand on this field
func (f Field) IsWalkable() bool {
	return f == Open
}
