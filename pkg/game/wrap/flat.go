package wrap

import (
	"fmt"

	"cubewalk/pkg/engine/world"
)

// FlatResolver wraps around the contiguous run of board cells in the
// current row or column. Facing never changes.
type FlatResolver struct {
	grid *world.Grid
}

// NewFlat creates a toroidal resolver for grid
func NewFlat(grid *world.Grid) *FlatResolver {
	return &FlatResolver{grid: grid}
}

// Strategy returns Flat
func (r *FlatResolver) Strategy() Strategy {
	return Flat
}

// Resolve moves one step in facing and wraps the moving coordinate into the
// row or column span.
func (r *FlatResolver) Resolve(from world.Point, facing world.Direction) (world.Point, world.Direction, error) {
	next := from.Add(facing.Delta())
	span, _ := r.grid.SpanThrough(from, facing)
	if span.IsEmpty() {
		return from, facing, fmt.Errorf("%v moving %v: %w", from, facing, ErrEmptySpan)
	}
	if facing.IsHorizontal() {
		next.X = span.Wrap(next.X)
	} else {
		next.Y = span.Wrap(next.Y)
	}
	return next, facing, nil
}
