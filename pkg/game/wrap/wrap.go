// Package wrap resolves steps that leave the board: either by wrapping
// around the row or column like a torus, or by folding the board into a
// cube and walking over the edge.
package wrap

import (
	"errors"
	"fmt"
	"strings"

	"cubewalk/pkg/engine/world"
)

// Errors returned by resolvers. All of them mean the board or the algebra
// is broken; none is recoverable.
var (
	ErrUnknownStrategy = errors.New("unknown wrap strategy")
	ErrNoTargetFace    = errors.New("no face with outgoing normal")
	ErrAmbiguousFace   = errors.New("several faces share outgoing normal")
	ErrNoDirection     = errors.New("rotated direction is not a unit direction")
	ErrNotOnFace       = errors.New("position is not on a face")
	ErrEmptySpan       = errors.New("no cells to wrap through")
)

// Resolver maps a step leaving the board to the cell and facing it lands on.
type Resolver interface {
	// Resolve is called with the current position and facing when the
	// naive next cell is padding or off the grid.
	Resolve(from world.Point, facing world.Direction) (world.Point, world.Direction, error)
	Strategy() Strategy
}

// Strategy selects a resolver.
type Strategy int

// Available strategies
const (
	Flat Strategy = iota
	Cube
)

// AllStrategies returns every strategy in output order
func AllStrategies() []Strategy {
	return []Strategy{Flat, Cube}
}

// String returns the configuration name of the strategy
func (s Strategy) String() string {
	switch s {
	case Flat:
		return "flat"
	case Cube:
		return "cube"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a configuration name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "flat", "torus", "part1":
		return Flat, nil
	case "cube", "part2":
		return Cube, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// New builds the resolver for a strategy. The cube size is only used by
// the cube strategy.
func New(s Strategy, grid *world.Grid, cubeSize int) (Resolver, error) {
	switch s {
	case Flat:
		return NewFlat(grid), nil
	case Cube:
		return NewCube(grid, cubeSize)
	default:
		return nil, fmt.Errorf("strategy %d: %w", s, ErrUnknownStrategy)
	}
}
