// Package walker moves a walker over a board following forward and turn
// instructions, handing every step that leaves the board to a wrap
// resolver.
package walker

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/wrap"
)

// ErrLandedOnBorder is returned when a resolver lands on padding. It means
// the resolver or the net is broken.
var ErrLandedOnBorder = errors.New("resolved step landed on border")

// Observer is called with the walker state after every move or turn.
type Observer func(pos world.Point, facing world.Direction)

// Walker holds the mutable (position, facing) pair over an immutable grid.
type Walker struct {
	grid     *world.Grid
	resolver wrap.Resolver

	pos    world.Point
	facing world.Direction

	observers []Observer
	logger    *log.Entry
}

// Option configures a Walker
type Option func(*Walker)

// WithObserver registers an observer hook
func WithObserver(o Observer) Option {
	return func(w *Walker) {
		w.observers = append(w.observers, o)
	}
}

// WithLogger sets the entry used for debug logging of boundary crossings
func WithLogger(entry *log.Entry) Option {
	return func(w *Walker) {
		w.logger = entry
	}
}

// WithStart overrides the start position and facing
func WithStart(pos world.Point, facing world.Direction) Option {
	return func(w *Walker) {
		w.pos = pos
		w.facing = facing
	}
}

// New places a walker on the leftmost open cell of the top row, facing right.
func New(grid *world.Grid, resolver wrap.Resolver, opts ...Option) (*Walker, error) {
	start, err := grid.Start()
	if err != nil {
		return nil, err
	}
	w := &Walker{
		grid:     grid,
		resolver: resolver,
		pos:      start,
		facing:   world.Right,
		logger:   log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.notify()
	return w, nil
}

// Position returns the current cell
func (w *Walker) Position() world.Point {
	return w.pos
}

// Facing returns the current direction
func (w *Walker) Facing() world.Direction {
	return w.facing
}

// Password returns the score for the current state
func (w *Walker) Password() int {
	return Password(w.pos, w.facing)
}

// Run applies every instruction in order and stops at the first error.
func (w *Walker) Run(instructions []Instruction) error {
	for i, ins := range instructions {
		if err := w.Apply(ins); err != nil {
			return fmt.Errorf("instruction %d (%v): %w", i, ins, err)
		}
	}
	return nil
}

// Apply executes a single instruction. A forward move stops early when it
// hits a wall; that is not an error.
func (w *Walker) Apply(ins Instruction) error {
	switch ins.Kind {
	case KindTurn:
		if ins.Turn == TurnLeft {
			w.facing = w.facing.TurnLeft()
		} else {
			w.facing = w.facing.TurnRight()
		}
		w.notify()
		return nil
	case KindForward:
		for i := 0; i < ins.Steps; i++ {
			moved, err := w.Step()
			if err != nil {
				return err
			}
			if !moved {
				break
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown instruction kind %d", ins.Kind)
	}
}

// Step advances one cell. It reports false when a wall blocks the step,
// leaving position and facing unchanged.
func (w *Walker) Step() (bool, error) {
	next, facing := w.pos.Add(w.facing.Delta()), w.facing

	if w.grid.IsBorder(next) {
		var err error
		next, facing, err = w.resolver.Resolve(w.pos, w.facing)
		if err != nil {
			return false, err
		}
		w.logger.WithFields(log.Fields{
			"strategy": w.resolver.Strategy().String(),
			"from":     w.pos.String(),
			"to":       next.String(),
			"facing":   facing.String(),
		}).Debug("crossed boundary")
	}

	switch w.grid.FieldAt(next) {
	case world.Wall:
		return false, nil
	case world.Border:
		return false, fmt.Errorf("%v moving %v to %v: %w", w.pos, w.facing, next, ErrLandedOnBorder)
	}

	w.pos, w.facing = next, facing
	w.notify()
	return true, nil
}

func (w *Walker) notify() {
	for _, o := range w.observers {
		o(w.pos, w.facing)
	}
}

// Password computes 1000*(row+1) + 4*(col+1) + facing.
func Password(pos world.Point, facing world.Direction) int {
	return 1000*(pos.Y+1) + 4*(pos.X+1) + facing.Ordinal()
}
