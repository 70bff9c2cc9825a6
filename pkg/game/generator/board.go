package generator

import (
	"math/rand"
	"strconv"
	"strings"

	"cubewalk/pkg/engine/world"
)

// BoardGenerator is an interface for puzzle generation algorithms
type BoardGenerator interface {
	Generate(rng *rand.Rand) (board []string, path string)
	Name() string
}

// RandomBoard scatters walls over a cube net and writes a random path.
type RandomBoard struct {
	Shape      Shape
	Size       int
	WallChance float64
	Moves      int
	MaxSteps   int
}

// DefaultBoard returns a generator with small faces and sparse walls
func DefaultBoard(shape Shape) *RandomBoard {
	return &RandomBoard{
		Shape:      shape,
		Size:       4,
		WallChance: 0.15,
		Moves:      20,
		MaxSteps:   12,
	}
}

// Name returns the name of this generator
func (g *RandomBoard) Name() string {
	return "Random Board"
}

// Generate creates board rows and an instruction line. The first board
// cell of the top row is always open so the walker has a start.
func (g *RandomBoard) Generate(rng *rand.Rand) ([]string, string) {
	start := true
	board := g.Shape.Lines(g.Size, func(world.Point) rune {
		if start {
			start = false
			return '.'
		}
		if rng.Float64() < g.WallChance {
			return '#'
		}
		return '.'
	})
	return board, g.path(rng)
}

// path always holds at least one forward count so the instruction section
// is never empty.
func (g *RandomBoard) path(rng *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < max(g.Moves, 1); i++ {
		if i > 0 {
			if rng.Intn(2) == 0 {
				b.WriteByte('L')
			} else {
				b.WriteByte('R')
			}
		}
		b.WriteString(strconv.Itoa(rng.Intn(g.MaxSteps + 1)))
	}
	return b.String()
}

// Format joins board rows and path into the two-section input format
func Format(board []string, path string) string {
	return strings.Join(board, "\n") + "\n\n" + path + "\n"
}
