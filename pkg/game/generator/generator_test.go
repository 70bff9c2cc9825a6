package generator

import (
	"math/rand"
	"strings"
	"testing"

	"cubewalk/pkg/engine/cube"
	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/puzzle"
)

// countConnected returns the number of cells reachable from the first cell via N/E/S/W.
func countConnected(s Shape) int {
	if len(s) == 0 {
		return 0
	}
	visited := map[world.Point]bool{s[0]: true}
	queue := []world.Point{s[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range world.AllDirections() {
			n := c.Add(d.Delta())
			if s.Has(n) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func TestShapes(t *testing.T) {
	shapes := Shapes()
	if len(shapes) != 11 {
		t.Fatalf("len(Shapes()) = %d, want 11", len(shapes))
	}
	for i, s := range shapes {
		if len(s) != 6 {
			t.Errorf("shape %d has %d cells, want 6", i, len(s))
		}
		if n := countConnected(s); n != 6 {
			t.Errorf("shape %d: %d connected cells, want 6", i, n)
		}
	}
}

func TestVariantsAreDistinctAcrossNets(t *testing.T) {
	seen := map[string]int{}
	for i, s := range Shapes() {
		for _, v := range s.Variants() {
			if prev, ok := seen[v.String()]; ok && prev != i {
				t.Errorf("shape %d variant %v equals shape %d", i, v, prev)
			}
			seen[v.String()] = i
		}
	}
	if len(AllNets()) != len(seen) {
		t.Errorf("len(AllNets()) = %d, want %d", len(AllNets()), len(seen))
	}
}

func TestEveryNetFolds(t *testing.T) {
	for _, s := range AllNets() {
		lines := s.Lines(3, func(world.Point) rune { return '.' })
		grid, err := world.ParseGrid(lines)
		if err != nil {
			t.Fatalf("ParseGrid(%v): %v", s, err)
		}
		if _, err := cube.Build(grid, 3); err != nil {
			t.Errorf("Build(%v) = %v, want nil", s, err)
		}
	}
}

func TestLines(t *testing.T) {
	s := ParseShape([]string{" #", "##"})
	got := s.Lines(2, func(world.Point) rune { return '.' })
	want := []string{"  ..", "  ..", "....", "...."}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Lines = %q, want %q", got, want)
	}
}

func TestRandomBoardParses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, s := range Shapes() {
		board, path := DefaultBoard(s).Generate(rng)
		p, err := puzzle.Read(strings.NewReader(Format(board, path)))
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if _, err := p.Grid.Start(); err != nil {
			t.Errorf("shape %v: Start() = %v", s, err)
		}
		if len(p.Instructions) != 2*20-1 {
			t.Errorf("len(Instructions) = %d, want 39", len(p.Instructions))
		}
	}
}

func TestRandomBoardZeroMovesStillReadable(t *testing.T) {
	gen := DefaultBoard(Shapes()[0])
	gen.Moves = 0
	board, path := gen.Generate(rand.New(rand.NewSource(1)))
	if path == "" {
		t.Fatal("Generate() path is empty")
	}
	p, err := puzzle.Read(strings.NewReader(Format(board, path)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(p.Instructions) != 1 {
		t.Errorf("len(Instructions) = %d, want 1", len(p.Instructions))
	}
}
