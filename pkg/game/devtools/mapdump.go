// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cubewalk/pkg/engine/cube"
	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/puzzle"
	"cubewalk/pkg/game/simulation"
	"cubewalk/pkg/game/walker"
)

// ErrNoGrid is returned when there is no board to dump
var ErrNoGrid = errors.New("no grid")

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "walk_dump.txt"

// writeBoard writes the board with the walked path and final position
// overlaid. Track may be nil.
func writeBoard(w io.Writer, grid *world.Grid, track walker.Track, current world.Point) {
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.RowLen(y); x++ {
			p := world.Pt(x, y)
			if p == current {
				fmt.Fprint(w, "@")
				continue
			}
			if facing, ok := track[p]; ok {
				fmt.Fprintf(w, "%c", facing.Glyph())
				continue
			}
			fmt.Fprintf(w, "%c", grid.FieldAt(p).Rune())
		}
		fmt.Fprintln(w)
	}
}

// Dump writes a plain-text debug report: metadata, legend, the folded cube
// faces and every strategy's final state and path. Format is line oriented
// (sections, key: value) so it diffs well between runs.
func Dump(w io.Writer, p *puzzle.Puzzle, cubeSize int, results []simulation.Result) error {
	if p == nil || p.Grid == nil {
		return ErrNoGrid
	}
	grid := p.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== WALK DUMP DEBUG (board, cube net, results) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "open_cells: %d\n", grid.CountFields(world.Open))
	fmt.Fprintf(w, "wall_cells: %d\n", grid.CountFields(world.Wall))
	if start, err := grid.Start(); err == nil {
		fmt.Fprintf(w, "start_cell: %d,%d\n", start.X, start.Y)
	} else {
		fmt.Fprintf(w, "start_cell: none (%v)\n", err)
	}
	fmt.Fprintf(w, "instructions: %d\n", len(p.Instructions))
	fmt.Fprintf(w, "cube_size: %d\n", cubeSize)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = open  # = wall  (space) = off the board  > v < ^ = last facing on a visited cell  @ = final position")
	fmt.Fprintln(w, "")

	// --- Cube net ---
	fmt.Fprintln(w, "--- Cube net (discovery order) ---")
	net, err := cube.Build(grid, cubeSize)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	} else {
		for i, f := range net.Faces() {
			fmt.Fprintf(w, "  face: %d cell: %d,%d origin: %d,%d normal: %s rotation: %s\n",
				i, f.Cell.X, f.Cell.Y, net.Origin(f.Cell).X, net.Origin(f.Cell).Y, f.Normal(), f.Rotation)
		}
	}
	fmt.Fprintln(w, "")

	// --- Results ---
	for _, res := range results {
		fmt.Fprintf(w, "--- Result (%s) ---\n", res.Strategy)
		fmt.Fprintf(w, "final_cell: %d,%d\n", res.Position.X, res.Position.Y)
		fmt.Fprintf(w, "facing: %s\n", res.Facing)
		fmt.Fprintf(w, "password: %d\n", res.Password)
		if res.Track != nil {
			fmt.Fprintf(w, "visited_cells: %d\n", len(res.Track))
		}
		writeBoard(w, grid, res.Track, res.Position)
		fmt.Fprintln(w, "")
	}
	return nil
}

// DumpToFile writes the debug report to path (DefaultDumpFilename when
// empty) and returns the absolute path written.
func DumpToFile(path string, p *puzzle.Puzzle, cubeSize int, results []simulation.Result) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := Dump(f, p, cubeSize, results); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return absPath, nil
}
