// Package cube folds a 2D net of six squares into a cube by assigning each
// face a rotation relative to the first face of the top row.
package cube

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"cubewalk/pkg/engine/rotation"
	"cubewalk/pkg/engine/world"
)

// FaceCount is the number of faces on a cube.
const FaceCount = 6

// ErrMalformedNet is returned when the grid does not fold into a cube.
var ErrMalformedNet = errors.New("malformed cube net")

// Face is one square of the net together with its orientation.
type Face struct {
	// Cell is the net-cell coordinate: grid position divided by cube size.
	Cell     world.Point
	Rotation rotation.Rotation
}

// Normal returns the outward normal of the face.
func (f Face) Normal() rotation.Vec3 {
	return f.Rotation.Normal()
}

// Net maps every face of a folded net to its rotation.
// It is built once and never mutated.
type Net struct {
	size  int
	faces map[world.Point]rotation.Rotation
	order []world.Point
}

type pending struct {
	cell world.Point
	rot  rotation.Rotation
}

// Build walks the net breadth-first from the block holding the first
// non-border cell of row 0. Each neighbor block gets the rotation of the
// block it was reached from composed with the crossing direction's
// rotation (current * direction). The result is validated before return.
func Build(grid *world.Grid, size int) (*Net, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cube size %d: %w", size, ErrMalformedNet)
	}
	root, ok := firstBlock(grid, size)
	if !ok {
		return nil, fmt.Errorf("no face in top row: %w", ErrMalformedNet)
	}

	n := &Net{
		size:  size,
		faces: make(map[world.Point]rotation.Rotation, FaceCount),
	}
	visited := mapset.New[world.Point]()
	q := queue.New[pending]()

	n.add(root, rotation.Identity)
	visited.Put(root)
	q.Enqueue(pending{root, rotation.Identity})

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range world.AllDirections() {
			next := current.cell.Add(dir.Delta())
			if visited.Has(next) || !n.blockPresent(grid, next) {
				continue
			}
			rot := current.rot.Mul(dir.Rotation())
			visited.Put(next)
			n.add(next, rot)
			q.Enqueue(pending{next, rot})
		}
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Size returns the edge length of a face in grid cells.
func (n *Net) Size() int {
	return n.size
}

// Len returns the number of faces discovered.
func (n *Net) Len() int {
	return len(n.order)
}

// CellOf returns the net-cell containing grid position p.
func (n *Net) CellOf(p world.Point) world.Point {
	return p.FloorDiv(n.size)
}

// Origin returns the grid position of the top-left cell of a net-cell.
func (n *Net) Origin(cell world.Point) world.Point {
	return cell.Mul(n.size)
}

// Rotation returns the rotation of the face at a net-cell.
func (n *Net) Rotation(cell world.Point) (rotation.Rotation, bool) {
	r, ok := n.faces[cell]
	return r, ok
}

// FaceAt returns the face containing grid position p.
func (n *Net) FaceAt(p world.Point) (Face, bool) {
	cell := n.CellOf(p)
	r, ok := n.faces[cell]
	return Face{Cell: cell, Rotation: r}, ok
}

// FacesWithNormal returns every face whose normal equals normal. A valid
// net yields exactly one.
func (n *Net) FacesWithNormal(normal rotation.Vec3) []Face {
	var out []Face
	for _, cell := range n.order {
		if r := n.faces[cell]; r.Normal() == normal {
			out = append(out, Face{Cell: cell, Rotation: r})
		}
	}
	return out
}

// Faces returns all faces in discovery order.
func (n *Net) Faces() []Face {
	out := make([]Face, 0, len(n.order))
	for _, cell := range n.order {
		out = append(out, Face{Cell: cell, Rotation: n.faces[cell]})
	}
	return out
}

// Validate checks that the net has six proper rotations whose normals are
// pairwise distinct and pair up as opposites.
func (n *Net) Validate() error {
	if len(n.order) != FaceCount {
		return fmt.Errorf("found %d faces, want %d: %w", len(n.order), FaceCount, ErrMalformedNet)
	}
	normals := mapset.New[rotation.Vec3]()
	for _, cell := range n.order {
		r := n.faces[cell]
		if !r.IsProper() {
			return fmt.Errorf("face %v has improper rotation %v: %w", cell, r, ErrMalformedNet)
		}
		if normals.Has(r.Normal()) {
			return fmt.Errorf("face %v repeats normal %v: %w", cell, r.Normal(), ErrMalformedNet)
		}
		normals.Put(r.Normal())
	}
	var unpaired error
	normals.Each(func(v rotation.Vec3) {
		if unpaired == nil && !normals.Has(v.Neg()) {
			unpaired = fmt.Errorf("normal %v has no opposite face: %w", v, ErrMalformedNet)
		}
	})
	return unpaired
}

func (n *Net) add(cell world.Point, r rotation.Rotation) {
	n.faces[cell] = r
	n.order = append(n.order, cell)
}

// blockPresent reports whether the block at net-cell lies on the board.
// Blocks are tested by their top-left cell.
func (n *Net) blockPresent(grid *world.Grid, cell world.Point) bool {
	if cell.X < 0 || cell.Y < 0 {
		return false
	}
	return !grid.IsBorder(n.Origin(cell))
}

func firstBlock(grid *world.Grid, size int) (world.Point, bool) {
	for x := 0; x < grid.RowLen(0); x++ {
		if !grid.IsBorder(world.Pt(x, 0)) {
			return world.Pt(x, 0).FloorDiv(size), true
		}
	}
	return world.Point{}, false
}
