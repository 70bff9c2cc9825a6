package wrap

import (
	"fmt"

	"cubewalk/pkg/engine/cube"
	"cubewalk/pkg/engine/rotation"
	"cubewalk/pkg/engine/world"
)

// CubeResolver carries a step over a face edge as if the net were folded.
//
// Edge adjacency is never tabulated. The face the step would enter if the
// net continued flat has rotation current*direction; its normal picks the
// real target face, and the rotation between the two frames carries the
// position and facing across.
type CubeResolver struct {
	grid *world.Grid
	net  *cube.Net
}

// NewCube folds grid with the given face size and returns a resolver.
func NewCube(grid *world.Grid, size int) (*CubeResolver, error) {
	n, err := cube.Build(grid, size)
	if err != nil {
		return nil, err
	}
	return NewCubeFromNet(grid, n), nil
}

// NewCubeFromNet returns a resolver over an already built net.
func NewCubeFromNet(grid *world.Grid, n *cube.Net) *CubeResolver {
	return &CubeResolver{grid: grid, net: n}
}

// Strategy returns Cube
func (r *CubeResolver) Strategy() Strategy {
	return Cube
}

// Net returns the folded net.
func (r *CubeResolver) Net() *cube.Net {
	return r.net
}

// Resolve maps a step from the edge of one face onto the face it folds to.
func (r *CubeResolver) Resolve(from world.Point, facing world.Direction) (world.Point, world.Direction, error) {
	face, ok := r.net.FaceAt(from)
	if !ok {
		return from, facing, fmt.Errorf("%v: %w", from, ErrNotOnFace)
	}

	unaligned := face.Rotation.Mul(facing.Rotation())
	normal := unaligned.Normal()
	if normal.IsZero() {
		return from, facing, fmt.Errorf("%v moving %v: %w", from, facing, ErrNoTargetFace)
	}

	targets := r.net.FacesWithNormal(normal)
	switch {
	case len(targets) == 0:
		return from, facing, fmt.Errorf("normal %v: %w", normal, ErrNoTargetFace)
	case len(targets) > 1:
		return from, facing, fmt.Errorf("normal %v matches %d faces: %w", normal, len(targets), ErrAmbiguousFace)
	}
	target := targets[0]

	// relative maps the unaligned face's frame onto the target's frame.
	relative := target.Rotation.Transpose().Mul(unaligned)

	size := r.net.Size()
	entered := from.Add(facing.Delta()).Mod(size)
	local := uncenter(relative.Apply(center(entered, size)), size)

	delta := facing.Delta()
	turned, ok := world.DirectionFromDelta(planar(relative.Apply(rotation.InPlane(delta.X, delta.Y))))
	if !ok {
		return from, facing, fmt.Errorf("%v moving %v: %w", from, facing, ErrNoDirection)
	}

	return r.net.Origin(target.Cell).Add(local), turned, nil
}

// center maps a local cell to doubled coordinates symmetric about zero, so
// cell 0 becomes -(size-1) and cell size-1 becomes size-1. Rotations of
// centered coordinates stay on cell centers.
func center(local world.Point, size int) rotation.Vec3 {
	return rotation.InPlane(2*local.X-(size-1), 2*local.Y-(size-1))
}

func uncenter(v rotation.Vec3, size int) world.Point {
	p := planar(v)
	return world.Pt((p.X+size-1)/2, (p.Y+size-1)/2)
}

func planar(v rotation.Vec3) world.Point {
	x, y := v.Plane()
	return world.Pt(x, y)
}
