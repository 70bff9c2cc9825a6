package rotation

import "fmt"

// Rotation is a proper orthogonal integer matrix stored by columns.
//
// For a cube face the columns are read as (normal, tangent1, tangent2):
// E0 is the outward normal, E1 and E2 are the face's planar x and y axes
// expressed in the root face's frame.
type Rotation struct {
	E0, E1, E2 Vec3
}

// Named quarter turns. Each is a +90 degree turn about its axis.
var (
	Identity = Rotation{V(1, 0, 0), V(0, 1, 0), V(0, 0, 1)}
	RotX     = Rotation{V(1, 0, 0), V(0, 0, 1), V(0, -1, 0)}
	RotY     = Rotation{V(0, 0, -1), V(0, 1, 0), V(1, 0, 0)}
	RotZ     = Rotation{V(0, 1, 0), V(-1, 0, 0), V(0, 0, 1)}
)

// Normal returns the first basis vector.
func (r Rotation) Normal() Vec3 { return r.E0 }

// Apply returns r*v.
func (r Rotation) Apply(v Vec3) Vec3 {
	return r.E0.Scale(v.X).Add(r.E1.Scale(v.Y)).Add(r.E2.Scale(v.Z))
}

// Mul returns the matrix product r*o, which applies o first and then r.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{r.Apply(o.E0), r.Apply(o.E1), r.Apply(o.E2)}
}

// Transpose swaps rows and columns.
func (r Rotation) Transpose() Rotation {
	return Rotation{
		E0: V(r.E0.X, r.E1.X, r.E2.X),
		E1: V(r.E0.Y, r.E1.Y, r.E2.Y),
		E2: V(r.E0.Z, r.E1.Z, r.E2.Z),
	}
}

// Inverse returns the inverse rotation. For orthogonal matrices this is the
// transpose.
func (r Rotation) Inverse() Rotation { return r.Transpose() }

// Det returns the determinant.
func (r Rotation) Det() int {
	return r.E0.X*(r.E1.Y*r.E2.Z-r.E2.Y*r.E1.Z) -
		r.E1.X*(r.E0.Y*r.E2.Z-r.E2.Y*r.E0.Z) +
		r.E2.X*(r.E0.Y*r.E1.Z-r.E1.Y*r.E0.Z)
}

// IsOrthogonal reports whether r*transpose(r) is the identity.
func (r Rotation) IsOrthogonal() bool {
	return r.Mul(r.Transpose()) == Identity
}

// IsProper reports whether r is orthogonal with determinant +1.
func (r Rotation) IsProper() bool {
	return r.IsOrthogonal() && r.Det() == 1
}

// Pow returns r applied n times. Negative n uses the inverse.
func (r Rotation) Pow(n int) Rotation {
	if n < 0 {
		r, n = r.Inverse(), -n
	}
	out := Identity
	for i := 0; i < n; i++ {
		out = out.Mul(r)
	}
	return out
}

func (r Rotation) String() string {
	return fmt.Sprintf("(%v, %v, %v)", r.E0, r.E1, r.E2)
}
