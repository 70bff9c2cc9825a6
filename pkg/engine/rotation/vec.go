// Package rotation implements the 24-element rotation group of the cube
// as integer 3x3 matrices.
package rotation

import "fmt"

// Vec3 is an integer vector in 3-space.
type Vec3 struct{ X, Y, Z int }

// Zero is the zero vector.
var Zero = Vec3{}

// V is a convenience constructor for Vec3.
func V(x, y, z int) Vec3 { return Vec3{x, y, z} }

// InPlane embeds a planar vector into the plane orthogonal to the X axis.
// Planar x maps to Y and planar y maps to Z.
func InPlane(x, y int) Vec3 { return Vec3{0, x, y} }

// Plane returns the Y and Z components, the inverse of InPlane.
func (v Vec3) Plane() (x, y int) { return v.Y, v.Z }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Neg returns a copy of v pointing the other way.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale multiplies every component by n.
func (v Vec3) Scale(n int) Vec3 {
	return Vec3{v.X * n, v.Y * n, v.Z * n}
}

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool { return v == Zero }

func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
