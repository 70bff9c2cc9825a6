package world

import "fmt"

// Point is an integer (x, y) grid coordinate. X grows to the right and Y
// grows downward.
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	p.X += o.X
	p.Y += o.Y
	return p
}

// Sub returns the component-wise difference.
func (p Point) Sub(o Point) Point {
	p.X -= o.X
	p.Y -= o.Y
	return p
}

// Mul multiplies both components by n.
func (p Point) Mul(n int) Point {
	p.X *= n
	p.Y *= n
	return p
}

// FloorDiv divides both components by n, rounding toward negative infinity.
func (p Point) FloorDiv(n int) Point {
	return Point{floorDiv(p.X, n), floorDiv(p.Y, n)}
}

// Mod returns both components reduced into [0, n).
func (p Point) Mod(n int) Point {
	return Point{Mod(p.X, n), Mod(p.Y, n)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Mod returns a mod n in [0, n) for positive n.
func Mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}
