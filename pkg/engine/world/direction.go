package world

import "cubewalk/pkg/engine/rotation"

// Direction represents a planar movement direction.
// The ordinal order is the clockwise turn order and is also the facing
// value used in the password.
type Direction int

// Direction constants
const (
	Right Direction = iota
	Down
	Left
	Up
)

const directionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Right, Down, Left, Up}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// Glyph returns the arrow character used when drawing a walked path.
func (d Direction) Glyph() rune {
	switch d {
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Up:
		return '^'
	default:
		return '?'
	}
}

// IsValid returns true if the direction is one of the four planar directions
func (d Direction) IsValid() bool {
	return d >= Right && d <= Up
}

// Ordinal returns the facing value 0..3.
func (d Direction) Ordinal() int {
	return int(d)
}

// TurnRight returns the direction a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return Direction(Mod(int(d)+1, directionCount))
}

// TurnLeft returns the direction a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return Direction(Mod(int(d)-1, directionCount))
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return Direction(Mod(int(d)+2, directionCount))
}

// Delta returns the unit vector for this direction
func (d Direction) Delta() Point {
	switch d {
	case Right:
		return Pt(1, 0)
	case Down:
		return Pt(0, 1)
	case Left:
		return Pt(-1, 0)
	case Up:
		return Pt(0, -1)
	default:
		return Pt(0, 0)
	}
}

// IsHorizontal reports whether the direction moves along a row.
func (d Direction) IsHorizontal() bool {
	return d == Right || d == Left
}

// Rotation returns the quarter turn of the cube induced by crossing one
// net cell in this direction. Opposite directions have inverse rotations.
func (d Direction) Rotation() rotation.Rotation {
	switch d {
	case Right:
		return rotation.RotZ
	case Down:
		return rotation.RotY.Transpose()
	case Left:
		return rotation.RotZ.Transpose()
	case Up:
		return rotation.RotY
	default:
		return rotation.Identity
	}
}

// DirectionFromDelta returns the direction whose unit vector is delta.
func DirectionFromDelta(delta Point) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.Delta() == delta {
			return d, true
		}
	}
	return 0, false
}
