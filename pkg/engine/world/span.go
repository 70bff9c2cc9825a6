package world

// Span is the half-open range [Lo, Hi) of a contiguous run of cells.
type Span struct {
	Lo, Hi int
}

// Width returns the number of cells in the span.
func (s Span) Width() int {
	return s.Hi - s.Lo
}

// IsEmpty reports whether the span has no cells.
func (s Span) IsEmpty() bool {
	return s.Width() <= 0
}

// Contains reports whether v lies in [Lo, Hi).
func (s Span) Contains(v int) bool {
	return v >= s.Lo && v < s.Hi
}

// Wrap folds v into [Lo, Hi) modulo the span width. Values already inside
// are returned unchanged. Wrap panics on an empty span.
func (s Span) Wrap(v int) int {
	if s.IsEmpty() {
		panic("world: Wrap on empty span")
	}
	return Mod(v-s.Lo, s.Width()) + s.Lo
}
