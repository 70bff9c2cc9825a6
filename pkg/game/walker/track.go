package walker

import "cubewalk/pkg/engine/world"

// Track records the last facing seen at every visited cell.
type Track map[world.Point]world.Direction

// NewTrack creates an empty track
func NewTrack() Track {
	return make(Track)
}

// Observer returns a hook that records into the track
func (t Track) Observer() Observer {
	return func(pos world.Point, facing world.Direction) {
		t[pos] = facing
	}
}

// Visited reports whether the walker ever stood on p
func (t Track) Visited(p world.Point) bool {
	_, ok := t[p]
	return ok
}
