package world

import "testing"

func TestSpanWrapLandsInside(t *testing.T) {
	spans := []Span{{0, 4}, {3, 7}, {8, 16}, {5, 6}}
	for _, s := range spans {
		for v := s.Lo - 3*s.Width(); v < s.Hi+3*s.Width(); v++ {
			got := s.Wrap(v)
			if !s.Contains(got) {
				t.Errorf("%v.Wrap(%d) = %d, outside span", s, v, got)
			}
			if Mod(got-v, s.Width()) != 0 {
				t.Errorf("%v.Wrap(%d) = %d, not congruent modulo %d", s, v, got, s.Width())
			}
			if s.Contains(v) && got != v {
				t.Errorf("%v.Wrap(%d) = %d, want no-op inside span", s, v, got)
			}
		}
	}
}

func TestSpanWrapEdges(t *testing.T) {
	s := Span{8, 12}
	if got := s.Wrap(12); got != 8 {
		t.Errorf("Wrap(12) = %d, want 8", got)
	}
	if got := s.Wrap(7); got != 11 {
		t.Errorf("Wrap(7) = %d, want 11", got)
	}
}

func TestPointFloorDiv(t *testing.T) {
	tests := []struct {
		p    Point
		n    int
		want Point
	}{
		{Pt(7, 3), 4, Pt(1, 0)},
		{Pt(-1, 4), 4, Pt(-1, 1)},
		{Pt(-4, -5), 4, Pt(-1, -2)},
	}
	for _, tt := range tests {
		if got := tt.p.FloorDiv(tt.n); got != tt.want {
			t.Errorf("%v.FloorDiv(%d) = %v, want %v", tt.p, tt.n, got, tt.want)
		}
	}
	if got := Pt(-1, 9).Mod(4); got != Pt(3, 1) {
		t.Errorf("(-1, 9).Mod(4) = %v, want (3, 1)", got)
	}
}
