// Package generator produces cube-net boards: the eleven nets of a cube in
// every orientation, filled with random walls and paths.
package generator

import (
	"fmt"
	"sort"
	"strings"

	"cubewalk/pkg/engine/world"
)

// Shape is a set of net-cell coordinates, normalized so the smallest x
// and y are zero.
type Shape []world.Point

// The eleven distinct nets of a cube, one orientation each.
var canonicalNets = [][]string{
	{"#", "####", "#"},
	{"#", "####", " #"},
	{"#", "####", "  #"},
	{"#", "####", "   #"},
	{" #", "####", " #"},
	{" #", "####", "  #"},
	{"##", " ###", " #"},
	{"##", " ###", "  #"},
	{"##", " ###", "   #"},
	{"##", " ##", "  ##"},
	{"###", "  ###"},
}

// Shapes returns the eleven cube nets
func Shapes() []Shape {
	out := make([]Shape, 0, len(canonicalNets))
	for _, rows := range canonicalNets {
		out = append(out, ParseShape(rows))
	}
	return out
}

// AllNets returns every distinct rotation and reflection of every net
func AllNets() []Shape {
	seen := make(map[string]bool)
	var out []Shape
	for _, s := range Shapes() {
		for _, v := range s.Variants() {
			if key := v.String(); !seen[key] {
				seen[key] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// ParseShape reads '#' cells from rows of text
func ParseShape(rows []string) Shape {
	var s Shape
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				s = append(s, world.Pt(x, y))
			}
		}
	}
	return s.normalize()
}

// Variants returns the distinct shapes reachable by quarter turns and a
// mirror flip.
func (s Shape) Variants() []Shape {
	seen := make(map[string]bool)
	var out []Shape
	for _, flip := range []bool{false, true} {
		cur := make(Shape, len(s))
		for i, p := range s {
			if flip {
				p.X = -p.X
			}
			cur[i] = p
		}
		for turn := 0; turn < 4; turn++ {
			n := cur.normalize()
			if key := n.String(); !seen[key] {
				seen[key] = true
				out = append(out, n)
			}
			for i, p := range cur {
				cur[i] = world.Pt(-p.Y, p.X)
			}
		}
	}
	return out
}

// Bounds returns the width and height in net cells
func (s Shape) Bounds() (w, h int) {
	for _, p := range s {
		if p.X+1 > w {
			w = p.X + 1
		}
		if p.Y+1 > h {
			h = p.Y + 1
		}
	}
	return w, h
}

// Has reports whether the net-cell is part of the shape
func (s Shape) Has(cell world.Point) bool {
	for _, p := range s {
		if p == cell {
			return true
		}
	}
	return false
}

// Lines renders the shape as board rows with faces of the given size.
// fill picks the character for every board cell; padding is ' ' and
// trailing padding is trimmed.
func (s Shape) Lines(size int, fill func(p world.Point) rune) []string {
	w, h := s.Bounds()
	lines := make([]string, 0, h*size)
	for y := 0; y < h*size; y++ {
		var b strings.Builder
		for x := 0; x < w*size; x++ {
			p := world.Pt(x, y)
			if s.Has(p.FloorDiv(size)) {
				b.WriteRune(fill(p))
			} else {
				b.WriteByte(' ')
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (s Shape) normalize() Shape {
	if len(s) == 0 {
		return nil
	}
	minX, minY := s[0].X, s[0].Y
	for _, p := range s {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	out := make(Shape, len(s))
	for i, p := range s {
		out[i] = p.Sub(world.Pt(minX, minY))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
