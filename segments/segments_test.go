// seehuhn.de/go/clipview - interactive line clipping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package segments

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestGenerateCount(t *testing.T) {
	g := NewGenerator(1, DefaultDomain)
	for _, n := range []int{0, 1, 10, 250} {
		if got := len(g.Generate(n)); got != n {
			t.Errorf("Generate(%d) returned %d segments", n, got)
		}
	}
	if got := g.Generate(-3); len(got) != 0 {
		t.Errorf("Generate(-3) returned %d segments", len(got))
	}
}

func TestGenerateDomain(t *testing.T) {
	domain := rect.Rect{LLx: -5, LLy: 100, URx: 5, URy: 101}
	g := NewGenerator(2, domain)
	inDomain := func(p vec.Vec2) bool {
		return p.X >= domain.LLx && p.X <= domain.URx && p.Y >= domain.LLy && p.Y <= domain.URy
	}
	for _, s := range g.Generate(1000) {
		if !inDomain(s.P1) || !inDomain(s.P2) {
			t.Fatalf("%v outside %v", s, domain)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42, DefaultDomain).Generate(20)
	b := NewGenerator(42, DefaultDomain).Generate(20)
	if !slices.Equal(a, b) {
		t.Error("same seed gave different segments")
	}
	c := NewGenerator(43, DefaultDomain).Generate(20)
	if slices.Equal(a, c) {
		t.Error("different seeds gave the same segments")
	}
}

func TestGenerateFresh(t *testing.T) {
	g := NewGenerator(7, DefaultDomain)
	a := g.Generate(5)
	b := g.Generate(5)
	if slices.Equal(a, b) {
		t.Error("consecutive calls returned the same segments")
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"25", 25},
		{" 7\n", 7},
		{"1", 1},
		{"0", DefaultCount},
		{"-4", DefaultCount},
		{"", DefaultCount},
		{"ten", DefaultCount},
		{"3.5", DefaultCount},
	}
	for _, c := range cases {
		if got := ParseCount(c.in, DefaultCount); got != c.want {
			t.Errorf("ParseCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
