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

// Package segments generates random line segments.
package segments

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clipview/clip"
)

// DefaultCount is the number of segments used when no valid count is given.
const DefaultCount = 10

// DefaultDomain is the region from which endpoints are drawn by default.
var DefaultDomain = rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

// Generator produces segments with endpoints drawn independently and
// uniformly from a rectangular domain.
type Generator struct {
	Domain rect.Rect

	rng *rand.Rand
}

// NewGenerator returns a Generator for the given domain.
// Generators with the same seed produce the same sequence of segments.
func NewGenerator(seed uint64, domain rect.Rect) *Generator {
	return &Generator{
		Domain: domain,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate returns count new segments.
// A count of zero or less gives an empty slice.
func (g *Generator) Generate(count int) []clip.Segment {
	count = max(count, 0)
	segs := make([]clip.Segment, count)
	for i := range segs {
		segs[i] = clip.Segment{P1: g.point(), P2: g.point()}
	}
	return segs
}

func (g *Generator) point() vec.Vec2 {
	d := g.Domain
	return vec.Vec2{
		X: d.LLx + g.rng.Float64()*(d.URx-d.LLx),
		Y: d.LLy + g.rng.Float64()*(d.URy-d.LLy),
	}
}

// ParseCount interprets text as a segment count.  Anything which is not a
// positive decimal integer gives fallback.
func ParseCount(text string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
