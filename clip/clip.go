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

package clip

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line segment between two points.
// The order of the endpoints only matters for naming; clipping treats
// segments as undirected.
type Segment struct {
	P1, P2 vec.Vec2
}

// Result is the outcome of clipping one segment.
type Result struct {
	Part    Segment // visible part, valid only if Visible is set
	Visible bool
}

// maxClipSteps bounds the number of endpoint moves in [Clip].
// Against a normalised window each endpoint is moved at most twice.
// The bound only comes into play for inverted windows.
const maxClipSteps = 8

// Clip clips s against the window w using the Cohen-Sutherland algorithm.
// It returns the visible part of the segment and true, or false if no part
// of the segment lies inside the window.
//
// In every step the endpoint with a non-zero outcode (the first endpoint if
// both qualify) is moved onto one window boundary.  The boundary is chosen
// from the outcode bits in the order Top, Bottom, Right, Left.  The
// intersection is computed from the current, possibly already clipped,
// endpoints.  Divisions by zero are not guarded; they can only occur for
// degenerate windows and may produce non-finite coordinates.
func Clip(s Segment, w rect.Rect) (Segment, bool) {
	p1, p2 := s.P1, s.P2
	code1 := ComputeCode(p1, w)
	code2 := ComputeCode(p2, w)

	for step := 0; ; step++ {
		switch {
		case code1|code2 == Inside:
			return Segment{P1: p1, P2: p2}, true
		case code1&code2 != 0:
			return Segment{}, false
		case step == maxClipSteps:
			// the window is inverted and the moves oscillate
			return Segment{}, false
		}

		out := code1
		if out == Inside {
			out = code2
		}

		var p vec.Vec2
		switch {
		case out&Top != 0:
			p = vec.Vec2{X: p1.X + (p2.X-p1.X)*(w.URy-p1.Y)/(p2.Y-p1.Y), Y: w.URy}
		case out&Bottom != 0:
			p = vec.Vec2{X: p1.X + (p2.X-p1.X)*(w.LLy-p1.Y)/(p2.Y-p1.Y), Y: w.LLy}
		case out&Right != 0:
			p = vec.Vec2{X: w.URx, Y: p1.Y + (p2.Y-p1.Y)*(w.URx-p1.X)/(p2.X-p1.X)}
		case out&Left != 0:
			p = vec.Vec2{X: w.LLx, Y: p1.Y + (p2.Y-p1.Y)*(w.LLx-p1.X)/(p2.X-p1.X)}
		}

		if out == code1 {
			p1 = p
			code1 = ComputeCode(p1, w)
		} else {
			p2 = p
			code2 = ComputeCode(p2, w)
		}
	}
}

// ClipAll clips every segment in segs against w.
// The result has one entry per input segment, in the same order.
func ClipAll(segs []Segment, w rect.Rect) []Result {
	res := make([]Result, len(segs))
	for i, s := range segs {
		res[i].Part, res[i].Visible = Clip(s, w)
	}
	return res
}

// InWindow reports whether at least one endpoint of s lies inside w or on
// its boundary.  Unlike [Clip], this misses segments which cross the window
// with both endpoints outside.
func InWindow(s Segment, w rect.Rect) bool {
	return contains(w, s.P1) || contains(w, s.P2)
}

func contains(w rect.Rect, p vec.Vec2) bool {
	return w.LLx <= p.X && p.X <= w.URx && w.LLy <= p.Y && p.Y <= w.URy
}

// Normalize returns w with the bounds swapped where necessary, so that
// LLx <= URx and LLy <= URy.
func Normalize(w rect.Rect) rect.Rect {
	if w.LLx > w.URx {
		w.LLx, w.URx = w.URx, w.LLx
	}
	if w.LLy > w.URy {
		w.LLy, w.URy = w.URy, w.LLy
	}
	return w
}
