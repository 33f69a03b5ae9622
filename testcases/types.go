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

// Package testcases contains named clipping scenes, used by the tests,
// the benchmarks and the export commands.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clipview/clip"
)

// TestCase is a clip window together with a set of segments.
type TestCase struct {
	Name     string         // lowercase a-z, 0-9 and _ only
	Window   rect.Rect      // the clip window
	Segments []clip.Segment // the segments to clip
	Width    int            // picture width in pixels
	Height   int            // picture height in pixels

	// Want, if non-nil, holds the expected Cohen-Sutherland result for
	// each segment.
	Want []clip.Result
}

// View is the part of the plane shown in pictures of the test cases.
var View = rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

// seg is a helper to create a segment from endpoint coordinates.
func seg(x1, y1, x2, y2 float64) clip.Segment {
	return clip.Segment{P1: vec.Vec2{X: x1, Y: y1}, P2: vec.Vec2{X: x2, Y: y2}}
}

// visible is a helper for expected results.
func visible(x1, y1, x2, y2 float64) clip.Result {
	return clip.Result{Part: seg(x1, y1, x2, y2), Visible: true}
}

var rejected = clip.Result{}
