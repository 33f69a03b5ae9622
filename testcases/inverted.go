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

package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clipview/clip"
)

// Windows with swapped bounds, as left behind by dragging one edge across
// the opposite one.  Every point has a non-zero outcode, so nothing is
// visible.
var invertedCases = []TestCase{
	{
		Name:   "inverted_x",
		Window: rect.Rect{LLx: 8, LLy: 2, URx: 2, URy: 8},
		Segments: []clip.Segment{
			seg(0, 0, 10, 10),
			seg(5, 5, 5, 6),
			seg(0, 5, 10, 5),
		},
		Width:  400,
		Height: 400,
		Want:   []clip.Result{rejected, rejected, rejected},
	},
	{
		Name:   "inverted_y",
		Window: rect.Rect{LLx: 2, LLy: 8, URx: 8, URy: 2},
		Segments: []clip.Segment{
			seg(0, 0, 10, 10),
			seg(5, 5, 6, 5),
			seg(5, 0, 5, 10),
		},
		Width:  400,
		Height: 400,
		Want:   []clip.Result{rejected, rejected, rejected},
	},
}
