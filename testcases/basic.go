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

var defaultWindow = rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}

var basicCases = []TestCase{
	{
		Name:     "diagonal",
		Window:   defaultWindow,
		Segments: []clip.Segment{seg(0, 0, 10, 10)},
		Width:    400,
		Height:   400,
		Want:     []clip.Result{visible(2, 2, 8, 8)},
	},
	{
		Name:   "axis_crossing",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(0, 5, 10, 5),
			seg(5, 0, 5, 10),
			seg(10, 5, 0, 5),
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(2, 5, 8, 5),
			visible(5, 2, 5, 8),
			visible(8, 5, 2, 5),
		},
	},
	{
		Name:   "trivial",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(3, 3, 7, 7),  // inside
			seg(0, 9, 10, 9), // above
			seg(0, 1, 10, 1), // below
			seg(9, 0, 9, 10), // right
			seg(1, 0, 1, 10), // left
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(3, 3, 7, 7),
			rejected,
			rejected,
			rejected,
			rejected,
		},
	},
	{
		Name:   "one_end_out",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(5, 5, 10, 5),
			seg(5, 0, 5, 5),
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(5, 5, 8, 5),
			visible(5, 2, 5, 5),
		},
	},
	{
		Name:   "corner",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(0, 7, 3, 10),  // misses the top left corner
			seg(0, 6, 4, 10),  // touches the top left corner
			seg(0, 10, 10, 0), // runs through two corners
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			rejected,
			visible(2, 8, 2, 8),
			visible(2, 8, 8, 2),
		},
	},
}
