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

var boundaryCases = []TestCase{
	{
		Name:   "on_edge",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(2, 0, 2, 10),
			seg(0, 8, 10, 8),
			seg(3, 2, 7, 2),
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(2, 2, 2, 8),
			visible(2, 8, 8, 8),
			visible(3, 2, 7, 2),
		},
	},
	{
		Name:   "degenerate",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(5, 5, 5, 5),
			seg(9, 9, 9, 9),
			seg(8, 8, 8, 8),
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(5, 5, 5, 5),
			rejected,
			visible(8, 8, 8, 8),
		},
	},
	{
		Name:   "subpixel",
		Window: defaultWindow,
		Segments: []clip.Segment{
			seg(1.5, 4.25, 8.5, 4.25),
			seg(4.75, 1.5, 4.75, 8.5),
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(2, 4.25, 8, 4.25),
			visible(4.75, 2, 4.75, 8),
		},
	},
	{
		Name:   "thin_window",
		Window: rect.Rect{LLx: 2, LLy: 4.5, URx: 8, URy: 5.5},
		Segments: []clip.Segment{
			seg(0, 5, 10, 5),
			seg(5, 0, 5, 10),
			seg(0, 6, 10, 6),
		},
		Width:  400,
		Height: 400,
		Want: []clip.Result{
			visible(2, 5, 8, 5),
			visible(5, 4.5, 5, 5.5),
			rejected,
		},
	},
	{
		Name:     "wide_picture",
		Window:   defaultWindow,
		Segments: []clip.Segment{seg(0, 0, 10, 10), seg(0, 10, 10, 0)},
		Width:    800,
		Height:   300,
		Want:     []clip.Result{visible(2, 2, 8, 8), visible(2, 8, 8, 2)},
	},
}
