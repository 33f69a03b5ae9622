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

// Package clipview draws pictures of line clipping sessions.
//
// A [Frame] captures the state of a [session.Session]: the clip window,
// all segments, and the highlighted parts.  [Draw] renders a frame into an
// image using the anti-aliased [Rasteriser], and [WritePDF] writes it as a
// vector graphics PDF file.
package clipview

//go:generate go run ./testcases/export
