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

// Package clip classifies and clips line segments against an axis-aligned
// window.
//
// Windows are given as [rect.Rect] values, where LLx/LLy hold the minimum
// and URx/URy the maximum coordinates.  None of the functions in this
// package require the window to be normalised: all comparisons are made
// against the four bounds exactly as given.
package clip

import (
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode is the Cohen-Sutherland region code of a point relative to a
// window.  Each bit marks one of the four half-planes outside the window.
type Outcode uint8

// Outcode bits.
const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// ComputeCode returns the outcode of p relative to the window w.
//
// The horizontal bits Left and Right are mutually exclusive, Left taking
// precedence, and so are Bottom and Top.  This holds even for inverted
// windows.
func ComputeCode(p vec.Vec2, w rect.Rect) Outcode {
	code := Inside

	if p.X < w.LLx {
		code |= Left
	} else if p.X > w.URx {
		code |= Right
	}

	if p.Y < w.LLy {
		code |= Bottom
	} else if p.Y > w.URy {
		code |= Top
	}

	return code
}

// String returns the set bits in the form "left|top", or "inside".
func (c Outcode) String() string {
	if c == Inside {
		return "inside"
	}
	var parts []string
	for _, bit := range []struct {
		b    Outcode
		name string
	}{
		{Left, "left"},
		{Right, "right"},
		{Bottom, "bottom"},
		{Top, "top"},
	} {
		if c&bit.b != 0 {
			parts = append(parts, bit.name)
		}
	}
	return strings.Join(parts, "|")
}
