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

package clipview

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts polygons and stroked line segments to anti-aliased
// pixel coverage values in [0, 1].  Internal buffers grow as needed and are
// reused between calls.
//
// Coverage is delivered row by row through an emit callback.  The coverage
// slice passed to emit is only valid during the call.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps plot coordinates to device coordinates.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximum deviation of round caps from a true
	// circle, in device pixels.
	Flatness float64

	// Width is the stroke width in device pixels.
	Width float64

	// Cap is the style of the stroke ends.
	Cap graphics.LineCapStyle

	// Dash is an alternating on/off pattern in device pixels.
	// Nil means solid lines.
	Dash []float64

	// DashPhase is the offset into the dash pattern, in device pixels.
	DashPhase float64

	cover     []float32  // per pixel change of the winding number
	area      []float32  // per pixel partial coverage
	edges     []edge     // edges of the current shape
	active    []int      // indices of the edges touching the current row
	crossings []float64  // y values where an edge crosses a pixel column
	outline   []vec.Vec2 // stroke outline vertices, all polygons contiguous
	offsets   []int      // start of each polygon in outline
	device    []vec.Vec2 // device space copy of the current polyline

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser for the given device clip rectangle,
// with an identity CTM, unit width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Dash = nil
	r.DashPhase = 0
}

// toDevice maps a point from plot coordinates to device coordinates.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	return transform(r.CTM, p)
}

// FillPolygon fills the polygon with the given vertices (in plot
// coordinates) using the nonzero winding rule.  The polygon is closed
// implicitly.
func (r *Rasteriser) FillPolygon(pts []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.beginShape()
	if len(pts) < 3 {
		return
	}
	prev := r.toDevice(pts[len(pts)-1])
	for _, p := range pts {
		cur := r.toDevice(p)
		r.addEdge(prev, cur)
		prev = cur
	}
	r.fill(emit)
}

func (r *Rasteriser) beginShape() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge adds an edge given in device coordinates.
// Horizontal edges do not change the coverage and are dropped, and so are
// edges with non-finite coordinates.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	if !isFinite(a) || !isFinite(b) {
		return
	}
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(a.X, b.X), max(a.X, b.X)
		r.bboxYMin, r.bboxYMax = min(a.Y, b.Y), max(a.Y, b.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, a.X, b.X)
	r.bboxXMax = max(r.bboxXMax, a.X, b.X)
	r.bboxYMin = min(r.bboxYMin, a.Y, b.Y)
	r.bboxYMax = max(r.bboxYMax, a.Y, b.Y)
}

// pixelBounds returns the integer pixel range covered by the collected
// edges, intersected with the clip rectangle.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = int(max(math.Floor(r.bboxXMin), r.Clip.LLx))
	xMax = int(min(math.Floor(r.bboxXMax)+1, r.Clip.URx))
	yMin = int(max(math.Floor(r.bboxYMin), r.Clip.LLy))
	yMax = int(min(math.Floor(r.bboxYMax)+1, r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model:
//
// Every edge piece inside a pixel contributes to two per-pixel values.
// cover is the signed height h of the piece, the sign giving the edge
// direction; it is carried to all pixels further right.  area is
// h*(1-xFrac), the part of this pixel right of the piece, where xFrac is
// the horizontal position of the piece inside the pixel.
//
// Summing along a row, pixel coverage is accumulated cover of all pixels to
// the left plus the pixel's own area.  The absolute value, clamped to 1,
// gives the coverage under the nonzero winding rule.

// fill rasterises the collected edges using an active edge list.
func (r *Rasteriser) fill(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		rowTop := float64(y)
		rowBot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < rowBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= rowTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulate adds the part of e inside row y to the cover and area
// buffers, which hold the pixel columns xMin to xMax-1.  It reports
// whether e intersects the row.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return false
	}

	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	pixLo := pixelColumn(min(xTop, xBot), xMin, xMax)
	pixHi := pixelColumn(max(xTop, xBot), xMin, xMax)

	if pixLo == pixHi {
		xMid := e.x0 + e.dxdy*((top+bot)/2-e.y0)
		r.deposit(pixLo, dir*float32(bot-top), xMid, xMin, xMax)
		return true
	}

	// Split the piece where it crosses pixel column boundaries.  Columns
	// outside the buffer need no splitting, see deposit.
	r.crossings = append(r.crossings[:0], top, bot)
	for x := max(pixLo+1, xMin); x <= min(pixHi, xMax); x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		a, b := r.crossings[i-1], r.crossings[i]
		if b <= a {
			continue
		}
		xMid := e.x0 + e.dxdy*((a+b)/2-e.y0)
		r.deposit(pixelColumn(xMid, xMin, xMax), dir*float32(b-a), xMid, xMin, xMax)
	}
	return true
}

// pixelColumn returns the pixel column containing x.  Columns left of xMin
// are reported as xMin-1 and columns right of xMax as xMax+1, which keeps
// the conversion to int defined for huge coordinates.
func pixelColumn(x float64, xMin, xMax int) int {
	return int(math.Floor(min(max(x, float64(xMin-1)), float64(xMax+1))))
}

// deposit records an edge piece of signed height h at horizontal position
// xMid, which lies in pixel column pix.  Pieces left of the buffer fully
// cover its first pixel; pieces right of it have no effect.
func (r *Rasteriser) deposit(pix int, h float32, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(xMid-float64(pix)))
	}
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros strips zero coverage from both ends of a row.
// It returns nil if the whole row is zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// Default values of the rasteriser settings.
const (
	// defaultFlatness keeps round caps within a quarter pixel of a circle.
	defaultFlatness = 0.25
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which is kept.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which stroke pieces are
	// treated as points.
	zeroLengthThreshold = 1e-10
)
