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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/clipview/clip"
)

// StrokeSegments strokes every segment in segs (plot coordinates) using
// Width, Cap, Dash and DashPhase.  The dash pattern restarts at the first
// endpoint of each segment.  All outlines are filled together, so that
// overlapping segments are painted only once.
func (r *Rasteriser) StrokeSegments(segs []clip.Segment, emit func(y, xMin int, coverage []float32)) {
	r.beginStroke()
	for _, s := range segs {
		r.device = append(r.device[:0], r.toDevice(s.P1), r.toDevice(s.P2))
		r.addPolyline(r.device)
	}
	r.fillOutlines(emit)
}

// StrokePolyline strokes the polyline through pts (plot coordinates).
// If closed is set, the last point is joined back to the first.
// The dash pattern runs continuously along the whole polyline.
// Corners are not joined; each piece gets its own caps.
func (r *Rasteriser) StrokePolyline(pts []vec.Vec2, closed bool, emit func(y, xMin int, coverage []float32)) {
	r.beginStroke()
	r.device = r.device[:0]
	for _, p := range pts {
		r.device = append(r.device, r.toDevice(p))
	}
	if closed && len(pts) > 1 {
		r.device = append(r.device, r.device[0])
	}
	r.addPolyline(r.device)
	r.fillOutlines(emit)
}

func (r *Rasteriser) beginStroke() {
	r.outline = r.outline[:0]
	r.offsets = r.offsets[:0]
}

// addPolyline splits the device space polyline pts into the visible pieces
// of the dash pattern and adds an outline for each of them.
func (r *Rasteriser) addPolyline(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}

	total := 0.0
	for _, d := range r.Dash {
		total += d
	}
	if len(r.Dash) == 0 || total <= 0 {
		for i := 1; i < len(pts); i++ {
			r.addPiece(pts[i-1], pts[i])
		}
		return
	}

	// Odd patterns repeat with on and off swapped, so the full period
	// is twice as long.
	n := len(r.Dash)
	if n%2 == 1 {
		total *= 2
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase > 0 && phase >= r.Dash[idx%n] {
		phase -= r.Dash[idx%n]
		idx++
	}
	remaining := r.Dash[idx%n] - phase
	on := idx%2 == 0

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		ab := b.Sub(a)
		length := ab.Length()
		pos := 0.0
		for length-pos > remaining {
			end := pos + remaining
			if on {
				r.addPiece(a.Add(ab.Mul(pos/length)), a.Add(ab.Mul(end/length)))
			}
			pos = end
			idx++
			remaining = r.Dash[idx%n]
			on = idx%2 == 0
		}
		if on && length > pos {
			r.addPiece(a.Add(ab.Mul(pos/length)), b)
		}
		remaining -= length - pos
	}
}

// addPiece adds the outline of a single straight stroke piece from a to b.
func (r *Rasteriser) addPiece(a, b vec.Vec2) {
	if !isFinite(a) || !isFinite(b) {
		return
	}
	d := r.Width / 2
	ab := b.Sub(a)
	length := ab.Length()

	if length < zeroLengthThreshold {
		// Without a direction only round caps leave a mark.
		if r.Cap == graphics.LineCapRound {
			r.offsets = append(r.offsets, len(r.outline))
			r.addArc(a, d, vec.Vec2{X: 1}, vec.Vec2{X: 0, Y: 1}, 2*math.Pi)
		}
		return
	}

	T := ab.Mul(1 / length)
	N := vec.Vec2{X: -T.Y, Y: T.X}

	r.offsets = append(r.offsets, len(r.outline))
	if r.Cap == graphics.LineCapRound {
		r.outline = append(r.outline, a.Add(N.Mul(d)))
		r.addArc(b, d, N, T, math.Pi)
		r.addArc(a, d, N.Mul(-1), T.Mul(-1), math.Pi)
		return
	}
	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(T.Mul(d))
		b = b.Add(T.Mul(d))
	}
	r.outline = append(r.outline,
		a.Add(N.Mul(d)),
		b.Add(N.Mul(d)),
		b.Sub(N.Mul(d)),
		a.Sub(N.Mul(d)),
	)
}

// addArc appends points on the arc around center which starts in direction
// u and turns towards v, for the given sweep angle.  u and v must be
// orthogonal unit vectors.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, u, v vec.Vec2, sweep float64) {
	steps := 2
	if radius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/radius)
		steps = max(steps, int(math.Ceil(sweep/step)))
	}
	for i := range steps + 1 {
		phi := sweep * float64(i) / float64(steps)
		r.outline = append(r.outline,
			center.Add(u.Mul(radius*math.Cos(phi))).Add(v.Mul(radius*math.Sin(phi))))
	}
}

// fillOutlines fills all collected outline polygons as one shape.
func (r *Rasteriser) fillOutlines(emit func(y, xMin int, coverage []float32)) {
	r.beginShape()
	for i, start := range r.offsets {
		end := len(r.outline)
		if i+1 < len(r.offsets) {
			end = r.offsets[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		prev := poly[len(poly)-1]
		for _, p := range poly {
			r.addEdge(prev, p)
			prev = p
		}
	}
	r.fill(emit)
}
