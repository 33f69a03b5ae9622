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

// Package edit turns pointer events into edits of a clip window.
//
// A press close to one of the window edges starts dragging that edge, a
// press strictly inside the window starts dragging the whole window.
// Subsequent drag events move the edge (or the window) by the pointer
// delta since the previous event, and a release ends the interaction.
package edit

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultMargin is the default hit-test distance for window edges, in
// plot units.
const DefaultMargin = 0.2

// Mode is the state of an [Editor].
type Mode int

const (
	Idle Mode = iota
	DraggingEdge
	DraggingWhole
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case DraggingEdge:
		return "edge"
	case DraggingWhole:
		return "whole"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Edge identifies one side of the window.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeBottom
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Target describes what is being dragged.
// Edge is only meaningful if Mode is DraggingEdge.
type Target struct {
	Mode Mode
	Edge Edge
}

func (t Target) String() string {
	if t.Mode == DraggingEdge {
		return "edge " + t.Edge.String()
	}
	return t.Mode.String()
}

// Editor is the drag state machine for a single pointer.
// The window itself is owned by the caller and passed to every call.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	// Margin is the maximum distance between the pointer and an edge
	// for a press to grab that edge.
	Margin float64

	target Target
	anchor vec.Vec2 // pointer position at the previous event
}

// NewEditor returns an idle Editor with the given hit-test margin.
func NewEditor(margin float64) *Editor {
	return &Editor{Margin: margin}
}

// Target returns the current drag target.
func (e *Editor) Target() Target {
	return e.target
}

// Down handles a pointer press at pos.  If valid is false the pointer is
// outside the plot area and the event is ignored.  Presses are only
// considered while the editor is idle.
//
// The edges are tested in the order left, right, bottom, top, comparing
// only the distance to the edge's line, not to its extent.  If no edge is
// close, a press strictly inside w grabs the whole window.
// Down reports whether a drag was started.
func (e *Editor) Down(w *rect.Rect, pos vec.Vec2, valid bool) bool {
	if !valid || e.target.Mode != Idle {
		return false
	}

	switch {
	case math.Abs(pos.X-w.LLx) < e.Margin:
		e.target = Target{Mode: DraggingEdge, Edge: EdgeLeft}
	case math.Abs(pos.X-w.URx) < e.Margin:
		e.target = Target{Mode: DraggingEdge, Edge: EdgeRight}
	case math.Abs(pos.Y-w.LLy) < e.Margin:
		e.target = Target{Mode: DraggingEdge, Edge: EdgeBottom}
	case math.Abs(pos.Y-w.URy) < e.Margin:
		e.target = Target{Mode: DraggingEdge, Edge: EdgeTop}
	case w.LLx < pos.X && pos.X < w.URx && w.LLy < pos.Y && pos.Y < w.URy:
		e.target = Target{Mode: DraggingWhole}
	default:
		return false
	}
	e.anchor = pos
	return true
}

// Move handles pointer motion to pos.  While dragging, the dragged edge
// (or all four bounds of w) is moved by the delta from the previous
// pointer position.  Edges may cross each other; w is not normalised.
//
// Events with valid == false are ignored, which freezes w until the
// pointer returns to the plot area.  Move reports whether w was changed.
func (e *Editor) Move(w *rect.Rect, pos vec.Vec2, valid bool) bool {
	if !valid || e.target.Mode == Idle {
		return false
	}

	d := pos.Sub(e.anchor)
	switch e.target.Mode {
	case DraggingEdge:
		switch e.target.Edge {
		case EdgeLeft:
			w.LLx += d.X
		case EdgeRight:
			w.URx += d.X
		case EdgeBottom:
			w.LLy += d.Y
		case EdgeTop:
			w.URy += d.Y
		}
	case DraggingWhole:
		w.LLx += d.X
		w.URx += d.X
		w.LLy += d.Y
		w.URy += d.Y
	}
	e.anchor = pos
	return true
}

// Up ends the current interaction, whatever the state.
func (e *Editor) Up() {
	e.target = Target{}
}
