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

package edit

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind is the type of a pointer event.
type Kind int

const (
	Press Kind = iota
	Drag
	Release
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Drag:
		return "drag"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a pointer event in plot coordinates.
// Valid is false if the pointer is outside the plot area, in which case
// Pos carries no information.
type Event struct {
	Kind  Kind
	Pos   vec.Vec2
	Valid bool
}

// At returns an event of the given kind at (x, y).
func At(kind Kind, x, y float64) Event {
	return Event{Kind: kind, Pos: vec.Vec2{X: x, Y: y}, Valid: true}
}

func (ev Event) String() string {
	if !ev.Valid {
		return ev.Kind.String() + " -"
	}
	return fmt.Sprintf("%s %g %g", ev.Kind, ev.Pos.X, ev.Pos.Y)
}

// Handle dispatches ev to Down, Move or Up.  It reports whether the
// window w was changed.
func (e *Editor) Handle(w *rect.Rect, ev Event) bool {
	switch ev.Kind {
	case Press:
		e.Down(w, ev.Pos, ev.Valid)
	case Drag:
		return e.Move(w, ev.Pos, ev.Valid)
	case Release:
		e.Up()
	}
	return false
}
