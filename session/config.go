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

package session

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clipview/edit"
	"seehuhn.de/go/clipview/segments"
)

// Variant selects how segments are compared against the window.
type Variant int

const (
	// CohenSutherland clips every segment and highlights the visible part.
	CohenSutherland Variant = iota

	// Naive highlights whole segments which have an endpoint in the window.
	Naive
)

func (v Variant) String() string {
	switch v {
	case CohenSutherland:
		return "cohen-sutherland"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts the output of [Variant.String] back to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "cohen-sutherland", "cs":
		return CohenSutherland, nil
	case "naive":
		return Naive, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// Config holds the parameters of a [Session].
type Config struct {
	// Count is the number of segments generated by each refresh.
	Count int

	// Domain is the region from which segment endpoints are drawn.
	Domain rect.Rect

	// Window is the initial clip window.
	Window rect.Rect

	// Margin is the hit-test distance for grabbing window edges.
	Margin float64

	Variant Variant

	// Seed initialises the segment generator.
	Seed uint64

	// Normalize makes clipping use the window with crossed edges swapped
	// back.  The window itself, as reported by [Session.Window], is never
	// modified.
	Normalize bool
}

// DefaultConfig returns the configuration of the classic demo: ten
// segments in [0,10]², clipped against the window [2,8]².
func DefaultConfig() Config {
	return Config{
		Count:   segments.DefaultCount,
		Domain:  segments.DefaultDomain,
		Window:  rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8},
		Margin:  edit.DefaultMargin,
		Variant: CohenSutherland,
		Seed:    1,
	}
}
