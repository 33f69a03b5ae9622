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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/clipview/clip"
	"seehuhn.de/go/clipview/edit"
	"seehuhn.de/go/clipview/session"
)

// Frame is everything shown in one picture of a session.
type Frame struct {
	// View is the part of the plane shown, in plot coordinates.
	View rect.Rect

	// Window is the clip window, drawn as a dashed outline.
	Window rect.Rect

	// Segments are drawn in the neutral colour.
	Segments []clip.Segment

	// Highlights are drawn on top of the segments.
	Highlights []clip.Segment

	// Dragging shades the window while it is being edited.
	Dragging bool

	// Caption is printed in the top left corner, if non-empty.
	Caption string
}

// NewFrame captures the current state of s.  The view is the domain from
// which the session draws its segments.
func NewFrame(s *session.Session) Frame {
	return Frame{
		View:       s.Config().Domain,
		Window:     s.Window(),
		Segments:   s.Segments(),
		Highlights: s.Highlighted(),
		Dragging:   s.Target().Mode != edit.Idle,
		Caption: fmt.Sprintf("%s, %d segments, window [%.2f,%.2f]x[%.2f,%.2f]",
			s.Variant(), len(s.Segments()),
			s.Window().LLx, s.Window().URx, s.Window().LLy, s.Window().URy),
	}
}

// Style sets colours and line widths.  Widths and the dash pattern are
// in device pixels.
type Style struct {
	Background color.RGBA
	Axes       color.RGBA
	Segment    color.RGBA
	Highlight  color.RGBA
	Window     color.RGBA
	Shade      color.RGBA // window interior while dragging
	Text       color.RGBA

	AxesWidth      float64
	SegmentWidth   float64
	HighlightWidth float64
	WindowWidth    float64
	WindowDash     []float64

	// Margin is the space around the view, in device pixels.
	Margin float64
}

// DefaultStyle returns the classic look: black segments, red highlights
// and a dashed blue window on white.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{255, 255, 255, 255},
		Axes:       color.RGBA{160, 160, 160, 255},
		Segment:    color.RGBA{0, 0, 0, 255},
		Highlight:  color.RGBA{220, 20, 20, 255},
		Window:     color.RGBA{30, 60, 220, 255},
		Shade:      color.RGBA{30, 60, 220, 40},
		Text:       color.RGBA{60, 60, 60, 255},

		AxesWidth:      1,
		SegmentWidth:   1.5,
		HighlightWidth: 3,
		WindowWidth:    1.5,
		WindowDash:     []float64{6, 4},

		Margin: 20,
	}
}

// ViewTransform returns the matrix which maps view to the device
// rectangle dev, preserving the aspect ratio, centring the view and
// flipping the y axis so that y grows upwards.
func ViewTransform(view, dev rect.Rect, margin float64) matrix.Matrix {
	vw, vh := view.URx-view.LLx, view.URy-view.LLy
	dw, dh := dev.URx-dev.LLx-2*margin, dev.URy-dev.LLy-2*margin
	if vw <= 0 || vh <= 0 || dw <= 0 || dh <= 0 {
		return matrix.Identity
	}
	s := min(dw/vw, dh/vh)
	offX := dev.LLx + margin + (dw-s*vw)/2
	offY := dev.LLy + margin + (dh-s*vh)/2
	return matrix.Matrix{s, 0, 0, -s, offX - s*view.LLx, offY + s*view.URy}
}

// Draw renders f onto dst.
func Draw(dst *image.RGBA, f Frame, st Style) {
	b := dst.Bounds()
	dev := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
	r := NewRasteriser(dev)
	r.CTM = ViewTransform(f.View, dev, st.Margin)

	fillImage(dst, st.Background)

	r.Width = st.AxesWidth
	r.StrokePolyline(corners(f.View), true, painter(dst, st.Axes))

	if f.Dragging {
		r.FillPolygon(corners(f.Window), painter(dst, st.Shade))
	}

	r.Width = st.WindowWidth
	r.Dash = st.WindowDash
	r.StrokePolyline(corners(f.Window), true, painter(dst, st.Window))
	r.Dash = nil

	r.Width = st.SegmentWidth
	r.StrokeSegments(f.Segments, painter(dst, st.Segment))

	r.Width = st.HighlightWidth
	r.Cap = graphics.LineCapRound
	r.StrokeSegments(f.Highlights, painter(dst, st.Highlight))

	if f.Caption != "" {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(st.Text),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(b.Min.X+4, b.Min.Y+13),
		}
		d.DrawString(f.Caption)
	}
}

// corners returns the vertices of w in counter-clockwise order, starting
// at the lower left corner.
func corners(w rect.Rect) []vec.Vec2 {
	return []vec.Vec2{
		{X: w.LLx, Y: w.LLy},
		{X: w.URx, Y: w.LLy},
		{X: w.URx, Y: w.URy},
		{X: w.LLx, Y: w.URy},
	}
}

func fillImage(dst *image.RGBA, c color.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// painter returns an emit callback which composites the colour c over dst,
// scaled by the coverage.
func painter(dst *image.RGBA, c color.RGBA) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		off := dst.PixOffset(xMin, y)
		for i, cov := range coverage {
			a := cov * float32(c.A) / 255
			px := dst.Pix[off+4*i : off+4*i+4 : off+4*i+4]
			px[0] = blend(px[0], c.R, a)
			px[1] = blend(px[1], c.G, a)
			px[2] = blend(px[2], c.B, a)
			px[3] = blend(px[3], 255, a)
		}
	}
}

func blend(dst, src uint8, alpha float32) uint8 {
	v := float32(dst)*(1-alpha) + float32(src)*alpha
	return uint8(min(max(v+0.5, 0), 255))
}
