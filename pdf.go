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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/clipview/clip"
)

// WritePDF writes f as a single page PDF file of the given size in PDF
// points.  The picture is drawn in shades of grey; widths and dash lengths
// of st are used as PDF points.  The caption is not included.
func WritePDF(fname string, f Frame, st Style, width, height float64) error {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", fname, err)
	}

	// ViewTransform works in y-down device space, PDF pages are y-up.
	dev := rect.Rect{URx: width, URy: height}
	m := ViewTransform(f.View, dev, st.Margin)
	toPage := func(p vec.Vec2) vec.Vec2 {
		q := transform(m, p)
		q.Y = height - q.Y
		return q
	}

	page.SetFillColor(pdfcolor.DeviceGray(luma(st.Background)))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	if f.Dragging {
		page.SetFillColor(pdfcolor.DeviceGray(luma(st.Shade)))
		polygon(page, toPage, corners(f.Window))
		page.Fill()
	}

	page.SetLineCap(graphics.LineCapButt)
	page.SetLineWidth(st.AxesWidth)
	page.SetStrokeColor(pdfcolor.DeviceGray(luma(st.Axes)))
	polygon(page, toPage, corners(f.View))
	page.Stroke()

	page.SetLineWidth(st.SegmentWidth)
	page.SetStrokeColor(pdfcolor.DeviceGray(luma(st.Segment)))
	segmentPath(page, toPage, f.Segments)
	page.Stroke()

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineWidth(st.HighlightWidth)
	page.SetStrokeColor(pdfcolor.DeviceGray(luma(st.Highlight)))
	segmentPath(page, toPage, f.Highlights)
	page.Stroke()

	page.SetLineCap(graphics.LineCapButt)
	page.SetLineWidth(st.WindowWidth)
	page.SetStrokeColor(pdfcolor.DeviceGray(luma(st.Window)))
	if len(st.WindowDash) > 0 {
		page.SetLineDash(st.WindowDash, 0)
	}
	polygon(page, toPage, corners(f.Window))
	page.Stroke()

	if err := page.Close(); err != nil {
		return fmt.Errorf("write %s: %w", fname, err)
	}
	return nil
}

// pathBuilder is the part of a PDF content stream writer used here.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func polygon(page pathBuilder, tr func(vec.Vec2) vec.Vec2, pts []vec.Vec2) {
	for i, p := range pts {
		q := tr(p)
		if i == 0 {
			page.MoveTo(q.X, q.Y)
		} else {
			page.LineTo(q.X, q.Y)
		}
	}
	page.ClosePath()
}

func segmentPath(page pathBuilder, tr func(vec.Vec2) vec.Vec2, segs []clip.Segment) {
	for _, s := range segs {
		a, b := tr(s.P1), tr(s.P2)
		if !isFinite(a) || !isFinite(b) {
			continue
		}
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
	}
}

// luma converts c to a grey level in [0, 1], using the Rec. 601 weights.
// Alpha is ignored.
func luma(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// transform applies m to p.
func transform(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
