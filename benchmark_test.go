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
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clipview/clip"
	"seehuhn.de/go/clipview/segments"
	"seehuhn.de/go/clipview/testcases"
)

var benchSizes = []int{100, 400, 2000}

// BenchmarkStrokeSegments benchmarks our rasteriser stroking random
// segments.
func BenchmarkStrokeSegments(b *testing.B) {
	segs := segments.NewGenerator(1, testcases.View).Generate(100)

	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dev := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(dev)
			m := ViewTransform(testcases.View, dev, 0)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(dev)
				r.CTM = m
				r.Width = 2
				r.StrokeSegments(segs, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorSegments benchmarks x/image/vector filling the outlines
// of the same segments.
func BenchmarkVectorSegments(b *testing.B) {
	segs := segments.NewGenerator(1, testcases.View).Generate(100)

	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dev := rect.Rect{URx: float64(size), URy: float64(size)}
			quads := buttQuads(segs, ViewTransform(testcases.View, dev, 0), 2)

			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				for _, quad := range quads {
					z.MoveTo(float32(quad[0].X), float32(quad[0].Y))
					for _, p := range quad[1:] {
						z.LineTo(float32(p.X), float32(p.Y))
					}
					z.ClosePath()
				}
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkDrawAll measures steady-state performance of drawing every test
// scene into one reused image.
func BenchmarkDrawAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	st := DefaultStyle()
	img := image.NewRGBA(image.Rect(0, 0, 800, 400))

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			f := Frame{
				View:     testcases.View,
				Window:   tc.Window,
				Segments: tc.Segments,
			}
			for _, res := range clip.ClipAll(tc.Segments, tc.Window) {
				if res.Visible {
					f.Highlights = append(f.Highlights, res.Part)
				}
			}
			Draw(img.SubImage(image.Rect(0, 0, tc.Width, tc.Height)).(*image.RGBA), f, st)
		}
	}
}
