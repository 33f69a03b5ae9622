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

// Command genpdf draws every test scene as a PDF and as a PNG file.
// With -gs, the PDF files are also rendered by Ghostscript, for comparison
// with the built-in rasteriser.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/clipview"
	"seehuhn.de/go/clipview/clip"
	"seehuhn.de/go/clipview/testcases"
)

const outDir = "testdata/scenes"

var useGS = flag.Bool("gs", false, "also render the PDF files using Ghostscript")

func main() {
	flag.Parse()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	st := clipview.DefaultStyle()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			f := frame(tc)
			w, h := float64(tc.Width), float64(tc.Height)
			if err := clipview.WritePDF(pdfPath, f, st, w, h); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(pngPath, f, st, tc.Width, tc.Height); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *useGS {
				gsPath := filepath.Join(outDir, name+"_gs.png")
				if err := renderPNG(pdfPath, gsPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func frame(tc testcases.TestCase) clipview.Frame {
	f := clipview.Frame{
		View:     testcases.View,
		Window:   tc.Window,
		Segments: tc.Segments,
		Caption:  tc.Name,
	}
	for _, res := range clip.ClipAll(tc.Segments, tc.Window) {
		if res.Visible {
			f.Highlights = append(f.Highlights, res.Part)
		}
	}
	return f
}

func writePNG(fname string, f clipview.Frame, st clipview.Style, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	clipview.Draw(img, f, st)

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
