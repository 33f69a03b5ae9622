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

// Command clipview replays pointer events against a line clipping session
// and writes the final picture.
//
// Usage:
//
//	clipview [flags] [script]
//
// The script is read from the named file, or from standard
// input if the name is "-".  Without a script the initial state is drawn.
//
// A script is a list of commands, one per line:
//
//	press X Y     pointer pressed at (X, Y)
//	drag X Y      pointer moved to (X, Y) with the button held
//	release       pointer released
//	count TEXT    segment count for the next refresh
//	refresh       generate new segments
//	reset         restore the initial window
//	variant NAME  switch between "naive" and "cohen-sutherland"
//
// A "-" in place of the coordinates gives an event outside the plot area.
// Empty lines and lines starting with "#" are ignored.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/clipview"
	"seehuhn.de/go/clipview/segments"
	"seehuhn.de/go/clipview/session"
)

func main() {
	var (
		count     = flag.String("n", "10", "number of segments")
		variant   = flag.String("variant", "cohen-sutherland", "clipping variant (naive or cohen-sutherland)")
		seed      = flag.Uint64("seed", 1, "random seed for the segments")
		normalize = flag.Bool("normalize", false, "clip against the normalised window")
		width     = flag.Int("width", 600, "image width")
		height    = flag.Int("height", 600, "image height")
		pngOut    = flag.String("png", "clipview.png", "PNG output file, empty to skip")
		pdfOut    = flag.String("pdf", "", "PDF output file")
		jsonOut   = flag.String("json", "", "JSON output file with the clipping results")
		verbose   = flag.Bool("v", false, "log session events to stderr")
	)
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		session.SetLogger(slog.New(h))
	}

	cfg := session.DefaultConfig()
	cfg.Count = segments.ParseCount(*count, segments.DefaultCount)
	cfg.Seed = *seed
	cfg.Normalize = *normalize
	v, err := session.ParseVariant(*variant)
	if err != nil {
		log.Fatalf("invalid -variant: %v", err)
	}
	cfg.Variant = v

	var sc script
	if flag.NArg() > 0 {
		sc, err = readScript(flag.Arg(0))
		if err != nil {
			log.Fatalf("reading script: %v", err)
		}
	}

	s := session.New(cfg)
	redraws := 0
	s.OnChange(func(*session.Session) { redraws++ })
	sc.run(s)

	f := clipview.NewFrame(s)
	st := clipview.DefaultStyle()
	if *pngOut != "" {
		if err := writePNG(*pngOut, f, st, *width, *height); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}
	if *pdfOut != "" {
		if err := clipview.WritePDF(*pdfOut, f, st, float64(*width), float64(*height)); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}
	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, s); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	w := s.Window()
	log.Printf("%d steps, %d redraws, window [%g,%g]x[%g,%g], %d of %d segments highlighted\n",
		len(sc), redraws, w.LLx, w.URx, w.LLy, w.URy, len(s.Highlighted()), len(s.Segments()))
}

func readScript(fname string) (script, error) {
	var r io.Reader = os.Stdin
	if fname != "-" {
		fd, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r = fd
	}
	return parseScript(r)
}

func writePNG(fname string, f clipview.Frame, st clipview.Style, width, height int) (err error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	clipview.Draw(img, f, st)

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode %s: %w", fname, err)
	}
	return nil
}

type jsonState struct {
	Variant  string        `json:"variant"`
	Window   [4]float64    `json:"window"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Pts       [2][2]float64  `json:"pts"`
	Highlight bool           `json:"highlight"`
	Part      *[2][2]float64 `json:"part,omitempty"`
}

func writeJSON(fname string, s *session.Session) (err error) {
	w := s.Window()
	state := jsonState{
		Variant: s.Variant().String(),
		Window:  [4]float64{w.LLx, w.LLy, w.URx, w.URy},
	}
	for _, res := range s.Results() {
		seg := jsonSegment{
			Pts: [2][2]float64{
				{res.Segment.P1.X, res.Segment.P1.Y},
				{res.Segment.P2.X, res.Segment.P2.Y},
			},
			Highlight: res.Highlight,
		}
		if res.Highlight {
			seg.Part = &[2][2]float64{
				{res.Part.P1.X, res.Part.P1.Y},
				{res.Part.P2.X, res.Part.P2.Y},
			}
		}
		state.Segments = append(state.Segments, seg)
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("encode %s: %w", fname, err)
	}
	return nil
}
