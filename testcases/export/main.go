// Command export writes the test scenes and their clipping results to JSON.
// Run from the clipview module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clipview/clip"
	"seehuhn.de/go/clipview/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Window   []float64     `json:"window"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Pts     [][]float64 `json:"pts"`
	Naive   bool        `json:"naive"`
	Visible bool        `json:"visible"`
	Clipped [][]float64 `json:"clipped,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Window: rectToJSON(tc.Window),
	}
	for i, res := range clip.ClipAll(tc.Segments, tc.Window) {
		s := tc.Segments[i]
		seg := jsonSegment{
			Pts:     segmentToJSON(s),
			Naive:   clip.InWindow(s, tc.Window),
			Visible: res.Visible,
		}
		if res.Visible {
			seg.Clipped = segmentToJSON(res.Part)
		}
		jtc.Segments = append(jtc.Segments, seg)
	}
	return jtc
}

func rectToJSON(r rect.Rect) []float64 {
	return []float64{r.LLx, r.LLy, r.URx, r.URy}
}

func segmentToJSON(s clip.Segment) [][]float64 {
	return [][]float64{{s.P1.X, s.P1.Y}, {s.P2.X, s.P2.Y}}
}
