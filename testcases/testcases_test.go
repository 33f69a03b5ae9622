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

package testcases

import (
	"math"
	"regexp"
	"testing"

	"seehuhn.de/go/clipview/clip"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for category, cases := range All {
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			full := category + "_" + tc.Name
			if seen[full] {
				t.Errorf("duplicate test case %s", full)
			}
			seen[full] = true
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: invalid size %dx%d", full, tc.Width, tc.Height)
			}
			if tc.Want != nil && len(tc.Want) != len(tc.Segments) {
				t.Errorf("%s: %d expected results for %d segments",
					full, len(tc.Want), len(tc.Segments))
			}
		}
	}
}

func TestExpectedResults(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if tc.Want == nil {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				got := clip.ClipAll(tc.Segments, tc.Window)
				for i, want := range tc.Want {
					if got[i].Visible != want.Visible {
						t.Errorf("segment %d: visible=%t, want %t", i, got[i].Visible, want.Visible)
						continue
					}
					if want.Visible && !near(got[i].Part, want.Part) {
						t.Errorf("segment %d: got %v, want %v", i, got[i].Part, want.Part)
					}
				}
			})
		}
	}
}

func TestRandomReproducible(t *testing.T) {
	again := makeRandom(1, 2, 3, 42)
	for i, tc := range randomCases {
		for j, s := range tc.Segments {
			if again[i].Segments[j] != s {
				t.Fatalf("%s: segment %d differs between runs", tc.Name, j)
			}
		}
	}
}

func near(a, b clip.Segment) bool {
	const eps = 1e-9
	return math.Abs(a.P1.X-b.P1.X) < eps && math.Abs(a.P1.Y-b.P1.Y) < eps &&
		math.Abs(a.P2.X-b.P2.X) < eps && math.Abs(a.P2.Y-b.P2.Y) < eps
}
