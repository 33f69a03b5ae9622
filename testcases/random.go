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
	"fmt"

	"seehuhn.de/go/clipview/segments"
)

// randomCases are drawn with fixed seeds from the default domain.
// Their expected results are not recorded.
var randomCases = makeRandom(1, 2, 3, 42)

func makeRandom(seeds ...uint64) []TestCase {
	var res []TestCase
	for _, seed := range seeds {
		gen := segments.NewGenerator(seed, segments.DefaultDomain)
		res = append(res, TestCase{
			Name:     fmt.Sprintf("seed_%d", seed),
			Window:   defaultWindow,
			Segments: gen.Generate(segments.DefaultCount),
			Width:    400,
			Height:   400,
		})
	}
	return res
}
