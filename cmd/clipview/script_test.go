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

package main

import (
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clipview/edit"
	"seehuhn.de/go/clipview/session"
)

func TestParseScript(t *testing.T) {
	in := `
# drag the right edge
press 8 4
drag 9 4
drag -
release
count 3
refresh
variant naive
reset
`
	sc, err := parseScript(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	ops := make([]string, len(sc))
	for i, st := range sc {
		ops[i] = st.op
	}
	want := "press drag drag release count refresh variant reset"
	if got := strings.Join(ops, " "); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if sc[0].ev != edit.At(edit.Press, 8, 4) {
		t.Errorf("press: got %v", sc[0].ev)
	}
	if sc[2].ev.Valid || sc[2].ev.Kind != edit.Drag {
		t.Errorf("drag -: got %v", sc[2].ev)
	}
	if sc[4].arg != "3" {
		t.Errorf("count: got %q", sc[4].arg)
	}
	if sc[6].v != session.Naive {
		t.Errorf("variant: got %v", sc[6].v)
	}
}

func TestParseScriptErrors(t *testing.T) {
	cases := []string{
		"jump 1 2",
		"press 1",
		"press 1 2 3",
		"drag x 2",
		"release 1 2",
		"refresh now",
		"variant fancy",
	}
	for _, line := range cases {
		_, err := parseScript(strings.NewReader("release\n" + line + "\n"))
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected syntax error, got %v", line, err)
		} else if !strings.HasPrefix(err.Error(), "line 2: ") {
			t.Errorf("%q: missing line number: %v", line, err)
		}
	}
}

func TestRunScript(t *testing.T) {
	sc, err := parseScript(strings.NewReader("press 8 4\ndrag 9 4\nrelease\ncount 3\nrefresh\n"))
	if err != nil {
		t.Fatal(err)
	}

	s := session.New(session.DefaultConfig())
	redraws := 0
	s.OnChange(func(*session.Session) { redraws++ })
	sc.run(s)

	want := rect.Rect{LLx: 2, LLy: 2, URx: 9, URy: 8}
	if s.Window() != want {
		t.Errorf("window: got %v, want %v", s.Window(), want)
	}
	if n := len(s.Segments()); n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
	// press, drag, release, refresh
	if redraws != 4 {
		t.Errorf("got %d redraws, want 4", redraws)
	}
	if s.Target().Mode != edit.Idle {
		t.Errorf("editor not idle after release: %v", s.Target())
	}
}

// TestDocumentedCommands parses one example of every command listed in
// the package documentation.
func TestDocumentedCommands(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "main.go", nil, parser.PackageClauseOnly|parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	args := strings.NewReplacer("X Y", "1 2", "TEXT", "5", "NAME", "naive")

	var n int
	inList := false
	for _, line := range strings.Split(f.Doc.Text(), "\n") {
		if strings.HasPrefix(line, "A script is") {
			inList = true
			continue
		}
		if !inList || !strings.HasPrefix(line, "\t") {
			continue
		}
		// command and arguments are separated from the description by
		// at least two spaces
		syntax, _, _ := strings.Cut(strings.TrimSpace(line), "  ")
		if _, err := parseStep(args.Replace(syntax)); err != nil {
			t.Errorf("documented command %q: %v", syntax, err)
		}
		n++
	}
	if n != 7 {
		t.Errorf("found %d documented commands, want 7", n)
	}
}
