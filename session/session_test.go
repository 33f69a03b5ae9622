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
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clipview/clip"
	"seehuhn.de/go/clipview/edit"
	"seehuhn.de/go/clipview/segments"
)

func testSession(v Variant) *Session {
	cfg := DefaultConfig()
	cfg.Window = rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 6}
	cfg.Variant = v
	return New(cfg)
}

func setSegments(s *Session, segs ...clip.Segment) {
	s.segs = segs
}

func seg(x1, y1, x2, y2 float64) clip.Segment {
	return clip.Segment{P1: vec.Vec2{X: x1, Y: y1}, P2: vec.Vec2{X: x2, Y: y2}}
}

func TestNewGeneratesSegments(t *testing.T) {
	s := New(DefaultConfig())
	if got := len(s.Segments()); got != segments.DefaultCount {
		t.Errorf("%d segments, want %d", got, segments.DefaultCount)
	}
	want := rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}
	if s.Window() != want {
		t.Errorf("window = %v, want %v", s.Window(), want)
	}
}

func TestResultsCohenSutherland(t *testing.T) {
	s := testSession(CohenSutherland)
	setSegments(s, seg(0, 0, 10, 10), seg(0, 7, 10, 7), seg(-5, -5, 20, 20))

	res := s.Results()
	if !res[0].Highlight || res[0].Part != seg(2, 2, 6, 6) {
		t.Errorf("diagonal: %+v", res[0])
	}
	if res[0].Segment != seg(0, 0, 10, 10) {
		t.Errorf("original segment not reported: %+v", res[0])
	}
	if res[1].Highlight {
		t.Errorf("segment above window highlighted: %+v", res[1])
	}
	if !res[2].Highlight {
		t.Errorf("crossing segment not highlighted")
	}
}

func TestResultsNaive(t *testing.T) {
	s := testSession(Naive)
	setSegments(s, seg(3, 3, 20, 20), seg(-5, -5, 20, 20))

	res := s.Results()
	if !res[0].Highlight || res[0].Part != res[0].Segment {
		t.Errorf("endpoint inside: %+v", res[0])
	}
	if res[1].Highlight {
		t.Errorf("crossing segment highlighted by naive variant")
	}
	if got := s.Highlighted(); len(got) != 1 || got[0] != seg(3, 3, 20, 20) {
		t.Errorf("Highlighted() = %v", got)
	}
}

func TestRefresh(t *testing.T) {
	s := testSession(CohenSutherland)
	before := s.Segments()
	w := s.Window()

	s.SetCount("3")
	s.Refresh()
	after := s.Segments()
	if len(after) != 3 {
		t.Fatalf("%d segments after refresh, want 3", len(after))
	}
	if slices.Equal(before[:3], after) {
		t.Error("refresh did not generate new segments")
	}
	if s.Window() != w {
		t.Error("refresh changed the window")
	}

	s.SetCount("garbage")
	s.Refresh()
	if got := len(s.Segments()); got != segments.DefaultCount {
		t.Errorf("%d segments after invalid count, want %d", got, segments.DefaultCount)
	}
}

func TestDragTriggersRedraw(t *testing.T) {
	s := testSession(CohenSutherland)
	setSegments(s, seg(0, 4, 10, 4))

	type frame struct {
		results  []Result
		dragging bool
	}
	var frames []frame
	s.OnChange(func(s *Session) {
		frames = append(frames, frame{s.Results(), s.Target().Mode != edit.Idle})
	})

	s.Handle(edit.At(edit.Press, 8, 4))
	if len(frames) != 1 || !frames[0].dragging {
		t.Fatalf("press: %d redraws, want 1 while dragging", len(frames))
	}
	if got := s.Target(); got != (edit.Target{Mode: edit.DraggingEdge, Edge: edit.EdgeRight}) {
		t.Fatalf("target = %s", got)
	}

	s.Handle(edit.At(edit.Drag, 9, 4))
	s.Handle(edit.Event{Kind: edit.Drag}) // pointer left the plot
	s.Handle(edit.At(edit.Drag, 7, 4))
	s.Handle(edit.Event{Kind: edit.Release})

	// press, two moves, release
	if len(frames) != 4 {
		t.Fatalf("%d redraws, want 4", len(frames))
	}
	if got := frames[1].results[0].Part; got != seg(2, 4, 9, 4) {
		t.Errorf("first move: %v", got)
	}
	if got := frames[2].results[0].Part; got != seg(2, 4, 7, 4) {
		t.Errorf("second move: %v", got)
	}
	last := frames[3]
	if last.dragging {
		t.Error("last frame still shows a drag")
	}
	if got := last.results[0].Part; got != seg(2, 4, 7, 4) {
		t.Errorf("after release: %v", got)
	}
	if s.Target().Mode != edit.Idle {
		t.Errorf("target after release: %s", s.Target())
	}
}

func TestIgnoredEventsDoNotNotify(t *testing.T) {
	s := testSession(CohenSutherland)
	calls := 0
	s.OnChange(func(*Session) { calls++ })

	s.Handle(edit.At(edit.Press, 0.5, 0.5)) // misses the window
	s.Handle(edit.At(edit.Drag, 1, 1))
	s.Handle(edit.Event{Kind: edit.Release})
	s.Handle(edit.Event{Kind: edit.Press}) // outside the plot

	if calls != 0 {
		t.Errorf("%d change notifications, want 0", calls)
	}
}

func TestResetWindow(t *testing.T) {
	s := testSession(CohenSutherland)
	s.Handle(edit.At(edit.Press, 5, 4))
	s.Handle(edit.At(edit.Drag, 6, 5))

	calls := 0
	s.OnChange(func(*Session) { calls++ })
	s.ResetWindow()

	if s.Window() != s.Config().Window {
		t.Errorf("window = %v", s.Window())
	}
	if s.Target().Mode != edit.Idle {
		t.Errorf("drag survived reset: %s", s.Target())
	}
	if calls != 1 {
		t.Errorf("%d change notifications", calls)
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window = rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 6}
	cfg.Normalize = true
	s := New(cfg)
	setSegments(s, seg(0, 4, 10, 4))

	// drag the left edge across the right one
	s.Handle(edit.At(edit.Press, 2, 4))
	s.Handle(edit.At(edit.Drag, 9, 4))
	s.Handle(edit.At(edit.Release, 9, 4))

	if w := s.Window(); w.LLx != 9 || w.URx != 8 {
		t.Fatalf("window = %v", w)
	}
	res := s.Results()
	if !res[0].Highlight || res[0].Part != seg(8, 4, 9, 4) {
		t.Errorf("normalised clip: %+v", res[0])
	}

	s.cfg.Normalize = false
	if res := s.Results(); res[0].Highlight {
		t.Errorf("inverted window accepted %v", res[0].Part)
	}
}

func TestSetVariant(t *testing.T) {
	s := testSession(CohenSutherland)
	calls := 0
	s.OnChange(func(*Session) { calls++ })
	s.SetVariant(CohenSutherland)
	s.SetVariant(Naive)
	if calls != 1 || s.Variant() != Naive {
		t.Errorf("calls=%d variant=%s", calls, s.Variant())
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{CohenSutherland, Naive} {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseVariant("liang-barsky"); err == nil {
		t.Error("unknown variant accepted")
	}
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := testSession(CohenSutherland)
	s.Handle(edit.At(edit.Press, 5, 4))
	s.Handle(edit.At(edit.Release, 5, 4))
	s.Refresh()

	out := buf.String()
	for _, want := range []string{"drag start", "target=whole", "drag end", "refresh"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}
