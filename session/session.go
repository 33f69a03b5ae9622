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

// Package session holds the state of one clipping visualisation: the
// current segments, the clip window and the state of the window editor.
//
// A front end feeds user input into a [Session] (segment counts, refresh
// requests, pointer events) and reads back the window, the segments and
// the per-segment highlight information for drawing.  Listeners registered
// with [Session.OnChange] are called synchronously after every change, so
// that the front end can redraw.
package session

import (
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clipview/clip"
	"seehuhn.de/go/clipview/edit"
	"seehuhn.de/go/clipview/segments"
)

// Result describes how one segment is drawn.
type Result struct {
	// Segment is the full, unclipped segment.
	Segment clip.Segment

	// Highlight is set if part of the segment is to be highlighted.
	Highlight bool

	// Part is the highlighted part.  For the naive variant this is the
	// whole segment, for Cohen-Sutherland the clipped segment.
	Part clip.Segment
}

// Session is the state of one visualisation.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg      Config
	count    int
	gen      *segments.Generator
	segs     []clip.Segment
	window   rect.Rect
	editor   *edit.Editor
	onChange []func(*Session)
}

// New creates a session and generates the first set of segments.
func New(cfg Config) *Session {
	s := &Session{
		cfg:    cfg,
		count:  cfg.Count,
		gen:    segments.NewGenerator(cfg.Seed, cfg.Domain),
		window: cfg.Window,
		editor: edit.NewEditor(cfg.Margin),
	}
	s.segs = s.gen.Generate(s.count)
	return s
}

// Config returns the configuration the session was created with.
func (s *Session) Config() Config {
	return s.cfg
}

// OnChange registers fn to be called after every change of the session.
func (s *Session) OnChange(fn func(*Session)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Session) changed() {
	for _, fn := range s.onChange {
		fn(s)
	}
}

// Variant returns the clipping variant in use.
func (s *Session) Variant() Variant {
	return s.cfg.Variant
}

// SetVariant switches between the naive and the Cohen-Sutherland variant.
func (s *Session) SetVariant(v Variant) {
	if v == s.cfg.Variant {
		return
	}
	s.cfg.Variant = v
	s.changed()
}

// Count returns the number of segments the next refresh will generate.
func (s *Session) Count() int {
	return s.count
}

// SetCount sets the number of segments for the next refresh from user
// input.  Input which is not a positive integer selects
// [segments.DefaultCount].
func (s *Session) SetCount(text string) {
	s.count = segments.ParseCount(text, segments.DefaultCount)
}

// Refresh replaces all segments with newly generated ones.
// The window is not changed.
func (s *Session) Refresh() {
	s.segs = s.gen.Generate(s.count)
	Logger().Debug("refresh", slog.Int("segments", len(s.segs)))
	s.changed()
}

// Segments returns the current segments.
func (s *Session) Segments() []clip.Segment {
	return slices.Clone(s.segs)
}

// Window returns the current clip window.
func (s *Session) Window() rect.Rect {
	return s.window
}

// ResetWindow restores the initial clip window and cancels any drag.
func (s *Session) ResetWindow() {
	s.editor.Up()
	s.window = s.cfg.Window
	Logger().Debug("reset window")
	s.changed()
}

// Target returns what is currently being dragged.
func (s *Session) Target() edit.Target {
	return s.editor.Target()
}

// Handle processes a pointer event.  Listeners are notified if the
// window or the drag target changed.
func (s *Session) Handle(ev edit.Event) {
	before := s.editor.Target()
	changed := s.editor.Handle(&s.window, ev)

	log := Logger()
	if after := s.editor.Target(); after != before {
		changed = true
		if after.Mode == edit.Idle {
			log.Debug("drag end", slog.String("target", before.String()),
				slog.Any("window", s.window))
		} else {
			log.Debug("drag start", slog.String("target", after.String()),
				slog.Float64("x", ev.Pos.X), slog.Float64("y", ev.Pos.Y))
		}
	}

	if changed {
		s.changed()
	}
}

// clipWindow returns the window used for clipping.
func (s *Session) clipWindow() rect.Rect {
	if s.cfg.Normalize {
		return clip.Normalize(s.window)
	}
	return s.window
}

// Results classifies all segments against the current window, using the
// session's variant.
func (s *Session) Results() []Result {
	w := s.clipWindow()
	res := make([]Result, len(s.segs))
	for i, seg := range s.segs {
		res[i].Segment = seg
		switch s.cfg.Variant {
		case Naive:
			if clip.InWindow(seg, w) {
				res[i].Highlight = true
				res[i].Part = seg
			}
		default:
			res[i].Part, res[i].Highlight = clip.Clip(seg, w)
		}
	}
	return res
}

// Highlighted returns the parts of all highlighted segments.
func (s *Session) Highlighted() []clip.Segment {
	var parts []clip.Segment
	for _, r := range s.Results() {
		if r.Highlight {
			parts = append(parts, r.Part)
		}
	}
	return parts
}
