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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/clipview/edit"
	"seehuhn.de/go/clipview/session"
)

// ErrSyntax is returned for script lines which cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// script is a parsed event script, see the package documentation.
type script []step

type step struct {
	op  string
	ev  edit.Event
	arg string
	v   session.Variant
}

func parseScript(r io.Reader) (script, error) {
	var res script
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		st, err := parseStep(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		res = append(res, st)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func parseStep(text string) (step, error) {
	fields := strings.Fields(text)
	op, rest := fields[0], strings.Join(fields[1:], " ")
	st := step{op: op}

	switch op {
	case "press", "drag":
		kind := edit.Press
		if op == "drag" {
			kind = edit.Drag
		}
		ev, err := parseEvent(kind, rest)
		if err != nil {
			return step{}, err
		}
		st.ev = ev
	case "release":
		if rest != "" {
			return step{}, fmt.Errorf("%w: unexpected %q after release", ErrSyntax, rest)
		}
		st.ev = edit.Event{Kind: edit.Release}
	case "count":
		st.arg = rest
	case "refresh", "reset":
		if rest != "" {
			return step{}, fmt.Errorf("%w: unexpected %q after %s", ErrSyntax, rest, op)
		}
	case "variant":
		v, err := session.ParseVariant(rest)
		if err != nil {
			return step{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		st.v = v
	default:
		return step{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, op)
	}
	return st, nil
}

func parseEvent(kind edit.Kind, args string) (edit.Event, error) {
	if args == "-" {
		return edit.Event{Kind: kind}, nil
	}
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return edit.Event{}, fmt.Errorf("%w: %s needs two coordinates or \"-\"", ErrSyntax, kind)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return edit.Event{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return edit.Event{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return edit.At(kind, x, y), nil
}

// run applies all steps of the script to s.
func (sc script) run(s *session.Session) {
	for _, st := range sc {
		switch st.op {
		case "press", "drag", "release":
			s.Handle(st.ev)
		case "count":
			s.SetCount(st.arg)
		case "refresh":
			s.Refresh()
		case "reset":
			s.ResetWindow()
		case "variant":
			s.SetVariant(st.v)
		}
	}
}
