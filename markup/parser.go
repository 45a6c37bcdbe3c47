/*******************************************************************************
*
* Copyright 2021-2026 Dave Pearson <davep@davep.org>
*
* This file is part of ngdb.
*
* ngdb is free software: you can redistribute it and/or modify it under the
* terms of the GNU General Public License as published by the Free Software
* Foundation, either version 3 of the License, or (at your option) any later
* version.
*
* ngdb is distributed in the hope that it will be useful, but WITHOUT ANY
* WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR
* A PARTICULAR PURPOSE. See the GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License along with
* ngdb. If not, see <http://www.gnu.org/licenses/>.
*
*******************************************************************************/

//Package markup parses the line-oriented, `^`-prefixed control code
//dialect used inside Norton Guide entry text, and provides a couple of
//ready-made visitors that turn it into plain text or tagged markup.
package markup

import "strings"

//ctrlChar is the character that marks an upcoming control sequence.
const ctrlChar = '^'

//textMode tracks which styling toggle, if any, is currently active.
type textMode int

const (
	modeNormal textMode = iota
	modeBold
	modeUnderline
	modeReverse
	modeAttr
)

//Visitor receives the semantic events produced while parsing a line of
//Norton Guide markup. Every method has a no-op default via BaseVisitor,
//so a caller only needs to implement the events it cares about.
type Visitor interface {
	Text(s string)
	Colour(attr byte)
	Normal()
	Bold()
	Unbold()
	Reverse()
	Unreverse()
	Underline()
	Ununderline()
	Char(code byte)
}

//BaseVisitor is a Visitor whose every method does nothing. Embed it to
//implement only the events you care about.
type BaseVisitor struct{}

func (BaseVisitor) Text(string)    {}
func (BaseVisitor) Colour(byte)    {}
func (BaseVisitor) Normal()        {}
func (BaseVisitor) Bold()          {}
func (BaseVisitor) Unbold()        {}
func (BaseVisitor) Reverse()       {}
func (BaseVisitor) Unreverse()     {}
func (BaseVisitor) Underline()     {}
func (BaseVisitor) Ununderline()   {}
func (BaseVisitor) Char(byte)      {}

//parseState tracks progress through a line as it's being parsed.
type parseState struct {
	raw      string
	ctrl     int
	mode     textMode
	lastAttr int
}

//workLeft reports whether there's still a control marker left to
//process within the remaining raw text.
func (s *parseState) workLeft() bool {
	return s.ctrl != -1 && s.ctrl < len(s.raw)
}

//ctrlID returns the (lower-cased) character following the control
//marker, or the zero byte if the marker was the last character on the
//line (a lone trailing '^').
func (s *parseState) ctrlID() byte {
	if s.ctrl+1 >= len(s.raw) {
		return 0
	}
	c := s.raw[s.ctrl+1]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

//Parse walks line, driving v with the semantic events it finds. Parse
//never fails: an ^A or ^C not followed by two hex digits is emitted as
//literal text, and a marker followed by an unknown character, or by
//nothing at all, is skipped.
func Parse(line string, v Visitor) {
	state := &parseState{
		raw:      line,
		ctrl:     strings.IndexByte(line, ctrlChar),
		lastAttr: -1,
	}

	for state.workLeft() {
		if state.ctrl > 0 {
			v.Text(state.raw[:state.ctrl])
		}

		switch id := state.ctrlID(); id {
		case ctrlChar:
			v.Text(string(ctrlChar))
			state.ctrl += 2
		case 'a':
			ctrlAttr(state, v)
		case 'b':
			ctrlToggle(state, v, modeBold, v.Bold, v.Unbold)
		case 'c':
			ctrlChr(state, v)
		case 'n':
			v.Normal()
			state.mode = modeNormal
			state.ctrl += 2
		case 'r':
			ctrlToggle(state, v, modeReverse, v.Reverse, v.Unreverse)
		case 'u':
			ctrlToggle(state, v, modeUnderline, v.Underline, v.Ununderline)
		default:
			//No idea what follows the marker. Skip along one character and
			//keep scanning; this also covers a lone trailing '^'.
			state.ctrl++
		}

		state.raw = state.raw[state.ctrl:]
		state.ctrl = strings.IndexByte(state.raw, ctrlChar)
	}

	if len(state.raw) > 0 {
		v.Text(state.raw)
	}
}

//hexByte parses exactly two hex digits starting at the given offset
//into s, returning ok=false if they aren't valid hex.
func hexByte(s string, at int) (byte, bool) {
	if at+2 > len(s) {
		return 0, false
	}
	hi, ok := hexDigit(s[at])
	if !ok {
		return 0, false
	}
	lo, ok := hexDigit(s[at+1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

//ctrlAttr handles ^A XX: a two-hex-digit colour attribute.
func ctrlAttr(state *parseState, v Visitor) {
	attr, ok := hexByte(state.raw, state.ctrl+2)
	if !ok {
		//Not valid hex after ^a: assume a mistyped ^^a and emit it literally.
		v.Text(state.raw[state.ctrl : state.ctrl+2])
		state.ctrl += 2
		return
	}

	if state.mode == modeAttr && int(attr) == state.lastAttr {
		v.Normal()
		state.mode = modeNormal
	} else {
		v.Colour(attr)
		state.lastAttr = int(attr)
		state.mode = modeAttr
	}

	state.ctrl += 4
}

//ctrlChr handles ^C XX: a two-hex-digit literal character code.
func ctrlChr(state *parseState, v Visitor) {
	code, ok := hexByte(state.raw, state.ctrl+2)
	if !ok {
		v.Text(state.raw[state.ctrl : state.ctrl+2])
		state.ctrl += 2
		return
	}
	v.Char(code)
	state.ctrl += 4
}

//ctrlToggle handles ^B/^R/^U, which all follow the same on/off pattern:
//entering mode fires on(), leaving it fires off().
func ctrlToggle(state *parseState, v Visitor, mode textMode, on, off func()) {
	if state.mode == mode {
		off()
		state.mode = modeNormal
	} else {
		on()
		state.mode = mode
	}
	state.ctrl += 2
}
