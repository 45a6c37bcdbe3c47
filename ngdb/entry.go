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

package ngdb

import (
	"fmt"
	"strings"
)

//maxLineLength is the maximum size of a line of entry text that this
//library will look for in a guide.
const maxLineLength = 1024

//noField is the sentinel value stored in a 16-bit EntryParent field to
//mean "absent".
const noField = 0xFFFF

//EntryParent describes the entry (if any) that points to this one: the
//line in the parent that holds the link, and the parent's own offset,
//plus -- when the parent is a menu rather than another entry -- which
//menu and which prompt within it.
type EntryParent struct {
	line   int
	offset int64
	menu   int
	prompt int
}

//readEntryParent reads the four parent fields, in file order: line,
//offset, menu, prompt.
func readEntryParent(r *reader) (EntryParent, error) {
	var p EntryParent

	line, err := r.readWord(true)
	if err != nil {
		return p, err
	}
	p.line = nonSentinel(line)

	offset, err := r.readOffset()
	if err != nil {
		return p, err
	}
	p.offset = offset

	menu, err := r.readWord(true)
	if err != nil {
		return p, err
	}
	p.menu = nonSentinel(menu)

	prompt, err := r.readWord(true)
	if err != nil {
		return p, err
	}
	p.prompt = nonSentinel(prompt)

	return p, nil
}

//nonSentinel maps the 16-bit "absent" sentinel 0xFFFF to -1; every other
//value passes through unchanged.
func nonSentinel(value uint16) int {
	if value == noField {
		return -1
	}
	return int(value)
}

//Offset is the offset of the parent entry, if there is one.
func (p EntryParent) Offset() int64 {
	return p.offset
}

//HasParent reports whether there's a parent entry at all.
func (p EntryParent) HasParent() bool {
	return p.offset > 0
}

//Line is the line in the parent entry that points to this entry, or -1
//if there is none. See HasLine.
func (p EntryParent) Line() int {
	return p.line
}

//HasLine reports whether there's a parent entry line that points here.
func (p EntryParent) HasLine() bool {
	return p.line != -1
}

//Menu is the menu that relates to this entry, or -1 if there is none. See
//HasMenu.
func (p EntryParent) Menu() int {
	return p.menu
}

//HasMenu reports whether there's a menu related to this entry.
func (p EntryParent) HasMenu() bool {
	return p.menu != -1
}

//Prompt is the menu prompt related to this entry, or -1 if there is
//none. See HasPrompt.
func (p EntryParent) Prompt() int {
	return p.prompt
}

//HasPrompt reports whether there's a related menu prompt.
func (p EntryParent) HasPrompt() bool {
	return p.HasMenu() && p.prompt != -1
}

//EntryHeader is the preamble shared by every Short and Long entry.
type EntryHeader struct {
	offset      int64
	typeID      int
	size        int
	lineCount   int
	hasSeeAlso  bool
	parent      EntryParent
	previous    int64
	next        int64
	lines       []string
}

//readEntryHeader reads the fixed preamble common to every entry: the
//type tag, body size, line count, see-also flag, parent, previous and
//next offsets. The lines that follow are the caller's responsibility;
//how many of them there are, and what comes between, differs for Short
//and Long entries.
func readEntryHeader(r *reader) (EntryHeader, error) {
	var h EntryHeader

	pos, err := r.position()
	if err != nil {
		return h, err
	}
	h.offset = pos

	typeTag, err := r.readWord(true)
	if err != nil {
		return h, err
	}
	h.typeID = int(typeTag)

	size, err := r.readWord(true)
	if err != nil {
		return h, err
	}
	h.size = int(size)

	lineCount, err := r.readWord(true)
	if err != nil {
		return h, err
	}
	h.lineCount = int(lineCount)

	seeAlso, err := r.readWord(true)
	if err != nil {
		return h, err
	}
	h.hasSeeAlso = seeAlso > 0

	h.parent, err = readEntryParent(r)
	if err != nil {
		return h, err
	}

	h.previous, err = r.readOffset()
	if err != nil {
		return h, err
	}

	h.next, err = r.readOffset()
	if err != nil {
		return h, err
	}

	return h, nil
}

//readLines reads lineCount RLE-encoded, NUL-terminated lines of text
//from the current position.
func readLines(r *reader, lineCount int) ([]string, error) {
	lines := make([]string, lineCount)
	for i := range lines {
		raw, err := r.readStrz(maxLineLength, true)
		if err != nil {
			return nil, err
		}
		lines[i] = unrle(raw)
	}
	return lines, nil
}

//Offset is the file offset of this entry.
func (h EntryHeader) Offset() int64 {
	return h.offset
}

//TypeID is the numeric ID of the type of entry (see EntryType).
func (h EntryHeader) TypeID() int {
	return h.typeID
}

//Size is the size of the entry body, in bytes.
func (h EntryHeader) Size() int {
	return h.size
}

//Len returns the number of lines in the entry.
func (h EntryHeader) Len() int {
	return h.lineCount
}

//HasSeeAlso reports whether this entry has a see-also block.
func (h EntryHeader) HasSeeAlso() bool {
	return h.hasSeeAlso
}

//Parent returns the parent entry information for this entry.
func (h EntryHeader) Parent() EntryParent {
	return h.parent
}

//Previous is the location of the previous entry.
func (h EntryHeader) Previous() int64 {
	return h.previous
}

//HasPrevious reports whether there's a previous entry.
func (h EntryHeader) HasPrevious() bool {
	return h.previous > 0
}

//Next is the location of the next entry.
func (h EntryHeader) Next() int64 {
	return h.next
}

//HasNext reports whether there's a next entry.
func (h EntryHeader) HasNext() bool {
	return h.next > 0
}

//Lines are the lines of text in the entry.
func (h EntryHeader) Lines() []string {
	return h.lines
}

//String joins the entry's lines into a single block of text.
func (h EntryHeader) String() string {
	return strings.Join(h.lines, "\n")
}

//GoString is a terse formal description of the entry: its type and where
//it lives in the guide.
func (h EntryHeader) GoString() string {
	name := "ShortEntry"
	if IsLong(h.typeID) {
		name = "LongEntry"
	}
	return fmt.Sprintf("<%s: %d>", name, h.offset)
}

//ShortEntry is an index-like entry: each line carries its own jump
//target, typically into a Long entry or another Short entry.
type ShortEntry struct {
	EntryHeader
	offsets []int64
}

//readShort decodes a Short entry's body, assuming the header has already
//been consumed.
func readShort(r *reader, header EntryHeader) (*ShortEntry, error) {
	s := &ShortEntry{EntryHeader: header}

	offsets := make([]int64, header.lineCount)
	for i := range offsets {
		//Skip an unknown word before each line's offset.
		if err := r.skip(2); err != nil {
			return nil, err
		}
		offset, err := r.readOffset()
		if err != nil {
			return nil, err
		}
		offsets[i] = offset
	}
	s.offsets = offsets

	lines, err := readLines(r, header.lineCount)
	if err != nil {
		return nil, err
	}
	s.lines = lines

	return s, nil
}

//Offsets returns the jump target offset for each line in the entry.
func (s *ShortEntry) Offsets() []int64 {
	return s.offsets
}

//At returns a line and its associated offset as a Link.
func (s *ShortEntry) At(line int) Link {
	return Link{Text: s.lines[line], Offset: s.offsets[line]}
}

//Links returns every line in the entry paired with its offset.
func (s *ShortEntry) Links() []Link {
	links := make([]Link, len(s.lines))
	for i, line := range s.lines {
		links[i] = Link{Text: line, Offset: s.offsets[i]}
	}
	return links
}

//LongEntry is a block of prose, possibly with a trailing see-also
//cross-reference list.
type LongEntry struct {
	EntryHeader
	seeAlso SeeAlso
}

//readLong decodes a Long entry's body, assuming the header has already
//been consumed.
func readLong(r *reader, header EntryHeader) (*LongEntry, error) {
	l := &LongEntry{EntryHeader: header}

	lines, err := readLines(r, header.lineCount)
	if err != nil {
		return nil, err
	}
	l.lines = lines

	seeAlso, err := readSeeAlso(r, header.hasSeeAlso)
	if err != nil {
		return nil, err
	}
	l.seeAlso = seeAlso

	return l, nil
}

//SeeAlso returns the see-also information for this entry. It is empty
//when HasSeeAlso is false.
func (l *LongEntry) SeeAlso() SeeAlso {
	return l.seeAlso
}

//At returns a single line from the entry.
func (l *LongEntry) At(line int) string {
	return l.lines[line]
}

//Entry is the common surface shared by *ShortEntry and *LongEntry: every
//entry loaded from a guide satisfies it.
type Entry interface {
	Offset() int64
	TypeID() int
	Size() int
	Len() int
	HasSeeAlso() bool
	Parent() EntryParent
	Previous() int64
	HasPrevious() bool
	Next() int64
	HasNext() bool
	Lines() []string
	String() string
	GoString() string
}

//decodeEntry reads the entry at the reader's current position and
//dispatches on its type tag to build either a *ShortEntry or a
//*LongEntry. A type tag naming a menu, or anything outside of
//{Short, Long}, fails with an *UnknownEntryTypeError.
func decodeEntry(r *reader) (Entry, error) {
	header, err := readEntryHeader(r)
	if err != nil {
		return nil, err
	}
	switch EntryType(header.typeID) {
	case Short:
		return readShort(r, header)
	case Long:
		return readLong(r, header)
	default:
		return nil, &UnknownEntryTypeError{TypeTag: header.typeID}
	}
}
