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
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

//titleLength is the length of the title field in a guide's header.
const titleLength = 40

//creditLength is the length of a single line in the guide's credits
//block.
const creditLength = 66

//creditLines is the number of lines in the guide's credits block.
const creditLines = 5

//magicNames maps a guide's two-byte magic marker to a human-readable
//name of the tool that produced it.
var magicNames = map[string]string{
	"EH": "Expert Help",
	"NG": "Norton Guide",
}

//NortonGuide is an opened Norton Guide (or Expert Help) database. It owns
//a positioned reader over the underlying file plus the header and menu
//table read when the guide was opened.
type NortonGuide struct {
	path       string
	r          *reader
	fileSize   int64
	magic      string
	menuCount  int
	title      string
	credits    [creditLines]string
	menus      []Menu
	firstEntry int64
}

//Open opens the guide at the given path and reads its header and menu
//table.
//
//If the file's magic marker isn't "NG" or "EH", IsA will be false and the
//menu table and first-entry position are left undefined; no error is
//returned for this case; only an empty or too-short file raises ErrEOF,
//via the header read itself.
func Open(path string) (*NortonGuide, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	r, err := newReader(path)
	if err != nil {
		return nil, err
	}

	g := &NortonGuide{
		path:     path,
		r:        r,
		fileSize: info.Size(),
	}

	//A guide that's collected without ever being closed -- including one
	//whose construction fails below -- still has to release its file
	//handle. Close itself is a no-op on a guide that's already closed.
	runtime.SetFinalizer(g, (*NortonGuide).Close)

	if err := g.readHeader(); err != nil {
		r.close()
		return nil, err
	}

	if g.IsA() {
		if err := g.readMenus(); err != nil {
			r.close()
			return nil, err
		}
		pos, err := r.position()
		if err != nil {
			r.close()
			return nil, err
		}
		g.firstEntry = pos
	}

	return g, nil
}

//Maybe reports whether the given file name looks like it might be a
//Norton Guide, based purely on its extension (".ng", case-insensitive).
//It does not open, read, or even check for existence of the file; it's
//meant as a fast initial filter before calling Open.
func Maybe(candidate string) bool {
	return strings.EqualFold(filepath.Ext(candidate), ".ng")
}

//Path is the path to the guide.
func (g *NortonGuide) Path() string {
	return g.path
}

//FileSize is the size of the guide, in bytes.
func (g *NortonGuide) FileSize() int64 {
	return g.fileSize
}

func (g *NortonGuide) readHeader() error {
	magic, err := g.r.readStr(2, false)
	if err != nil {
		return err
	}
	g.magic = magic

	if err := g.r.skip(4); err != nil { //Unknown 4 bytes.
		return err
	}

	menuCount, err := g.r.readWord(false)
	if err != nil {
		return err
	}
	g.menuCount = int(menuCount)

	title, err := g.r.readStr(titleLength, false)
	if err != nil {
		return err
	}
	g.title = title

	for i := 0; i < creditLines; i++ {
		credit, err := g.r.readStr(creditLength, false)
		if err != nil {
			return err
		}
		g.credits[i] = credit
	}

	return nil
}

func (g *NortonGuide) readMenus() error {
	menus := make([]Menu, 0, g.menuCount)
	for {
		word, err := g.r.peekWord(true)
		if err != nil {
			return err
		}
		if !IsMenu(int(word)) {
			break
		}
		menu, err := readMenu(g.r)
		if err != nil {
			return err
		}
		menus = append(menus, menu)
	}
	if len(menus) != g.menuCount {
		return errors.New("ngdb: menu count in header does not match number of menu records found")
	}
	g.menus = menus
	return nil
}

//IsOpen reports whether the guide's underlying file handle is still
//open.
func (g *NortonGuide) IsOpen() bool {
	return g.r != nil && !g.r.isClosed()
}

//IsA reports whether this file is actually a Norton Guide or Expert
//Help database, based on its magic marker.
func (g *NortonGuide) IsA() bool {
	_, ok := magicNames[g.magic]
	return ok
}

//Close closes the guide, if it's open. Closing an already-closed (or
//never-opened) guide is a no-op and never fails.
func (g *NortonGuide) Close() error {
	if !g.IsOpen() {
		return nil
	}
	runtime.SetFinalizer(g, nil)
	return g.r.close()
}

//MenuCount is the number of menu options in the guide.
func (g *NortonGuide) MenuCount() int {
	return g.menuCount
}

//Title is the title of the guide.
func (g *NortonGuide) Title() string {
	return g.title
}

//Credits are the five credit lines for the guide.
func (g *NortonGuide) Credits() [creditLines]string {
	return g.credits
}

//Magic is the two-character magic value read from the guide. It's
//normally "NG", but Expert Help databases use "EH".
func (g *NortonGuide) Magic() string {
	return g.magic
}

//MadeWith is the name of the tool that was used to make the guide, or
//"Unknown" if the magic marker isn't recognised.
func (g *NortonGuide) MadeWith() string {
	if name, ok := magicNames[g.magic]; ok {
		return name
	}
	return "Unknown"
}

//Menus are the menus for the guide.
func (g *NortonGuide) Menus() []Menu {
	return g.menus
}

//Goto moves the guide's cursor to a specific location.
func (g *NortonGuide) Goto(pos int64) error {
	return g.r.seek(pos)
}

//GotoFirst moves the guide's cursor to the first entry in the guide.
func (g *NortonGuide) GotoFirst() error {
	return g.Goto(g.firstEntry)
}

//position returns the guide's current cursor position.
func (g *NortonGuide) position() (int64, error) {
	return g.r.position()
}

//Eof reports whether the guide's cursor is at or past the end of the
//file.
func (g *NortonGuide) Eof() bool {
	pos, err := g.r.position()
	if err != nil {
		return true
	}
	return pos >= g.fileSize
}

//Skip advances the cursor past the current entry, without decoding it.
func (g *NortonGuide) Skip() error {
	if g.Eof() {
		return ErrEOF
	}
	return g.r.skipEntry()
}

//Load decodes the entry at the current cursor position and restores the
//cursor to wherever it was before the call, whether or not decoding
//succeeded.
func (g *NortonGuide) Load() (Entry, error) {
	if g.Eof() {
		return nil, ErrEOF
	}
	pos, err := g.r.position()
	if err != nil {
		return nil, err
	}
	entry, decodeErr := decodeEntry(g.r)
	if seekErr := g.r.seek(pos); seekErr != nil && decodeErr == nil {
		return entry, seekErr
	}
	return entry, decodeErr
}

//EntryIterator walks every Short or Long entry in a guide, in file
//order, in the style of bufio.Scanner: call Next until it returns false,
//reading the current entry with Entry in between.
//
//The cursor is deliberately re-seeked to the last yielded entry's offset
//before skipping to, and loading, the next one -- this survives the
//consumer moving the cursor around while holding an entry between calls
//to Next.
type EntryIterator struct {
	g       *NortonGuide
	entry   Entry
	err     error
	started bool
}

//Entries returns an iterator over every Short or Long entry in the
//guide, in file order.
func (g *NortonGuide) Entries() *EntryIterator {
	return &EntryIterator{g: g}
}

//Next advances the iterator and reports whether an entry is available.
//It returns false both at the natural end of the guide and when
//decoding hits an error; Err distinguishes the two.
func (it *EntryIterator) Next() bool {
	if it.err != nil {
		return false
	}

	if !it.started {
		it.started = true
		if err := it.g.GotoFirst(); err != nil {
			it.err = err
			return false
		}
	} else {
		if err := it.g.Goto(it.entry.Offset()); err != nil {
			it.err = err
			return false
		}
		if err := it.g.Skip(); err != nil {
			it.err = err
			return false
		}
	}

	entry, err := it.g.Load()
	if err != nil {
		it.err = err
		return false
	}
	it.entry = entry
	return true
}

//Entry returns the entry most recently produced by Next.
func (it *EntryIterator) Entry() Entry {
	return it.entry
}

//Err returns the error, if any, that stopped iteration. Reaching ErrEOF
//(including an *UnknownEntryTypeError, which unwraps to it) is the
//normal way iteration ends and is reported as a nil error here, the same
//way the guide's own iterator swallows NGEOF to finish cleanly.
func (it *EntryIterator) Err() error {
	if errors.Is(it.err, ErrEOF) {
		return nil
	}
	return it.err
}

//String is the guide's path.
func (g *NortonGuide) String() string {
	return g.path
}
