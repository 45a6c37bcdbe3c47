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

package markup

import (
	"fmt"
	"strings"
)

//richColourMap holds the DOS-to-Rich colour remaps that don't already
//line up; any colour not listed here maps to itself.
var richColourMap = map[int]int{
	1:  4,
	3:  6,
	4:  1,
	6:  3,
	9:  21,
	11: 14,
	12: 196,
	14: 11,
}

func mapRichColour(colour int) int {
	if mapped, ok := richColourMap[colour]; ok {
		return mapped
	}
	return colour
}

//RichText renders a line of Norton Guide markup as Rich console markup
//(https://rich.readthedocs.io/en/stable/protocol.html): a plain-text
//BBCode-a-like dialect of `[class]...[/]` tags. It doesn't require Rich
//itself; it just produces text Rich understands.
type RichText struct {
	MarkupText
}

//NewRichText returns an empty RichText ready to be handed to Parse.
func NewRichText() *RichText {
	rt := &RichText{}
	rt.MarkupText = NewMarkupText(rt)
	return rt
}

//ToRichText parses line and returns it rendered as Rich console markup.
func ToRichText(line string) string {
	rt := NewRichText()
	Parse(line, rt)
	return rt.String()
}

//Text implements Visitor: outgoing text is translated through the
//DOS/CP437 table and has any literal "[" escaped, since Rich treats it
//as the start of a markup tag.
func (rt *RichText) Text(s string) {
	rt.PlainText.Text(strings.ReplaceAll(dosify(s), "[", `\[`))
}

//Char implements Visitor.
func (rt *RichText) Char(code byte) {
	rt.Text(string(rune(code)))
}

//OpenMarkup implements Tagger.
func (rt *RichText) OpenMarkup(class string) string {
	return "[" + class + "]"
}

//CloseMarkup implements Tagger.
func (rt *RichText) CloseMarkup(string) string {
	return "[/]"
}

//Colour implements Visitor, mapping the DOS foreground/background
//nibbles in attr through mapRichColour.
func (rt *RichText) Colour(attr byte) {
	fg := mapRichColour(int(attr) & 0xF)
	bg := mapRichColour(int(attr) >> 4 & 0xF)
	rt.BeginMarkup(fmt.Sprintf("color(%d) on color(%d)", fg, bg))
}

//Bold implements Visitor.
func (rt *RichText) Bold() { rt.BeginMarkup("bold") }

//Unbold implements Visitor.
func (rt *RichText) Unbold() { rt.EndMarkup() }

//Reverse implements Visitor.
func (rt *RichText) Reverse() { rt.BeginMarkup("reverse") }

//Unreverse implements Visitor.
func (rt *RichText) Unreverse() { rt.EndMarkup() }

//Underline implements Visitor.
func (rt *RichText) Underline() { rt.BeginMarkup("underline") }

//Ununderline implements Visitor.
func (rt *RichText) Ununderline() { rt.EndMarkup() }
