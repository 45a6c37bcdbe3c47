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

import "strings"

//PlainText collects the text and char events from a line, discarding
//every styling instruction. It's the simplest possible Visitor.
type PlainText struct {
	BaseVisitor
	text strings.Builder
}

//ToPlainText parses line and returns its plain-text content: every
//styling code is dropped, and embedded characters are inlined.
func ToPlainText(line string) string {
	var p PlainText
	Parse(line, &p)
	return p.String()
}

//Text implements Visitor.
func (p *PlainText) Text(s string) {
	p.text.WriteString(s)
}

//Char implements Visitor. A subclass that overrides Text to transform
//outgoing text (RichText, HTMLText) should override Char too, calling
//its own Text rather than this one: Go doesn't dispatch embedded method
//calls back through the outer type the way Python's self does.
func (p *PlainText) Char(code byte) {
	p.Text(string(rune(code)))
}

//String returns the accumulated plain text.
func (p *PlainText) String() string {
	return p.text.String()
}
