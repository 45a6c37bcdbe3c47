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
	"html"
)

//HTMLText renders a line of Norton Guide markup as HTML: each styling
//toggle becomes a <span class="..."> wrapping the text it covers, so the
//result can be dropped straight into a web page.
type HTMLText struct {
	MarkupText
}

//NewHTMLText returns an empty HTMLText ready to be handed to Parse.
func NewHTMLText() *HTMLText {
	ht := &HTMLText{}
	ht.MarkupText = NewMarkupText(ht)
	return ht
}

//ToHTMLText parses line and returns it rendered as HTML.
func ToHTMLText(line string) string {
	ht := NewHTMLText()
	Parse(line, ht)
	return ht.String()
}

//Text implements Visitor: outgoing text is translated through the
//DOS/CP437 table, then HTML-escaped.
func (ht *HTMLText) Text(s string) {
	ht.PlainText.Text(html.EscapeString(dosify(s)))
}

//Char implements Visitor.
func (ht *HTMLText) Char(code byte) {
	ht.Text(string(rune(code)))
}

//OpenMarkup implements Tagger.
func (ht *HTMLText) OpenMarkup(class string) string {
	return fmt.Sprintf(`<span class="%s">`, class)
}

//CloseMarkup implements Tagger.
func (ht *HTMLText) CloseMarkup(string) string {
	return "</span>"
}

//Colour implements Visitor. The DOS attribute's foreground and
//background nibbles become ng-fg-N and ng-bg-N classes, left for a
//stylesheet to give meaning to.
func (ht *HTMLText) Colour(attr byte) {
	fg := int(attr) & 0xF
	bg := int(attr) >> 4 & 0xF
	ht.BeginMarkup(fmt.Sprintf("ng-fg-%d ng-bg-%d", fg, bg))
}

//Bold implements Visitor.
func (ht *HTMLText) Bold() { ht.BeginMarkup("ng-bold") }

//Unbold implements Visitor.
func (ht *HTMLText) Unbold() { ht.EndMarkup() }

//Reverse implements Visitor.
func (ht *HTMLText) Reverse() { ht.BeginMarkup("ng-reverse") }

//Unreverse implements Visitor.
func (ht *HTMLText) Unreverse() { ht.EndMarkup() }

//Underline implements Visitor.
func (ht *HTMLText) Underline() { ht.BeginMarkup("ng-underline") }

//Ununderline implements Visitor.
func (ht *HTMLText) Ununderline() { ht.EndMarkup() }
