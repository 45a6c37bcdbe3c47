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

//Tagger supplies the opening and closing markup text for a named style
//class. A MarkupText uses it to turn style toggles into a stack of
//open/close tags.
type Tagger interface {
	//OpenMarkup returns the text that opens a section of the given
	//style class.
	OpenMarkup(class string) string
	//CloseMarkup returns the text that closes a section of the given
	//style class.
	CloseMarkup(class string) string
}

//MarkupText layers an open/close-tag stack on top of PlainText. Each
//toggled style pushes the closing tag produced by Tagger.CloseMarkup
//onto a stack; Normal flushes the stack in LIFO order, closing
//everything that's currently open.
//
//It's meant to be embedded by a concrete Visitor (see RichText, HTMLText)
//that supplies the Tagger and drives BeginMarkup/EndMarkup from its own
//Bold/Unbold/Reverse/Unreverse/Underline/Ununderline/Colour methods.
type MarkupText struct {
	PlainText
	stack  []string
	tagger Tagger
}

//NewMarkupText returns a MarkupText that opens and closes tags via the
//given Tagger.
func NewMarkupText(tagger Tagger) MarkupText {
	return MarkupText{tagger: tagger}
}

//BeginMarkup opens a section of markup for the given class, pushing its
//closing tag onto the stack for later use by EndMarkup or Normal.
func (m *MarkupText) BeginMarkup(class string) {
	m.text.WriteString(m.tagger.OpenMarkup(class))
	m.stack = append(m.stack, m.tagger.CloseMarkup(class))
}

//EndMarkup closes the most recently opened section of markup.
func (m *MarkupText) EndMarkup() {
	n := len(m.stack) - 1
	m.text.WriteString(m.stack[n])
	m.stack = m.stack[:n]
}

//Normal closes every currently open section of markup, in LIFO order,
//and clears the stack.
func (m *MarkupText) Normal() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		m.text.WriteString(m.stack[i])
	}
	m.stack = nil
}

//String flushes any still-open markup, then returns the accumulated
//text.
func (m *MarkupText) String() string {
	m.Normal()
	return m.PlainText.String()
}
