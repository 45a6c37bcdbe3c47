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

//maxPromptLength is the maximum length of a prompt in a guide, as an
//RLE-expanded, NUL-terminated string.
const maxPromptLength = 128

//PromptCollection is the shared behaviour of anything that holds a
//parallel list of prompts and offsets: a Menu's options, or a Long
//entry's see-also list.
type PromptCollection struct {
	prompts []string
	offsets []int64
}

//Len returns the number of prompts in the collection.
func (p *PromptCollection) Len() int {
	return len(p.prompts)
}

//Prompts returns the prompts in the collection, in file order.
func (p *PromptCollection) Prompts() []string {
	return p.prompts
}

//Offsets returns the offset into the guide for each prompt, parallel to
//Prompts.
func (p *PromptCollection) Offsets() []int64 {
	return p.offsets
}

//At returns the prompt/offset pair at the given index as a Link.
func (p *PromptCollection) At(index int) Link {
	return Link{Text: p.prompts[index], Offset: p.offsets[index]}
}

//Empty reports whether the collection holds no prompts at all.
func (p *PromptCollection) Empty() bool {
	return p.Len() == 0
}
