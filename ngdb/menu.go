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

//Menu holds the title and prompts of one of a guide's top-level menus.
type Menu struct {
	PromptCollection
	title string
}

//readMenu decodes a menu record. The reader's position must be on a menu
//record (peekWord returning the MenuType tag); the caller is responsible
//for having checked that.
func readMenu(r *reader) (Menu, error) {
	var m Menu

	//Type tag and body size: both clear, both unused here.
	if _, err := r.readWord(false); err != nil {
		return m, err
	}
	if _, err := r.readWord(false); err != nil {
		return m, err
	}

	//The file stores one more than the user-visible prompt count.
	rawCount, err := r.readWord(true)
	if err != nil {
		return m, err
	}
	count := int(rawCount) - 1

	//20 bytes of unknown purpose.
	if err := r.skip(20); err != nil {
		return m, err
	}

	offsets := make([]int64, count)
	for i := range offsets {
		offsets[i], err = r.readOffset()
		if err != nil {
			return m, err
		}
	}

	//Two parallel arrays of longs, of unknown purpose.
	if err := r.skip(int64(count+1) * 8); err != nil {
		return m, err
	}

	title, err := r.readStrz(maxPromptLength, true)
	if err != nil {
		return m, err
	}
	m.title = unrle(title)

	prompts := make([]string, count)
	for i := range prompts {
		raw, err := r.readStrz(maxPromptLength, true)
		if err != nil {
			return m, err
		}
		prompts[i] = unrle(raw)
	}

	//One further byte of unknown purpose, placing us on the next record.
	if err := r.skip(1); err != nil {
		return m, err
	}

	m.prompts = prompts
	m.offsets = offsets
	return m, nil
}

//Title is the title of the menu.
func (m Menu) Title() string {
	return m.title
}

//String returns the menu's title.
func (m Menu) String() string {
	return m.title
}
