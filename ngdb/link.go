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

//Link is a piece of text associated with an offset into a guide: a menu
//prompt, a short-entry line, or a see-also item, each paired with the
//byte offset of whatever it points to.
type Link struct {
	Text   string
	Offset int64
}

//String returns the link's text.
func (l Link) String() string {
	return l.Text
}

//HasOffset reports whether this link actually points somewhere.
func (l Link) HasOffset() bool {
	return l.Offset > 0
}
