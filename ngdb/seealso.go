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

//maxSeeAlso is the limit on see-also entries published in the Expert Help
//Compiler manual. It's enforced here mostly as a guard against corrupt
//guides claiming an implausibly large count.
const maxSeeAlso = 20

//SeeAlso holds the cross-reference list trailing a Long entry that has
//has_see_also set.
type SeeAlso struct {
	PromptCollection
}

//readSeeAlso decodes a see-also block, if load is true. When load is
//false the returned SeeAlso is simply empty: a Norton Guide has a flag
//saying whether any see-also entries follow, and if that flag is clear
//there's no count (or anything else) to read.
func readSeeAlso(r *reader, load bool) (SeeAlso, error) {
	var sa SeeAlso
	if !load {
		return sa, nil
	}

	rawCount, err := r.readWord(true)
	if err != nil {
		return sa, err
	}
	count := int(rawCount)
	if count > maxSeeAlso {
		count = maxSeeAlso
	}

	offsets := make([]int64, count)
	for i := range offsets {
		offsets[i], err = r.readOffset()
		if err != nil {
			return sa, err
		}
	}

	prompts := make([]string, count)
	for i := range prompts {
		raw, err := r.readStrz(maxPromptLength, true)
		if err != nil {
			return sa, err
		}
		prompts[i] = unrle(raw)
	}

	sa.prompts = prompts
	sa.offsets = offsets
	return sa, nil
}
