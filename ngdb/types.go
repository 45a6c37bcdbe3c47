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

import "errors"

//ErrEOF is returned whenever a positioned read can't supply enough bytes,
//or when a higher-level operation (Skip, Load) is attempted at or past the
//end of the guide.
var ErrEOF = errors.New("ngdb: unexpected end of file")

//UnknownEntryTypeError is returned when the next entry's type tag is
//outside of {Short, Long} at load time -- either it names a menu record, or
//it's a value the format doesn't define at all.
//
//UnknownEntryTypeError is-a ErrEOF in the sense that errors.Is(err, ErrEOF)
//is true for it; this lets whole-guide iteration stop cleanly on corruption
//by checking for ErrEOF alone, without also special-casing this type.
type UnknownEntryTypeError struct {
	//TypeTag is the raw, unrecognised type tag value that was read.
	TypeTag int
}

//Error implements the error interface.
func (e *UnknownEntryTypeError) Error() string {
	return "ngdb: unknown entry type"
}

//Unwrap makes errors.Is(err, ErrEOF) true for an *UnknownEntryTypeError,
//since an iterator that stops on ErrEOF should also stop here.
func (e *UnknownEntryTypeError) Unwrap() error {
	return ErrEOF
}

//EntryType is the type tag found at the head of every record in a guide.
type EntryType int

const (
	//Short is the record ID for a short entry in a Norton Guide database.
	Short EntryType = 0
	//Long is the record ID for a long entry in a Norton Guide database.
	Long EntryType = 1
	//MenuType is the record ID for a menu in a Norton Guide database.
	MenuType EntryType = 2
)

//IsShort reports whether the given raw type tag identifies a short entry.
func IsShort(test int) bool {
	return EntryType(test) == Short
}

//IsLong reports whether the given raw type tag identifies a long entry.
func IsLong(test int) bool {
	return EntryType(test) == Long
}

//IsMenu reports whether the given raw type tag identifies a menu record.
func IsMenu(test int) bool {
	return EntryType(test) == MenuType
}
