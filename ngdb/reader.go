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
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

//obfuscationKey is the byte value that every obfuscated byte in a guide is
//XOR-masked with.
const obfuscationKey = 0x1A

//rleMarker is the byte that introduces a run of spaces in an RLE-encoded
//string field.
const rleMarker = 0xFF

//reader is the low-level, positioned byte source for a guide file. It
//knows nothing about menus or entries; it only knows how to pull
//primitives (bytes, words, longs, strings) out of the file at the
//current position, undoing the format's XOR obfuscation and sentinel
//offsets along the way.
type reader struct {
	h      *os.File
	closed bool
}

//newReader opens the guide at the given path for positioned reading.
func newReader(path string) (*reader, error) {
	h, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &reader{h: h}, nil
}

//close closes the guide's underlying file handle.
func (r *reader) close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.h.Close()
}

//isClosed reports whether the reader's handle has been closed.
func (r *reader) isClosed() bool {
	return r.closed
}

//position returns the current byte offset within the guide.
func (r *reader) position() (int64, error) {
	return r.h.Seek(0, io.SeekCurrent)
}

//seek moves to a specific byte position within the guide.
func (r *reader) seek(pos int64) error {
	_, err := r.h.Seek(pos, io.SeekStart)
	return err
}

//skip moves the current position forward (or backward, for a negative
//count) by the given number of bytes.
func (r *reader) skip(count int64) error {
	_, err := r.h.Seek(count, io.SeekCurrent)
	return err
}

//skipEntry skips over a whole entry record, starting from the entry's
//header. This advances 2 bytes (the type tag), reads the body-size word,
//then skips size+22 further bytes -- the remainder of the fixed header
//(line_count, has_see_also, EntryParent, previous, next) plus the body.
func (r *reader) skipEntry() error {
	if err := r.skip(2); err != nil {
		return err
	}
	size, err := r.readWord(true)
	if err != nil {
		return err
	}
	return r.skip(int64(size) + 22)
}

//decrypt undoes the guide's byte-wise XOR obfuscation.
func decrypt(b byte) byte {
	return b ^ obfuscationKey
}

//readByte reads a single byte from the guide, optionally decrypting it.
//It fails with ErrEOF if no byte remains to be read.
func (r *reader) readByte(decryptIt bool) (byte, error) {
	var buf [1]byte
	n, err := r.h.Read(buf[:])
	if n == 0 || err != nil {
		if err == io.EOF || n == 0 {
			return 0, ErrEOF
		}
		return 0, err
	}
	if decryptIt {
		return decrypt(buf[0]), nil
	}
	return buf[0], nil
}

//readWord reads a little-endian two-byte word from the guide.
func (r *reader) readWord(decryptIt bool) (uint16, error) {
	lo, err := r.readByte(decryptIt)
	if err != nil {
		return 0, err
	}
	hi, err := r.readByte(decryptIt)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

//peekWord reads a word, then moves the file location back to where the
//read started, so the position is unchanged regardless of whether the
//read succeeded.
func (r *reader) peekWord(decryptIt bool) (uint16, error) {
	pos, err := r.position()
	if err != nil {
		return 0, err
	}
	word, err := r.readWord(decryptIt)
	if skipErr := r.seek(pos); skipErr != nil {
		if err == nil {
			err = skipErr
		}
	}
	return word, err
}

//readLong reads a little-endian four-byte long word from the guide, as
//two little-endian words.
func (r *reader) readLong(decryptIt bool) (uint32, error) {
	lo, err := r.readWord(decryptIt)
	if err != nil {
		return 0, err
	}
	hi, err := r.readWord(decryptIt)
	if err != nil {
		return 0, err
	}
	return uint32(lo) | uint32(hi)<<16, nil
}

//readOffset reads a decrypted long and maps the sentinel value
//0xFFFFFFFF, meaning "no offset", to -1. Every other value is returned
//unchanged.
func (r *reader) readOffset() (int64, error) {
	offset, err := r.readLong(true)
	if err != nil {
		return 0, err
	}
	if offset == 0xFFFFFFFF {
		return -1, nil
	}
	return int64(offset), nil
}

//nulTrim returns everything in s up to, but not including, the first NUL.
func nulTrim(s string) string {
	if i := strings.IndexByte(s, 0); i != -1 {
		return s[:i]
	}
	return s
}

//readStr reads exactly length bytes from the guide, optionally decrypting
//each one, decodes each byte as its own raw code point, and truncates the
//result at the first NUL. The file cursor always advances by length,
//regardless of where (or whether) a NUL was found.
func (r *reader) readStr(length int, decryptIt bool) (string, error) {
	buf := make([]byte, length)
	if _, err := io.ReadFull(r.h, buf); err != nil {
		return "", ErrEOF
	}
	runes := make([]rune, length)
	for i, b := range buf {
		if decryptIt {
			b = decrypt(b)
		}
		runes[i] = rune(b)
	}
	return nulTrim(string(runes)), nil
}

//readStrz reads a NUL-terminated string of at most maxLen bytes. On
//return, the file cursor sits one byte past the first NUL found; if no
//NUL was found within maxLen, the cursor advances by maxLen+1. When fewer
//than maxLen bytes remain before the end of the file, only those are
//read; it fails with ErrEOF only when no byte remains at all.
//
//readStr consumes every byte it's asked for regardless of NULs, so this
//re-seeks relative to the string's position rather than trusting
//wherever readStr left the cursor. It counts runes, not UTF-8 bytes:
//readStr decodes each original byte as its own code point, so a byte
//value of 128 or above round-trips as a single rune that's 2 bytes long
//once it's sitting in a Go string.
func (r *reader) readStrz(maxLen int, decryptIt bool) (string, error) {
	pos, err := r.position()
	if err != nil {
		return "", err
	}
	info, err := r.h.Stat()
	if err != nil {
		return "", err
	}
	if remaining := info.Size() - pos; remaining <= 0 {
		return "", ErrEOF
	} else if remaining < int64(maxLen) {
		maxLen = int(remaining)
	}
	str, err := r.readStr(maxLen, decryptIt)
	if err != nil {
		return "", err
	}
	if err := r.seek(pos + int64(utf8.RuneCountInString(str)) + 1); err != nil {
		return "", err
	}
	return str, nil
}

//unrle expands a run-length-encoded string. The byte 0xFF introduces a
//run of spaces: 0xFF followed by n (0 <= n <= 0xFE) expands to n spaces;
//0xFF followed by 0xFF expands to a single space; a trailing 0xFF with
//nothing following it also expands to a single space.
func unrle(s string) string {
	var out strings.Builder
	start := 0
	split := strings.IndexByte(s, rleMarker)
	for split > -1 {
		out.WriteString(s[start:split])
		if split+1 >= len(s) {
			out.WriteByte(' ')
			start = split + 1
			break
		}
		if s[split+1] == rleMarker {
			out.WriteByte(' ')
		} else {
			out.WriteString(strings.Repeat(" ", int(s[split+1])))
		}
		start = split + 2
		if start >= len(s) {
			split = -1
		} else {
			if rel := strings.IndexByte(s[start:], rleMarker); rel == -1 {
				split = -1
			} else {
				split = start + rel
			}
		}
	}
	out.WriteString(s[start:])
	return out.String()
}
