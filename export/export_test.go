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

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/blakesmith/ar"
	cpio "github.com/surma/gocpio"

	"github.com/davep/ngdb/ngdb"
)

//buildSyntheticGuide writes a minimal guide with no menus and one Long
//entry whose single line fills a 1024-byte field.
func buildSyntheticGuide(t *testing.T) *ngdb.NortonGuide {
	t.Helper()

	key := byte(0x1a)
	wordEnc := func(v uint16) []byte { return []byte{byte(v) ^ key, byte(v>>8) ^ key} }
	longEnc := func(v uint32) []byte {
		return append(wordEnc(uint16(v)), wordEnc(uint16(v>>16))...)
	}
	strzEnc := func(s string, maxLen int) []byte {
		field := make([]byte, maxLen)
		for i := range field {
			if i < len(s) {
				field[i] = s[i] ^ key
			} else {
				field[i] = 0 ^ key
			}
		}
		return field
	}

	var buf []byte
	buf = append(buf, 'N', 'G')
	buf = append(buf, make([]byte, 4)...) // unknown
	buf = append(buf, byte(0), byte(0))   // menu_count = 0
	title := make([]byte, 40)
	copy(title, "Export Test Guide")
	buf = append(buf, title...)
	buf = append(buf, make([]byte, 5*66)...) // credits

	//A single Long entry with no see-also.
	lines := []string{"one line of prose"}
	buf = append(buf, wordEnc(1)...)    // type_tag = Long
	buf = append(buf, wordEnc(1024)...) // body size: line_count x 1024-byte line fields
	buf = append(buf, wordEnc(uint16(len(lines)))...)
	buf = append(buf, wordEnc(0)...) // has_see_also = false
	buf = append(buf, wordEnc(0xFFFF)...)
	buf = append(buf, longEnc(0xFFFFFFFF)...)
	buf = append(buf, wordEnc(0xFFFF)...)
	buf = append(buf, wordEnc(0xFFFF)...)
	buf = append(buf, longEnc(0xFFFFFFFF)...)
	buf = append(buf, longEnc(0xFFFFFFFF)...)
	for _, l := range lines {
		buf = append(buf, strzEnc(l, 1024)...)
	}

	path := filepath.Join(t.TempDir(), "export.ng")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatalf("ngdb.Open: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestToArWritesOneMemberPerEntry(t *testing.T) {
	g := buildSyntheticGuide(t)

	var out bytes.Buffer
	if err := ToAr(g, &out); err != nil {
		t.Fatalf("ToAr: %v", err)
	}

	reader := ar.NewReader(&out)
	header, err := reader.Next()
	if err != nil {
		t.Fatalf("ar.Next: %v", err)
	}
	if header.Name != "entry-378.txt" {
		t.Errorf("member name = %q, want %q", header.Name, "entry-378.txt")
	}
	body := make([]byte, header.Size)
	if _, err := reader.Read(body); err != nil {
		t.Fatalf("reading member body: %v", err)
	}
	if got := string(body); got != "one line of prose\n" {
		t.Errorf("member body = %q, want %q", got, "one line of prose\n")
	}
}

func TestToCPIOWritesOneMemberPerEntry(t *testing.T) {
	g := buildSyntheticGuide(t)

	var out bytes.Buffer
	if err := ToCPIO(g, &out); err != nil {
		t.Fatalf("ToCPIO: %v", err)
	}

	reader := cpio.NewReader(&out)
	header, err := reader.Next()
	if err != nil {
		t.Fatalf("cpio.Next: %v", err)
	}
	if header.Name != "entry-378.txt" {
		t.Errorf("member name = %q, want %q", header.Name, "entry-378.txt")
	}
}
