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

//Package export writes every entry of an opened guide into an archive,
//one member per entry, so a guide's text can be handed to tools that
//have no notion of the Norton Guide format at all.
package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/blakesmith/ar"
	"github.com/holocm/libpackagebuild/filesystem"
	cpio "github.com/surma/gocpio"

	"github.com/davep/ngdb/ngdb"
)

//memberName builds the archive member name for a guide entry, keyed by
//its byte offset since that's the only identifier every entry carries.
func memberName(offset int64) string {
	return fmt.Sprintf("entry-%d.txt", offset)
}

//buildTree walks every entry in the guide and inserts it into a flat
//filesystem.Directory, one RegularFile per entry, keyed by archive
//member name. The tree gives ToAr and ToCPIO a single, reproducibly
//ordered walk to serialise rather than two independent loops over a
//hand-kept name/body pair.
func buildTree(g *ngdb.NortonGuide) (*filesystem.Directory, error) {
	root := filesystem.NewDirectory()

	it := g.Entries()
	for it.Next() {
		entry := it.Entry()
		file := &filesystem.RegularFile{
			Content:  entry.String() + "\n",
			Metadata: filesystem.NodeMetadata{Mode: 0644},
		}
		name := memberName(entry.Offset())
		if err := root.Insert(file, []string{name}, "/"); err != nil {
			return nil, err
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return root, nil
}

//ToAr writes every entry in g to w as an ar archive, one member per
//entry, using github.com/blakesmith/ar.
func ToAr(g *ngdb.NortonGuide, w io.Writer) error {
	root, err := buildTree(g)
	if err != nil {
		return err
	}

	aw := ar.NewWriter(w)
	if err := aw.WriteGlobalHeader(); err != nil {
		return err
	}

	return root.Walk("", func(path string, node filesystem.Node) error {
		file, ok := node.(*filesystem.RegularFile)
		if !ok {
			return nil
		}
		body := []byte(file.Content)
		header := &ar.Header{
			Name: filepath.Base(path),
			Mode: int64(file.FileModeForArchive(false)),
			Size: int64(len(body)),
		}
		if err := aw.WriteHeader(header); err != nil {
			return err
		}
		_, err := aw.Write(body)
		return err
	})
}

//ToCPIO writes every entry in g to w as a "newc"-format cpio archive,
//one member per entry, using github.com/surma/gocpio.
func ToCPIO(g *ngdb.NortonGuide, w io.Writer) error {
	root, err := buildTree(g)
	if err != nil {
		return err
	}

	cw := cpio.NewWriter(w)

	err = root.Walk("", func(path string, node filesystem.Node) error {
		file, ok := node.(*filesystem.RegularFile)
		if !ok {
			return nil
		}
		body := []byte(file.Content)
		header := &cpio.Header{
			Name: filepath.Base(path),
			Mode: int64(file.FileModeForArchive(false)),
			Type: cpio.TYPE_REG,
			Size: int64(len(body)),
		}
		if err := cw.WriteHeader(header); err != nil {
			return err
		}
		_, err := cw.Write(body)
		return err
	})
	if err != nil {
		return err
	}

	//Close writes the cpio trailer record.
	return cw.Close()
}
