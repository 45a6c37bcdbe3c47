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

//Package catalog reads a TOML document that lists known guide files,
//so a front-end can offer a guide by title or tag instead of a bare path.
package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//GuideSection only needs a nice exported name for the TOML parser to
//produce more meaningful error messages on malformed input data.
type GuideSection struct {
	Path  string   `toml:"path"`
	Title string   `toml:"title"`
	Tags  []string `toml:"tags"`
}

//document is the shape of a whole catalog file: a TOML document holding
//an array of [[guide]] tables.
type document struct {
	Guide []GuideSection `toml:"guide"`
}

//Guide is one entry in a catalog: the path to a guide file (a relative
//path in the catalog file has already been resolved against the
//catalog's own directory), plus a human-readable title and a set of
//free-form tags.
type Guide struct {
	Path  string
	Title string
	Tags  []string
}

//Catalog is an ordered list of guides, as read from a catalog file.
type Catalog struct {
	path   string
	guides []Guide
}

//Load reads and parses the catalog file at path. Relative guide paths in
//the file are resolved against the catalog file's own directory, the way
//a package definition's relative content paths are resolved against the
//definition file's directory.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f, filepath.Dir(path), path)
}

func decode(r io.Reader, baseDirectory, path string) (*Catalog, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc document
	if _, err := toml.Decode(string(blob), &doc); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	guides := make([]Guide, 0, len(doc.Guide))
	for idx, g := range doc.Guide {
		if g.Path == "" {
			return nil, fmt.Errorf("catalog: guide %d is missing a path", idx)
		}
		resolved := g.Path
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(baseDirectory, resolved)
		}
		guides = append(guides, Guide{
			Path:  resolved,
			Title: g.Title,
			Tags:  g.Tags,
		})
	}

	return &Catalog{path: path, guides: guides}, nil
}

//Path is the path of the catalog file itself.
func (c *Catalog) Path() string {
	return c.path
}

//Guides returns every guide listed in the catalog, in file order.
func (c *Catalog) Guides() []Guide {
	return c.guides
}

//Len returns the number of guides in the catalog.
func (c *Catalog) Len() int {
	return len(c.guides)
}

//ByTag returns every guide in the catalog carrying the given tag.
func (c *Catalog) ByTag(tag string) []Guide {
	var matches []Guide
	for _, g := range c.guides {
		for _, t := range g.Tags {
			if t == tag {
				matches = append(matches, g)
				break
			}
		}
	}
	return matches
}
