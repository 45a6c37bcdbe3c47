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

//ngdbinfo prints a one-line header summary (magic, file name, title) for
//one or more Norton Guide databases, plus their credits with --verbose,
//and can optionally export a guide's entries into an archive for
//downstream processing. It does not list the guides' menus. It is a thin front-end over the
//ngdb, catalog and export packages; none of the logic here is part of
//the library itself.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogier/pflag"

	"github.com/davep/ngdb/catalog"
	"github.com/davep/ngdb/export"
	"github.com/davep/ngdb/ngdb"
)

var (
	verbose     = pflag.BoolP("verbose", "v", false, "show the guide's credits as well as its header")
	catalogFile = pflag.StringP("catalog", "c", "", "read the guides to inspect from a TOML catalog file, rather than the command line")
	exportAr    = pflag.String("export-ar", "", "export the first guide's entries as an ar archive to this file")
	exportCPIO  = pflag.String("export-cpio", "", "export the first guide's entries as a cpio archive to this file")
)

func main() {
	pflag.Parse()

	paths, err := guidePaths()
	if err != nil {
		showError(err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ngdbinfo [--catalog FILE] [--verbose] [--export-ar FILE] [--export-cpio FILE] [GUIDE...]")
		os.Exit(1)
	}

	status := 0
	for i, path := range paths {
		if err := info(path, i == 0); err != nil {
			showError(fmt.Errorf("%s: %w", path, err))
			status = 1
		}
	}
	os.Exit(status)
}

//guidePaths resolves the list of guides to report on, either from a
//catalog file or from the positional command-line arguments.
func guidePaths() ([]string, error) {
	if *catalogFile == "" {
		return pflag.Args(), nil
	}
	cat, err := catalog.Load(*catalogFile)
	if err != nil {
		return nil, err
	}
	paths := make([]string, cat.Len())
	for i, g := range cat.Guides() {
		paths[i] = g.Path
	}
	return paths, nil
}

//info opens a single guide and prints its header summary, any requested
//exports, and, if verbose, its credits.
func info(path string, first bool) error {
	guide, err := ngdb.Open(path)
	if err != nil {
		return err
	}
	defer guide.Close()

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if !guide.IsA() {
		fmt.Printf("%-2s %-20s - Not a Norton Guide Database -\n", guide.Magic(), stem)
		return nil
	}

	fmt.Printf("%-2s %-20s %s\n", guide.Magic(), stem, guide.Title())
	if *verbose {
		for _, credit := range guide.Credits() {
			fmt.Println(credit)
		}
	}

	if first {
		if err := maybeExport(guide); err != nil {
			return err
		}
	}
	return nil
}

//maybeExport writes guide's entries to whichever of --export-ar or
//--export-cpio was requested.
func maybeExport(guide *ngdb.NortonGuide) error {
	if *exportAr != "" {
		f, err := os.Create(*exportAr)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.ToAr(guide, f); err != nil {
			return err
		}
	}
	if *exportCPIO != "" {
		f, err := os.Create(*exportCPIO)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.ToCPIO(guide, f); err != nil {
			return err
		}
	}
	return nil
}

func showError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31m\x1b[1m!!\x1b[0m %s\n", err.Error())
}
