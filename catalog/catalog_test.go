package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "guides.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `
[[guide]]
path = "OSLIB.NG"
title = "OS/2 Library Reference"
tags = ["os2", "reference"]

[[guide]]
path = "/abs/OTHER.NG"
title = "Other Guide"
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cat.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	guides := cat.Guides()
	if want := filepath.Join(dir, "OSLIB.NG"); guides[0].Path != want {
		t.Errorf("Guides()[0].Path = %q, want %q", guides[0].Path, want)
	}
	if guides[0].Title != "OS/2 Library Reference" {
		t.Errorf("Guides()[0].Title = %q", guides[0].Title)
	}
	if guides[1].Path != "/abs/OTHER.NG" {
		t.Errorf("Guides()[1].Path = %q, want absolute path preserved", guides[1].Path)
	}
}

func TestByTag(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `
[[guide]]
path = "A.NG"
tags = ["reference"]

[[guide]]
path = "B.NG"
tags = ["tutorial"]

[[guide]]
path = "C.NG"
tags = ["reference", "tutorial"]
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	refs := cat.ByTag("reference")
	if len(refs) != 2 {
		t.Fatalf("ByTag(reference) returned %d guides, want 2", len(refs))
	}

	if len(cat.ByTag("nonexistent")) != 0 {
		t.Error("ByTag(nonexistent) returned guides, want none")
	}
}

func TestLoadRejectsGuideWithoutPath(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `
[[guide]]
title = "Missing a path"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded for a guide entry with no path, want an error")
	} else if !strings.Contains(err.Error(), "missing a path") {
		t.Errorf("Load error = %q, want it to mention the missing path", err.Error())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("Load succeeded for a nonexistent file, want an error")
	}
}

func TestLoadMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `not valid toml [[[`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded for malformed TOML, want an error")
	}
}
