package ngdb

import "testing"

func TestNonSentinel(t *testing.T) {
	if got := nonSentinel(0xFFFF); got != -1 {
		t.Errorf("nonSentinel(0xFFFF) = %d, want -1", got)
	}
	if got := nonSentinel(0); got != 0 {
		t.Errorf("nonSentinel(0) = %d, want 0", got)
	}
	if got := nonSentinel(42); got != 42 {
		t.Errorf("nonSentinel(42) = %d, want 42", got)
	}
}

func TestEntryParentPredicates(t *testing.T) {
	p := EntryParent{line: -1, offset: 0, menu: -1, prompt: -1}
	if p.HasParent() {
		t.Error("HasParent() = true for zero offset, want false")
	}
	if p.HasLine() {
		t.Error("HasLine() = true for sentinel line, want false")
	}
	if p.HasMenu() {
		t.Error("HasMenu() = true for sentinel menu, want false")
	}
	if p.HasPrompt() {
		t.Error("HasPrompt() = true with no menu, want false")
	}

	q := EntryParent{line: 3, offset: 500, menu: 1, prompt: 2}
	if !q.HasParent() || !q.HasLine() || !q.HasMenu() || !q.HasPrompt() {
		t.Errorf("expected all predicates true for %+v", q)
	}
}

func TestShortEntryAtAndLinks(t *testing.T) {
	s := &ShortEntry{
		EntryHeader: EntryHeader{lines: []string{"one", "two", "three"}},
		offsets:     []int64{10, 20, 30},
	}

	link := s.At(1)
	if link.Text != "two" || link.Offset != 20 {
		t.Fatalf("At(1) = %+v, want {two 20}", link)
	}

	links := s.Links()
	if len(links) != 3 {
		t.Fatalf("Links() returned %d entries, want 3", len(links))
	}
	for i, want := range []Link{{"one", 10}, {"two", 20}, {"three", 30}} {
		if links[i] != want {
			t.Errorf("Links()[%d] = %+v, want %+v", i, links[i], want)
		}
	}
}

func TestLongEntryAt(t *testing.T) {
	l := &LongEntry{EntryHeader: EntryHeader{lines: []string{"alpha", "beta"}}}
	if got := l.At(0); got != "alpha" {
		t.Errorf("At(0) = %q, want %q", got, "alpha")
	}
	if got := l.At(1); got != "beta" {
		t.Errorf("At(1) = %q, want %q", got, "beta")
	}
}

func TestEntryHeaderStringJoinsLines(t *testing.T) {
	h := EntryHeader{lines: []string{"first", "second"}}
	if got := h.String(); got != "first\nsecond" {
		t.Errorf("String() = %q, want %q", got, "first\nsecond")
	}
}

func TestEntryGoString(t *testing.T) {
	s := &ShortEntry{EntryHeader: EntryHeader{typeID: int(Short), offset: 452}}
	if got := s.GoString(); got != "<ShortEntry: 452>" {
		t.Errorf("GoString() = %q, want %q", got, "<ShortEntry: 452>")
	}
	l := &LongEntry{EntryHeader: EntryHeader{typeID: int(Long), offset: 1290}}
	if got := l.GoString(); got != "<LongEntry: 1290>" {
		t.Errorf("GoString() = %q, want %q", got, "<LongEntry: 1290>")
	}
}

func TestEntryHeaderHasPreviousNext(t *testing.T) {
	h := EntryHeader{previous: -1, next: 0}
	if h.HasPrevious() {
		t.Error("HasPrevious() = true for -1, want false")
	}
	if h.HasNext() {
		t.Error("HasNext() = true for 0, want false")
	}
	h2 := EntryHeader{previous: 10, next: 20}
	if !h2.HasPrevious() || !h2.HasNext() {
		t.Error("expected HasPrevious and HasNext both true")
	}
}
