package ngdb

import "testing"

func TestReadSeeAlsoSkippedWhenNotLoading(t *testing.T) {
	r := writeTempGuide(t, nil)
	sa, err := readSeeAlso(r, false)
	if err != nil {
		t.Fatalf("readSeeAlso(load=false): %v", err)
	}
	if !sa.Empty() {
		t.Fatalf("readSeeAlso(load=false) returned non-empty: %+v", sa)
	}
}

func TestReadSeeAlsoDecodesEntries(t *testing.T) {
	var b guideBuilder
	b.wordEnc(2) // count
	b.longEnc(uint32(2355))
	b.longEnc(uint32(9000))
	b.strzEnc("OL_95VMTitle()", maxPromptLength)
	b.strzEnc("OL_95Other()", maxPromptLength)

	path := writeTempGuideFile(t, b.buf)
	r, err := newReader(path)
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	defer r.close()

	sa, err := readSeeAlso(r, true)
	if err != nil {
		t.Fatalf("readSeeAlso: %v", err)
	}
	if sa.Empty() {
		t.Fatal("readSeeAlso returned empty, want 2 entries")
	}
	if got := sa.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	first := sa.At(0)
	if first.Text != "OL_95VMTitle()" || first.Offset != 2355 {
		t.Fatalf("At(0) = %+v, want {OL_95VMTitle() 2355}", first)
	}
}

func TestReadSeeAlsoCapsAtMaxSeeAlso(t *testing.T) {
	var b guideBuilder
	b.wordEnc(uint16(maxSeeAlso + 50))
	for i := 0; i < maxSeeAlso; i++ {
		b.longEnc(uint32(i))
		b.strzEnc("x", maxPromptLength)
	}

	path := writeTempGuideFile(t, b.buf)
	r, err := newReader(path)
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	defer r.close()

	sa, err := readSeeAlso(r, true)
	if err != nil {
		t.Fatalf("readSeeAlso: %v", err)
	}
	if got := sa.Len(); got != maxSeeAlso {
		t.Fatalf("Len() = %d, want capped at %d", got, maxSeeAlso)
	}
}
