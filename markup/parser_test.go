package markup

import "testing"

type recordedEvent struct {
	kind string
	text string
	attr byte
}

type recorder struct {
	BaseVisitor
	events []recordedEvent
}

func (r *recorder) Text(s string) {
	r.events = append(r.events, recordedEvent{kind: "T", text: s})
}

func (r *recorder) Colour(attr byte) {
	r.events = append(r.events, recordedEvent{kind: "A", attr: attr})
}

func (r *recorder) Normal() {
	r.events = append(r.events, recordedEvent{kind: "N"})
}

func TestParseSameColourTwiceReturnsToNormal(t *testing.T) {
	var r recorder
	Parse("Hello, ^A20World^A20!", &r)

	want := []recordedEvent{
		{kind: "T", text: "Hello, "},
		{kind: "A", attr: 0x20},
		{kind: "T", text: "World"},
		{kind: "N"},
		{kind: "T", text: "!"},
	}

	if len(r.events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(r.events), len(want), r.events)
	}
	for i, got := range r.events {
		if got != want[i] {
			t.Fatalf("event %d: got %+v, want %+v", i, got, want[i])
		}
	}
}

func TestPlainTextStripsMarkup(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"^bbold^b", "bold"},
		{"^r^uboth^u^r", "both"},
		{"^A20coloured^A20", "coloured"},
		{"^C41", "A"},
	}
	for _, c := range cases {
		if got := ToPlainText(c.in); got != c.want {
			t.Errorf("ToPlainText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPlainTextCaretRepetitionLaw(t *testing.T) {
	for n := 0; n <= 4; n++ {
		in := ""
		want := ""
		for i := 0; i < n; i++ {
			in += "^^"
			want += "^"
		}
		if got := ToPlainText(in); got != want {
			t.Errorf("ToPlainText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlainTextTrailingCaretIsHarmless(t *testing.T) {
	if got := ToPlainText("abc^"); got != "abc" {
		t.Errorf("ToPlainText(%q) = %q, want %q", "abc^", got, "abc")
	}
}

func TestPlainTextRecoversFromBadHex(t *testing.T) {
	// Not valid hex after ^a or ^c: the marker itself is recovered as
	// literal text, and parsing carries on with whatever follows it.
	if got := ToPlainText("^AZZ"); got != "^AZZ" {
		t.Errorf("ToPlainText(%q) = %q, want %q", "^AZZ", got, "^AZZ")
	}
	if got := ToPlainText("^Cxy"); got != "^Cxy" {
		t.Errorf("ToPlainText(%q) = %q, want %q", "^Cxy", got, "^Cxy")
	}
}

func TestPlainTextCharEvent(t *testing.T) {
	if got := ToPlainText("^C41^C42"); got != "AB" {
		t.Errorf("ToPlainText(%q) = %q, want %q", "^C41^C42", got, "AB")
	}
}
