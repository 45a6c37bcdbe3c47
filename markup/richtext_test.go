package markup

import "testing"

func TestToRichTextStyles(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"^bbold^b text", "[bold]bold[/] text"},
		{"^uunder^n", "[underline]under[/]"},
		{"^rrev", "[reverse]rev[/]"},
	}
	for _, c := range cases {
		if got := ToRichText(c.in); got != c.want {
			t.Errorf("ToRichText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToRichTextColourRemap(t *testing.T) {
	// Attribute 0x14: DOS foreground 4 remaps to 1, DOS background 1
	// remaps to 4.
	if got := ToRichText("^A14x^N"); got != "[color(1) on color(4)]x[/]" {
		t.Errorf("ToRichText(^A14x^N) = %q", got)
	}
	// Colours without a remap entry pass through unchanged.
	if got := ToRichText("^A05x^N"); got != "[color(5) on color(0)]x[/]" {
		t.Errorf("ToRichText(^A05x^N) = %q", got)
	}
}

func TestToRichTextEscapesBrackets(t *testing.T) {
	if got := ToRichText("a[b]"); got != `a\[b]` {
		t.Errorf("ToRichText(a[b]) = %q", got)
	}
}

func TestToRichTextTranslatesDOSGlyphs(t *testing.T) {
	// Byte 196 is the CP437 horizontal box-drawing line.
	if got := ToRichText(string(rune(196))); got != "─" {
		t.Errorf("ToRichText(0xC4) = %q, want the box-drawing line", got)
	}
}

func TestToHTMLTextStyles(t *testing.T) {
	if got := ToHTMLText("^bbold^b"); got != `<span class="ng-bold">bold</span>` {
		t.Errorf("ToHTMLText(^bbold^b) = %q", got)
	}
	if got := ToHTMLText("^A14x^N"); got != `<span class="ng-fg-4 ng-bg-1">x</span>` {
		t.Errorf("ToHTMLText(^A14x^N) = %q", got)
	}
}

func TestToHTMLTextEscapes(t *testing.T) {
	if got := ToHTMLText("a<b>&c"); got != "a&lt;b&gt;&amp;c" {
		t.Errorf("ToHTMLText(a<b>&c) = %q", got)
	}
}

func TestDosifyPassesASCIIThrough(t *testing.T) {
	if got := dosify("Hello, world!"); got != "Hello, world!" {
		t.Errorf("dosify(ascii) = %q", got)
	}
}
