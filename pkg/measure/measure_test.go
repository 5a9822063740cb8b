package measure

import (
	"testing"

	"pgregory.net/rapid"
)

func TestMeasureEmptyTextIsZeroArea(t *testing.T) {
	b := Measure("", Style{FontSize: 16})
	if b.Width != 0 || b.Height != 0 {
		t.Errorf("Measure(\"\") = %+v, want zero box", b)
	}
}

func TestMeasureWrappedEmptyTextOneLine(t *testing.T) {
	w := MeasureWrapped("", Style{FontSize: 16}, nil, SvgLike)
	if len(w.Lines) != 1 || w.Lines[0] != "" {
		t.Errorf("MeasureWrapped(\"\") lines = %v, want one empty line", w.Lines)
	}
}

func TestWrapSvgLikeBreaksOverlongToken(t *testing.T) {
	text := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // single long token
	maxW := 50.0
	w := MeasureWrapped(text, Style{FontSize: 16}, &maxW, SvgLike)
	if len(w.Lines) < 2 {
		t.Fatalf("expected multiple lines for an overlong token, got %v", w.Lines)
	}
	for i, l := range w.Lines[:len(w.Lines)-1] {
		if l == "" {
			t.Errorf("line %d empty", i)
		}
	}
}

func TestWrapHtmlLikeKeepsTokenIntact(t *testing.T) {
	text := "supercalifragilisticexpialidocious"
	maxW := 50.0
	w := MeasureWrapped(text, Style{FontSize: 16}, &maxW, HtmlLike)
	if len(w.Lines) != 1 || w.Lines[0] != text {
		t.Errorf("HtmlLike wrap = %v, want overflowing single line %q", w.Lines, text)
	}
}

func TestEntityRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z0-9 ]*`).Draw(t, "s")
		escaped := EscapeXML(s)
		if got := DecodeEntities(escaped); got != s {
			t.Fatalf("DecodeEntities(EscapeXML(%q)) = %q, want %q", s, got, s)
		}
	})
}

func TestDecodeEntitiesNumericRefs(t *testing.T) {
	if got := DecodeEntities("a&#x2014;b"); got != "a—b" {
		t.Errorf("DecodeEntities numeric hex = %q, want %q", got, "a—b")
	}
	if got := DecodeEntities("a&#60;b"); got != "a<b" {
		t.Errorf("DecodeEntities numeric dec = %q, want %q", got, "a<b")
	}
}

func TestEscapedBrStaysLiteralUntilDecode(t *testing.T) {
	raw := "line1&lt;br&gt;line2"
	maxW := 1000.0
	w := MeasureWrapped(raw, Style{FontSize: 16}, &maxW, HtmlLike)
	if len(w.Lines) != 1 {
		t.Fatalf("wrapping should not split on an entity-escaped <br>, got %v", w.Lines)
	}
	if DecodeEntities(w.Lines[0]) != "line1<br>line2" {
		t.Errorf("decode after wrap = %q", DecodeEntities(w.Lines[0]))
	}
}

func TestNonEmptyLabel(t *testing.T) {
	if NonEmptyLabel("x") != "x" {
		t.Error("NonEmptyLabel should pass through non-empty text")
	}
	if NonEmptyLabel("") != ZeroWidthSpace {
		t.Error("NonEmptyLabel should substitute the zero-width space for empty text")
	}
}
