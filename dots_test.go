package fingerbraille

import (
	"testing"
)

func TestPackExamples(t *testing.T) {
	tests := []struct {
		dots []int
		want Code
	}{
		{dots: []int{1}, want: 0x01},
		{dots: []int{1, 2, 4}, want: 0x0B},
		{dots: []int{4, 2, 1}, want: 0x0B},
		{dots: []int{1, 1, 6}, want: 0x21},
		{dots: []int{1, 2, 3, 4, 5, 6}, want: 0x3F},
		{dots: []int{0, 7, -1, 5}, want: 0x10}, // out of range dots are ignored
		{dots: nil, want: 0},
	}
	for _, tt := range tests {
		if got := Pack(tt.dots); got != tt.want {
			t.Fatalf("Pack(%v) = 0x%02X, want 0x%02X", tt.dots, uint8(got), uint8(tt.want))
		}
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for p := Code(0); p <= MaxCode; p++ {
		if got := Pack(p.Dots()); got != p {
			t.Fatalf("Pack(Dots(0x%02X)) = 0x%02X", uint8(p), uint8(got))
		}
		dots := p.Dots()
		for i := 1; i < len(dots); i++ {
			if dots[i-1] >= dots[i] {
				t.Fatalf("dots of 0x%02X not strictly ascending: %v", uint8(p), dots)
			}
		}
		if !Normalize(dots).Equal(dots) {
			t.Fatalf("dots of 0x%02X not normalized: %v", uint8(p), dots)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]int{6, 1, 6, 9, 2})
	if !got.Equal(DotCode{1, 2, 6}) {
		t.Fatalf("Normalize mismatch: got %v", got)
	}
	if s := got.String(); s != "1-2-6" {
		t.Fatalf("dot notation mismatch: got %q", s)
	}
}

func TestGlyph(t *testing.T) {
	if g := Code(0x0B).Glyph(); g != '⠋' {
		t.Fatalf("glyph of 0x0B should be U+280B, is %U", g)
	}
	if g := Pack([]int{1, 2, 4}).Glyph(); g != '⠋' {
		t.Fatalf("glyph of 1-2-4 should be ⠋, is %c", g)
	}
	if g := Code(0).Glyph(); g != GlyphBase {
		t.Fatalf("empty cell should be U+2800, is %U", g)
	}
	for p := Code(0); p <= MaxCode; p++ {
		c, ok := GlyphCode(p.Glyph())
		if !ok || c != p {
			t.Fatalf("GlyphCode(%c) = 0x%02X,%v, want 0x%02X", p.Glyph(), uint8(c), ok, uint8(p))
		}
	}
	if _, ok := GlyphCode('a'); ok {
		t.Fatalf("'a' is not a braille glyph")
	}
	if _, ok := GlyphCode(0x2840); ok {
		t.Fatalf("eight-dot cells are not supported")
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want Code
		err  bool
	}{
		{in: "124", want: 0x0B},
		{in: "1-2-4", want: 0x0B},
		{in: "421", want: 0x0B},
		{in: "⠋", want: 0x0B},
		{in: "5", want: 0x10},
		{in: "", err: true},
		{in: "17", err: true},
		{in: "a", err: true},
		{in: "⠀", err: true},
	}
	for _, tt := range tests {
		got, err := ParseCell(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Fatalf("ParseCell(%q) = 0x%02X,%v", tt.in, uint8(got), err)
		}
	}
}
