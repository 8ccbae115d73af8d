package fingerbraille

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func character(c string) Decoded {
	e, _ := DefaultTable().LookupCharacter(c)
	return Decoded{Kind: KindCharacter, Character: c, Glyph: e.Glyph, Dots: e.Dots}
}

func marker(mode InputMode) Decoded {
	m, _ := DefaultTable().Marker(mode)
	return Decoded{Kind: KindMarker, Character: m.Label, Glyph: m.Glyph(), Dots: m.Dots(), Marker: m}
}

func TestProcessDecisionTable(t *testing.T) {
	unknown := Decoded{Kind: KindUnrecognized, Character: Unrecognized, Glyph: 0x2838, Dots: DotCode{4, 5, 6}}
	tests := []struct {
		name      string
		mode      InputMode
		pending   Decoded
		emitted   []string
		mode2     InputMode
		preserved bool
	}{
		{name: "same marker keeps waiting", mode: Dakuon, pending: marker(Dakuon), mode2: Dakuon, preserved: true},
		{name: "convert character", mode: Dakuon, pending: character("か"), emitted: []string{"が"}, mode2: Kana},
		{name: "contracted sound", mode: Youon, pending: character("く"), emitted: []string{"きゅ"}, mode2: Kana},
		{name: "numeral", mode: Suuji, pending: character("い"), emitted: []string{"2"}, mode2: Kana},
		{name: "not convertible", mode: Dakuon, pending: character("な"), mode2: Kana},
		{name: "foreign marker", mode: Dakuon, pending: marker(Handakuon), mode2: Kana},
		{name: "unrecognized while waiting", mode: Suuji, pending: unknown, mode2: Kana},
		{name: "marker from kana", mode: Kana, pending: marker(Youon), mode2: Youon},
		{name: "plain character", mode: Kana, pending: character("あ"), emitted: []string{"あ"}, mode2: Kana},
		{name: "unrecognized", mode: Kana, pending: unknown, mode2: Kana},
	}
	for _, tt := range tests {
		var emitted []string
		modes := NewModeManager(nil)
		modes.Set(tt.mode)
		op := NewOutputProcessor(DefaultTable(), modes, func(s string) {
			emitted = append(emitted, s)
		}, FallbackNone)
		preserved := op.Process(tt.pending)
		if diff := cmp.Diff(tt.emitted, emitted); diff != "" {
			t.Fatalf("%s: output mismatch (-want +got):\n%s", tt.name, diff)
		}
		if modes.Mode() != tt.mode2 || preserved != tt.preserved {
			t.Fatalf("%s: got mode %s preserved=%v, want %s preserved=%v",
				tt.name, modes.Mode(), preserved, tt.mode2, tt.preserved)
		}
	}
}

func TestProcessFallbackBase(t *testing.T) {
	var emitted []string
	modes := NewModeManager(nil)
	modes.Set(Dakuon)
	op := NewOutputProcessor(DefaultTable(), modes, func(s string) {
		emitted = append(emitted, s)
	}, FallbackBase)
	op.Process(character("な"))
	if diff := cmp.Diff([]string{"な"}, emitted); diff != "" {
		t.Fatalf("fallback output mismatch (-want +got):\n%s", diff)
	}
	if modes.Mode() != Kana {
		t.Fatalf("expected mode Kana after fallback, have %s", modes.Mode())
	}
}

func TestParseFallbackPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want FallbackPolicy
		err  bool
	}{
		{in: "", want: FallbackNone},
		{in: "none", want: FallbackNone},
		{in: "Base", want: FallbackBase},
		{in: "drop", err: true},
	}
	for _, tt := range tests {
		got, err := ParseFallbackPolicy(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Fatalf("ParseFallbackPolicy(%q) = %s,%v", tt.in, got, err)
		}
	}
}
