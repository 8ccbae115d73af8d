package tabremaps

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fingerbraille"
)

const src = `\message{remaps}
\cells{
か 16
}
\remap{Dakuon
か が
}
\remap{Handakuon
は ぱ
}
\remap{Dakuon
さ ざ % second block
}`

func TestReaderSelectsMode(t *testing.T) {
	r := NewReader(strings.NewReader(src), fingerbraille.Dakuon)
	var got [][2]string
	for {
		base, converted, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, [2]string{base, converted})
	}
	want := [][2]string{{"か", "が"}, {"さ", "ざ"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("conversions mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unclosed", src: "\\remap{Dakuon\nか が\n"},
		{name: "missing conversion", src: "\\remap{Dakuon\nか\n}"},
		{name: "unknown mode", src: "\\remap{Katakana\nか が\n}"},
	}
	for _, tt := range tests {
		r := NewReader(strings.NewReader(tt.src), fingerbraille.Dakuon)
		var err error
		for err == nil {
			_, _, err = r.Next()
		}
		if err == io.EOF {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestMarkerReader(t *testing.T) {
	r := NewMarkerReader(strings.NewReader(`\cells{
あ 1
}
\markers{
濁音符 5 Dakuon
数符 ⠼ suuji
}`))
	var got []fingerbraille.Marker
	for {
		m, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, m)
	}
	want := []fingerbraille.Marker{
		{Label: "濁音符", Code: 0x10, Mode: fingerbraille.Dakuon},
		{Label: "数符", Code: 0x3C, Mode: fingerbraille.Suuji},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRemaps(t *testing.T) {
	table, err := fingerbraille.LoadTable("remaps", fingerbraille.KanaCells.Reader())
	if err != nil {
		t.Fatal(err)
	}
	if err = table.AddMarker(fingerbraille.Marker{Label: "半濁音符", Code: 0x20, Mode: fingerbraille.Handakuon}); err != nil {
		t.Fatal(err)
	}
	if err = LoadRemaps(table, fingerbraille.Handakuon, strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	m, _ := table.Marker(fingerbraille.Handakuon)
	if c, ok := m.Convert("は"); !ok || c != "ぱ" {
		t.Fatalf("は should convert to ぱ, converts to %q", c)
	}
}
