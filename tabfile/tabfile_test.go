package tabfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fingerbraille"
)

func mustLoadFixture(t *testing.T, file string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", file))
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", file, err)
	}
	return data
}

func TestLoadTableJapaneseFixture(t *testing.T) {
	data := mustLoadFixture(t, "japanese.tab")
	table, err := LoadTable("japanese", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	builtin := fingerbraille.DefaultTable()
	if table.Len() != builtin.Len() {
		t.Fatalf("expected %d cells, have %d", builtin.Len(), table.Len())
	}
	for _, e := range builtin.Entries() {
		got, ok := table.LookupCharacter(e.Character)
		if !ok || got.Code != e.Code {
			t.Fatalf("%q should be at %s, is at %s", e.Character, e.Dots, got.Dots)
		}
	}
	tests := []struct {
		mode fingerbraille.InputMode
		base string
		want string
	}{
		{mode: fingerbraille.Dakuon, base: "て", want: "で"},
		{mode: fingerbraille.Youon, base: "ま", want: "みゃ"},
		{mode: fingerbraille.Suuji, base: "ら", want: "5"},
	}
	for _, tt := range tests {
		m, ok := table.Marker(tt.mode)
		if !ok {
			t.Fatalf("standard marker for %s missing", tt.mode)
		}
		if got, _ := m.Convert(tt.base); got != tt.want {
			t.Fatalf("%s(%s): got %q, want %q", tt.mode, tt.base, got, tt.want)
		}
	}
}

func TestLoadFileCustomMarkers(t *testing.T) {
	table, err := LoadFile(filepath.Join("..", "testdata", "custom.tab"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Identifier != "table: custom" {
		t.Fatalf("unexpected identifier %q", table.Identifier)
	}
	if n := len(table.Markers()); n != 2 {
		t.Fatalf("expected 2 markers, have %d", n)
	}
	if _, ok := table.Marker(fingerbraille.Suuji); ok {
		t.Fatalf("standard markers must not be added to a table with own markers")
	}
	tests := []struct {
		mode fingerbraille.InputMode
		base string
		want string
	}{
		{mode: fingerbraille.Dakuon, base: "さ", want: "ざ"},
		{mode: fingerbraille.Dakuon, base: "あ", want: "ゔぁ"},
		{mode: fingerbraille.Handakuon, base: "は", want: "ぱ"},
	}
	for _, tt := range tests {
		m, _ := table.Marker(tt.mode)
		if got, _ := m.Convert(tt.base); got != tt.want {
			t.Fatalf("%s(%s): got %q, want %q", tt.mode, tt.base, got, tt.want)
		}
	}
}

func TestLoadTableMarkerCollision(t *testing.T) {
	src := "\\cells{\nあ 1\n}\n\\markers{\n濁音符 1 Dakuon\n}\n"
	if _, err := LoadTable("collision", bytes.NewBufferString(src)); err == nil {
		t.Fatalf("expected error for marker on a table cell")
	}
}
