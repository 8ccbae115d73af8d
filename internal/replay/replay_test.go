package replay

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fingerbraille"
)

const voicedKa = `# か, then 濁音符 + か
0     +f +l
150   -f -l
300   +k
450   -k
600ms +f +l
750ms -f -l
`

func TestParse(t *testing.T) {
	script, err := Parse(strings.NewReader(voicedKa))
	if err != nil {
		t.Fatal(err)
	}
	if len(script) != 10 {
		t.Fatalf("expected 10 steps, have %d", len(script))
	}
	want := Step{Offset: 600 * time.Millisecond, Key: "f", Down: true}
	if diff := cmp.Diff(want, script[6]); diff != "" {
		t.Fatalf("step mismatch (-want +got):\n%s", diff)
	}
	if script.Duration() != 750*time.Millisecond {
		t.Fatalf("expected duration 750ms, have %v", script.Duration())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "no events", src: "100\n"},
		{name: "bad offset", src: "soon +f\n"},
		{name: "negative offset", src: "-5 +f\n"},
		{name: "decreasing", src: "100 +f\n50 -f\n"},
		{name: "bad event", src: "0 f\n"},
	}
	for _, tt := range tests {
		if _, err := Parse(strings.NewReader(tt.src)); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestWriteToParses(t *testing.T) {
	script := FromCodes(nil, []fingerbraille.Code{0x21, 0x10}, 150*time.Millisecond)
	var b strings.Builder
	if _, err := script.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	want := "0 +f +l\n150 -f -l\n300 +k\n450 -k\n"
	if b.String() != want {
		t.Fatalf("script text mismatch: got %q, want %q", b.String(), want)
	}
	again, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(script, again); diff != "" {
		t.Fatalf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestPlay(t *testing.T) {
	script, err := Parse(strings.NewReader(voicedKa))
	if err != nil {
		t.Fatal(err)
	}
	var emitted []string
	session := fingerbraille.NewSession(fingerbraille.DefaultTable(), fingerbraille.SessionOptions{
		Handlers: fingerbraille.Handlers{
			OnEmit: func(text string) { emitted = append(emitted, text) },
		},
	})
	Play(session, script, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if diff := cmp.Diff([]string{"か", "が"}, emitted); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
