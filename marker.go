package fingerbraille

import (
	"fmt"
	"strings"
)

// InputMode is the state of the prefix-marker state machine.
// Kana is the initial mode; all other modes are waiting modes, entered by
// confirming a marker chord and left with the next release cycle.
type InputMode int

const (
	Kana InputMode = iota
	Suuji
	Alphabet
	Dakuon
	Handakuon
	Youon
	YouDakuon
	YouHandakuon
	GouYouon
)

var modeNames = [...]string{
	Kana:         "Kana",
	Suuji:        "Suuji",
	Alphabet:     "Alphabet",
	Dakuon:       "Dakuon",
	Handakuon:    "Handakuon",
	Youon:        "Youon",
	YouDakuon:    "YouDakuon",
	YouHandakuon: "YouHandakuon",
	GouYouon:     "GouYouon",
}

func (m InputMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("InputMode(%d)", int(m))
	}
	return modeNames[m]
}

// IsWaiting is true for every mode other than Kana.
func (m InputMode) IsWaiting() bool {
	return m != Kana
}

// ParseInputMode finds a mode by name, ignoring case.
func ParseInputMode(name string) (InputMode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, name) {
			return InputMode(m), nil
		}
	}
	return Kana, fmt.Errorf("unknown input mode %q", name)
}

// Modes lists all input modes, Kana first.
func Modes() []InputMode {
	modes := make([]InputMode, len(modeNames))
	for i := range modes {
		modes[i] = InputMode(i)
	}
	return modes
}

// Marker is a prefix cell. It does not stand for a character by itself but
// modifies the next confirmed character.
//
// Remap is consulted while the marker's waiting mode is active:
//
//	Dakuon: "か" => "が"
type Marker struct {
	Label string            // display label, e.g. "濁音符"
	Code  Code              // the marker cell
	Mode  InputMode         // waiting mode entered when the marker is confirmed
	Remap map[string]string // base character => converted character
}

// Dots returns the dots of the marker cell.
func (m *Marker) Dots() DotCode {
	return m.Code.Dots()
}

// Glyph returns the braille glyph of the marker cell.
func (m *Marker) Glyph() rune {
	return m.Code.Glyph()
}

// Convert applies the marker to a base character.
func (m *Marker) Convert(base string) (string, bool) {
	if m == nil || m.Remap == nil {
		return "", false
	}
	c, ok := m.Remap[base]
	return c, ok
}

func (m *Marker) String() string {
	return fmt.Sprintf("%s(%s %s → %s)", m.Label, m.Code, m.Dots(), m.Mode)
}
