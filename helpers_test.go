package fingerbraille

import (
	"io"
	"time"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Millisecond)
}

type sliceEntryReader struct {
	cells []Cell
	index int
}

func (r *sliceEntryReader) Next() (string, Code, error) {
	if r.index >= len(r.cells) {
		return "", 0, io.EOF
	}
	cell := r.cells[r.index]
	r.index++
	return cell.Character, cell.Code, nil
}

type sliceRemapReader struct {
	pairs [][2]string
	index int
}

func (r *sliceRemapReader) Next() (string, string, error) {
	if r.index >= len(r.pairs) {
		return "", "", io.EOF
	}
	pair := r.pairs[r.index]
	r.index++
	return pair[0], pair[1], nil
}

// recorder collects everything a session reports.
type recorder struct {
	emitted  []string
	displays []Decoded
	modes    []InputMode
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnEmit:       func(text string) { r.emitted = append(r.emitted, text) },
		OnDisplay:    func(d Decoded) { r.displays = append(r.displays, d) },
		OnModeChange: func(mode InputMode) { r.modes = append(r.modes, mode) },
	}
}

func newTestSession(rec *recorder) *Session {
	return NewSession(DefaultTable(), SessionOptions{Handlers: rec.handlers()})
}

// typeCode chords the keys of code at time at: all keys go down together, are
// held past the quiet window and are released together. It returns a time
// after the chord.
func typeCode(s *Session, at time.Time, code Code) time.Time {
	keys := s.resolver.Layout().KeysFor(code)
	for _, k := range keys {
		s.Press(k, at)
	}
	hold := at.Add(s.stabilizer.QuietWindow() + 50*time.Millisecond)
	s.Advance(hold)
	for _, k := range keys {
		s.Release(k, hold)
	}
	return hold.Add(100 * time.Millisecond)
}

func typeCharacter(s *Session, at time.Time, character string) time.Time {
	entry, ok := s.resolver.Table().LookupCharacter(character)
	if !ok {
		panic("no cell for " + character)
	}
	return typeCode(s, at, entry.Code)
}

func typeMarker(s *Session, at time.Time, mode InputMode) time.Time {
	m, ok := s.resolver.Table().Marker(mode)
	if !ok {
		panic("no marker for " + mode.String())
	}
	return typeCode(s, at, m.Code)
}
