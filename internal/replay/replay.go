/*
Package replay reads and writes key-event scripts and plays them into a
decoding session.

A script lists one or more key events per line, prefixed by their offset from
the start of the script. Offsets are milliseconds or Go durations, and must
not decrease:

	# か, then 濁音符 + か
	0     +f +l
	150   -f -l
	300   +k
	450   -k
	600ms +f +l
	750ms -f -l

Blank lines and lines starting with '#' are ignored.
*/
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/fingerbraille"
)

// Step is a key event at an offset from the start of a script.
type Step struct {
	Offset time.Duration
	Key    fingerbraille.Key
	Down   bool
}

func (st Step) String() string {
	return fmt.Sprintf("%d %s", st.Offset.Milliseconds(), st.event(time.Time{}))
}

func (st Step) event(start time.Time) fingerbraille.KeyEvent {
	return fingerbraille.KeyEvent{Key: st.Key, Down: st.Down, At: start.Add(st.Offset)}
}

// Script is a sequence of key events ordered by offset.
type Script []Step

// Parse reads a script.
func Parse(reader io.Reader) (Script, error) {
	scanner := bufio.NewScanner(reader)
	var script Script
	var last time.Duration
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected offset and key events, have %q", lineno, line)
		}
		offset, err := parseOffset(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if offset < last {
			return nil, fmt.Errorf("line %d: offset %v before %v", lineno, offset, last)
		}
		last = offset
		for _, f := range fields[1:] {
			if len(f) < 2 || (f[0] != '+' && f[0] != '-') {
				return nil, fmt.Errorf("line %d: key event %q must be +key or -key", lineno, f)
			}
			script = append(script, Step{Offset: offset, Key: fingerbraille.Key(f[1:]), Down: f[0] == '+'})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return script, nil
}

func parseOffset(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative offset %d", n)
		}
		return time.Duration(n) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative offset %v", d)
	}
	return d, nil
}

// Duration is the offset of the last step.
func (s Script) Duration() time.Duration {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Offset
}

// Events converts the script to key events starting at start.
func (s Script) Events(start time.Time) []fingerbraille.KeyEvent {
	events := make([]fingerbraille.KeyEvent, len(s))
	for i, st := range s {
		events[i] = st.event(start)
	}
	return events
}

// WriteTo writes s in script format, one line per offset.
func (s Script) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for i, st := range s {
		if i == 0 || st.Offset != s[i-1].Offset {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strconv.FormatInt(st.Offset.Milliseconds(), 10))
		}
		b.WriteByte(' ')
		b.WriteString(st.event(time.Time{}).String())
	}
	if len(s) > 0 {
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// FromCodes writes a script chording codes one after the other. Each chord is
// held for hold and followed by a pause of the same length.
func FromCodes(layout fingerbraille.Layout, codes []fingerbraille.Code, hold time.Duration) Script {
	if layout == nil {
		layout = fingerbraille.DefaultLayout()
	}
	var script Script
	var at time.Duration
	for _, c := range codes {
		keys := layout.KeysFor(c)
		for _, k := range keys {
			script = append(script, Step{Offset: at, Key: k, Down: true})
		}
		at += hold
		for _, k := range keys {
			script = append(script, Step{Offset: at, Key: k})
		}
		at += hold
	}
	return script
}

// Play applies the script to session, starting at start, and advances the
// session's clock past the last event.
func Play(session *fingerbraille.Session, script Script, start time.Time) {
	for _, e := range script.Events(start) {
		session.Apply(e)
	}
	if deadline, ok := session.Deadline(); ok {
		session.Advance(deadline)
	}
}
