package fingerbraille

import (
	"context"
	"time"
)

// Handlers are the observers of a session. All of them are optional and are
// called on the goroutine driving the session.
type Handlers struct {
	OnEmit       func(text string)    // a finished character
	OnDisplay    func(d Decoded)      // live preview of the held chord; zero Decoded clears
	OnModeChange func(mode InputMode) // confirmed mode transitions
}

// SessionOptions configures a decoding session.
type SessionOptions struct {
	Layout      Layout         // nil selects DefaultLayout
	QuietWindow time.Duration  // non-positive selects DefaultQuietWindow
	Fallback    FallbackPolicy // marker not applicable to character
	Handlers    Handlers
}

// Session is one decoding session. It owns the held key set, the stabilizer,
// the pending chord and the input mode.
//
// A session is not safe for concurrent use. Either drive it from a single
// goroutine through Press, Release and Advance, or hand it a channel of key
// events with Run.
type Session struct {
	held       KeySet
	stabilizer *Stabilizer
	resolver   *Resolver
	modes      *ModeManager
	output     *OutputProcessor
	pending    *Decoded
	display    Decoded
	handlers   Handlers
}

// NewSession creates a session in mode Kana decoding with table.
func NewSession(table *Table, opts SessionOptions) *Session {
	s := &Session{
		held:       KeySet{},
		stabilizer: NewStabilizer(opts.QuietWindow),
		resolver:   NewResolver(table, opts.Layout),
		handlers:   opts.Handlers,
	}
	s.modes = NewModeManager(opts.Handlers.OnModeChange)
	s.output = NewOutputProcessor(table, s.modes, opts.Handlers.OnEmit, opts.Fallback)
	return s
}

// Press puts key k down at time at. Keys outside of the layout and repeated
// presses of a held key are ignored.
func (s *Session) Press(k Key, at time.Time) {
	s.Advance(at)
	if !s.resolver.Layout().Covers(k) || !s.held.Add(k) {
		return
	}
	s.stabilizer.Update(s.held, at)
}

// Release lifts key k at time at. Lifting the last held key finishes the chord.
func (s *Session) Release(k Key, at time.Time) {
	s.Advance(at)
	if !s.held.Remove(k) {
		return
	}
	if released := s.stabilizer.Update(s.held, at); released {
		s.release()
	}
}

// Apply processes a key event.
func (s *Session) Apply(e KeyEvent) {
	if e.Down {
		s.Press(e.Key, e.At)
	} else {
		s.Release(e.Key, e.At)
	}
}

// Advance moves the session's clock to now, decoding the held chord if it has
// been stable for the quiet window.
func (s *Session) Advance(now time.Time) {
	if chord, ok := s.stabilizer.Fire(now); ok {
		s.stabilized(chord)
	}
}

// Deadline returns the time at which Advance will decode the held chord.
func (s *Session) Deadline() (time.Time, bool) {
	return s.stabilizer.Deadline()
}

func (s *Session) stabilized(chord KeySet) {
	d := s.resolver.Resolve(chord)
	preview := s.modes.Observe(d)
	tracer().Debugf("chord %s => %s %q %s, preview mode %s", chord, d.Kind, d.Character, d.Dots, preview)
	s.pending = &d
	s.show(d)
}

func (s *Session) release() {
	if s.pending == nil {
		s.show(Decoded{})
		return
	}
	pending := *s.pending
	preserved := s.output.Process(pending)
	tracer().Debugf("released %q, mode %s (preserved=%v)", pending.Character, s.modes.Mode(), preserved)
	s.pending = nil
	s.show(Decoded{})
}

// show updates the display, skipping repeated clears.
func (s *Session) show(d Decoded) {
	if d.IsZero() && s.display.IsZero() {
		return
	}
	s.display = d
	if s.handlers.OnDisplay != nil {
		s.handlers.OnDisplay(d)
	}
}

// Mode returns the confirmed input mode.
func (s *Session) Mode() InputMode {
	return s.modes.Mode()
}

// PreviewMode returns the mode the session enters if the held chord is released.
func (s *Session) PreviewMode() InputMode {
	if s.pending == nil {
		return s.modes.Mode()
	}
	return s.modes.Preview()
}

// Pending returns the decoded chord waiting for release.
func (s *Session) Pending() (Decoded, bool) {
	if s.pending == nil {
		return Decoded{}, false
	}
	return *s.pending, true
}

// Display returns the last display update.
func (s *Session) Display() Decoded {
	return s.display
}

// Layout returns the key layout of the session.
func (s *Session) Layout() Layout {
	return s.resolver.Layout()
}

// Held returns a copy of the held key set.
func (s *Session) Held() KeySet {
	return s.held.Clone()
}

// Reset drops held keys and pending data and returns to mode Kana.
func (s *Session) Reset() {
	s.held = KeySet{}
	s.stabilizer.Reset()
	s.pending = nil
	s.show(Decoded{})
	s.modes.Reset()
}

// Run processes key events until events is closed or ctx is cancelled. Events
// with a zero timestamp are stamped on arrival. The stabilizer's deadline is
// served by a timer; all state changes happen on the calling goroutine.
func (s *Session) Run(ctx context.Context, events <-chan KeyEvent) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	for {
		var expired <-chan time.Time
		if deadline, ok := s.Deadline(); ok {
			timer.Reset(time.Until(deadline))
			expired = timer.C
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if e.At.IsZero() {
				e.At = time.Now()
			}
			s.Apply(e)
		case <-expired:
			s.Advance(time.Now())
		}
	}
}
