package fingerbraille

import "time"

// DefaultQuietWindow is the time a chord has to stay unchanged before it is
// decoded.
const DefaultQuietWindow = 100 * time.Millisecond

// Stabilizer debounces the set of held keys.
//
// The keys of a chord never go down in the same instant. Decoding every
// intermediate key set would read a three-key chord three times, twice against
// partial (wrong) dots. The stabilizer therefore reports a held set only after
// it has stayed unchanged for the quiet window. Releasing all keys is reported
// immediately.
//
// The stabilizer owns a single logical timer, represented by its deadline. Any
// change of the held set cancels and re-arms it. Callers map the deadline onto
// a real timer and call Fire when it expires.
type Stabilizer struct {
	quiet    time.Duration
	held     KeySet
	armed    bool
	deadline time.Time
	chord    KeySet // last stabilized chord, nil if none
}

// NewStabilizer creates a stabilizer. A non-positive quiet window selects
// DefaultQuietWindow.
func NewStabilizer(quiet time.Duration) *Stabilizer {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Stabilizer{
		quiet: quiet,
		held:  KeySet{},
	}
}

// QuietWindow returns the debounce interval.
func (s *Stabilizer) QuietWindow() time.Duration {
	return s.quiet
}

// Update tells the stabilizer about the current held set at time now.
// It reports released=true if no key is held any more; in this case the timer
// is cancelled and there is no stabilized chord. An unchanged held set, e.g.
// from key repeat, leaves the timer running.
func (s *Stabilizer) Update(held KeySet, now time.Time) (released bool) {
	if len(held) == 0 {
		s.held = KeySet{}
		s.armed = false
		s.chord = nil
		return true
	}
	if held.Equal(s.held) {
		return false
	}
	s.held = held.Clone()
	s.chord = nil
	s.armed = true
	s.deadline = now.Add(s.quiet)
	return false
}

// Deadline returns the expiry time of the pending timer, if any.
func (s *Stabilizer) Deadline() (time.Time, bool) {
	return s.deadline, s.armed
}

// Fire checks the timer at time now. If it has expired, the held set becomes
// the stabilized chord and is returned. Every distinct held set is returned at
// most once.
func (s *Stabilizer) Fire(now time.Time) (KeySet, bool) {
	if !s.armed || now.Before(s.deadline) {
		return nil, false
	}
	s.armed = false
	s.chord = s.held.Clone()
	return s.chord.Clone(), true
}

// Chord returns the current stabilized chord, or nil during the quiet window
// and after release.
func (s *Stabilizer) Chord() KeySet {
	if s.chord == nil {
		return nil
	}
	return s.chord.Clone()
}

// Reset cancels the timer and forgets all held keys.
func (s *Stabilizer) Reset() {
	s.held = KeySet{}
	s.armed = false
	s.chord = nil
}
