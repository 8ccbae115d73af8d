package fingerbraille

// ModeManager holds the input mode of a session.
//
// A marker chord is visible twice: while it is still held, Observe records the
// marker's waiting mode as a provisional preview for displays; when the keys are
// released, the output processor confirms the transition by calling Set.
// ModeManager is the only writer of the confirmed mode.
type ModeManager struct {
	mode     InputMode
	preview  InputMode
	onChange func(InputMode)
}

// NewModeManager creates a manager in mode Kana. onChange may be nil.
func NewModeManager(onChange func(InputMode)) *ModeManager {
	return &ModeManager{
		mode:     Kana,
		preview:  Kana,
		onChange: onChange,
	}
}

// Mode returns the confirmed input mode.
func (mm *ModeManager) Mode() InputMode {
	return mm.mode
}

// Preview returns the mode the session will be in if the currently held chord
// is released now.
func (mm *ModeManager) Preview() InputMode {
	return mm.preview
}

// Set confirms a mode. Observers are notified on actual changes only.
func (mm *ModeManager) Set(mode InputMode) {
	mm.preview = mode
	if mode == mm.mode {
		return
	}
	tracer().Debugf("input mode %s → %s", mm.mode, mode)
	mm.mode = mode
	if mm.onChange != nil {
		mm.onChange(mode)
	}
}

// Observe updates the preview for a freshly stabilized chord and returns it.
// Only a marker chord confirmed from Kana, or a waiting mode's own marker,
// leads to a waiting mode.
func (mm *ModeManager) Observe(d Decoded) InputMode {
	mm.preview = Kana
	if d.Kind == KindMarker && (mm.mode == Kana || mm.mode == d.Marker.Mode) {
		mm.preview = d.Marker.Mode
	}
	return mm.preview
}

// Reset returns to mode Kana.
func (mm *ModeManager) Reset() {
	mm.Set(Kana)
}
