package fingerbraille

import (
	"fmt"
	"strings"
)

// FallbackPolicy decides what to emit if a waiting mode's marker cannot be
// applied to the confirmed character, e.g. 濁音符 followed by な.
type FallbackPolicy int

const (
	FallbackNone FallbackPolicy = iota // emit nothing
	FallbackBase                       // emit the unconverted base character
)

func (p FallbackPolicy) String() string {
	switch p {
	case FallbackNone:
		return "none"
	case FallbackBase:
		return "base"
	}
	return fmt.Sprintf("FallbackPolicy(%d)", int(p))
}

// ParseFallbackPolicy reads "none" or "base".
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return FallbackNone, nil
	case "base":
		return FallbackBase, nil
	}
	return FallbackNone, fmt.Errorf("unknown fallback policy %q", s)
}

// OutputProcessor finishes a chord when all keys have been released.
type OutputProcessor struct {
	modes    *ModeManager
	table    *Table
	emit     func(string)
	fallback FallbackPolicy
}

// NewOutputProcessor creates a processor writing finished characters to emit.
func NewOutputProcessor(table *Table, modes *ModeManager, emit func(string), fallback FallbackPolicy) *OutputProcessor {
	assert(table != nil && modes != nil, "output processor needs a table and a mode manager")
	if emit == nil {
		emit = func(string) {}
	}
	return &OutputProcessor{
		modes:    modes,
		table:    table,
		emit:     emit,
		fallback: fallback,
	}
}

// Process consumes the pending chord. It is called exactly once per full
// release with pending data, and reports whether the mode has been preserved.
//
// Decision table, first match wins:
//
//	waiting for M, pending is M itself    => keep waiting, true
//	waiting for M, pending is a character => emit M.Remap[c], mode Kana
//	Kana, pending is marker M             => wait for M
//	Kana, pending is a character          => emit it
//	otherwise                             => emit nothing, mode Kana
func (op *OutputProcessor) Process(pending Decoded) bool {
	mode := op.modes.Mode()
	if mode.IsWaiting() {
		marker, _ := op.table.Marker(mode)
		if pending.Kind == KindMarker && pending.Marker != nil && pending.Marker.Mode == mode {
			tracer().Debugf("%s repeated, still waiting", pending.Character)
			return true
		}
		if pending.Kind == KindCharacter {
			if converted, ok := marker.Convert(pending.Character); ok {
				op.output(converted)
			} else if op.fallback == FallbackBase {
				op.output(pending.Character)
			} else {
				tracer().Debugf("%s cannot be applied to %q, dropped", mode, pending.Character)
			}
		}
		op.modes.Set(Kana)
		return false
	}
	switch pending.Kind {
	case KindMarker:
		op.modes.Set(pending.Marker.Mode)
	case KindCharacter:
		op.output(pending.Character)
	default:
		tracer().Debugf("nothing to emit for %s %s", pending.Kind, pending.Dots)
	}
	return false
}

func (op *OutputProcessor) output(s string) {
	tracer().Debugf("emit %q", s)
	op.emit(s)
}
