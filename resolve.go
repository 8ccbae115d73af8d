package fingerbraille

// Unrecognized is the character reported for chords without a table cell.
const Unrecognized = "不明"

// Kind classifies a decoded chord.
type Kind int

const (
	KindEmpty        Kind = iota // no dots held
	KindCharacter                // a table cell
	KindMarker                   // a prefix marker
	KindUnrecognized             // dots without a table cell
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCharacter:
		return "character"
	case KindMarker:
		return "marker"
	case KindUnrecognized:
		return "unrecognized"
	}
	return "Kind(?)"
}

// Decoded is the decoding result for a chord. It is the payload of display
// updates and the pending data held until release.
//
// For markers, Character carries the marker label.
type Decoded struct {
	Kind      Kind
	Character string
	Glyph     rune
	Dots      DotCode
	Marker    *Marker // set for KindMarker
}

// IsZero reports whether d is the cleared (empty) result.
func (d Decoded) IsZero() bool {
	return d.Kind == KindEmpty && d.Character == "" && len(d.Dots) == 0
}

// GlyphString returns the glyph as a string, or "" for the cleared result.
func (d Decoded) GlyphString() string {
	if d.Kind == KindEmpty {
		return ""
	}
	return string(d.Glyph)
}

// Resolver looks up held chords in a braille table.
type Resolver struct {
	table  *Table
	layout Layout
}

// NewResolver creates a resolver for table. A nil layout selects DefaultLayout.
func NewResolver(table *Table, layout Layout) *Resolver {
	if layout == nil {
		layout = DefaultLayout()
	}
	assert(table != nil, "resolver needs a table")
	return &Resolver{table: table, layout: layout}
}

// Layout returns the key layout of r.
func (r *Resolver) Layout() Layout {
	return r.layout
}

// Table returns the braille table of r.
func (r *Resolver) Table() *Table {
	return r.table
}

// Resolve decodes the held keys. Markers take precedence over table cells;
// a chord without either yields KindUnrecognized carrying the raw dots, so
// there is always a glyph to show for what is held.
func (r *Resolver) Resolve(held KeySet) Decoded {
	code := r.layout.Code(held)
	if code == 0 {
		return Decoded{Kind: KindEmpty}
	}
	for _, m := range r.table.Markers() {
		if r.IsExactMatch(held, m.Code) {
			return Decoded{
				Kind:      KindMarker,
				Character: m.Label,
				Glyph:     m.Glyph(),
				Dots:      m.Dots(),
				Marker:    m,
			}
		}
	}
	if entry, ok := r.table.Lookup(code); ok {
		return Decoded{
			Kind:      KindCharacter,
			Character: entry.Character,
			Glyph:     entry.Glyph,
			Dots:      entry.Dots,
		}
	}
	return Decoded{
		Kind:      KindUnrecognized,
		Character: Unrecognized,
		Glyph:     code.Glyph(),
		Dots:      code.Dots(),
	}
}

// IsExactMatch reports whether the held keys form exactly the chord of code,
// i.e. set equality of dots, not a subset test.
func (r *Resolver) IsExactMatch(held KeySet, code Code) bool {
	return r.layout.Code(held) == code
}
