package fingerbraille

import (
	"fmt"
	"io"
	"sort"
)

// EntryReader yields table cells one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (character string, code Code, err error)
}

// RemapReader yields marker conversions one-by-one.
// It should return io.EOF when the stream is exhausted.
type RemapReader interface {
	Next() (base string, converted string, err error)
}

// Entry is one row of a braille table.
type Entry struct {
	Character string
	Code      Code
	Dots      DotCode
	Glyph     rune
}

func newEntry(character string, code Code) Entry {
	return Entry{
		Character: character,
		Code:      code,
		Dots:      code.Dots(),
		Glyph:     code.Glyph(),
	}
}

// Table is a loaded braille table.
//
// A table contains:
//   - cells mapping a chord to a character, at most one character per code
//   - prefix markers, one per waiting mode, each with its conversion table.
//
// Tables are built once and treated as read-only afterwards.
type Table struct {
	entries    []Entry
	codes      *codeIndex
	characters map[string]int  // character => entry position
	glyphs     map[rune]string // glyph => character, for display
	markers    map[InputMode]*Marker
	Identifier string // Identifies the table
}

// LoadTable compiles cells from one or more streaming sources.
//
// Cells are merged by character: if a later source (or a later line of the same
// source) repeats a character, the later code wins. After merging no two
// characters may share a code; this and malformed cells are reported as errors.
func LoadTable(name string, readers ...EntryReader) (table *Table, err error) {
	order := make([]string, 0, 64)
	merged := make(map[string]Code, 64)
	for _, reader := range readers {
		var character string
		var code Code
		for {
			character, code, err = reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			if character == "" {
				return nil, fmt.Errorf("cell %s has no character", code.Dots())
			}
			if code == 0 || code > MaxCode {
				return nil, fmt.Errorf("cell %q has invalid code 0x%02X", character, uint8(code))
			}
			if _, seen := merged[character]; !seen {
				order = append(order, character)
			}
			merged[character] = code
		}
	}
	table = &Table{
		entries:    make([]Entry, 0, len(order)),
		codes:      newCodeIndex(),
		characters: make(map[string]int, len(order)),
		glyphs:     make(map[rune]string, len(order)),
		markers:    make(map[InputMode]*Marker),
		Identifier: fmt.Sprintf("table: %s", name),
	}
	for _, character := range order {
		code := merged[character]
		pos := len(table.entries)
		if other, found := table.codes.Lookup(code); found {
			err = fmt.Errorf("characters %q and %q share cell %s (%s)",
				table.entries[other].Character, character, code.Dots(), code)
			tracer().Errorf("%s: %v", table.Identifier, err)
			return nil, err
		}
		if err = table.codes.Put(code, pos); err != nil {
			return nil, err
		}
		entry := newEntry(character, code)
		table.entries = append(table.entries, entry)
		table.characters[character] = pos
		table.glyphs[entry.Glyph] = character
	}
	cells, fill := table.Stats()
	tracer().Infof("%s: %d cells, fill=%.2f", table.Identifier, cells, fill)
	return table, nil
}

// AddMarker registers a prefix marker for the waiting mode m.Mode, replacing a
// marker previously registered for the same mode. The marker cell must neither
// be used by a table cell nor by a marker of another mode.
func (t *Table) AddMarker(m Marker) error {
	if !m.Mode.IsWaiting() {
		return fmt.Errorf("marker %q must enter a waiting mode, not %s", m.Label, m.Mode)
	}
	if m.Label == "" {
		return fmt.Errorf("marker for mode %s has no label", m.Mode)
	}
	if m.Code == 0 || m.Code > MaxCode {
		return fmt.Errorf("marker %q has invalid code 0x%02X", m.Label, uint8(m.Code))
	}
	if pos, found := t.codes.Lookup(m.Code); found {
		return fmt.Errorf("marker %q collides with cell %q at %s",
			m.Label, t.entries[pos].Character, m.Code.Dots())
	}
	for mode, other := range t.markers {
		if mode == m.Mode {
			continue
		}
		if other.Code == m.Code {
			return fmt.Errorf("marker %q collides with marker %q at %s", m.Label, other.Label, m.Code.Dots())
		}
		if other.Label == m.Label {
			return fmt.Errorf("marker label %q used twice", m.Label)
		}
	}
	if _, found := t.characters[m.Label]; found {
		return fmt.Errorf("marker label %q is also a table character", m.Label)
	}
	remap := make(map[string]string, len(m.Remap))
	for base, converted := range m.Remap {
		remap[base] = converted
	}
	m.Remap = remap
	t.markers[m.Mode] = &m
	tracer().Debugf("%s: marker %s", t.Identifier, &m)
	return nil
}

// LoadRemap adds conversions from a streaming source to the marker of mode.
func (t *Table) LoadRemap(mode InputMode, reader RemapReader) (err error) {
	marker, ok := t.markers[mode]
	if !ok {
		return fmt.Errorf("no marker registered for mode %s", mode)
	}
	for {
		var base, converted string
		base, converted, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if base == "" || converted == "" {
			return fmt.Errorf("empty conversion %q => %q for mode %s", base, converted, mode)
		}
		marker.Remap[base] = converted
	}
}

// LoadRemapList adds conversions from an in-memory map to the marker of mode.
func (t *Table) LoadRemapList(mode InputMode, remap map[string]string) error {
	marker, ok := t.markers[mode]
	if !ok {
		return fmt.Errorf("no marker registered for mode %s", mode)
	}
	for base, converted := range remap {
		marker.Remap[base] = converted
	}
	return nil
}

// Lookup finds the cell for a packed code.
func (t *Table) Lookup(code Code) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	pos, ok := t.codes.Lookup(code)
	if !ok {
		return Entry{}, false
	}
	return t.entries[pos], true
}

// LookupCharacter finds the cell of a character.
func (t *Table) LookupCharacter(character string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	pos, ok := t.characters[character]
	if !ok {
		return Entry{}, false
	}
	return t.entries[pos], true
}

// CharacterForGlyph is the reverse index from braille glyphs to characters.
func (t *Table) CharacterForGlyph(glyph rune) (string, bool) {
	if t == nil {
		return "", false
	}
	c, ok := t.glyphs[glyph]
	return c, ok
}

// Entries returns all cells in load order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of cells.
func (t *Table) Len() int {
	return len(t.entries)
}

// Marker returns the marker which enters waiting mode mode.
func (t *Table) Marker(mode InputMode) (*Marker, bool) {
	m, ok := t.markers[mode]
	return m, ok
}

// MarkerForCode returns the marker with cell code.
func (t *Table) MarkerForCode(code Code) (*Marker, bool) {
	for _, m := range t.markers {
		if m.Code == code {
			return m, true
		}
	}
	return nil, false
}

// MarkerForLabel returns the marker with display label label.
func (t *Table) MarkerForLabel(label string) (*Marker, bool) {
	for _, m := range t.markers {
		if m.Label == label {
			return m, true
		}
	}
	return nil, false
}

// Markers returns all markers, ordered by mode.
func (t *Table) Markers() []*Marker {
	markers := make([]*Marker, 0, len(t.markers))
	for _, m := range t.markers {
		markers = append(markers, m)
	}
	sort.Slice(markers, func(i, j int) bool {
		return markers[i].Mode < markers[j].Mode
	})
	return markers
}

// Stats reports the number of cells and the share of the 64 codes in use.
func (t *Table) Stats() (cells int, fillRatio float64) {
	if t == nil || t.codes == nil {
		return 0, 0
	}
	return t.codes.Used(), t.codes.FillRatio()
}
