/*
Package transcribe converts between kana text and six-dot braille text.

Encoding writes every unit the way a finger-braille session expects to
receive it: a plain cell for a table character, a marker cell followed by a
base cell for converted characters (が => ⠐⠡, 1 => ⠼⠁). Decoding is the
inverse, matching the longest known cell sequence at each position.

Spaces and blank cells (U+2800) are passed through in either direction.
Everything else without a counterpart is copied unchanged and reported as
unresolved.
*/
package transcribe

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/fingerbraille"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("fingerbraille.transcribe")
}

const blankCell = fingerbraille.GlyphBase

// Result is a transcription. Unresolved holds the rune offsets, within the
// input, of every rune which could not be transcribed.
type Result struct {
	Text       string
	Unresolved []int
}

// OK is true if the input has been transcribed completely.
func (r Result) OK() bool {
	return len(r.Unresolved) == 0
}

// Transcriber holds the indexes for one braille table.
type Transcriber struct {
	table   *fingerbraille.Table
	encoder sequenceIndex // kana => glyphs
	decoder sequenceIndex // glyphs => kana
}

// New creates a transcriber for table. A nil table selects the default table.
func New(table *fingerbraille.Table) *Transcriber {
	if table == nil {
		table = fingerbraille.DefaultTable()
	}
	tr := &Transcriber{
		table:   table,
		encoder: newTrieIndex(),
		decoder: newTrieIndex(),
	}
	for _, e := range table.Entries() {
		tr.add(e.Character, e.Code)
	}
	for _, m := range table.Markers() {
		bases := make([]string, 0, len(m.Remap))
		for base := range m.Remap {
			bases = append(bases, base)
		}
		sort.Strings(bases)
		for _, base := range bases {
			converted := m.Remap[base]
			entry, ok := table.LookupCharacter(base)
			if !ok {
				tracer().Debugf("%s: base %q of %q not in table", m.Label, base, converted)
				continue
			}
			tr.add(converted, m.Code, entry.Code)
		}
	}
	tracer().Infof("%s: encoder %s, decoder %s", table.Identifier,
		tr.encoder.Stats(), tr.decoder.Stats())
	return tr
}

func (tr *Transcriber) add(text string, codes ...fingerbraille.Code) {
	glyphs := make([]rune, len(codes))
	for i, c := range codes {
		glyphs[i] = c.Glyph()
	}
	if !tr.encoder.Add(text, string(glyphs)) {
		tracer().Debugf("%q already encoded, skipping %s", text, string(glyphs))
	}
	tr.decoder.Add(string(glyphs), text)
}

// Table returns the braille table of tr.
func (tr *Transcriber) Table() *fingerbraille.Table {
	return tr.table
}

// Encode transcribes kana text to braille.
func (tr *Transcriber) Encode(text string) Result {
	return transcribe([]rune(text), tr.encoder, func(r rune) (rune, bool) {
		if unicode.IsSpace(r) {
			if r == ' ' || r == '　' {
				return blankCell, true
			}
			return r, true
		}
		return r, false
	})
}

// Decode transcribes braille text to kana.
func (tr *Transcriber) Decode(braille string) Result {
	return transcribe([]rune(braille), tr.decoder, func(r rune) (rune, bool) {
		if r == blankCell {
			return ' ', true
		}
		return r, unicode.IsSpace(r)
	})
}

// Chords returns the sequence of cells to chord for text, one per release.
func (tr *Transcriber) Chords(text string) ([]fingerbraille.Code, error) {
	res := tr.Encode(text)
	if !res.OK() {
		r := []rune(text)
		return nil, &UnresolvedError{Input: text, Position: res.Unresolved[0], Rune: r[res.Unresolved[0]]}
	}
	codes := make([]fingerbraille.Code, 0, len(res.Text))
	for _, g := range res.Text {
		if c, ok := fingerbraille.GlyphCode(g); ok && c != 0 {
			codes = append(codes, c)
		}
	}
	return codes, nil
}

// transcribe replaces the longest indexed sequence at each position. Runes
// without an index entry are handed to passThrough.
func transcribe(input []rune, index sequenceIndex, passThrough func(rune) (rune, bool)) Result {
	var out strings.Builder
	var unresolved []int
	for i := 0; i < len(input); {
		if value, n := index.Longest(input, i); n > 0 {
			out.WriteString(value)
			i += n
			continue
		}
		r, ok := passThrough(input[i])
		if !ok {
			unresolved = append(unresolved, i)
		}
		out.WriteRune(r)
		i++
	}
	if len(unresolved) > 0 {
		tracer().Debugf("%d unresolved runes in %q", len(unresolved), string(input))
	}
	return Result{Text: out.String(), Unresolved: unresolved}
}

// UnresolvedError reports a rune without a braille counterpart.
type UnresolvedError struct {
	Input    string
	Position int
	Rune     rune
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("cannot transcribe %q at position %d of %q", e.Rune, e.Position, e.Input)
}
