package fingerbraille

import (
	"fmt"
	"io"
	"sync"
)

// Cell is a character together with its packed braille code.
type Cell struct {
	Character string
	Code      Code
}

// CellList is an in-memory source of cells.
type CellList []Cell

// Reader returns an EntryReader streaming the cells of l.
func (l CellList) Reader() EntryReader {
	return &cellListReader{cells: l}
}

type cellListReader struct {
	cells CellList
	index int
}

func (r *cellListReader) Next() (string, Code, error) {
	if r.index >= len(r.cells) {
		return "", 0, io.EOF
	}
	cell := r.cells[r.index]
	r.index++
	return cell.Character, cell.Code, nil
}

// KanaCells lists the plain syllables (清音) of Japanese braille.
var KanaCells = CellList{
	{"あ", 0x01}, {"い", 0x03}, {"う", 0x09}, {"え", 0x0B}, {"お", 0x0A},
	{"か", 0x21}, {"き", 0x23}, {"く", 0x29}, {"け", 0x2B}, {"こ", 0x2A},
	{"さ", 0x31}, {"し", 0x33}, {"す", 0x39}, {"せ", 0x3B}, {"そ", 0x3A},
	{"た", 0x15}, {"ち", 0x17}, {"つ", 0x1D}, {"て", 0x1F}, {"と", 0x1E},
	{"な", 0x05}, {"に", 0x07}, {"ぬ", 0x0D}, {"ね", 0x0F}, {"の", 0x0E},
	{"は", 0x25}, {"ひ", 0x27}, {"ふ", 0x2D}, {"へ", 0x2F}, {"ほ", 0x2E},
	{"ま", 0x35}, {"み", 0x37}, {"む", 0x3D}, {"め", 0x3F}, {"も", 0x3E},
	{"や", 0x0C}, {"ゆ", 0x2C}, {"よ", 0x1C},
	{"ら", 0x11}, {"り", 0x13}, {"る", 0x19}, {"れ", 0x1B}, {"ろ", 0x1A},
	{"わ", 0x04}, {"ゐ", 0x06}, {"ゑ", 0x16}, {"を", 0x14},
	{"ん", 0x34}, {"っ", 0x02}, {"ー", 0x12},
}

// SymbolCells lists single-cell punctuation. Symbols sharing a cell with a marker
// (、 with 外字符, ？ with 合拗音符) cannot be chorded and are left out.
var SymbolCells = CellList{
	{"。", 0x32},
	{"「", 0x24},
	{"（", 0x36},
	{"ー", 0x12},
}

// Marker labels.
const (
	LabelDakuon       = "濁音符"
	LabelHandakuon    = "半濁音符"
	LabelYouon        = "拗音符"
	LabelYouDakuon    = "拗濁音符"
	LabelYouHandakuon = "拗半濁音符"
	LabelGouYouon     = "合拗音符"
	LabelSuuji        = "数符"
	LabelAlphabet     = "外字符"
)

// StandardMarkers lists the prefix cells of Japanese braille, without their
// conversion tables.
var StandardMarkers = []Marker{
	{Label: LabelDakuon, Code: 0x10, Mode: Dakuon},
	{Label: LabelHandakuon, Code: 0x20, Mode: Handakuon},
	{Label: LabelYouon, Code: 0x08, Mode: Youon},
	{Label: LabelYouDakuon, Code: 0x18, Mode: YouDakuon},
	{Label: LabelYouHandakuon, Code: 0x28, Mode: YouHandakuon},
	{Label: LabelGouYouon, Code: 0x22, Mode: GouYouon},
	{Label: LabelSuuji, Code: 0x3C, Mode: Suuji},
	{Label: LabelAlphabet, Code: 0x30, Mode: Alphabet},
}

// numeralCodes holds the cells of the digits 0…9, following 数符.
var numeralCodes = [10]Code{0x1A, 0x01, 0x03, 0x09, 0x19, 0x11, 0x0B, 0x1B, 0x13, 0x0A}

// letterCodes holds the cells of the letters a…z, following 外字符.
var letterCodes = [26]Code{
	0x01, 0x03, 0x09, 0x19, 0x11, 0x0B, 0x1B, 0x13, 0x0A, 0x1A,
	0x05, 0x07, 0x0D, 0x1D, 0x15, 0x0F, 0x1F, 0x17, 0x0E, 0x1E,
	0x25, 0x27, 0x3A, 0x2D, 0x3D, 0x35,
}

// Contracted sounds are written as marker + the cell of a plain syllable of the
// same consonant row: 拗音符 + か => きゃ, 拗音符 + く => きゅ, …
// Rows map the head syllable to the base cells, in order of the small kana of
// the suffix string.
const youonSuffixes = "ゃゅょぇ"
const gouyouonSuffixes = "ぁぃぇぉ"

var youonRows = map[string]string{
	"き": "かくこけ",
	"し": "さすそせ",
	"ち": "たつとて",
	"に": "なぬのね",
	"ひ": "はふほへ",
	"み": "まむもめ",
	"り": "らるろれ",
}

var youDakuonRows = map[string]string{
	"ぎ": "かくこけ",
	"じ": "さすそせ",
	"ぢ": "たつとて",
	"び": "はふほへ",
}

var youHandakuonRows = map[string]string{
	"ぴ": "はふほへ",
}

var gouyouonRows = map[string]string{
	"う": "あいえお",
	"く": "かきけこ",
	"つ": "たちてと",
	"ふ": "はひへほ",
}

var dakuonRemap = zipRemap(
	"かきくけこさしすせそたちつてとはひふへほう",
	"がぎぐげござじずぜぞだぢづでどばびぶべぼゔ")

var handakuonRemap = zipRemap("はひふへほ", "ぱぴぷぺぽ")

// zipRemap pairs the runes of base and converted.
func zipRemap(base, converted string) map[string]string {
	b, c := []rune(base), []rune(converted)
	assert(len(b) == len(c), "conversion strings differ in length")
	remap := make(map[string]string, len(b))
	for i := range b {
		remap[string(b[i])] = string(c[i])
	}
	return remap
}

// expandRows builds a conversion table from contracted-sound rows.
func expandRows(rows map[string]string, suffixes string) map[string]string {
	suffix := []rune(suffixes)
	remap := make(map[string]string, len(rows)*len(suffix))
	for head, bases := range rows {
		for i, base := range []rune(bases) {
			assert(i < len(suffix), "contracted-sound row longer than suffix list")
			remap[string(base)] = head + string(suffix[i])
		}
	}
	return remap
}

// codeRemap maps the base character of each code to the output at the same position.
func codeRemap(t *Table, codes []Code, output func(int) string) (map[string]string, error) {
	remap := make(map[string]string, len(codes))
	for i, code := range codes {
		entry, ok := t.Lookup(code)
		if !ok {
			return nil, fmt.Errorf("no cell for %s", code.Dots())
		}
		remap[entry.Character] = output(i)
	}
	return remap, nil
}

// NewDefaultTable builds the standard table: plain syllables merged with
// symbols, all standard markers and their conversion tables.
func NewDefaultTable() (*Table, error) {
	t, err := LoadTable("japanese", KanaCells.Reader(), SymbolCells.Reader())
	if err != nil {
		return nil, err
	}
	if err = AddStandardMarkers(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddStandardMarkers registers all standard markers with t, together with their
// conversion tables. Numeral and letter conversions are derived from the cells
// of t.
func AddStandardMarkers(t *Table) error {
	for _, m := range StandardMarkers {
		if err := t.AddMarker(m); err != nil {
			return err
		}
	}
	numerals, err := codeRemap(t, numeralCodes[:], func(i int) string {
		return string(rune('0' + i))
	})
	if err != nil {
		return fmt.Errorf("numerals: %w", err)
	}
	letters, err := codeRemap(t, letterCodes[:], func(i int) string {
		return string(rune('a' + i))
	})
	if err != nil {
		return fmt.Errorf("letters: %w", err)
	}
	remaps := map[InputMode]map[string]string{
		Dakuon:       dakuonRemap,
		Handakuon:    handakuonRemap,
		Youon:        expandRows(youonRows, youonSuffixes),
		YouDakuon:    expandRows(youDakuonRows, youonSuffixes),
		YouHandakuon: expandRows(youHandakuonRows, youonSuffixes),
		GouYouon:     expandRows(gouyouonRows, gouyouonSuffixes),
		Suuji:        numerals,
		Alphabet:     letters,
	}
	for mode, remap := range remaps {
		if err := t.LoadRemapList(mode, remap); err != nil {
			return err
		}
	}
	return nil
}

var defaultTable *Table
var defaultTableOnce sync.Once

// DefaultTable returns the shared standard table. It is built on first use;
// defects of the static data are fatal. Callers must not modify the shared
// table, NewDefaultTable returns a private copy.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t, err := NewDefaultTable()
		if err != nil {
			tracer().Errorf("default table: %v", err)
		}
		assert(err == nil, "invalid static braille table")
		defaultTable = t
	})
	return defaultTable
}
