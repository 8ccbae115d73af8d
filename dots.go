package fingerbraille

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Braille cells have six dots, numbered top-down in two columns:
//
//	1 ● ● 4
//	2 ● ● 5
//	3 ● ● 6
const (
	MinDot = 1
	MaxDot = 6
)

// GlyphBase is the code point of the empty braille cell. Unicode lays out the
// braille block such that the dot pattern of a cell is its offset from GlyphBase.
const GlyphBase rune = 0x2800

// MaxCode is the largest packed code of a six-dot cell.
const MaxCode Code = 0x3F

// DotCode is a set of raised dots, ascending and without duplicates.
type DotCode []int

// Code is a packed dot code: bit n-1 is set iff dot n is raised.
// Example:
//
//	dots [1,2,4] => 0x0B.
type Code uint8

// Pack computes the packed code for a set of dots. Values outside of 1…6 are
// ignored, duplicates do not matter.
func Pack(dots []int) Code {
	var c Code
	for _, d := range dots {
		if d < MinDot || d > MaxDot {
			continue
		}
		c |= 1 << (d - 1)
	}
	return c
}

// Normalize returns dots sorted, de-duplicated and clipped to the range 1…6.
func Normalize(dots []int) DotCode {
	return Pack(dots).Dots()
}

// Dots unpacks c into its dot numbers. The result is ascending by construction.
func (c Code) Dots() DotCode {
	dots := make(DotCode, 0, MaxDot)
	for d := MinDot; d <= MaxDot; d++ {
		if c&(1<<(d-1)) != 0 {
			dots = append(dots, d)
		}
	}
	return dots
}

// Glyph returns the Unicode braille character for c.
func (c Code) Glyph() rune {
	return GlyphBase + rune(c&MaxCode)
}

// String returns the braille glyph for c.
func (c Code) String() string {
	return string(c.Glyph())
}

// Has reports whether dot d is raised in c.
func (c Code) Has(d int) bool {
	if d < MinDot || d > MaxDot {
		return false
	}
	return c&(1<<(d-1)) != 0
}

// GlyphCode is the inverse of Code.Glyph. It reports false for runes outside of
// the six-dot part of the braille block (U+2800…U+283F).
func GlyphCode(r rune) (Code, bool) {
	if r < GlyphBase || r > GlyphBase+rune(MaxCode) {
		return 0, false
	}
	return Code(r - GlyphBase), true
}

// Code packs the dots of d.
func (d DotCode) Code() Code {
	return Pack(d)
}

// Equal reports whether d and other hold the same dots.
func (d DotCode) Equal(other DotCode) bool {
	return slices.Equal(d, other)
}

// String renders d in braille notation, e.g. "1-2-4".
func (d DotCode) String() string {
	parts := make([]string, len(d))
	for i, dot := range d {
		parts[i] = strconv.Itoa(dot)
	}
	return strings.Join(parts, "-")
}

// ParseCell reads a cell written as dot numbers ("124", "1-2-4") or as a
// single braille glyph ("⠋").
func ParseCell(s string) (Code, error) {
	if r := []rune(s); len(r) == 1 {
		if c, ok := GlyphCode(r[0]); ok {
			if c == 0 {
				return 0, fmt.Errorf("empty braille cell %q", s)
			}
			return c, nil
		}
	}
	var c Code
	for _, ch := range s {
		if ch == '-' {
			continue
		}
		d := int(ch - '0')
		if d < MinDot || d > MaxDot {
			return 0, fmt.Errorf("invalid dot %q in cell %q", ch, s)
		}
		c |= 1 << (d - 1)
	}
	if c == 0 {
		return 0, fmt.Errorf("cell %q has no dots", s)
	}
	return c, nil
}
