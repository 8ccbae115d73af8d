/*
Package fingerbraille decodes six-key chorded keyboard input ("finger braille",
指点字) into Japanese kana, punctuation and prefix-marker symbols.

Six keys of a regular keyboard stand for the six dots of a braille cell. By default
the left hand rests on f, d, s (dots 1, 2, 3) and the right hand on j, k, l
(dots 4, 5, 6). Pressing keys together forms a chord, i.e. one braille cell.
Japanese braille writes voiced, semi-voiced and contracted sounds with a prefix
cell (a marker) followed by the cell of the base syllable:

	⠐ ⠡   濁音符 + か  =>  が
	⠈ ⠡   拗音符 + か  =>  きゃ

Decoding runs in three stages. A Stabilizer debounces the set of held keys, as the
keys of a chord never land at exactly the same instant. A Resolver looks up the
stabilized chord in a Table of cells and markers. On release of all keys the
output processor combines the pending chord with the current InputMode and emits
the finished character, or enters a waiting mode if the chord was a marker.

A Session wires these parts together and owns all mutable state. It may be driven
synchronously (Press, Release, Advance) or run as an event loop consuming KeyEvents.

Braille data follows the tables of https://github.com/uhyo/tenji (MIT License).

Further Reading

	https://www.naiiv.net/braille/?kana-tenji
	https://en.wikipedia.org/wiki/Japanese_Braille
	https://www.unicode.org/charts/PDF/U2800.pdf

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package fingerbraille

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingerbraille'
func tracer() tracing.Trace {
	return tracing.Select("fingerbraille")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
