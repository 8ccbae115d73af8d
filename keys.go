package fingerbraille

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Key identifies a physical key. Keys are abstract: the collaborator capturing
// keyboard events decides on naming, the Layout maps names to dots.
type Key string

// KeySet is the set of keys currently held down.
type KeySet map[Key]struct{}

// NewKeySet creates a set holding keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts k. It reports false if k has already been present.
func (s KeySet) Add(k Key) bool {
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Remove deletes k. It reports false if k has not been present.
func (s KeySet) Remove(k Key) bool {
	if _, ok := s[k]; !ok {
		return false
	}
	delete(s, k)
	return true
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Clone returns an independent copy of s.
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Equal reports whether s and other hold the same keys.
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Keys returns the held keys in lexical order.
func (s KeySet) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s KeySet) String() string {
	keys := s.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Layout maps keys to braille dots.
type Layout map[Key]int

// DefaultLayout puts dots 1-2-3 under the left index, middle and ring finger
// and dots 4-5-6 under the right ones, on the home row of a QWERTY keyboard.
func DefaultLayout() Layout {
	return Layout{
		"f": 1, "d": 2, "s": 3,
		"j": 4, "k": 5, "l": 6,
	}
}

// Validate checks that every dot 1…6 is assigned to exactly one key.
func (l Layout) Validate() error {
	var seen [MaxDot + 1]Key
	for k, d := range l {
		if d < MinDot || d > MaxDot {
			return fmt.Errorf("key %q mapped to invalid dot %d", k, d)
		}
		if seen[d] != "" {
			return fmt.Errorf("dot %d mapped by keys %q and %q", d, seen[d], k)
		}
		seen[d] = k
	}
	for d := MinDot; d <= MaxDot; d++ {
		if seen[d] == "" {
			return fmt.Errorf("no key for dot %d", d)
		}
	}
	return nil
}

// Dots converts held keys to their dots. Keys outside of the layout are ignored.
func (l Layout) Dots(held KeySet) DotCode {
	return l.Code(held).Dots()
}

// Code converts held keys to a packed code.
func (l Layout) Code(held KeySet) Code {
	var c Code
	for k := range held {
		if d, ok := l[k]; ok {
			c |= Pack([]int{d})
		}
	}
	return c
}

// KeysFor returns the keys forming the chord of code, ordered by dot.
func (l Layout) KeysFor(code Code) []Key {
	keys := make([]Key, 0, MaxDot)
	for d := MinDot; d <= MaxDot; d++ {
		if !code.Has(d) {
			continue
		}
		for k, kd := range l {
			if kd == d {
				keys = append(keys, k)
				break
			}
		}
	}
	return keys
}

// Covers reports whether k is part of the layout.
func (l Layout) Covers(k Key) bool {
	_, ok := l[k]
	return ok
}

// KeyEvent is a single key press or release.
type KeyEvent struct {
	Key  Key
	Down bool
	At   time.Time
}

func (e KeyEvent) String() string {
	sign := "-"
	if e.Down {
		sign = "+"
	}
	return sign + string(e.Key)
}
