package fingerbraille

import "fmt"

const absentSlot = 0xFF
const codeSlots = int(MaxCode) + 1

// codeIndex maps packed codes to entry positions, directly indexed by code.
// Each slot holds the position of a table entry or absentSlot.
type codeIndex struct {
	slots [codeSlots]uint8
	used  int
}

func newCodeIndex() *codeIndex {
	ix := &codeIndex{}
	for i := range ix.slots {
		ix.slots[i] = absentSlot
	}
	return ix
}

// Put stores entry position pos for code c. A code may be claimed only once.
func (ix *codeIndex) Put(c Code, pos int) error {
	if c > MaxCode {
		return fmt.Errorf("code out of range (0x00..0x3F): 0x%02X", uint8(c))
	}
	if pos < 0 || pos >= absentSlot {
		return fmt.Errorf("entry position out of range: %d", pos)
	}
	if ix.slots[c] != absentSlot {
		return fmt.Errorf("code 0x%02X already taken by entry %d", uint8(c), ix.slots[c])
	}
	ix.slots[c] = uint8(pos)
	ix.used++
	return nil
}

// Lookup returns the entry position stored for code c.
func (ix *codeIndex) Lookup(c Code) (int, bool) {
	if c > MaxCode {
		return 0, false
	}
	pos := ix.slots[c]
	if pos == absentSlot {
		return 0, false
	}
	return int(pos), true
}

// Used returns the number of occupied slots.
func (ix *codeIndex) Used() int {
	return ix.used
}

// FillRatio is the share of the 64 possible cells which carry an entry.
func (ix *codeIndex) FillRatio() float64 {
	return float64(ix.used) / float64(codeSlots)
}
