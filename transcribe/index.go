package transcribe

import (
	"fmt"

	"github.com/derekparker/trie"
)

// sequenceIndex maps rune sequences to replacement text and answers
// longest-prefix queries.
type sequenceIndex interface {
	Add(key, value string) bool
	Longest(s []rune, start int) (value string, length int)
	Stats() indexStats
}

type indexStats struct {
	Backend     string
	Keys        int
	MaxKeyRunes int
}

func (s indexStats) String() string {
	return fmt.Sprintf("%s: %d keys, longest %d", s.Backend, s.Keys, s.MaxKeyRunes)
}

// trieIndex is a sequenceIndex on a prefix tree.
type trieIndex struct {
	trie   *trie.Trie
	keys   int
	maxKey int
}

func newTrieIndex() *trieIndex {
	return &trieIndex{trie: trie.New()}
}

// Add stores key unless it is already present; the first value wins.
func (ix *trieIndex) Add(key, value string) bool {
	if key == "" {
		return false
	}
	if _, found := ix.trie.Find(key); found {
		return false
	}
	ix.trie.Add(key, value)
	ix.keys++
	if n := len([]rune(key)); n > ix.maxKey {
		ix.maxKey = n
	}
	return true
}

func (ix *trieIndex) Longest(s []rune, start int) (string, int) {
	value, length := "", 0
	for end := start + 1; end <= len(s) && end-start <= ix.maxKey; end++ {
		key := string(s[start:end])
		if node, found := ix.trie.Find(key); found {
			value, length = node.Meta().(string), end-start
		}
		if !ix.trie.HasKeysWithPrefix(key) {
			break
		}
	}
	return value, length
}

func (ix *trieIndex) Stats() indexStats {
	return indexStats{
		Backend:     "trie",
		Keys:        ix.keys,
		MaxKeyRunes: ix.maxKey,
	}
}
