package lookup

import (
	"github.com/derekparker/trie"
	"github.com/npillmayer/paliscript/script"
)

// TrieIndex is a Matcher backed by a prefix trie. It walks the text rune by
// rune as long as some key has the current prefix and remembers the longest
// complete key seen.
type TrieIndex struct {
	from, to  script.Script
	keys      *trie.Trie
	count     int
	maxKeyLen int
}

// NewTrieIndex builds a trie index holding the same keys as ms.
func NewTrieIndex(ms *MapSet) *TrieIndex {
	ti := &TrieIndex{
		from: ms.From,
		to:   ms.To,
		keys: trie.New(),
	}
	for _, b := range ms.Buckets {
		for key, val := range b.Keys {
			ti.keys.Add(key, val)
			ti.count++
		}
		ti.maxKeyLen = max(ti.maxKeyLen, b.Len)
	}
	tracer().Debugf("trie index %v→%v: %d keys, max key length %d", ti.from, ti.to, ti.count, ti.maxKeyLen)
	return ti
}

// Match implements Matcher.
func (ti *TrieIndex) Match(text string, offsets []int, i int) (int, string) {
	n, repl := 0, ""
	limit := min(ti.maxKeyLen, len(offsets)-1-i)
	for k := 1; k <= limit; k++ {
		prefix := text[offsets[i]:offsets[i+k]]
		if !ti.keys.HasKeysWithPrefix(prefix) {
			break
		}
		if node, ok := ti.keys.Find(prefix); ok {
			n, repl = k, node.Meta().(string)
		}
	}
	return n, repl
}

// Stats returns size information for ti.
func (ti *TrieIndex) Stats() Stats {
	return Stats{Backend: "trie", Keys: ti.count, MaxKeyLen: ti.maxKeyLen}
}
