/*
Package lookup compiles the character tables into longest-match lookup maps
for a pair of scripts and rewrites text with them.

Compile buckets every (from-form → to-form) pair of the tables by the length
of the from-form in runes and orders the buckets longest first. Rewrite scans
a text left to right and at every position emits the replacement of the
longest matching key, or copies one rune if nothing matches. A replacement
may be empty, which elides the source characters.

Rewrite is driven by a Matcher only and knows nothing about scripts. Two
matchers are provided: the bucket maps of a MapSet and a prefix-trie index.
Both produce identical results for the same table.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package lookup

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paliscript.lookup'
func tracer() tracing.Trace {
	return tracing.Select("paliscript.lookup")
}

// Matcher finds the longest key starting at rune position i of text.
// offsets holds the byte offsets of the runes of text, plus len(text).
// n is the number of runes matched, 0 if no key matches.
type Matcher interface {
	Match(text string, offsets []int, i int) (n int, replacement string)
}

// Stats reports the size of a compiled matcher.
type Stats struct {
	Backend   string
	Keys      int
	Buckets   int // distinct key lengths
	MaxKeyLen int // in runes
}

// runeByteOffsets returns byte offsets for each rune start plus len(s).
func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}
