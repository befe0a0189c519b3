package lookup

import (
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/paliscript/chartab"
	"github.com/npillmayer/paliscript/script"
)

// Bucket holds all keys of one length.
type Bucket struct {
	Len  int // key length in runes
	Keys map[string]string
}

// MapSet is the compiled lookup table for converting from one script to
// another. It is immutable after Compile and safe for concurrent use.
type MapSet struct {
	From, To script.Script
	Buckets  []Bucket // longest keys first
}

// Compile builds the map set for converting from script from to script to,
// using consonants, specials and, if includeVowels is set, dependent vowel
// signs.
func Compile(from, to script.Script, includeVowels bool) *MapSet {
	return CompileRows(chartab.Rows(includeVowels), from, to)
}

// CompileRows builds a map set from arbitrary table rows. Rows without a
// from-form, or with an empty one, are skipped. For duplicate from-forms the
// later row wins.
func CompileRows(rows []chartab.Entry, from, to script.Script) *MapSet {
	ms := &MapSet{From: from, To: to}
	byLen := make(map[int]map[string]string)
	for _, e := range rows {
		key, ok := e.Form(from)
		if !ok || key == "" {
			continue
		}
		val, _ := e.Form(to) // an absent target renders as nothing
		n := utf8.RuneCountInString(key)
		if byLen[n] == nil {
			byLen[n] = make(map[string]string)
		}
		byLen[n][key] = val
	}
	for n, keys := range byLen {
		ms.Buckets = append(ms.Buckets, Bucket{Len: n, Keys: keys})
	}
	sort.Slice(ms.Buckets, func(i, j int) bool {
		return ms.Buckets[i].Len > ms.Buckets[j].Len
	})
	return ms
}

// Match implements Matcher, trying buckets longest first.
func (ms *MapSet) Match(text string, offsets []int, i int) (int, string) {
	remaining := len(offsets) - 1 - i
	for _, b := range ms.Buckets {
		if b.Len > remaining {
			continue
		}
		if val, ok := b.Keys[text[offsets[i]:offsets[i+b.Len]]]; ok {
			return b.Len, val
		}
	}
	return 0, ""
}

// Stats returns size information for ms.
func (ms *MapSet) Stats() Stats {
	st := Stats{Backend: "buckets", Buckets: len(ms.Buckets)}
	for _, b := range ms.Buckets {
		st.Keys += len(b.Keys)
		st.MaxKeyLen = max(st.MaxKeyLen, b.Len)
	}
	return st
}
