/*
Package chartab holds the orthographic inventory of Pali: one row per
consonant, independent vowel, dependent vowel sign and special mark, with one
column per supported script.

The Sinhala column is the canonical key of a row. Every conversion passes
through Sinhala, so a row's Sinhala form must be unique across the whole
table set. A cell may be empty, meaning the script writes nothing for the
row (the virama in Roman and Cyrillic), or absent, meaning the script has
no rendering for it at all.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package chartab

import (
	"fmt"
	"strings"

	"github.com/npillmayer/paliscript/script"
)

// Kind tags a table row.
type Kind uint8

const (
	Consonant Kind = iota
	IndependentVowel
	DependentVowelSign
	SpecialMark // niggahita, visarga, virama, digits
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "consonant"
	case IndependentVowel:
		return "independent vowel"
	case DependentVowelSign:
		return "dependent vowel sign"
	case SpecialMark:
		return "special mark"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ScriptSet is a set of scripts, one bit per table column.
type ScriptSet uint32

// Contains reports whether s is a member of set.
func (set ScriptSet) Contains(s script.Script) bool {
	return s.IsValid() && set&(1<<s) != 0
}

// With returns set plus s.
func (set ScriptSet) With(s script.Script) ScriptSet {
	if !s.IsValid() {
		return set
	}
	return set | 1<<s
}

// Entry is one row of the inventory.
type Entry struct {
	Kind   Kind
	Forms  [script.Count]string
	Absent ScriptSet // scripts without any rendering of this row
}

// Form returns the rendering of e in script s. ok is false if s has no
// rendering, which is different from an empty one.
func (e Entry) Form(s script.Script) (form string, ok bool) {
	if !s.IsValid() || e.Absent.Contains(s) {
		return "", false
	}
	return e.Forms[s], true
}

// Key returns the canonical (Sinhala) form of e.
func (e Entry) Key() string {
	return e.Forms[script.Hub]
}

// Consonants returns the consonant rows.
func Consonants() []Entry { return consonants }

// Specials returns independent vowels followed by special marks.
func Specials() []Entry { return specials }

// Vowels returns the dependent vowel sign rows.
func Vowels() []Entry { return vowels }

// Rows returns consonants, specials and, if includeVowels is set, the
// dependent vowel signs, in this order.
func Rows(includeVowels bool) []Entry {
	n := len(consonants) + len(specials)
	if includeVowels {
		n += len(vowels)
	}
	rows := make([]Entry, 0, n)
	rows = append(rows, consonants...)
	rows = append(rows, specials...)
	if includeVowels {
		rows = append(rows, vowels...)
	}
	return rows
}

// Validate checks that every row has a canonical key and that no two rows
// share one.
func Validate() error {
	return validate(Rows(true))
}

func validate(rows []Entry) error {
	seen := make(map[string]int, len(rows))
	var dups []string
	for i, e := range rows {
		key, ok := e.Form(script.Hub)
		if !ok || key == "" {
			return fmt.Errorf("chartab: row %d (%s) has no canonical form", i, e.Kind)
		}
		if j, found := seen[key]; found {
			dups = append(dups, fmt.Sprintf("%q (rows %d and %d)", key, j, i))
			continue
		}
		seen[key] = i
	}
	if len(dups) > 0 {
		return fmt.Errorf("chartab: duplicate canonical keys: %s", strings.Join(dups, ", "))
	}
	return nil
}
