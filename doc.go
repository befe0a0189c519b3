/*
Package paliscript converts Pali text between the 18 scripts it is commonly
written in.

Every conversion is routed through a hub script, Sinhala. Converting into the
hub first un-beautifies the text (undoing ligatures, special glyphs and
punctuation of the source script) and then decodes it with a longest-match
table rewrite. Converting out of the hub encodes with the table of the target
script and beautifies the result. A script converted to itself is returned
unchanged.

	out := paliscript.Convert("buddha", script.Roman, script.Thai)

ConvertAny accepts text mixing several scripts. It splits the text into
maximal runs of code points belonging to one script, brings every run into
the hub script and converts the concatenation into the target script. Runs of
code points no script claims (blanks, digits, punctuation) are copied as is.

All package-level functions use a shared default Engine. Clients needing a
render context for verses, a different formatting mode or the trie-backed
lookup create their own Engine with New or NewFromConfig. Engines are
immutable and safe for concurrent use.

Further Reading

	https://www.unicode.org/charts/ (script code charts)
	https://tipitaka.app (Tipitaka in multiple scripts)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package paliscript

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paliscript'
func tracer() tracing.Trace {
	return tracing.Select("paliscript")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
