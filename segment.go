package paliscript

import (
	"github.com/npillmayer/paliscript/rules"
	"github.com/npillmayer/paliscript/script"
)

// Run is a maximal piece of text whose code points all belong to the same
// script.
type Run struct {
	Script script.Script
	Text   string
}

// Segment strips zero-width joiners and non-joiners from text, composes it
// to NFC and splits the result into runs. Code points no script claims form
// runs of script Unknown. Concatenating the texts of all runs yields the
// stripped and composed text.
//
// Composing first keeps a decomposed letter such as "a\u0304" in one run;
// the combining marks alone are classified as Cyrillic.
func Segment(text string) []Run {
	text = rules.StripJoiners.Apply(text, script.Unknown, rules.RenderPlain)
	text = rules.Compose.Apply(text, script.Unknown, rules.RenderPlain)
	reg := script.DefaultRegistry()
	var runs []Run
	start, current := 0, script.Unknown
	for i, r := range text {
		s := reg.Classify(r)
		if s != current && i > start {
			runs = appendRun(runs, current, text[start:i])
			start = i
		}
		current = s
	}
	if start < len(text) {
		runs = appendRun(runs, current, text[start:])
	}
	return runs
}

func appendRun(runs []Run, s script.Script, text string) []Run {
	tracer().Debugf("run %d: %v %q", len(runs), s, text)
	return append(runs, Run{Script: s, Text: text})
}
