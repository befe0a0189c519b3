package rules

import (
	"regexp"
	"unicode/utf8"

	"github.com/npillmayer/paliscript/script"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	zwnj = '\u200C'
	zwj  = '\u200D'
)

var joiners = runes.Remove(runes.Predicate(IsJoiner))

// IsJoiner reports whether r is a zero-width joiner or non-joiner.
func IsJoiner(r rune) bool {
	return r == zwj || r == zwnj
}

// StripJoiners removes zero-width joiners and non-joiners. Joiners are a
// matter of display and never part of a table key.
var StripJoiners = Rule{
	Name: "strip-joiners",
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return stripJoiners(text)
	},
}

func stripJoiners(text string) string {
	out, _, err := transform.String(joiners, text)
	if err != nil {
		tracer().Errorf("removing joiners: %v", err)
		return text
	}
	return out
}

var (
	spaceBeforePunct = regexp.MustCompile(`[\s\p{Zs}]+([,!;?.])`)
	spaceRun         = regexp.MustCompile(`[\s\p{Zs}]{2,}`)
)

// Punctuation is the shared beautify pass of most scripts. It turns dandas
// into Western punctuation and tidies up blanks:
//
//   - centered text drops double dandas,
//   - verses turn single dandas into semicolons, double dandas into periods,
//   - an abbreviation sign before an ellipsis is dropped, others become '·',
//   - remaining dandas become periods,
//   - blanks before , ! ; ? . are removed and other runs of blanks shrink
//     to their last character.
var Punctuation = Rule{
	Name:  "punctuation",
	Apply: punctuation,
}

func punctuation(text string, _ script.Script, rc RenderContext) string {
	if rc == RenderCentered {
		text = replaceEach(text, "॥", "")
	} else if rc.IsGatha() {
		text = replaceEach(text, "।", ";", "॥", ".")
	}
	text = replaceEach(text,
		"॰…", "…",
		"॰", "·",
		"।", ".",
		"॥", ".",
	)
	text = spaceBeforePunct.ReplaceAllString(text, "${1}")
	return spaceRun.ReplaceAllStringFunc(text, func(blanks string) string {
		_, size := utf8.DecodeLastRuneInString(blanks)
		return blanks[len(blanks)-size:]
	})
}
