package rules

import (
	"regexp"
	"unicode/utf8"

	"github.com/npillmayer/paliscript/chartab"
	"github.com/npillmayer/paliscript/lookup"
	"github.com/npillmayer/paliscript/script"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Roman and Cyrillic Pali write the inherent vowel a explicitly, where the
// hub script leaves it implicit. The rules below convert between the two
// conventions on hub text.

type vowelInsertion struct {
	bare, final *regexp.Regexp
	a           string
}

func newVowelInsertion(a string) vowelInsertion {
	return vowelInsertion{
		bare:  regexp.MustCompile(`([\x{0D9A}-\x{0DC6}])([^\x{0DCF}-\x{0DDF}\x{0DCA}` + a + `])`),
		final: regexp.MustCompile(`([\x{0D9A}-\x{0DC6}])$`),
		a:     a,
	}
}

var (
	romanA    = newVowelInsertion("a")
	cyrillicA = newVowelInsertion("а")
)

// InsertA writes the inherent vowel after every hub consonant not followed
// by a vowel sign, the virama or an explicit a. It is applied to hub text
// before the table conversion into Roman or Cyrillic and panics with
// UnsupportedScriptOperation for other scripts.
var InsertA = Rule{
	Name:    "insert-a",
	Scripts: []script.Script{script.Roman, script.Cyrillic},
	Apply: func(text string, s script.Script, _ RenderContext) string {
		var ins vowelInsertion
		switch s {
		case script.Roman:
			ins = romanA
		case script.Cyrillic:
			ins = cyrillicA
		default:
			panic(UnsupportedScriptOperation{Rule: "insert-a", Script: s})
		}
		repl := "${1}" + ins.a + "${2}"
		// matches do not overlap, so a second pass catches consonant pairs
		text = ins.bare.ReplaceAllString(text, repl)
		text = ins.bare.ReplaceAllString(text, repl)
		return ins.final.ReplaceAllString(text, "${1}"+ins.a)
	},
}

var (
	hubBareConsonant   = regexp.MustCompile(`([\x{0D9A}-\x{0DC6}])([^අආඉඊඋඌඑඔ\x{0DCA}])`)
	hubConsonantVowel  = regexp.MustCompile(`[\x{0D9A}-\x{0DC6}][අආඉඊඋඌඑඔ]`)
	hubViramaInsertion = "${1}\u0DCA${2}"
)

// RemoveA is the inverse of InsertA, applied to hub text after the table
// conversion from Roman or Cyrillic. A consonant followed by anything but a
// vowel gets a virama, and an independent vowel after a consonant becomes
// the dependent vowel sign. A consonant at the very end of the text is left
// bare.
//
// ConvertAny applies the rule to each run separately, so the end of a run
// counts as the end of the text. A bare Roman consonant directly before
// punctuation or a digit therefore gets no virama there ("buddh." reads as
// "buddha."), while the same text converted as a whole does.
var RemoveA = Rule{
	Name:    "remove-a",
	Scripts: []script.Script{script.Roman, script.Cyrillic},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		text = hubBareConsonant.ReplaceAllString(text, hubViramaInsertion)
		text = hubBareConsonant.ReplaceAllString(text, hubViramaInsertion)
		return hubConsonantVowel.ReplaceAllStringFunc(text, func(cv string) string {
			_, size := utf8.DecodeRuneInString(cv)
			iv, _ := utf8.DecodeRuneInString(cv[size:])
			sign, _ := chartab.DependentSign(iv)
			return cv[:size] + sign
		})
	},
}

// FoldNasal maps ṁ, a variant spelling of the niggahita, to the hub
// niggahita. It runs after the table conversion from Roman.
var FoldNasal = Rule{
	Name:    "fold-nasal",
	Scripts: []script.Script{script.Roman},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text, "ṁ", string(chartab.HubNiggahita))
	},
}

// Lowercase folds Roman input to lower case. Pali has no case distinction,
// but some sources capitalize.
var Lowercase = Rule{
	Name:    "lowercase",
	Scripts: []script.Script{script.Roman},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return cases.Lower(language.Und).String(text) // a Caser is not safe for sharing
	},
}

// Compose brings input into Unicode normalization form C, the form of the
// table keys.
var Compose = Rule{
	Name: "compose",
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return norm.NFC.String(text)
	},
}

// Table returns a rule rewriting text with matcher m.
func Table(name string, m lookup.Matcher) Rule {
	return Rule{
		Name: name,
		Apply: func(text string, _ script.Script, _ RenderContext) string {
			return lookup.Rewrite(text, m)
		},
	}
}
