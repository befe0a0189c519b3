package rules

import (
	"regexp"

	"github.com/npillmayer/paliscript/script"
)

// al-lakuna before yayanna or rayanna
var sinhalaYansaya = regexp.MustCompile("\u0DCA([යර])")

// BeautifySinhala requests the yansaya and rakaransaya conjunct shapes by
// putting a zero-width joiner between al-lakuna and a following ya or ra.
var BeautifySinhala = Rule{
	Name:    "sinhala-conjuncts",
	Scripts: []script.Script{script.Sinhala},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return sinhalaYansaya.ReplaceAllString(text, "\u0DCA\u200D${1}")
	},
}

// UnbeautifySinhala folds long e and o, which are sometimes typed by
// mistake, to the short vowels Pali uses.
var UnbeautifySinhala = Rule{
	Name:    "sinhala-short-vowels",
	Scripts: []script.Script{script.Sinhala},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text, "ඒ", "එ", "ඕ", "ඔ", "\u0DDA", "\u0DD9", "\u0DDD", "\u0DDC")
	},
}
