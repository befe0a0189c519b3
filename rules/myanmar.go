package rules

import (
	"github.com/npillmayer/paliscript/script"
)

// Myanmar orthography after Unicode 5.1, see Unicode Technical Note #11.
var myanmarBeautify = []subst{
	sub(`[,;]`, "၊"),
	sub("[…।॥]+", "။"),
	sub("ဉ\u1039ဉ", "ည"),
	sub("သ\u1039သ", "ဿ"),                       // great sa
	sub("င\u1039([က-ဠ])", "င\u103A\u1039${1}"), // kinzi
	sub("\u1039ယ", "\u103B"),                   // yapin
	sub("\u1039ရ", "\u103C"),                   // yayit
	sub("\u1039ဝ", "\u103D"),                   // wahswe
	sub("\u1039ဟ", "\u103E"),                   // hahto
	// tall aa after round letters, except in a few clusters
	sub("([ခဂငဒပဝ]\u1031?)\u102C", "${1}\u102B"),
	sub("(က\u1039ခ|န\u1039ဒ|ပ\u1039ပ|မ\u1039ပ)(\u1031?)\u102B", "${1}${2}\u102C"),
	sub("(ဒ\u1039ဓ|ဒ\u103D)(\u1031?)\u102C", "${1}${2}\u102B"),
}

// BeautifyMyanmar forms kinzi, the medial consonants and tall aa, and
// writes Myanmar punctuation.
var BeautifyMyanmar = Rule{
	Name:    "myanmar-ligatures",
	Scripts: []script.Script{script.Myanmar},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return substitute(text, myanmarBeautify)
	},
}

// UnbeautifyMyanmar is the inverse of BeautifyMyanmar. It also spells
// saṃgha with a stacked ṅa, which is how the word is indexed.
var UnbeautifyMyanmar = Rule{
	Name:    "myanmar-unligate",
	Scripts: []script.Script{script.Myanmar},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\u102B", "\u102C",
			"\u103E", "\u1039ဟ",
			"\u103D", "\u1039ဝ",
			"\u103C", "\u1039ရ",
			"\u103B", "\u1039ယ",
			"\u103A", "", // kinzi
			"ဿ", "သ\u1039သ",
			"ည", "ဉ\u1039ဉ",
			"သ\u1036ဃ", "သင\u1039ဃ",
			"၊", ",",
			"။", ".",
		)
	},
}

var shanBeautify = []subst{
	sub(`[,;]`, "၊"),
	sub("[…।॥]+", "။"),
	sub("ၺ\u1039ၺ", "ည"),
	sub("သ\u1039သ", "ဿ"),
	sub("([ၵၶၷငၸၹၺတထၻၼပၽၿမယရလဝသႁ]\u1031?)\u102C", "${1}\u102B"),
}

// BeautifyShan writes Shan punctuation, ligatures and tall aa.
var BeautifyShan = Rule{
	Name:    "shan-ligatures",
	Scripts: []script.Script{script.Shan},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return substitute(text, shanBeautify)
	},
}

// UnbeautifyShan is the inverse of BeautifyShan.
var UnbeautifyShan = Rule{
	Name:    "shan-unligate",
	Scripts: []script.Script{script.Shan},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\u102B", "\u102C",
			"ဿ", "သ\u1039သ",
			"ည", "ၺ\u1039ၺ",
			"၊", ",",
			"။", ".",
		)
	},
}
