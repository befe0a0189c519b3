package rules

import (
	"regexp"

	"github.com/npillmayer/paliscript/script"
)

// Thai and Lao write the vowels e and o in front of the consonant they
// follow in speech. The tables hold them in logical order.
var (
	thaiVowelAfter  = regexp.MustCompile("([ก-ฮ])([เโ])")
	thaiVowelBefore = regexp.MustCompile("([เโ])([ก-ฮ])")
	laoVowelAfter   = regexp.MustCompile("([ກ-ຮ])([ເໂ])")
	laoVowelBefore  = regexp.MustCompile("([ເໂ])([ກ-ຮ])")
)

var thaiLao = []script.Script{script.Thai, script.Lao}

// ReorderVowels moves e and o in front of their consonant. It panics with
// UnsupportedScriptOperation for scripts other than Thai and Lao.
var ReorderVowels = Rule{
	Name:    "reorder-vowels",
	Scripts: thaiLao,
	Apply: func(text string, s script.Script, _ RenderContext) string {
		switch s {
		case script.Thai:
			return thaiVowelAfter.ReplaceAllString(text, "${2}${1}")
		case script.Lao:
			return laoVowelAfter.ReplaceAllString(text, "${2}${1}")
		}
		panic(UnsupportedScriptOperation{Rule: "reorder-vowels", Script: s})
	},
}

// UnreorderVowels is the inverse of ReorderVowels and panics under the same
// conditions.
var UnreorderVowels = Rule{
	Name:    "unreorder-vowels",
	Scripts: thaiLao,
	Apply: func(text string, s script.Script, _ RenderContext) string {
		switch s {
		case script.Thai:
			return thaiVowelBefore.ReplaceAllString(text, "${2}${1}")
		case script.Lao:
			return laoVowelBefore.ReplaceAllString(text, "${2}${1}")
		}
		panic(UnsupportedScriptOperation{Rule: "unreorder-vowels", Script: s})
	},
}

// Thai Pali fonts such as TH Sarabun New carry glyphs without the lower tail
// for ญ and ฐ in the private use area.
const (
	thaiYoYingNoTail  = '\uF70F'
	thaiThoThanNoTail = '\uF700'
	thaiSaraUe        = '\u0E36' // written for iṃ
)

// BeautifyThai writes iṃ as a single sign and selects the tail-less glyphs
// of ญ and ฐ.
var BeautifyThai = Rule{
	Name:    "thai-glyphs",
	Scripts: []script.Script{script.Thai},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\u0E34\u0E4D", string(thaiSaraUe),
			"ญ", string(thaiYoYingNoTail),
			"ฐ", string(thaiThoThanNoTail),
		)
	},
}

// UnbeautifyThai is the inverse of BeautifyThai. It also replaces ฎ, which is
// often typed in place of ฏ.
var UnbeautifyThai = Rule{
	Name:    "thai-unglyph",
	Scripts: []script.Script{script.Thai},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"ฎ", "ฏ",
			string(thaiSaraUe), "\u0E34\u0E4D",
			string(thaiYoYingNoTail), "ญ",
			string(thaiThoThanNoTail), "ฐ",
		)
	},
}
