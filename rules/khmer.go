package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/paliscript/script"
)

const (
	khmerCoeng  = '\u17D2'
	khmerViriam = '\u17D1'
)

func isKhmerConsonant(r rune) bool { return r >= 'ក' && r <= 'អ' }

// BeautifyKhmer writes viriam for a word-final coeng, i.e. one that is not
// followed by a consonant.
var BeautifyKhmer = Rule{
	Name:    "khmer-viriam",
	Scripts: []script.Script{script.Khmer},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		if !strings.ContainsRune(text, khmerCoeng) {
			return text
		}
		var b strings.Builder
		b.Grow(len(text))
		for i, r := range text {
			if r == khmerCoeng {
				next, _ := utf8.DecodeRuneInString(text[i+utf8.RuneLen(r):])
				if !isKhmerConsonant(next) {
					r = khmerViriam
				}
			}
			b.WriteRune(r)
		}
		return b.String()
	},
}

// UnbeautifyKhmer splits the precomposed iṃ sign and turns viriam back
// into coeng.
var UnbeautifyKhmer = Rule{
	Name:    "khmer-unviriam",
	Scripts: []script.Script{script.Khmer},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\u17B9", "\u17B7\u17C6",
			string(khmerViriam), string(khmerCoeng),
		)
	},
}
