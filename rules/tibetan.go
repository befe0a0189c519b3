package rules

import (
	"strings"

	"github.com/npillmayer/paliscript/script"
)

const (
	tibetanHalant         = '\u0F84'
	tibetanConsonantFirst = '\u0F40' // ka
	tibetanSubjoinedFirst = '\u0F90' // subjoined ka
	tibetanSubjoinable    = 40       // ka ... a
)

var tibetanExceptions = []string{
	// ya and va take the fixed-form subjoined letter
	"ཡ\u0FB1", "ཡ\u0FBB", // yya
	"ཝ\u0FAD", "ཝ\u0FBA", // vva
	// jjha, yha and vha keep a visible halant
	"ཛ\u0FAC", "ཛ\u0F84ཛྷ",
	"ཡ\u0FB7", "ཡ\u0F84ཧ",
	"ཝ\u0FB7", "ཝ\u0F84ཧ",
}

// BeautifyTibetan writes Tibetan shads for dandas and stacks consonant
// clusters: a halant followed by a consonant becomes the subjoined form of
// that consonant. Three clusters keep a visible halant.
var BeautifyTibetan = Rule{
	Name:    "tibetan-stacks",
	Scripts: []script.Script{script.Tibetan},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		text = replaceEach(text, "।", "\u0F0D", "॥", "\u0F0E")
		text = subjoin(text)
		return replaceEach(text, tibetanExceptions...)
	},
}

func subjoin(text string) string {
	if !strings.ContainsRune(text, tibetanHalant) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	pending := false // a halant has been read but not written
	for _, r := range text {
		if pending {
			pending = false
			if d := r - tibetanConsonantFirst; d >= 0 && d < tibetanSubjoinable {
				b.WriteRune(tibetanSubjoinedFirst + d)
				continue
			}
			b.WriteRune(tibetanHalant)
		}
		if r == tibetanHalant {
			pending = true
			continue
		}
		b.WriteRune(r)
	}
	if pending {
		b.WriteRune(tibetanHalant)
	}
	return b.String()
}

// UnbeautifyTibetan leaves the text unchanged. Stacked consonants are not
// split again, so Tibetan input containing stacks does not convert back to
// the hub script losslessly.
var UnbeautifyTibetan = Rule{
	Name:    "tibetan-unstack",
	Scripts: []script.Script{script.Tibetan},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return text
	},
}
