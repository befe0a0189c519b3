package rules

import (
	"github.com/npillmayer/paliscript/script"
)

// BeautifyTaiTham forms medial ra and great sa, and writes Tai Tham
// punctuation.
var BeautifyTaiTham = Rule{
	Name:    "taitham-ligatures",
	Scripts: []script.Script{script.TaiTham},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\u1A60ᩁ", "\u1A55", // medial ra
			"ᩈ\u1A60ᩈ", "ᩔ", // great sa
			"।", "᪨",
			"॥", "᪩",
		)
	},
}

// UnbeautifyTaiTham is the inverse of BeautifyTaiTham.
var UnbeautifyTaiTham = Rule{
	Name:    "taitham-unligate",
	Scripts: []script.Script{script.TaiTham},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\u1A55", "\u1A60ᩁ",
			"ᩔ", "ᩈ\u1A60ᩈ",
			"᪨", "।",
			"᪩", "॥",
		)
	},
}
