package rules

import (
	"github.com/npillmayer/paliscript/script"
)

// BeautifyBrahmi writes Brahmi dandas and the Brahmi punctuation line.
var BeautifyBrahmi = Rule{
	Name:    "brahmi-punctuation",
	Scripts: []script.Script{script.Brahmi},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"।", "\U00011047",
			"॥", "\U00011048",
			"–", "\U0001104B",
		)
	},
}

// UnbeautifyBrahmi is the inverse of BeautifyBrahmi.
var UnbeautifyBrahmi = Rule{
	Name:    "brahmi-unpunctuation",
	Scripts: []script.Script{script.Brahmi},
	Apply: func(text string, _ script.Script, _ RenderContext) string {
		return replaceEach(text,
			"\U00011047", "।",
			"\U00011048", "॥",
			"\U0001104B", "–",
		)
	},
}
