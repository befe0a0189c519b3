/*
Package script is the registry of writing systems supported for Pali text.

Every Script carries an ISO-15924-like identifying code, an English and a
native display name, the Unicode ranges used to detect it in mixed text, and
locale metadata for user interfaces. Detection is first-match-wins in
registry order; the one intended overlap is the Myanmar block, which is also
used by Shan (Myanmar is declared first and therefore wins).

The set of scripts is closed. Script values double as column indices into the
character tables of package chartab.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package script

import (
	"errors"
	"fmt"
	"strings"

	tslang "github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// tracer writes to trace with key 'paliscript.script'
func tracer() tracing.Trace {
	return tracing.Select("paliscript.script")
}

// Script identifies one of the supported writing systems.
type Script uint8

// Column order of the character tables. Do not reorder.
const (
	Sinhala Script = iota
	Devanagari
	Roman
	Thai
	Lao
	Myanmar
	Khmer
	Bengali
	Gurmukhi
	TaiTham
	Gujarati
	Telugu
	Kannada
	Malayalam
	Brahmi
	Tibetan
	Cyrillic
	Shan
)

// Count is the number of supported scripts.
const Count = 18

// Unknown is returned for code points no script claims.
const Unknown Script = 0xFF

// Hub is the script every conversion is routed through.
const Hub = Sinhala

// ErrUnknownScript is wrapped by errors from Parse.
var ErrUnknownScript = errors.New("unknown script")

type info struct {
	code       string
	name       string
	native     string
	locale     string // ISO 639
	localeName string
	ucd        tslang.Script // Unicode script property of the letters
	ranges     [][2]rune
	singles    []rune
}

var infos = [Count]info{
	Sinhala: {"Sinh", "Sinhala", "සිංහල", "si", "සිංහල", tslang.Sinhala,
		[][2]rune{{0x0D80, 0x0DFF}}, nil},
	Devanagari: {"Deva", "Devanagari", "नागरी", "hi", "हिन्दी", tslang.Devanagari,
		[][2]rune{{0x0900, 0x097F}}, nil},
	// letters only; digits, blanks and punctuation are left to no script
	Roman: {"Latn", "Roman", "Roman", "en", "English", tslang.Latin,
		[][2]rune{{'A', 'Z'}, {'a', 'z'}, {0x00C0, 0x017F}, {0x1E00, 0x1EFF}}, nil},
	// two legacy glyphs of Thai Pali fonts live in the private use area
	Thai: {"Thai", "Thai", "ไทย", "th", "ไทย", tslang.Thai,
		[][2]rune{{0x0E00, 0x0E7F}}, []rune{0xF70F, 0xF700}},
	Lao: {"Laoo", "Laos", "ລາວ", "lo", "ລາວ", tslang.Lao,
		[][2]rune{{0x0E80, 0x0EFF}}, nil},
	Myanmar: {"Mymr", "Myanmar", "ဗမာစာ", "my", "ဗမာစာ", tslang.Myanmar,
		[][2]rune{{0x1000, 0x107F}}, nil},
	Khmer: {"Khmr", "Khmer", "ភាសាខ្មែរ", "km", "ភាសាខ្មែរ", tslang.Khmer,
		[][2]rune{{0x1780, 0x17FF}}, nil},
	Bengali: {"Beng", "Bengali", "বাংলা", "bn", "বাংলা", tslang.Bengali,
		[][2]rune{{0x0980, 0x09FF}}, nil},
	Gurmukhi: {"Guru", "Gurmukhi", "ਗੁਰਮੁਖੀ", "pa", "ਪੰਜਾਬੀ", tslang.Gurmukhi,
		[][2]rune{{0x0A00, 0x0A7F}}, nil},
	TaiTham: {"Lana", "Tai Tham", "Tai Tham LN", "th", "ไทย (Lanna)", tslang.Tai_Tham,
		[][2]rune{{0x1A20, 0x1AAF}}, nil},
	Gujarati: {"Gujr", "Gujarati", "ગુજરાતી", "gu", "ગુજરાતી", tslang.Gujarati,
		[][2]rune{{0x0A80, 0x0AFF}}, nil},
	Telugu: {"Telu", "Telugu", "తెలుగు", "te", "తెలుగు", tslang.Telugu,
		[][2]rune{{0x0C00, 0x0C7F}}, nil},
	Kannada: {"Knda", "Kannada", "ಕನ್ನಡ", "kn", "ಕನ್ನಡ", tslang.Kannada,
		[][2]rune{{0x0C80, 0x0CFF}}, nil},
	Malayalam: {"Mlym", "Malayalam", "മലയാളം", "ml", "മലയാളം", tslang.Malayalam,
		[][2]rune{{0x0D00, 0x0D7F}}, nil},
	Brahmi: {"Brah", "Brahmi", "Brāhmī", "hi", "हिन्दी (Brah)", tslang.Brahmi,
		[][2]rune{{0x11000, 0x1107F}}, nil},
	Tibetan: {"Tibt", "Tibetan", "བོད་སྐད།", "bo", "བོད་སྐད།", tslang.Tibetan,
		[][2]rune{{0x0F00, 0x0FFF}}, nil},
	// Cyrillic Pali uses combining diacritics, so the combining block is
	// claimed here as well
	Cyrillic: {"Cyrl", "Cyrillic", "кириллица", "ru", "ру́сский", tslang.Cyrillic,
		[][2]rune{{0x0400, 0x04FF}, {0x0300, 0x036F}}, nil},
	// Shan shares the Myanmar block and adds letters from Myanmar Extended-A/B
	Shan: {"Shan", "Shan", "လိၵ်ႈတႆး", "shn", "လိၵ်ႈတႆး", tslang.Myanmar,
		[][2]rune{{0x1000, 0x109F}, {0xA9E0, 0xA9FF}, {0xAA60, 0xAA7F}}, nil},
}

// All returns every supported script in table column order.
func All() []Script {
	all := make([]Script, Count)
	for i := range all {
		all[i] = Script(i)
	}
	return all
}

// Parse returns the script for an identifying code such as "Thai" or "Sinh".
// Matching is case-insensitive.
func Parse(code string) (Script, error) {
	for i := range infos {
		if strings.EqualFold(infos[i].code, code) {
			return Script(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownScript, code)
}

// IsValid reports whether s is one of the supported scripts.
func (s Script) IsValid() bool {
	return int(s) < Count
}

// Code returns the identifying code, e.g. "Sinh". Unknown has code "Zzzz".
func (s Script) Code() string {
	if !s.IsValid() {
		return "Zzzz"
	}
	return infos[s].code
}

// Name returns the English display name.
func (s Script) Name() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return infos[s].name
}

// NativeName returns the name of the script written in itself.
func (s Script) NativeName() string {
	if !s.IsValid() {
		return ""
	}
	return infos[s].native
}

func (s Script) String() string {
	return s.Code()
}

// Locale returns the language most commonly associated with the script.
func (s Script) Locale() language.Tag {
	if !s.IsValid() {
		return language.Und
	}
	return language.Make(infos[s].locale)
}

// LocaleName returns the localized name of the script's locale.
func (s Script) LocaleName() string {
	if !s.IsValid() {
		return ""
	}
	return infos[s].localeName
}

// Tag returns the script code as an OpenType/ISO 15924 script tag.
func (s Script) Tag() tslang.Script {
	tag, err := tslang.ParseScript(s.Code())
	if err != nil {
		return tslang.Unknown
	}
	return tag
}

// UnicodeScript returns the Unicode script property shared by the letters
// of s. Shan text is encoded with Myanmar letters.
func (s Script) UnicodeScript() tslang.Script {
	if !s.IsValid() {
		return tslang.Unknown
	}
	return infos[s].ucd
}

// LanguageName returns the name of the script's locale language, as
// displayed for users of language in.
func (s Script) LanguageName(in language.Tag) string {
	if !s.IsValid() {
		return ""
	}
	return display.Languages(in).Name(s.Locale())
}

// SupportedLocales returns the distinct locales of all scripts, in column
// order of first appearance.
func SupportedLocales() []language.Tag {
	seen := make(map[language.Tag]bool, Count)
	locales := make([]language.Tag, 0, Count)
	for _, s := range All() {
		tag := s.Locale()
		if seen[tag] {
			continue
		}
		seen[tag] = true
		locales = append(locales, tag)
	}
	return locales
}
