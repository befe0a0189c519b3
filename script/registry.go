package script

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// detectionOrder is the declared priority for code point classification.
// It differs from column order: Tai Tham is declared after Malayalam.
var detectionOrder = [Count]Script{
	Sinhala, Devanagari, Roman, Thai, Lao, Myanmar, Khmer, Bengali, Gurmukhi,
	Gujarati, Telugu, Kannada, Malayalam, TaiTham, Brahmi, Tibetan, Cyrillic, Shan,
}

// Registry classifies code points to scripts. A Registry is immutable once
// created and safe for concurrent use.
type Registry struct {
	tables [Count]*unicode.RangeTable
	pages  pageMap // script+1 per code point, first declared script wins
}

var defaultRegistry = sync.OnceValue(newRegistry)

// DefaultRegistry returns the shared registry of all supported scripts.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func newRegistry() *Registry {
	reg := &Registry{}
	for i := range infos {
		reg.tables[i] = rangeTable(infos[i].ranges, infos[i].singles)
	}
	for _, s := range detectionOrder {
		rangetable.Visit(reg.tables[s], func(r rune) {
			if reg.pages.get(r) == 0 {
				reg.pages.set(r, uint8(s)+1)
			}
		})
	}
	tracer().Debugf("script registry: %d scripts, %d code point pages", Count, reg.pages.numPages())
	return reg
}

func rangeTable(ranges [][2]rune, singles []rune) *unicode.RangeTable {
	runes := make([]rune, 0, 256)
	for _, rng := range ranges {
		for r := rng[0]; r <= rng[1]; r++ {
			runes = append(runes, r)
		}
	}
	runes = append(runes, singles...)
	return rangetable.New(runes...)
}

// Classify returns the first script in declared order claiming r,
// or Unknown.
func (reg *Registry) Classify(r rune) Script {
	v := reg.pages.get(r)
	if v == 0 {
		return Unknown
	}
	return Script(v - 1)
}

// Table returns the detection ranges of s, or nil for an invalid script.
func (reg *Registry) Table(s Script) *unicode.RangeTable {
	if !s.IsValid() {
		return nil
	}
	return reg.tables[s]
}

// scan classifies r by testing every script's ranges in declared order.
// Classify is the precomputed equivalent.
func (reg *Registry) scan(r rune) Script {
	for _, s := range detectionOrder {
		if unicode.Is(reg.tables[s], r) {
			return s
		}
	}
	return Unknown
}

// Classify returns the script claiming code point r in the default
// registry, or Unknown.
func Classify(r rune) Script {
	return DefaultRegistry().Classify(r)
}
