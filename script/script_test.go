package script

import (
	"errors"
	"testing"
	"unicode"

	tslang "github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func TestClassifyMatchesScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paliscript.script")
	defer teardown()
	//
	reg := DefaultRegistry()
	for r := rune(0); r <= 0x1FFFF; r++ {
		if got, want := reg.Classify(r), reg.scan(r); got != want {
			t.Fatalf("classification of U+%04X differs: table=%v, scan=%v", r, got, want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Script
	}{
		{'ක', Sinhala},
		{'क', Devanagari},
		{'k', Roman},
		{'ṃ', Roman},
		{'ก', Thai},
		{0xF70F, Thai},
		{0xF700, Thai},
		{'ກ', Lao},
		{'က', Myanmar},
		{0x1075, Myanmar}, // Shan letter in the Myanmar block: Myanmar is declared first
		{0x1090, Shan},
		{0xAA66, Shan},
		{'ក', Khmer},
		{'ক', Bengali},
		{'ਕ', Gurmukhi},
		{0x1A20, TaiTham},
		{'ક', Gujarati},
		{'క', Telugu},
		{'ಕ', Kannada},
		{'ക', Malayalam},
		{0x11013, Brahmi},
		{'ཀ', Tibetan},
		{'к', Cyrillic},
		{0x0323, Cyrillic},
		{' ', Unknown},
		{'.', Unknown},
		{'7', Unknown},
		{0x200D, Unknown},
		{0xD804, Unknown}, // a lone surrogate half is not Brahmi
		{-1, Unknown},
		{0x110000, Unknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.want {
			t.Errorf("Classify(U+%04X) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		p, err := Parse(s.Code())
		if err != nil {
			t.Fatal(err)
		}
		if p != s {
			t.Fatalf("Parse(%q) = %v, want %v", s.Code(), p, s)
		}
	}
	if s, err := Parse("thai"); err != nil || s != Thai {
		t.Fatalf("expected case-insensitive parse to yield Thai, got %v, %v", s, err)
	}
	if _, err := Parse("Grek"); !errors.Is(err, ErrUnknownScript) {
		t.Fatalf("expected ErrUnknownScript, got %v", err)
	}
}

func TestUnknownScriptMetadata(t *testing.T) {
	if Unknown.IsValid() {
		t.Fatalf("Unknown must not be valid")
	}
	if Unknown.Code() != "Zzzz" || Unknown.Name() != "Unknown" {
		t.Fatalf("unexpected Unknown metadata %q/%q", Unknown.Code(), Unknown.Name())
	}
	if Unknown.Locale() != language.Und {
		t.Fatalf("expected und locale for Unknown, got %v", Unknown.Locale())
	}
	if DefaultRegistry().Table(Unknown) != nil {
		t.Fatalf("expected no range table for Unknown")
	}
}

func TestTags(t *testing.T) {
	if Thai.Tag() != tslang.Thai {
		t.Fatalf("expected Thai tag, got %v", Thai.Tag())
	}
	if TaiTham.Tag() != tslang.Tai_Tham {
		t.Fatalf("expected Lana tag, got %v", TaiTham.Tag())
	}
	if Shan.UnicodeScript() != tslang.Myanmar {
		t.Fatalf("Shan letters are Myanmar letters, got %v", Shan.UnicodeScript())
	}
	for _, s := range All() {
		if s == Shan || s == Roman {
			continue
		}
		if s.Tag() != s.UnicodeScript() {
			t.Errorf("script %v: tag %v differs from Unicode script %v", s, s.Tag(), s.UnicodeScript())
		}
	}
}

func TestLocales(t *testing.T) {
	locales := SupportedLocales()
	if len(locales) != 16 { // th and hi are shared
		t.Fatalf("expected 16 distinct locales, got %d: %v", len(locales), locales)
	}
	if locales[0] != language.Make("si") {
		t.Fatalf("expected first locale to be si, got %v", locales[0])
	}
	if TaiTham.Locale() != Thai.Locale() {
		t.Fatalf("Tai Tham should share the Thai locale")
	}
	if name := Sinhala.LanguageName(language.English); name != "Sinhala" {
		t.Fatalf("expected English name of si to be Sinhala, got %q", name)
	}
}

func TestPageMap(t *testing.T) {
	var m pageMap
	m.set(0x11046, 7)
	m.set(0x11047, 0)
	m.set(-5, 3)
	if v := m.get(0x11046); v != 7 {
		t.Fatalf("expected 7, got %d", v)
	}
	if v := m.get(0x11047); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
	if m.numPages() != 1 {
		t.Fatalf("expected a single page, got %d", m.numPages())
	}
	m.set(unicode.MaxRune, 2)
	m.set(unicode.MaxRune+1, 2)
	if v := m.get(unicode.MaxRune); v != 2 {
		t.Fatalf("expected 2 at the last code point, got %d", v)
	}
	if v := m.get(unicode.MaxRune + 1); v != 0 {
		t.Fatalf("expected 0 beyond the Unicode range, got %d", v)
	}
	if v := m.get(0x110FF); v != 0 {
		t.Fatalf("expected 0 for an unclaimed code point in a used page, got %d", v)
	}
	if m.numPages() != 2 {
		t.Fatalf("expected two pages, got %d", m.numPages())
	}
}
