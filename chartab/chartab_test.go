package chartab

import (
	"strings"
	"testing"
	"unicode/utf8"

	tslang "github.com/go-text/typesetting/language"
	"github.com/npillmayer/paliscript/script"
)

func TestTablesValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatal(err)
	}
	if len(Consonants()) != 32 {
		t.Fatalf("expected 32 consonants, got %d", len(Consonants()))
	}
	if n := len(Rows(true)) - len(Rows(false)); n != len(Vowels()) {
		t.Fatalf("vowel rows: expected %d, got %d", len(Vowels()), n)
	}
}

func TestValidateDuplicates(t *testing.T) {
	var a, b Entry
	a.Forms[script.Sinhala] = "ක"
	b.Forms[script.Sinhala] = "ක"
	err := validate([]Entry{a, b})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	var c Entry
	if err := validate([]Entry{c}); err == nil {
		t.Fatalf("expected error for row without canonical form")
	}
}

func TestRowKinds(t *testing.T) {
	for _, e := range Consonants() {
		if e.Kind != Consonant {
			t.Fatalf("row %q is a %s", e.Key(), e.Kind)
		}
		r, _ := utf8.DecodeRuneInString(e.Key())
		if !IsHubConsonant(r) {
			t.Errorf("row key %q is outside the hub consonant range", e.Key())
		}
	}
	for _, e := range Vowels() {
		r, _ := utf8.DecodeRuneInString(e.Key())
		if e.Kind != DependentVowelSign || !IsHubVowelSign(r) {
			t.Errorf("row %q is not a hub vowel sign", e.Key())
		}
	}
	for _, e := range Specials() {
		if e.Kind != IndependentVowel {
			continue
		}
		r, _ := utf8.DecodeRuneInString(e.Key())
		if _, ok := DependentSign(r); !ok {
			t.Errorf("independent vowel %q has no dependent sign", e.Key())
		}
	}
}

func TestEmptyAndAbsentForms(t *testing.T) {
	var virama Entry
	for _, e := range Specials() {
		if e.Key() == string(HubVirama) {
			virama = e
		}
	}
	if f, ok := virama.Form(script.Roman); !ok || f != "" {
		t.Fatalf("expected empty but present Roman virama, got %q, %v", f, ok)
	}
	if f, _ := virama.Form(script.Brahmi); f != "\U00011046" {
		t.Fatalf("unexpected Brahmi virama %q", f)
	}
	e := virama
	e.Absent = e.Absent.With(script.Tibetan)
	if _, ok := e.Form(script.Tibetan); ok {
		t.Fatalf("expected Tibetan form to be absent")
	}
	if _, ok := e.Form(script.Unknown); ok {
		t.Fatalf("expected no form for Unknown")
	}
}

// Each consonant column must be written in the letters of its script.
func TestConsonantColumnsMatchScript(t *testing.T) {
	for _, e := range Consonants() {
		for _, s := range script.All() {
			r, _ := utf8.DecodeRuneInString(e.Forms[s])
			if got := tslang.LookupScript(r); got != s.UnicodeScript() {
				t.Errorf("%s form %q of %q is in script %v, expected %v",
					s.Name(), e.Forms[s], e.Key(), got, s.UnicodeScript())
			}
			got := script.Classify(r)
			if got != s && !(s == script.Shan && got == script.Myanmar) {
				t.Errorf("%s form %q of %q classifies as %v", s.Name(), e.Forms[s], e.Key(), got)
			}
		}
	}
}
