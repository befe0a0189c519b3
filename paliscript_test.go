package paliscript

import (
	"reflect"
	"sync"
	"testing"

	"github.com/npillmayer/paliscript/rules"
	"github.com/npillmayer/paliscript/script"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paliscript")
	defer teardown()
	//
	tests := []struct {
		text     string
		from, to script.Script
		want     string
	}{
		{"k", script.Roman, script.Sinhala, "ක"},
		{"ක", script.Sinhala, script.Roman, "ka"},
		{"ක\u0DCA", script.Sinhala, script.Roman, "k"},
		{"kh", script.Roman, script.Thai, "ข"},
		{"buddha", script.Roman, script.Sinhala, "බ\u0DD4ද\u0DCAධ"},
		{"Buddha", script.Roman, script.Sinhala, "බ\u0DD4ද\u0DCAධ"},
		{"buddha", script.Roman, script.Devanagari, "ब\u0941द\u094Dध"},
		{"buddha", script.Roman, script.Thai, "พ\u0E38ท\u0E3Aธ"},
		{"buddha", script.Roman, script.Myanmar, "ဗ\u102Fဒ\u1039ဓ"},
		{"buddha", script.Roman, script.Cyrillic, "буддха"},
		{"буддха", script.Cyrillic, script.Roman, "buddha"},
		{"ke", script.Roman, script.Thai, "เก"},
		{"เก", script.Thai, script.Roman, "ke"},
		{"ke", script.Roman, script.Lao, "ເກ"},
		{"ब\u0941द\u094Dध", script.Devanagari, script.Roman, "buddha"},
		{"\U00011013", script.Brahmi, script.Sinhala, "ක"},
		{"ka  kha", script.Roman, script.Sinhala, "ක ඛ"},
		{"क।", script.Devanagari, script.Roman, "ka."},
		{"xyz", script.Unknown, script.Sinhala, "xyz"},
	}
	for _, tt := range tests {
		if got := Convert(tt.text, tt.from, tt.to); got != tt.want {
			t.Errorf("Convert(%q, %v, %v) = %q, want %q", tt.text, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	roman := Convert("ක", script.Sinhala, script.Roman)
	if back := Convert(roman, script.Roman, script.Sinhala); back != "ක" {
		t.Fatalf("expected round trip through Roman to yield ක, got %q (via %q)", back, roman)
	}
	for _, s := range script.All() {
		if s == script.Hub || s == script.Tibetan {
			continue
		}
		text := "ක\u0DD2 බ\u0DD4ද\u0DCAධ"
		out := Convert(text, script.Hub, s)
		if back := Convert(out, s, script.Hub); back != text {
			t.Errorf("round trip through %v: %q → %q → %q", s, text, out, back)
		}
	}
}

func TestSelfIdentity(t *testing.T) {
	samples := []string{"", "k", "ක\u200Dය", "a  ।  b", "xyz ॥ ,", "\uF70F"}
	for _, s := range script.All() {
		for _, text := range samples {
			if got := Convert(text, s, s); got != text {
				t.Errorf("Convert(%q, %v, %v) = %q, want input unchanged", text, s, s, got)
			}
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, from := range script.All() {
		for _, to := range script.All() {
			if got := Convert("", from, to); got != "" {
				t.Errorf("Convert(\"\", %v, %v) = %q", from, to, got)
			}
		}
		if got := ConvertAny("", from); got != "" {
			t.Errorf("ConvertAny(\"\", %v) = %q", from, got)
		}
	}
	if runs := Segment(""); len(runs) != 0 {
		t.Errorf("expected no runs for empty text, got %v", runs)
	}
}

func TestSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paliscript")
	defer teardown()
	//
	tests := []struct {
		text string
		want []Run
	}{
		{"k ก", []Run{
			{script.Roman, "k"},
			{script.Unknown, " "},
			{script.Thai, "ก"},
		}},
		{"buddha", []Run{{script.Roman, "buddha"}}},
		{"ක\u0DCA\u200Dය", []Run{{script.Sinhala, "ක\u0DCAය"}}},
		{"\U00011013\U00011046 1", []Run{
			{script.Brahmi, "\U00011013\U00011046"},
			{script.Unknown, " 1"},
		}},
		{" a", []Run{{script.Unknown, " "}, {script.Roman, "a"}}},
		{"sa\u0304dhu", []Run{{script.Roman, "s\u0101dhu"}}},
		{"sam\u0323gha ก", []Run{
			{script.Roman, "sa\u1E43gha"},
			{script.Unknown, " "},
			{script.Thai, "ก"},
		}},
	}
	for _, tt := range tests {
		if got := Segment(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Segment(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestConvertAny(t *testing.T) {
	tests := []struct {
		text string
		to   script.Script
		want string
	}{
		{"k ก", script.Sinhala, "ක ක"},
		{"buddha ब\u0941द\u094Dध", script.Sinhala, "බ\u0DD4ද\u0DCAධ බ\u0DD4ද\u0DCAධ"},
		{"ක\u200D", script.Roman, "ka"},
		{"\U00011013 ก", script.Roman, "ka ka"},
		{"12 kh", script.Thai, "๑๒ ข"},
		{"sa\u0304dhu", script.Sinhala, "ස\u0DCFධ\u0DD4"},
		{"sam\u0323gha", script.Sinhala, "ස\u0D82ඝ"},
	}
	for _, tt := range tests {
		if got := ConvertAny(tt.text, tt.to); got != tt.want {
			t.Errorf("ConvertAny(%q, %v) = %q, want %q", tt.text, tt.to, got, tt.want)
		}
	}
}

// A run ends where the script changes, and a bare Roman consonant at the
// end of a run is read as carrying its vowel.
func TestRunBoundaryVirama(t *testing.T) {
	const text = "buddh."
	if got, want := Convert(text, script.Roman, script.Sinhala), "බ\u0DD4ද\u0DCAධ\u0DCA."; got != want {
		t.Errorf("Convert(%q) = %q, want %q", text, got, want)
	}
	if got, want := ConvertAny(text, script.Sinhala), "බ\u0DD4ද\u0DCAධ."; got != want {
		t.Errorf("ConvertAny(%q) = %q, want %q", text, got, want)
	}
}

func TestClassifyCodepoint(t *testing.T) {
	if s := ClassifyCodepoint('ก'); s != script.Thai {
		t.Errorf("expected ก to be Thai, got %v", s)
	}
	if s := ClassifyCodepoint(' '); s != script.Unknown {
		t.Errorf("expected blank to be unknown, got %v", s)
	}
}

// Beautifying already beautified text must not change it again.
func TestBeautifyPipelinesIdempotent(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	const sample = "buddhaṃ saraṇaṃ gacchāmi। sakkhiṃ ca brahmaṃ ñāṇaṃ॥  iti"
	for _, s := range script.All() {
		once := e.FromHub(e.ToHub(sample, script.Roman), s)
		twice := e.Strategy().run(Beautify, once, s, e.RenderContext())
		if twice != once {
			t.Errorf("beautify for %v is not idempotent: %q → %q", s, once, twice)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paliscript", "paliscript.lookup")
	defer teardown()
	//
	trie, err := New(WithBackend(Trie))
	if err != nil {
		t.Fatal(err)
	}
	if trie.Strategy().Backend() != Trie {
		t.Fatalf("expected trie backend, got %v", trie.Strategy().Backend())
	}
	buckets, _ := New()
	samples := []string{"buddhaṃ saraṇaṃ gacchāmi", "ṭhānaṃ  ḍh jjh", "ක\u0DCA\u200Dය 12"}
	for _, s := range script.All() {
		for _, text := range samples {
			in := buckets.Convert(text, script.Roman, s)
			if a, b := buckets.Convert(in, s, script.Hub), trie.Convert(in, s, script.Hub); a != b {
				t.Errorf("backends differ for %v → hub: buckets=%q, trie=%q", s, a, b)
			}
			if a, b := buckets.Convert(text, script.Roman, s), trie.Convert(text, script.Roman, s); a != b {
				t.Errorf("backends differ for Roman → %v: buckets=%q, trie=%q", s, a, b)
			}
		}
	}
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		f    Formatting
		text string
		want string
	}{
		{FormatWhole, "ka  kha", "ක ඛ"},
		{FormatWords, "ka  kha", "ක  ඛ"},
		{FormatWords, " ka\n", " ක\n"},
		{FormatWords, "", ""},
		{FormatCompact, "ka  kha", "කඛ"},
	}
	for _, tt := range tests {
		e, err := New(WithFormatting(tt.f))
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Convert(tt.text, script.Roman, script.Sinhala); got != tt.want {
			t.Errorf("%v: Convert(%q) = %q, want %q", tt.f, tt.text, got, tt.want)
		}
	}
	if _, err := New(WithFormatting(Formatting(9))); err == nil {
		t.Errorf("expected error for invalid formatting mode")
	}
}

func TestRenderContext(t *testing.T) {
	tests := []struct {
		rc   rules.RenderContext
		want string
	}{
		{rules.RenderPlain, "ka. kha."},
		{rules.RenderGatha, "ka; kha."},
		{rules.RenderCentered, "ka. kha"},
	}
	for _, tt := range tests {
		e, err := New(WithRenderContext(tt.rc))
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Convert("क। ख॥", script.Devanagari, script.Roman); got != tt.want {
			t.Errorf("render context %q: got %q, want %q", tt.rc, got, tt.want)
		}
	}
}

func TestStrategyPipelines(t *testing.T) {
	st, err := NewStrategy(Buckets)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		stage Stage
		s     script.Script
		want  []string
	}{
		{Unbeautify, script.Roman, []string{"strip-joiners", "lowercase", "compose"}},
		{Decode, script.Roman, []string{"table-Latn-Sinh", "fold-nasal", "remove-a"}},
		{Encode, script.Cyrillic, []string{"insert-a", "table-Sinh-Cyrl"}},
		{Decode, script.Thai, []string{"unreorder-vowels", "table-Thai-Sinh"}},
		{Encode, script.Lao, []string{"table-Sinh-Laoo", "reorder-vowels"}},
		{Decode, script.Sinhala, []string{}},
		{Beautify, script.Devanagari, []string{}},
		{Beautify, script.Tibetan, []string{"tibetan-stacks"}},
	}
	for _, tt := range tests {
		if got := st.Pipeline(tt.stage, tt.s).Names(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v pipeline of %v = %v, want %v", tt.stage, tt.s, got, tt.want)
		}
	}
	if p := st.Pipeline(Decode, script.Unknown); p != nil {
		t.Errorf("expected no pipeline for unknown script, got %v", p.Names())
	}
	e, err := New(WithStrategy(st))
	if err != nil {
		t.Fatal(err)
	}
	if e.Strategy() != st {
		t.Errorf("expected engine to use the given strategy")
	}
}

func TestNewFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		ConfigRender:     "gatha",
		ConfigFormatting: "words",
		ConfigBackend:    "trie",
	}
	e, err := NewFromConfig(conf)
	if err != nil {
		t.Fatal(err)
	}
	if e.RenderContext() != rules.RenderGatha || e.Formatting() != FormatWords ||
		e.Strategy().Backend() != Trie {
		t.Errorf("engine does not reflect configuration: render=%q formatting=%v backend=%v",
			e.RenderContext(), e.Formatting(), e.Strategy().Backend())
	}
	e, err = NewFromConfig(testconfig.Conf{})
	if err != nil {
		t.Fatal(err)
	}
	if e.Formatting() != FormatWhole || e.Strategy().Backend() != Buckets {
		t.Errorf("expected defaults for empty configuration")
	}
	for _, bad := range []testconfig.Conf{
		{ConfigBackend: "dat"},
		{ConfigFormatting: "pretty"},
	} {
		if _, err := NewFromConfig(bad); err == nil {
			t.Errorf("expected error for configuration %v", bad)
		}
	}
}

func TestParseNames(t *testing.T) {
	if b, err := ParseBackend("TRIE"); err != nil || b != Trie {
		t.Errorf("ParseBackend(TRIE) = %v, %v", b, err)
	}
	if f, err := ParseFormatting(""); err != nil || f != FormatWhole {
		t.Errorf("ParseFormatting(\"\") = %v, %v", f, err)
	}
	if Stage(7).String() != "Stage(7)" || Decode.String() != "decode" {
		t.Errorf("unexpected stage names")
	}
}

func TestConcurrentConvert(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := Convert("buddha", script.Roman, script.Thai); got != "พ\u0E38ท\u0E3Aธ" {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent conversion yielded %q", got)
	}
}
