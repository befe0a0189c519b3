package paliscript

import (
	"fmt"
	"sync"

	"github.com/npillmayer/paliscript/chartab"
	"github.com/npillmayer/paliscript/lookup"
	"github.com/npillmayer/paliscript/rules"
	"github.com/npillmayer/paliscript/script"
)

// Stage is one of the four steps of a conversion through the hub script.
type Stage uint8

const (
	Unbeautify Stage = iota // source script orthography → table form
	Decode                  // table form → hub script
	Encode                  // hub script → table form of the target script
	Beautify                // table form → target script orthography
)

var stageNames = [...]string{"unbeautify", "decode", "encode", "beautify"}

func (st Stage) String() string {
	if int(st) < len(stageNames) {
		return stageNames[st]
	}
	return fmt.Sprintf("Stage(%d)", st)
}

// Strategy holds the rule pipelines of every script for every stage. A
// script without custom rules for a stage has an empty pipeline. A Strategy
// is immutable once created and may be shared between engines.
type Strategy struct {
	backend   Backend
	pipelines [len(stageNames)][script.Count]rules.Pipeline
}

// Beautify and un-beautify rules per script. Table rewrites are added by
// NewStrategy, as they depend on the backend.
var (
	unbeautifyRules = [script.Count]rules.Pipeline{
		script.Sinhala:  {rules.UnbeautifySinhala},
		script.Roman:    {rules.Lowercase, rules.Compose},
		script.Thai:     {rules.UnbeautifyThai},
		script.Myanmar:  {rules.UnbeautifyMyanmar},
		script.Khmer:    {rules.UnbeautifyKhmer},
		script.TaiTham:  {rules.UnbeautifyTaiTham},
		script.Brahmi:   {rules.UnbeautifyBrahmi},
		script.Tibetan:  {rules.UnbeautifyTibetan},
		script.Cyrillic: {rules.Compose},
		script.Shan:     {rules.UnbeautifyShan},
	}
	beautifyRules = [script.Count]rules.Pipeline{
		script.Sinhala:    {rules.BeautifySinhala, rules.Punctuation},
		script.Devanagari: {},
		script.Roman:      {rules.Punctuation},
		script.Thai:       {rules.BeautifyThai, rules.Punctuation},
		script.Lao:        {rules.Punctuation},
		script.Myanmar:    {rules.BeautifyMyanmar, rules.Punctuation},
		script.Khmer:      {rules.BeautifyKhmer, rules.Punctuation},
		script.Bengali:    {},
		script.Gurmukhi:   {},
		script.TaiTham:    {rules.BeautifyTaiTham},
		script.Gujarati:   {rules.Punctuation},
		script.Telugu:     {rules.Punctuation},
		script.Kannada:    {},
		script.Malayalam:  {rules.Punctuation},
		script.Brahmi:     {rules.BeautifyBrahmi, rules.Punctuation},
		script.Tibetan:    {rules.BeautifyTibetan},
		script.Cyrillic:   {rules.Punctuation},
		script.Shan:       {rules.BeautifyShan, rules.Punctuation},
	}
)

// indexedMatcher is a matcher able to report its size.
type indexedMatcher interface {
	lookup.Matcher
	Stats() lookup.Stats
}

// NewStrategy compiles the lookup tables of all scripts for backend b and
// registers the rule pipelines. It returns an error if the character tables
// are inconsistent or a rule is registered for a script it does not support.
func NewStrategy(b Backend) (*Strategy, error) {
	if err := chartab.Validate(); err != nil {
		return nil, err
	}
	st := &Strategy{backend: b}
	keys := 0
	table := func(from, to script.Script, includeVowels bool) rules.Rule {
		m := st.index(lookup.Compile(from, to, includeVowels))
		stats := m.Stats()
		keys += stats.Keys
		tracer().Debugf("lookup %v→%v backend=%s keys=%d buckets=%d max key length=%d",
			from, to, stats.Backend, stats.Keys, stats.Buckets, stats.MaxKeyLen)
		return rules.Table(fmt.Sprintf("table-%s-%s", from.Code(), to.Code()), m)
	}
	for _, s := range script.All() {
		unbeautify := rules.Pipeline{rules.StripJoiners}
		st.pipelines[Unbeautify][s] = append(unbeautify, unbeautifyRules[s]...)
		st.pipelines[Beautify][s] = beautifyRules[s]
		var decode, encode rules.Pipeline
		switch s {
		case script.Hub:
			decode, encode = rules.Pipeline{}, rules.Pipeline{}
		case script.Roman:
			decode = rules.Pipeline{table(s, script.Hub, false), rules.FoldNasal, rules.RemoveA}
			encode = rules.Pipeline{rules.InsertA, table(script.Hub, s, true)}
		case script.Cyrillic:
			decode = rules.Pipeline{table(s, script.Hub, false), rules.RemoveA}
			encode = rules.Pipeline{rules.InsertA, table(script.Hub, s, true)}
		case script.Thai, script.Lao:
			decode = rules.Pipeline{rules.UnreorderVowels, table(s, script.Hub, true)}
			encode = rules.Pipeline{table(script.Hub, s, true), rules.ReorderVowels}
		default:
			decode = rules.Pipeline{table(s, script.Hub, true)}
			encode = rules.Pipeline{table(script.Hub, s, true)}
		}
		st.pipelines[Decode][s] = decode
		st.pipelines[Encode][s] = encode
	}
	if err := st.check(); err != nil {
		return nil, err
	}
	tracer().Infof("strategy backend=%s scripts=%d lookup keys=%d", b, script.Count, keys)
	return st, nil
}

func (st *Strategy) index(ms *lookup.MapSet) indexedMatcher {
	if st.backend == Trie {
		return lookup.NewTrieIndex(ms)
	}
	return ms
}

// check validates that every rule supports the script it is registered for.
func (st *Strategy) check() error {
	for stage := range st.pipelines {
		for _, s := range script.All() {
			if err := st.pipelines[stage][s].Check(s); err != nil {
				return fmt.Errorf("%s pipeline of %s: %w", Stage(stage), s, err)
			}
		}
	}
	return nil
}

// Backend returns the lookup backend the tables of st are compiled for.
func (st *Strategy) Backend() Backend {
	return st.backend
}

// Pipeline returns the rules run for script s in stage stage. The pipeline
// of an invalid script is empty.
func (st *Strategy) Pipeline(stage Stage, s script.Script) rules.Pipeline {
	if !s.IsValid() || int(stage) >= len(st.pipelines) {
		return nil
	}
	return st.pipelines[stage][s]
}

func (st *Strategy) run(stage Stage, text string, s script.Script, rc rules.RenderContext) string {
	return st.Pipeline(stage, s).Run(text, s, rc)
}

// sharedStrategies are created on first use, one per backend.
var sharedStrategies = [...]func() (*Strategy, error){
	Buckets: sync.OnceValues(func() (*Strategy, error) { return NewStrategy(Buckets) }),
	Trie:    sync.OnceValues(func() (*Strategy, error) { return NewStrategy(Trie) }),
}

func sharedStrategy(b Backend) (*Strategy, error) {
	if int(b) >= len(sharedStrategies) {
		return nil, fmt.Errorf("unknown lookup backend %v", b)
	}
	return sharedStrategies[b]()
}
