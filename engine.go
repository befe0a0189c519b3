package paliscript

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/paliscript/rules"
	"github.com/npillmayer/paliscript/script"
)

// Engine converts Pali text between scripts. An Engine is immutable and
// safe for concurrent use.
type Engine struct {
	strategy   *Strategy
	render     rules.RenderContext
	formatting Formatting
}

// New creates an engine. Without options it renders plain text, converts
// texts as a whole and uses hash-map lookup tables. Engines with the same
// backend share their compiled tables.
func New(opts ...Option) (*Engine, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if int(o.formatting) >= len(formattingNames) {
		return nil, fmt.Errorf("unknown formatting mode %v", o.formatting)
	}
	st := o.strategy
	if st == nil {
		var err error
		if st, err = sharedStrategy(o.backend); err != nil {
			return nil, err
		}
	}
	return &Engine{
		strategy:   st,
		render:     o.render,
		formatting: o.formatting,
	}, nil
}

// Strategy returns the rule pipelines e runs.
func (e *Engine) Strategy() *Strategy {
	return e.strategy
}

// RenderContext returns the render context passed to the rules.
func (e *Engine) RenderContext() rules.RenderContext {
	return e.render
}

// Formatting returns the formatting mode of e.
func (e *Engine) Formatting() Formatting {
	return e.formatting
}

// ToHub brings text written in script from into the hub script. Text of
// script Unknown is returned unchanged.
func (e *Engine) ToHub(text string, from script.Script) string {
	text = e.strategy.run(Unbeautify, text, from, e.render)
	return e.strategy.run(Decode, text, from, e.render)
}

// FromHub converts hub script text into script to.
func (e *Engine) FromHub(text string, to script.Script) string {
	text = e.strategy.run(Encode, text, to, e.render)
	return e.strategy.run(Beautify, text, to, e.render)
}

// Convert converts text from script from to script to. Characters without
// a mapping are copied. If from and to are equal, text is returned
// unchanged.
func (e *Engine) Convert(text string, from, to script.Script) string {
	if from == to {
		return text
	}
	return e.format(text, func(chunk string) string {
		return e.FromHub(e.ToHub(chunk, from), to)
	})
}

// ConvertAny converts text mixing any of the supported scripts into script
// to. See Segment for how text is split into runs.
func (e *Engine) ConvertAny(text string, to script.Script) string {
	return e.format(text, func(chunk string) string {
		var hub strings.Builder
		hub.Grow(len(chunk))
		for _, run := range Segment(chunk) {
			hub.WriteString(e.ToHub(run.Text, run.Script))
		}
		return e.FromHub(hub.String(), to)
	})
}

// format applies convert according to the formatting mode of e.
func (e *Engine) format(text string, convert func(string) string) string {
	switch e.formatting {
	case FormatCompact:
		return convert(strings.Join(strings.Fields(text), ""))
	case FormatWords:
		return convertWords(text, convert)
	}
	return convert(text)
}

// convertWords converts every maximal run of non-blank characters and
// copies blanks as they are.
func convertWords(text string, convert func(string) string) string {
	var b strings.Builder
	b.Grow(len(text))
	start, blank := 0, false
	flush := func(end int) {
		if end == start {
			return
		}
		if blank {
			b.WriteString(text[start:end])
		} else {
			b.WriteString(convert(text[start:end]))
		}
	}
	for i, r := range text {
		if unicode.IsSpace(r) != blank {
			flush(i)
			start, blank = i, !blank
		}
	}
	flush(len(text))
	return b.String()
}

// --- Default engine --------------------------------------------------------

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New()
	if err != nil {
		tracer().Errorf("creating default engine: %v", err)
	}
	assert(err == nil, "paliscript: default rule pipelines are misconfigured")
	return e
})

// Convert converts text from script from to script to with the default
// engine.
func Convert(text string, from, to script.Script) string {
	return defaultEngine().Convert(text, from, to)
}

// ConvertAny converts text of mixed scripts into script to with the default
// engine.
func ConvertAny(text string, to script.Script) string {
	return defaultEngine().ConvertAny(text, to)
}

// ClassifyCodepoint returns the script claiming r, or script.Unknown.
func ClassifyCodepoint(r rune) script.Script {
	return script.Classify(r)
}
