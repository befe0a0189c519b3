package paliscript

import (
	"fmt"
	"strings"

	"github.com/npillmayer/paliscript/rules"
)

// Backend selects the lookup structure used for table rewrites.
type Backend uint8

const (
	Buckets Backend = iota // hash maps, one per key length
	Trie                   // prefix trie
)

var backendNames = [...]string{"buckets", "trie"}

func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", b)
}

// ParseBackend returns the backend with name s. The empty string selects
// Buckets.
func ParseBackend(s string) (Backend, error) {
	if s == "" {
		return Buckets, nil
	}
	for i, name := range backendNames {
		if strings.EqualFold(s, name) {
			return Backend(i), nil
		}
	}
	return Buckets, fmt.Errorf("unknown lookup backend %q", s)
}

// Formatting controls how whitespace of the input takes part in a conversion.
type Formatting uint8

const (
	FormatWhole   Formatting = iota // convert the text as one piece
	FormatWords                     // convert each word, copy whitespace verbatim
	FormatCompact                   // drop all whitespace, then convert
)

var formattingNames = [...]string{"whole", "words", "compact"}

func (f Formatting) String() string {
	if int(f) < len(formattingNames) {
		return formattingNames[f]
	}
	return fmt.Sprintf("Formatting(%d)", f)
}

// ParseFormatting returns the formatting mode with name s. The empty string
// selects FormatWhole.
func ParseFormatting(s string) (Formatting, error) {
	if s == "" {
		return FormatWhole, nil
	}
	for i, name := range formattingNames {
		if strings.EqualFold(s, name) {
			return Formatting(i), nil
		}
	}
	return FormatWhole, fmt.Errorf("unknown formatting mode %q", s)
}

type options struct {
	render     rules.RenderContext
	formatting Formatting
	backend    Backend
	strategy   *Strategy
}

// Option configures an Engine.
type Option func(*options)

// WithRenderContext sets the render context passed to every rule, e.g.
// rules.RenderGatha for verses.
func WithRenderContext(rc rules.RenderContext) Option {
	return func(o *options) {
		o.render = rc
	}
}

// WithFormatting sets the formatting mode.
func WithFormatting(f Formatting) Option {
	return func(o *options) {
		o.formatting = f
	}
}

// WithBackend sets the lookup backend.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithStrategy makes an engine run the pipelines of st. The backend option
// is ignored in this case.
func WithStrategy(st *Strategy) Option {
	return func(o *options) {
		o.strategy = st
	}
}
