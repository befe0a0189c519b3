package paliscript

import (
	"fmt"

	"github.com/npillmayer/paliscript/rules"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by NewFromConfig.
const (
	ConfigRender     = "paliscript.render"     // render context, e.g. "gatha"
	ConfigFormatting = "paliscript.formatting" // whole, words or compact
	ConfigBackend    = "paliscript.backend"    // buckets or trie
)

// NewFromConfig creates an engine from the paliscript.* keys of conf.
// Unset keys select the defaults of New.
func NewFromConfig(conf schuko.Configuration) (*Engine, error) {
	var opts []Option
	if conf.IsSet(ConfigRender) {
		opts = append(opts, WithRenderContext(rules.RenderContext(conf.GetString(ConfigRender))))
	}
	f, err := ParseFormatting(conf.GetString(ConfigFormatting))
	if err != nil {
		return nil, fmt.Errorf("configuration key %s: %w", ConfigFormatting, err)
	}
	b, err := ParseBackend(conf.GetString(ConfigBackend))
	if err != nil {
		return nil, fmt.Errorf("configuration key %s: %w", ConfigBackend, err)
	}
	opts = append(opts, WithFormatting(f), WithBackend(b))
	return New(opts...)
}
