/*
Package rules holds the orthographic rewrite rules applied around the table
conversion of Pali text.

Every rule is a pure function of the text, the script it is applied for and
an optional render context. Rules are composed into pipelines by plain
function application: a later rule sees the output of an earlier one, and no
rule is ever skipped. Every rule is total; it accepts any input, including
the empty string.

Rules come in two directions. Beautify rules run after a text has been
converted out of the hub script and repair the orthography of the target
script (ligatures, special glyphs, punctuation). Un-beautify rules run before
a text is converted into the hub script and undo them.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/npillmayer/paliscript/script"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paliscript.rules'
func tracer() tracing.Trace {
	return tracing.Select("paliscript.rules")
}

// RenderContext is a free-form tag for the way a text is displayed. Only a
// few punctuation rules inspect it.
type RenderContext string

const (
	RenderPlain    RenderContext = ""
	RenderCentered RenderContext = "cen"   // centered text, e.g. the namo tassa line
	RenderGatha    RenderContext = "gatha" // verses
)

// IsGatha reports whether rc denotes verse text. Any tag starting with "ga"
// does.
func (rc RenderContext) IsGatha() bool {
	return strings.HasPrefix(string(rc), "ga")
}

// Func is the signature of a rewrite rule.
type Func func(text string, s script.Script, rc RenderContext) string

// Rule is a named rewrite rule.
type Rule struct {
	Name    string
	Scripts []script.Script // scripts the rule may be applied for; nil means all
	Apply   Func
}

// Supports reports whether r may be applied for script s.
func (r Rule) Supports(s script.Script) bool {
	return r.Scripts == nil || slices.Contains(r.Scripts, s)
}

// UnsupportedScriptOperation is raised when a rule is applied for a script it
// does not handle. This is a misconfiguration of a pipeline, not a data error.
type UnsupportedScriptOperation struct {
	Rule   string
	Script script.Script
}

func (e UnsupportedScriptOperation) Error() string {
	return fmt.Sprintf("rule %q does not support script %s", e.Rule, e.Script.Name())
}

// Pipeline is an ordered list of rules.
type Pipeline []Rule

// Run applies every rule of p in order.
func (p Pipeline) Run(text string, s script.Script, rc RenderContext) string {
	for _, r := range p {
		text = r.Apply(text, s, rc)
	}
	return text
}

// Names returns the rule names of p.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, r := range p {
		names[i] = r.Name
	}
	return names
}

// Check returns an UnsupportedScriptOperation for the first rule of p which
// does not support s.
func (p Pipeline) Check(s script.Script) error {
	for _, r := range p {
		if !r.Supports(s) {
			return UnsupportedScriptOperation{Rule: r.Name, Script: s}
		}
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

// subst is a single regular expression substitution. repl may contain
// ${n} group references.
type subst struct {
	re   *regexp.Regexp
	repl string
}

func sub(pattern, repl string) subst {
	return subst{re: regexp.MustCompile(pattern), repl: repl}
}

// substitute applies substitutions one after the other.
func substitute(text string, ss []subst) string {
	for _, s := range ss {
		text = s.re.ReplaceAllString(text, s.repl)
	}
	return text
}

// replaceEach applies literal replacements one after the other, so that a
// later pair sees the output of an earlier one.
func replaceEach(text string, pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		text = strings.ReplaceAll(text, pairs[i], pairs[i+1])
	}
	return text
}
