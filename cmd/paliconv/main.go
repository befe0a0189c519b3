// Command paliconv converts Pali text read from stdin (or given as
// arguments) into another script and writes it to stdout.
//
//	echo "buddhaṃ saraṇaṃ gacchāmi" | paliconv -to Thai
//	paliconv -from Latn -to Deva buddha
//	paliconv -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/paliscript"
	"github.com/npillmayer/paliscript/script"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/text/language"
)

var traceKeys = []string{"root", "paliscript", "paliscript.lookup", "paliscript.script", "paliscript.rules"}

func main() {
	var (
		from    = flag.String("from", "", "script of the input, e.g. Latn; empty detects scripts per run")
		to      = flag.String("to", "Latn", "script of the output")
		list    = flag.Bool("list", false, "list supported scripts and exit")
		render  = flag.String("render", "", "render context: cen or gatha")
		format  = flag.String("format", "whole", "formatting: whole, words or compact")
		backend = flag.String("backend", "buckets", "lookup backend: buckets or trie")
		level   = flag.String("trace", "", "trace level: Error, Info or Debug")
	)
	flag.Parse()
	if *list {
		listScripts(os.Stdout)
		return
	}
	conf := cliConfig{
		paliscript.ConfigRender:     *render,
		paliscript.ConfigFormatting: *format,
		paliscript.ConfigBackend:    *backend,
	}
	if *level != "" {
		if err := setupTracing(conf, *level); err != nil {
			log.Fatalf("tracing: %v", err)
		}
	}
	target, err := script.Parse(*to)
	if err != nil {
		log.Fatal(err)
	}
	engine, err := paliscript.NewFromConfig(conf)
	if err != nil {
		log.Fatal(err)
	}
	var text string
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	} else {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		text = string(input)
	}
	if *from == "" {
		fmt.Print(engine.ConvertAny(text, target))
	} else {
		source, err := script.Parse(*from)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(engine.Convert(text, source, target))
	}
	if flag.NArg() > 0 {
		fmt.Println()
	}
}

// setupTracing routes all paliscript tracers to a Go logger on stderr.
func setupTracing(conf cliConfig, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf["tracing.adapter"] = "go"
	for _, key := range traceKeys {
		conf["tracelevel."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func listScripts(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "code\tname\tnative\tlocale\tlanguage")
	for _, s := range script.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Code(), s.Name(), s.NativeName(),
			s.Locale(), s.LanguageName(language.English))
	}
	tw.Flush()
}

// cliConfig holds the settings given on the command line.
type cliConfig map[string]string

func (c cliConfig) InitDefaults() {}

func (c cliConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c cliConfig) GetString(key string) string {
	return c[key]
}

func (c cliConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c cliConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c cliConfig) IsInteractive() bool { return false }
