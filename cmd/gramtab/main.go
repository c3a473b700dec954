// Command gramtab is a small front-end for the gramtab engine: it
// loads a CSV grammar sheet and runs parse or generation queries
// against one of its rules.
//
// Examples:
//
//	gramtab -g verbs.csv parse VERB surface=hamx'idan
//	gramtab -g verbs.csv gen VERB --max 5 --random
//	gramtab -g verbs.csv batch VERB queries.yaml
//	gramtab -g verbs.csv rules
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gramtab"
	"github.com/npillmayer/gramtab/sheet"
)

type cli struct {
	Grammar string `short:"g" required:"" type:"existingfile" help:"CSV grammar sheet to load."`
	Trace   bool   `help:"Enable debug tracing."`

	Parse parseCmd `cmd:"" help:"Parse tier values against a rule."`
	Gen   genCmd   `cmd:"" help:"Generate forms from a rule."`
	Batch batchCmd `cmd:"" help:"Run a YAML file of queries against a rule."`
	Rules rulesCmd `cmd:"" help:"List the rules of the grammar."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("gramtab"),
		kong.Description("Tabular grammar engine for morphological parsing and generation."),
		kong.UsageOnError(),
	)
	if c.Trace {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	ctx.FatalIfErrorf(ctx.Run(&c))
}

// loadGrammar ingests the grammar sheet named on the command line.
// Authoring errors in the sheet are printed individually; the query is
// refused if there are any.
func loadGrammar(c *cli) (*gramtab.Grammar, error) {
	g := gramtab.NewGrammar()
	errs, err := sheet.LoadFile(c.Grammar, g)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return nil, fmt.Errorf("grammar sheet contains %d syntax error(s)", len(errs))
	}
	return g, nil
}

// --- parse -------------------------------------------------------------------

type parseCmd struct {
	Rule  string   `arg:"" help:"Rule to parse against."`
	Tiers []string `arg:"" optional:"" name:"tier=value" help:"Input tier assignments."`
	Max   int      `default:"-1" help:"Keep at most this many candidates."`
}

func (p *parseCmd) Run(c *cli) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	input := gramtab.NewRecord()
	for _, kv := range p.Tiers {
		tier, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("expected tier=value, have %q", kv)
		}
		input.Append(gramtab.NewLiteral(tier, value))
	}
	return runQuery(g, p.Rule, input, queryOpts(p.Max, false)...)
}

// --- gen ---------------------------------------------------------------------

type genCmd struct {
	Rule   string `arg:"" help:"Rule to generate from."`
	Max    int    `default:"1" help:"Number of forms to generate."`
	Random bool   `help:"Sample alternatives in random order."`
}

func (p *genCmd) Run(c *cli) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	return runQuery(g, p.Rule, gramtab.NewRecord(), queryOpts(p.Max, p.Random)...)
}

// --- batch -------------------------------------------------------------------

type batchCmd struct {
	Rule string `arg:"" help:"Rule to parse against."`
	File string `arg:"" type:"existingfile" help:"YAML file holding a list of tier:value maps."`
}

func (p *batchCmd) Run(c *cli) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(p.File)
	if err != nil {
		return err
	}
	var queries []map[string]string
	if err := yaml.Unmarshal(data, &queries); err != nil {
		return fmt.Errorf("batch file %s: %w", p.File, err)
	}
	for i, q := range queries {
		input := gramtab.NewRecord()
		for tier, value := range q {
			input.Append(gramtab.NewLiteral(tier, value))
		}
		fmt.Printf("--- query %d: %v\n", i+1, input)
		if err := runQuery(g, p.Rule, input); err != nil {
			return err
		}
	}
	return nil
}

// --- rules -------------------------------------------------------------------

type rulesCmd struct{}

func (p *rulesCmd) Run(c *cli) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	for _, name := range g.RuleNames() {
		table, err := g.Rule(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %d alternative(s)\n", name, table.Len())
	}
	return nil
}

// --- shared query plumbing ---------------------------------------------------

func queryOpts(max int, random bool) []gramtab.QueryOption {
	var opts []gramtab.QueryOption
	if max > 0 {
		opts = append(opts, gramtab.MaxResults(max))
	}
	if random {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		opts = append(opts, gramtab.Shuffle(rng))
	}
	return opts
}

func runQuery(g *gramtab.Grammar, rule string, input *gramtab.Record,
	opts ...gramtab.QueryOption) error {
	//
	table, err := g.Rule(rule)
	if err != nil {
		return err
	}
	results, err := gramtab.Parse(table, input, g, opts...)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no match")
		return nil
	}
	for i, r := range results {
		status := ""
		if complete(input, r.Remnant) {
			status = " (complete)"
		}
		fmt.Printf("#%d%s\n  output  %v\n  remnant %v\n", i+1, status, r.Output, r.Remnant)
	}
	return nil
}

// complete is true if the remnant carries no unconsumed text on any of
// the tiers the input constrained.
func complete(input, remnant *gramtab.Record) bool {
	for i := 0; i < input.Len(); i++ {
		e, err := remnant.Get(input.Entry(i).Key())
		if err != nil {
			continue
		}
		if e.Value() != "" {
			return false
		}
	}
	return true
}
