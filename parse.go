package gramtab

import (
	"fmt"
	"math/rand"
	"strings"
)

// Transducer is the closed set of grammar components a query may be run
// against: *Entry (literal or variable reference), *Record (sequence)
// and *Table (alternation). The set is sealed; queries dispatch over it
// with a single explicit type switch.
type Transducer interface {
	transducer()
}

func (e *Entry) transducer()  {}
func (r *Record) transducer() {}
func (t *Table) transducer()  {}

// A Result is one admissible way of applying a transducer to an input:
// the Output record collects what the transducer produced (matched tier
// prefixes and generated tiers), the Remnant record holds what is left
// of the input. An empty Remnant value on the queried tier means the
// input was consumed completely.
type Result struct {
	Output  *Record
	Remnant *Record
}

// DefaultRecursionLimit bounds how deeply a single rule may be expanded
// within one branch of a query. Expansions that consume input terminate
// on their own, and expansions that do not consume are caught as cycles
// regardless of depth; the limit is a safety valve for grammars that
// interleave both.
const DefaultRecursionLimit = 64

type query struct {
	maxResults int // cap on the candidate set, -1 = unbounded
	limit      int // recursion limit for rule expansion
	rng        *rand.Rand
}

// A QueryOption modifies the behavior of a single Parse call.
type QueryOption func(*query)

// MaxResults caps the number of candidates a query keeps. The cap is
// applied after every sequencing step and stops alternation early, so
// it prunes work, not just the final list. Results beyond the cap are
// dropped in priority order.
func MaxResults(n int) QueryOption {
	return func(q *query) { q.maxResults = n }
}

// Shuffle makes alternation try a table's records in random order,
// which turns generation into sampling. Results coming from the same
// alternative remain adjacent; only the order of alternatives is
// randomized. Typically combined with MaxResults(1).
func Shuffle(rng *rand.Rand) QueryOption {
	return func(q *query) { q.rng = rng }
}

// RecursionLimit overrides DefaultRecursionLimit for one query.
func RecursionLimit(n int) QueryOption {
	return func(q *query) { q.limit = n }
}

// env is the read-only-grammar query context, threaded explicitly
// through every recursive step. It carries the registry plus the
// bookkeeping for the recursion guard; it is never shared between
// queries.
type env struct {
	grammar *Grammar
	q       query
	depth   map[string]int             // per-rule expansion depth on the current branch
	pending map[string]map[string]bool // per-rule input fingerprints currently expanding
}

// Parse runs a query: it applies transducer t to the input record and
// returns every admissible (output, remnant) split, in grammar order.
// Variable references are resolved against g; a grammar-less query may
// pass nil if t contains no references.
//
// An empty result list with a nil error is an ordinary failed match.
// A non-nil error indicates a structural problem — an undefined rule
// name (ErrSymbolNotFound) or runaway recursion (ErrCycleDetected,
// ErrRecursionLimitExceeded) — and aborts the query as a whole.
//
// The grammar must not be mutated while Parse is running. Concurrent
// Parse calls against a completed grammar are safe.
func Parse(t Transducer, input *Record, g *Grammar, opts ...QueryOption) ([]Result, error) {
	q := query{maxResults: -1, limit: DefaultRecursionLimit}
	for _, opt := range opts {
		opt(&q)
	}
	e := &env{
		grammar: g,
		q:       q,
		depth:   make(map[string]int),
		pending: make(map[string]map[string]bool),
	}
	return parse(t, input, e)
}

// parse dispatches over the closed transducer variant set.
func parse(t Transducer, input *Record, e *env) ([]Result, error) {
	switch t := t.(type) {
	case *Entry:
		if t.IsVar() {
			return parseVar(t, input, e)
		}
		return parseLiteral(t, input)
	case *Record:
		return parseSeq(t, input, e)
	case *Table:
		return parseAlt(t, input, e)
	}
	panic("gramtab: transducer variant set is sealed") // cannot happen
}

// parseLiteral applies a literal entry to the input.
//
// If the input does not constrain the literal's tier, the literal is
// generated: it contributes itself as output and passes the input
// through untouched. Otherwise every input entry on that tier must
// start with the literal's text; the matched prefix is consumed and the
// residue becomes the remnant, carrying a synthesized position.
func parseLiteral(lit *Entry, input *Record) ([]Result, error) {
	if !input.Has(lit.Key()) {
		return []Result{{Output: NewRecord(lit.Duplicate()), Remnant: input}}, nil
	}
	out, rem := NewRecord(), NewRecord()
	for i := 0; i < input.Len(); i++ {
		ie := input.Entry(i)
		if ie.Key() != lit.Key() {
			rem.Append(ie.Duplicate())
			continue
		}
		if !strings.HasPrefix(ie.Value(), lit.Value()) {
			T().Debugf("literal %v does not prefix %v", lit, ie)
			return nil, nil
		}
		out.Append(lit.Duplicate())
		residue := NewCell(ie.Value()[len(lit.Value()):],
			Synthetic(ie.ValueCell().Position().Origin()))
		rem.Append(NewEntry(ie.KeyCell().Duplicate(), residue))
	}
	return []Result{{Output: out, Remnant: rem}}, nil
}

// parseVar resolves a variable reference and delegates to the named
// rule's table. The recursion guard lives here: expansion depth per
// rule is bounded by the query's limit, and re-expanding a rule on an
// input it is already expanding (no consumption in between) is a cycle.
func parseVar(v *Entry, input *Record, e *env) ([]Result, error) {
	name := v.Value()
	if e.grammar == nil {
		return nil, fmt.Errorf("rule %q: %w", name, ErrSymbolNotFound)
	}
	table, err := e.grammar.Rule(name)
	if err != nil {
		return nil, err
	}
	if e.depth[name] >= e.q.limit {
		return nil, fmt.Errorf("rule %q: %w", name, ErrRecursionLimitExceeded)
	}
	fp := input.fingerprint()
	if e.pending[name][fp] {
		return nil, fmt.Errorf("rule %q: %w", name, ErrCycleDetected)
	}
	if e.pending[name] == nil {
		e.pending[name] = make(map[string]bool)
	}
	e.pending[name][fp] = true
	e.depth[name]++
	T().P("rule", name).Debugf("expanding on %v", input)
	results, err := parseAlt(table, input, e)
	e.depth[name]--
	delete(e.pending[name], fp)
	return results, err
}

// parseSeq applies a record's entries left to right as a concatenation.
// The candidate set starts as {(empty output, input)}; every entry
// replaces each candidate with the cross-product of its own results,
// accumulating outputs via Combine. Candidates that yield nothing for
// some entry are dropped. An empty record matches any input trivially.
func parseSeq(rec *Record, input *Record, e *env) ([]Result, error) {
	cands := []*candidate{newPooledCandidate(NewRecord(), input)}
	for i := 0; i < rec.Len(); i++ {
		entry := rec.Entry(i)
		next := make([]*candidate, 0, len(cands))
		for j, c := range cands {
			sub, err := parse(entry, c.rem, e)
			if err != nil {
				releaseAll(cands[j:])
				releaseAll(next)
				return nil, err
			}
			for _, s := range sub {
				next = append(next, newPooledCandidate(c.out.Combine(s.Output), s.Remnant))
			}
			c.releaseIntoPool()
		}
		cands = next
		if e.q.maxResults > 0 && len(cands) > e.q.maxResults {
			releaseAll(cands[e.q.maxResults:])
			cands = cands[:e.q.maxResults]
		}
		if len(cands) == 0 {
			T().Debugf("sequence %v failed at entry %v", rec, entry)
			return nil, nil
		}
	}
	results := make([]Result, len(cands))
	for i, c := range cands {
		results[i] = Result{Output: c.out, Remnant: c.rem}
		c.releaseIntoPool()
	}
	return results, nil
}

// parseAlt applies every record of a table to the same input and
// concatenates the results, preserving table order (or a shuffled order
// when sampling). An empty table never matches.
func parseAlt(tbl *Table, input *Record, e *env) ([]Result, error) {
	n := tbl.Len()
	if n == 0 {
		return nil, nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if e.q.rng != nil {
		e.q.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	var results []Result
	for _, i := range order {
		sub, err := parseSeq(tbl.Record(i), input, e)
		if err != nil {
			return nil, err
		}
		results = append(results, sub...)
		if e.q.maxResults > 0 && len(results) >= e.q.maxResults {
			return results[:e.q.maxResults], nil
		}
	}
	return results, nil
}
