package gramtab

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// A Grammar is a registry of named rules, each rule being one Table.
// Rules may refer to each other — including to themselves — through
// variable-reference entries, which is what makes tabular grammars
// recursive.
//
// A Grammar goes through two strictly ordered phases: during
// construction it is populated with rules and alternatives; once the
// first query runs it must be treated as read-only. A completed Grammar
// may serve any number of concurrent queries.
type Grammar struct {
	rules *linkedhashmap.Map // rule name -> *Table, in definition order
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{rules: linkedhashmap.New()}
}

// NewRule registers an empty rule under the given name and returns its
// Table. If the name is already defined, the existing table is
// returned; clients that consider redefinition an authoring error check
// HasRule first (the sheet reader does).
func (g *Grammar) NewRule(name string) *Table {
	if t, ok := g.rules.Get(name); ok {
		return t.(*Table)
	}
	t := NewTable()
	g.rules.Put(name, t)
	return t
}

// HasRule reports whether a rule of the given name is defined.
func (g *Grammar) HasRule(name string) bool {
	_, ok := g.rules.Get(name)
	return ok
}

// Rule returns the table registered under the given name. An undefined
// name is signalled with ErrSymbolNotFound — never with a silently
// empty table.
func (g *Grammar) Rule(name string) (*Table, error) {
	t, ok := g.rules.Get(name)
	if !ok {
		return nil, fmt.Errorf("rule %q: %w", name, ErrSymbolNotFound)
	}
	return t.(*Table), nil
}

// AddAlternative appends a record as a new alternative of the named
// rule. Appending to an undefined rule fails with ErrSymbolNotFound;
// silently dropping the record would hide grammar-authoring errors.
func (g *Grammar) AddAlternative(name string, r *Record) error {
	t, err := g.Rule(name)
	if err != nil {
		return err
	}
	t.Append(r)
	return nil
}

// RuleCount returns the number of defined rules.
func (g *Grammar) RuleCount() int {
	return g.rules.Size()
}

// RuleNames returns the names of all defined rules, in definition
// order.
func (g *Grammar) RuleNames() []string {
	keys := g.rules.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}
