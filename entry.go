package gramtab

import "fmt"

// An Entry pairs a key Cell (the tier name) with a value Cell (the tier
// text). Entries are the atomic transducers of the algebra: during a
// query an Entry either consumes a prefix of the named tier in the
// input, or — if the input does not constrain that tier — produces the
// tier text as output.
//
// An Entry whose key is the reserved token "var" is not a literal; its
// value names a rule in the Grammar to splice in (see VarKey).
//
// Entries are immutable once built; parsing never modifies them.
type Entry struct {
	key   *Cell
	value *Cell
}

// NewEntry creates an Entry from a key cell and a value cell.
func NewEntry(key, value *Cell) *Entry {
	return &Entry{key: key, value: value}
}

// NewLiteral creates an Entry from bare tier name and text, with
// synthetic positions. Grammars ingested from spreadsheets carry real
// positions instead; NewLiteral is for programmatic construction and
// for assembling input records.
func NewLiteral(tier, text string) *Entry {
	return &Entry{
		key:   NewCell(tier, Synthetic("")),
		value: NewCell(text, Synthetic("")),
	}
}

// NewVar creates a variable-reference Entry naming a grammar rule.
func NewVar(rule string) *Entry {
	return NewLiteral(VarKey, rule)
}

// Key returns the tier name.
func (e *Entry) Key() string { return e.key.Text() }

// Value returns the tier text.
func (e *Entry) Value() string { return e.value.Text() }

// KeyCell returns the key cell, including its provenance.
func (e *Entry) KeyCell() *Cell { return e.key }

// ValueCell returns the value cell, including its provenance.
func (e *Entry) ValueCell() *Cell { return e.value }

// IsVar is true for variable-reference entries.
func (e *Entry) IsVar() bool {
	return e.key.Text() == VarKey
}

// Duplicate deep-copies the entry, i.e. both of its cells.
func (e *Entry) Duplicate() *Entry {
	return &Entry{key: e.key.Duplicate(), value: e.value.Duplicate()}
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s:%q", e.key.Text(), e.value.Text())
}
