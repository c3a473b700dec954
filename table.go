package gramtab

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// A Table is an ordered sequence of Records. As a transducer, a Table
// is the alternation (union) of its records: every record is tried
// against the same input, and all results are kept. Record order
// determines the order of results, never which results survive — no
// pruning or scoring takes place.
type Table struct {
	records *arraylist.List
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{records: arraylist.New()}
}

// Append adds a record as the last alternative of the table.
func (t *Table) Append(r *Record) {
	t.records.Add(r)
}

// Len returns the number of alternatives.
func (t *Table) Len() int { return t.records.Size() }

// Record returns the i'th alternative of the table.
func (t *Table) Record(i int) *Record {
	r, ok := t.records.Get(i)
	if !ok {
		return nil
	}
	return r.(*Record)
}

// Each calls f on every alternative, in declaration order.
func (t *Table) Each(f func(i int, r *Record)) {
	t.records.Each(func(i int, v interface{}) {
		f(i, v.(*Record))
	})
}

func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	t.Each(func(i int, r *Record) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
	})
	sb.WriteByte(']')
	return sb.String()
}
