package gramtab

import (
	"fmt"
	"strings"
)

// A Record is an ordered sequence of Entries. Order is significant: as
// a transducer, a Record is the concatenation of its entries, applied
// left to right. Duplicate keys are legal — a tier may recur within one
// row, e.g. a gloss tier receiving contributions from several
// morphemes.
type Record struct {
	entries []*Entry
}

// NewRecord creates a Record from the given entries, in order.
func NewRecord(entries ...*Entry) *Record {
	return &Record{entries: entries}
}

// RecordOf is a convenience constructor building a Record from
// alternating tier/text string pairs, with synthetic positions:
//
//	input := gramtab.RecordOf("surface", "hamx'idan")
//
// RecordOf panics if the number of arguments is odd.
func RecordOf(tierText ...string) *Record {
	if len(tierText)%2 != 0 {
		panic("gramtab.RecordOf expects an even number of arguments")
	}
	r := NewRecord()
	for i := 0; i < len(tierText); i += 2 {
		r.Append(NewLiteral(tierText[i], tierText[i+1]))
	}
	return r
}

// Append adds an entry at the end of the record.
func (r *Record) Append(e *Entry) {
	r.entries = append(r.entries, e)
}

// Len returns the number of entries.
func (r *Record) Len() int { return len(r.entries) }

// IsEmpty is true for a record without entries.
func (r *Record) IsEmpty() bool { return len(r.entries) == 0 }

// Entry returns the i'th entry of the record.
func (r *Record) Entry(i int) *Entry { return r.entries[i] }

// Has reports whether the record contains an entry for the given tier.
func (r *Record) Has(tier string) bool {
	for _, e := range r.entries {
		if e.Key() == tier {
			return true
		}
	}
	return false
}

// Get scans the record in order and returns the first entry for the
// given tier. Absence of the tier is signalled with ErrKeyNotFound.
func (r *Record) Get(tier string) (*Entry, error) {
	for _, e := range r.entries {
		if e.Key() == tier {
			return e, nil
		}
	}
	return nil, fmt.Errorf("tier %q: %w", tier, ErrKeyNotFound)
}

// Duplicate deep-copies the record and all of its entries.
func (r *Record) Duplicate() *Record {
	d := NewRecord()
	for _, e := range r.entries {
		d.Append(e.Duplicate())
	}
	return d
}

// Combine merges other into a copy of r and returns the result as a new
// Record. For each entry of other, if r already carries the tier, the
// entry's text is concatenated onto the existing value; otherwise the
// entry is copied in at the end. Neither r nor other is modified, and
// no Cell of either is aliased by the result — combined values always
// live in freshly allocated cells, so that candidates branching off the
// same source record cannot clobber each other.
func (r *Record) Combine(other *Record) *Record {
	result := r.Duplicate()
	for _, e := range other.entries {
		prev, err := result.Get(e.Key())
		if err != nil {
			result.Append(e.Duplicate())
			continue
		}
		prev.value.Append(e.Value())
	}
	return result
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// fingerprint returns a canonical encoding of the record's tier:text
// pairs, used by the query engine to recognize rule expansions that
// re-visit an input without having consumed anything.
func (r *Record) fingerprint() string {
	var sb strings.Builder
	for _, e := range r.entries {
		sb.WriteString(e.Key())
		sb.WriteByte(0x1f)
		sb.WriteString(e.Value())
		sb.WriteByte(0x1e)
	}
	return sb.String()
}
