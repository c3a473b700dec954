package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/gramtab"
)

// A SyntaxError describes one authoring mistake in a grammar sheet.
// Syntax errors do not stop ingestion; Load collects them and carries
// on, so that a single run surfaces every problem in the sheet.
type SyntaxError struct {
	Origin  string // sheet name
	Row     int    // row index, 0-based
	Col     int    // column index, 0-based; -1 if the error concerns the whole row
	Message string
}

func (e SyntaxError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%s:%d: %s", e.Origin, e.Row, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Origin, e.Row, e.Col, e.Message)
}

// A header is one column header of the current stanza: the tier name
// plus the row it was declared on, for cell provenance.
type header struct {
	tier string
	row  int
}

// A stanza is a series of sheet rows interpreted as a unit: the header
// row that opened it, plus the data rows that follow until the next
// header row. One stanza becomes one named rule.
type stanza struct {
	name    string
	headers map[int]header // column index -> tier header
	skip    bool           // a broken stanza is scanned but not compiled
}

// Load reads CSV grammar data from r and populates g with one named
// rule per table found in the sheet. origin names the sheet for cell
// provenance (typically the file name).
//
// Authoring mistakes are returned as SyntaxError values; ingestion
// continues past them. A non-nil error is returned only for problems
// that make the input unreadable as CSV at all.
func Load(origin string, r io.Reader, g *gramtab.Grammar) ([]SyntaxError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // stanzas have ragged rows
	reader.Comment = '#'
	var errs []SyntaxError
	var current *stanza
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errs, fmt.Errorf("sheet %s: %w", origin, err)
		}
		line, _ := reader.FieldPos(0)
		row := line - 1 // FieldPos lines are 1-based
		if isBlank(cells) {
			continue
		}
		name := clean(cells[0])
		if name != "" { // a new stanza begins
			current = openStanza(origin, name, row, cells, g, &errs)
			continue
		}
		if current == nil {
			errs = append(errs, SyntaxError{origin, row, -1,
				"this row should belong to a previous rule, but no rule precedes it"})
			continue
		}
		if current.skip {
			continue
		}
		rec := current.compileRow(origin, row, cells, &errs)
		if rec.IsEmpty() {
			continue
		}
		if err := g.AddAlternative(current.name, rec); err != nil {
			return errs, err
		}
	}
	T().P("sheet", origin).Debugf("ingested %d rules, %d syntax errors",
		g.RuleCount(), len(errs))
	return errs, nil
}

// LoadFile reads a CSV grammar file into g. The file's base name
// becomes the provenance origin of all cells.
func LoadFile(path string, g *gramtab.Grammar) ([]SyntaxError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(filepath.Base(path), f, g)
}

// openStanza starts a new stanza from a header row and registers its
// rule. A rule name defined twice is an authoring error; the duplicate
// stanza is scanned but its rows are dropped.
func openStanza(origin, name string, row int, cells []string, g *gramtab.Grammar,
	errs *[]SyntaxError) *stanza {
	//
	st := &stanza{name: name, headers: make(map[int]header)}
	if g.HasRule(name) {
		*errs = append(*errs, SyntaxError{origin, row, 0,
			fmt.Sprintf("rule %q is defined twice", name)})
		st.skip = true
		return st
	}
	g.NewRule(name)
	for col, cell := range cells[1:] {
		tier := clean(cell)
		if tier == "" {
			continue
		}
		st.headers[col+1] = header{tier: tier, row: row}
	}
	T().P("rule", name).Debugf("new stanza with %d columns", len(st.headers))
	return st
}

// compileRow turns one data row into a Record, one entry per non-empty
// cell. Key cells point at the column header, value cells at the data
// cell itself.
func (st *stanza) compileRow(origin string, row int, cells []string,
	errs *[]SyntaxError) *gramtab.Record {
	//
	rec := gramtab.NewRecord()
	for col, cell := range cells[1:] {
		text := clean(cell)
		if text == "" {
			continue
		}
		h, ok := st.headers[col+1]
		if !ok {
			*errs = append(*errs, SyntaxError{origin, row, col + 1,
				"cell does not belong to a column header"})
			continue
		}
		key := gramtab.NewCell(h.tier, gramtab.At(origin, h.row, col+1))
		value := gramtab.NewCell(text, gramtab.At(origin, row, col+1))
		rec.Append(gramtab.NewEntry(key, value))
	}
	return rec
}

// clean trims a raw cell and normalizes it to NFC.
func clean(cell string) string {
	return norm.NFC.String(strings.TrimSpace(cell))
}

// isBlank is true for rows consisting solely of empty cells, and for
// comment rows that escaped the CSV-level comment handling by starting
// with whitespace.
func isBlank(cells []string) bool {
	if len(cells) == 0 {
		return true
	}
	if strings.HasPrefix(strings.TrimSpace(cells[0]), "#") {
		return true
	}
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
