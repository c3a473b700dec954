package gramtab

import "fmt"

// --- Positions -------------------------------------------------------------

// A Position records where a piece of text originated: the name of the
// spreadsheet (or other source) it was read from, plus row and column
// indices. Positions travel with text through all transformations, so
// that every candidate a parse produces can be traced back to the
// authored cells it came from.
//
// Row and column indices of -1 denote text that was not read from a
// source but synthesized during parsing, e.g. the residual tier text
// after a prefix match.
type Position struct {
	origin string
	row    int
	col    int
}

// At creates a Position for text read from a source cell.
func At(origin string, row, col int) Position {
	return Position{origin: origin, row: row, col: col}
}

// Synthetic creates a Position for text synthesized during parsing.
// The origin of the source text is retained, row and column are not
// meaningful and set to -1.
func Synthetic(origin string) Position {
	return Position{origin: origin, row: -1, col: -1}
}

// Origin returns the name of the source this position refers to.
func (p Position) Origin() string { return p.origin }

// Row returns the row index, or -1 for synthesized text.
func (p Position) Row() int { return p.row }

// Col returns the column index, or -1 for synthesized text.
func (p Position) Col() int { return p.col }

// IsSynthetic is true if this position does not point into a source.
func (p Position) IsSynthetic() bool {
	return p.row < 0 || p.col < 0
}

func (p Position) String() string {
	if p.IsSynthetic() {
		return fmt.Sprintf("%s:?", p.origin)
	}
	return fmt.Sprintf("%s:%d:%d", p.origin, p.row, p.col)
}

// --- Cells -------------------------------------------------------------------

// A Cell is a piece of text tagged with the Position it originated
// from. Cells are the leaves of the grammar object graph: every tier
// name, every tier value, authored or synthesized, is a Cell.
type Cell struct {
	pos  Position
	text string
}

// NewCell creates a Cell from text and a position.
func NewCell(text string, pos Position) *Cell {
	return &Cell{pos: pos, text: text}
}

// Text returns the cell's current text.
func (c *Cell) Text() string { return c.text }

// Position returns the cell's provenance.
func (c *Cell) Position() Position { return c.pos }

// Append concatenates s onto the cell's text, in place. Callers must
// only ever append to cells they own exclusively; cells reachable from
// more than one Record are duplicated first (see Record.Combine).
func (c *Cell) Append(s string) {
	c.text += s
}

// Duplicate returns an independent copy of the cell. The copy shares
// the same Position: provenance tracks the original source location of
// the text, not the transformation that produced the copy.
func (c *Cell) Duplicate() *Cell {
	return &Cell{pos: c.pos, text: c.text}
}

func (c *Cell) String() string {
	return fmt.Sprintf("%q@%s", c.text, c.pos)
}
