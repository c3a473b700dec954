package gramtab

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestPosition(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := At("lexicon.csv", 3, 2)
	if p.IsSynthetic() {
		t.Errorf("position %v should not be synthetic", p)
	}
	if p.String() != "lexicon.csv:3:2" {
		t.Errorf("expected position to print as lexicon.csv:3:2, is %s", p)
	}
	s := Synthetic("lexicon.csv")
	if !s.IsSynthetic() {
		t.Errorf("position %v should be synthetic", s)
	}
	if s.Origin() != "lexicon.csv" {
		t.Errorf("synthetic position should retain origin, has %q", s.Origin())
	}
}

func TestCellAppend(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	c := NewCell("hamx'id", At("lexicon.csv", 2, 1))
	c.Append("an")
	if c.Text() != "hamx'idan" {
		t.Errorf("expected appended cell text to be hamx'idan, is %q", c.Text())
	}
}

func TestCellDuplicate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	c := NewCell("qotl", At("lexicon.csv", 3, 1))
	d := c.Duplicate()
	d.Append("as")
	if c.Text() != "qotl" {
		t.Errorf("duplicate should be independent; original mutated to %q", c.Text())
	}
	if d.Position() != c.Position() {
		t.Errorf("duplicate should share provenance, has %v", d.Position())
	}
}

func TestEntryDuplicate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	e := NewLiteral("surf", "blep")
	d := e.Duplicate()
	d.ValueCell().Append("ton")
	if e.Value() != "blep" {
		t.Errorf("entry duplicate should deep-copy cells; original value is %q", e.Value())
	}
	if d.Key() != "surf" || d.Value() != "blepton" {
		t.Errorf("expected duplicate to read surf:blepton, is %v", d)
	}
}

func TestRecordGet(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r := NewRecord(
		NewLiteral("gl", "[jump]"),
		NewLiteral("surf", "blep"),
		NewLiteral("gl", "[3sg]"),
	)
	if !r.Has("surf") {
		t.Error("record should have tier surf")
	}
	e, err := r.Get("gl")
	if err != nil {
		t.Fatalf("Get(gl) failed: %s", err)
	}
	if e.Value() != "[jump]" {
		t.Errorf("Get should return the first match; have %q", e.Value())
	}
	if _, err := r.Get("tone"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound for absent tier, have %v", err)
	}
}

func TestRecordCombine(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r1 := NewRecord(NewLiteral("gl", "[jump]"))
	r2 := NewRecord(NewLiteral("gl", "[3sg]"), NewLiteral("surf", "ton"))
	sum := r1.Combine(r2)
	if v, _ := sum.Get("gl"); v.Value() != "[jump][3sg]" {
		t.Errorf("expected combined gl to be [jump][3sg], is %q", v.Value())
	}
	if v, _ := sum.Get("surf"); v.Value() != "ton" {
		t.Errorf("expected foreign tier surf to be copied in, is %q", v.Value())
	}
	// neither operand may be touched
	if v, _ := r1.Get("gl"); v.Value() != "[jump]" {
		t.Errorf("Combine mutated its receiver: gl = %q", v.Value())
	}
	if r2.Len() != 2 {
		t.Errorf("Combine mutated its argument: len = %d", r2.Len())
	}
	// and the result may not alias operand cells
	v, _ := sum.Get("surf")
	v.ValueCell().Append("X")
	if w, _ := r2.Get("surf"); w.Value() != "ton" {
		t.Errorf("combined record aliases argument cells: surf = %q", w.Value())
	}
}

func TestGrammarRegistry(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	g := NewGrammar()
	g.NewRule("VSTEM")
	g.NewRule("VERB")
	if !g.HasRule("VSTEM") {
		t.Error("grammar should have rule VSTEM")
	}
	if _, err := g.Rule("NOUN"); !errors.Is(err, ErrSymbolNotFound) {
		t.Errorf("expected ErrSymbolNotFound for undefined rule, have %v", err)
	}
	if err := g.AddAlternative("NOUN", NewRecord()); !errors.Is(err, ErrSymbolNotFound) {
		t.Errorf("appending to an undefined rule should fail loudly, have %v", err)
	}
	if err := g.AddAlternative("VSTEM", RecordOf("surf", "qotl")); err != nil {
		t.Fatalf("AddAlternative failed: %s", err)
	}
	tbl, _ := g.Rule("VSTEM")
	if tbl.Len() != 1 {
		t.Errorf("expected 1 alternative under VSTEM, have %d", tbl.Len())
	}
	names := g.RuleNames()
	if len(names) != 2 || names[0] != "VSTEM" || names[1] != "VERB" {
		t.Errorf("rule names should keep definition order, have %v", names)
	}
}
