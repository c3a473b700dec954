package sheet_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/gramtab"
	"github.com/npillmayer/gramtab/sheet"
	"github.com/npillmayer/schuko/testconfig"
)

const toyGrammar = `# toy verb grammar
VSTEM,surface,gloss
,hamx'id,eat
,qotl,know

VERB,var,surface,gloss
,VSTEM,an,-1SG
`

func TestLoadToyGrammar(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	g := gramtab.NewGrammar()
	errs, err := sheet.Load("toy.csv", strings.NewReader(toyGrammar), g)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no syntax errors, have %v", errs)
	}
	names := g.RuleNames()
	if len(names) != 2 || names[0] != "VSTEM" || names[1] != "VERB" {
		t.Fatalf("expected rules [VSTEM VERB] in sheet order, have %v", names)
	}
	vstem, err := g.Rule("VSTEM")
	if err != nil {
		t.Fatalf("rule lookup failed: %s", err)
	}
	if vstem.Len() != 2 {
		t.Errorf("expected 2 alternatives under VSTEM, have %d", vstem.Len())
	}
}

func TestLoadPositions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	g := gramtab.NewGrammar()
	if _, err := sheet.Load("toy.csv", strings.NewReader(toyGrammar), g); err != nil {
		t.Fatalf("load failed: %s", err)
	}
	vstem, _ := g.Rule("VSTEM")
	entry, err := vstem.Record(0).Get("surface")
	if err != nil {
		t.Fatalf("expected a surface entry in the first alternative: %s", err)
	}
	if entry.Value() != "hamx'id" {
		t.Errorf("expected first stem to be hamx'id, is %q", entry.Value())
	}
	vpos := entry.ValueCell().Position()
	if vpos.Origin() != "toy.csv" || vpos.Row() != 2 || vpos.Col() != 1 {
		t.Errorf("expected value cell at toy.csv:2:1, is %v", vpos)
	}
	kpos := entry.KeyCell().Position()
	if kpos.Row() != 1 || kpos.Col() != 1 {
		t.Errorf("expected key cell to point at the header row toy.csv:1:1, is %v", kpos)
	}
}

func TestLoadAndParse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	g := gramtab.NewGrammar()
	if _, err := sheet.Load("toy.csv", strings.NewReader(toyGrammar), g); err != nil {
		t.Fatalf("load failed: %s", err)
	}
	verb, err := g.Rule("VERB")
	if err != nil {
		t.Fatalf("rule lookup failed: %s", err)
	}
	results, err := gramtab.Parse(verb, gramtab.RecordOf("surface", "hamx'idan"), g)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 analysis, have %d", len(results))
	}
	gloss, _ := results[0].Output.Get("gloss")
	if gloss.Value() != "eat-1SG" {
		t.Errorf("expected gloss eat-1SG, is %q", gloss.Value())
	}
	rest, _ := results[0].Remnant.Get("surface")
	if rest.Value() != "" {
		t.Errorf("expected the surface form to be consumed, remnant is %q", rest.Value())
	}
}

const brokenGrammar = `,orphan,row
VSTEM,surface
,qotl,stray
VSTEM,surface
,x
`

func TestLoadSyntaxErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	g := gramtab.NewGrammar()
	errs, err := sheet.Load("broken.csv", strings.NewReader(brokenGrammar), g)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 syntax errors (orphan row, stray cell, duplicate rule), have %d: %v",
			len(errs), errs)
	}
	if errs[0].Row != 0 {
		t.Errorf("expected orphan-row error on row 0, is on row %d", errs[0].Row)
	}
	if errs[1].Row != 2 || errs[1].Col != 2 {
		t.Errorf("expected stray-cell error at 2:2, is at %d:%d", errs[1].Row, errs[1].Col)
	}
	if errs[2].Row != 3 {
		t.Errorf("expected duplicate-rule error on row 3, is on row %d", errs[2].Row)
	}
	// the broken sheet still yields the rows that were well-formed
	vstem, err := g.Rule("VSTEM")
	if err != nil {
		t.Fatalf("rule lookup failed: %s", err)
	}
	if vstem.Len() != 1 {
		t.Errorf("expected 1 alternative to survive under VSTEM, have %d", vstem.Len())
	}
}

func TestLoadNormalizesNFC(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// "ne" followed by a combining acute accent must end up composed
	src := "STEM,surface\n,ne\u0301\n"
	g := gramtab.NewGrammar()
	if _, err := sheet.Load("nfc.csv", strings.NewReader(src), g); err != nil {
		t.Fatalf("load failed: %s", err)
	}
	stem, _ := g.Rule("STEM")
	entry, err := stem.Record(0).Get("surface")
	if err != nil {
		t.Fatalf("expected a surface entry: %s", err)
	}
	if entry.Value() != "n\u00e9" {
		t.Errorf("expected cell text normalized to NFC, is %q", entry.Value())
	}
}
