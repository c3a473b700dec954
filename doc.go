/*
Package gramtab implements a tabular grammar engine for morphological
parsing and generation.

Description

Morphological grammars describe how word forms are assembled from smaller
meaningful parts (morphemes), and how the same word form is decomposed
again during analysis. Field linguists routinely collect this kind of
information in spreadsheets: one table per word class or morpheme class,
one row per alternative, one column per "tier" of linguistic
representation (surface form, gloss, morphological category, and so on).

gramtab interprets such tables directly as a grammar. No intermediate
rule language is involved: the table *is* the rule. A table of rows is an
alternation (any row may apply), a row of cells is a concatenation (all
cells apply in sequence), and a single key:value cell is a literal that
matches a prefix of the named tier. A reserved column "var" splices in
another named table, which makes grammars recursive.

The same declarative structure runs in both directions. Tiers present in
the input are parsed (consumed by prefix matching); tiers absent from the
input are generated. Parsing the surface form of a word thus produces its
gloss, and parsing a gloss produces surface forms, with no change to the
grammar.

Parsing is non-deterministic: a query returns every admissible way of
decomposing the input, as a list of (output, remnant) candidates. An
empty remnant on the queried tier means the input was consumed
completely. Ambiguity is deliberately preserved; it is up to the caller
to rank or filter candidates.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The transducer algebra lives in this base package: Cell, Entry, Record
and Table are the grammar building blocks, Grammar is the registry of
named rules, and Parse is the single query operation. Grammars are
usually not built by hand but ingested from spreadsheet data; see
sub-package sheet for the CSV reader. A small command-line front-end
lives under cmd/gramtab.

Construction and querying are two strictly separated phases: a Grammar
is populated first and treated as read-only afterwards. Concurrent
queries against a completed Grammar are safe; mutating a Grammar while
queries are running is not.
*/
package gramtab

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// VarKey is the reserved key token marking an Entry as a variable
// reference: the Entry's value names a rule in the Grammar instead of
// literal tier text.
const VarKey = "var"
