/*
Package sheet reads spreadsheet data (CSV) into a grammar.

Grammar authors work in spreadsheets: one table per rule, one row per
alternative, one column per tier. This package implements the ingestion
contract between such sheets and the gramtab engine:

  - A row whose first cell is non-empty starts a new table. The first
    cell is the rule name; the remaining non-empty cells are column
    headers, i.e. tier names.
  - Rows with an empty first cell continue the current table: every
    non-empty cell becomes one key:value entry under its column's
    header.
  - A column headed "var" is reserved; its cells name other rules to
    splice in, never literal tier text.
  - Rows that are entirely empty, or whose first cell starts with "#",
    are ignored.

Every cell carries its sheet name, row and column through to the
engine, so that parse results remain traceable to the authored
spreadsheet cells. Cell text is trimmed and normalized to Unicode NFC;
morphological data routinely mixes composed and decomposed accents, and
prefix matching requires a single normal form.

Authoring mistakes (stray cells, continuation rows without a table,
rules defined twice) are collected as SyntaxError values rather than
aborting at the first problem, so that all of them surface in one run.

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
*/
package sheet

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
