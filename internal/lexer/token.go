// Copyright 2026 The Tombi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// Token is a single lexical unit: a span/range-addressed slice of the
// source plus its classification. Trivia (whitespace, line breaks,
// comments) are ordinary tokens, not filtered out here -- the parser
// decides what to do with them.
type Token struct {
	Kind  syntax.Kind
	Text  string
	Span  text.Span
	Range text.Range
}

// RangeText returns the substring of src described by r, recomputing it
// from r rather than trusting Token.Text; useful once a token has been
// sliced out of its original context (e.g. after an edit). Columns are
// UTF-16 code units, matching text.Column.
func RangeText(src string, r text.Range) string {
	lines := splitKeepEnds(src)
	if int(r.Start.Line) >= len(lines) {
		return ""
	}
	var b []rune
	for i := r.Start.Line; i <= r.End.Line && int(i) < len(lines); i++ {
		runes := []rune(lines[i])
		startCol, endCol := 0, utf16Len(runes)
		if i == r.Start.Line {
			startCol = int(r.Start.Column)
		}
		if i == r.End.Line {
			endCol = int(r.End.Column)
		}
		b = append(b, runesForUTF16Range(runes, startCol, endCol)...)
	}
	return string(b)
}

func utf16Len(runes []rune) int {
	n := 0
	for _, r := range runes {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// runesForUTF16Range slices runes by a [start, end) range measured in
// UTF-16 code units.
func runesForUTF16Range(runes []rune, start, end int) []rune {
	var out []rune
	unit := 0
	for _, r := range runes {
		width := 1
		if r > 0xFFFF {
			width = 2
		}
		if unit >= start && unit < end {
			out = append(out, r)
		}
		unit += width
		if unit >= end {
			break
		}
	}
	return out
}

func splitKeepEnds(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
