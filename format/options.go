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

// Package format renders a parsed document back to text, mirroring
// cue/format's indent-tracking printer structure: a walker carrying an
// indentation stack and a handful of layout decisions (single-line vs.
// multiline, requote-or-not) rather than a template engine.
package format

// IndentStyle selects the character used to indent nested table/array
// bodies.
type IndentStyle int

const (
	IndentSpace IndentStyle = iota
	IndentTab
)

// LineEnding selects the newline sequence written between lines.
type LineEnding int

const (
	LineFeed LineEnding = iota
	CRLF
)

func (e LineEnding) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// DateTimeDelimiter controls the separator character written between the
// date and time components of a date-time literal.
type DateTimeDelimiter int

const (
	DelimiterPreserve DateTimeDelimiter = iota
	DelimiterT
	DelimiterSpace
)

// QuoteStyle controls whether escape-free basic/literal strings are
// rewritten to a preferred quote character.
type QuoteStyle int

const (
	QuotePreserve QuoteStyle = iota
	QuoteDouble
	QuoteSingle
)

// Options configures Format, matching spec.md Section 4.6's FormatOptions
// table exactly.
type Options struct {
	IndentStyle       IndentStyle
	IndentWidth       int
	LineWidth         int
	LineEnding        LineEnding
	DateTimeDelimiter DateTimeDelimiter
	QuoteStyle        QuoteStyle
}

// DefaultOptions matches taplo/tombi's own defaults: two-space indent, a
// soft 80-column target, LF line endings, delimiters and quotes preserved
// as written.
func DefaultOptions() Options {
	return Options{
		IndentStyle:       IndentSpace,
		IndentWidth:       2,
		LineWidth:         80,
		LineEnding:        LineFeed,
		DateTimeDelimiter: DelimiterPreserve,
		QuoteStyle:        QuotePreserve,
	}
}

func (o Options) indentUnit() string {
	if o.IndentStyle == IndentTab {
		return "\t"
	}
	w := o.IndentWidth
	if w <= 0 {
		w = 2
	}
	out := make([]byte, w)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
