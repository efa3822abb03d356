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

package parser

import (
	"fmt"

	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/lexer"
	"github.com/tombi-toolkit/tombi-go/internal/text"
	"github.com/tombi-toolkit/tombi-go/version"
)

// ErrorKind enumerates the grammar-level mistakes the parser can report.
// It deliberately mirrors the original Error enum's member names so the
// grounding in grammar/*.rs and parse/*.rs stays legible.
type ErrorKind int

const (
	ExpectedKey ErrorKind = iota
	ExpectedEquals
	ExpectedValue
	ExpectedComma
	ExpectedBracketEnd
	ExpectedDoubleBracketEnd
	ExpectedBraceEnd
	ExpectedLineBreak
	ExpectedLineBreakOrComment
	ForbiddenKeysLastPeriod
	InlineTableMustSingleLine
	ForbiddenInlineTableLastComma
)

var errorMessages = map[ErrorKind]string{
	ExpectedKey:                   "expected a key",
	ExpectedEquals:                "expected '='",
	ExpectedValue:                 "expected a value",
	ExpectedComma:                 "expected ','",
	ExpectedBracketEnd:            "expected ']'",
	ExpectedDoubleBracketEnd:      "expected ']]'",
	ExpectedBraceEnd:              "expected '}'",
	ExpectedLineBreak:             "expected a line break",
	ExpectedLineBreakOrComment:    "expected a line break or comment",
	ForbiddenKeysLastPeriod:       "a key cannot end with '.'",
	InlineTableMustSingleLine:     "an inline table must fit on a single line in TOML 1.0.0",
	ForbiddenInlineTableLastComma: "an inline table cannot end with ',' in TOML 1.0.0",
}

// Error is a parser diagnostic, optionally restricted to a subset of TOML
// versions: e.g. ForbiddenInlineTableLastComma only fires while parsing
// under v1.0.0, since the same green tree can otherwise be shared across
// dialects (TomlVersionedError in the original design).
type Error struct {
	Kind     ErrorKind
	Range    text.Range
	Versions version.Set
}

func newError(kind ErrorKind, r text.Range) Error {
	return Error{Kind: kind, Range: r}
}

func newVersionedError(kind ErrorKind, r text.Range, vs version.Set) Error {
	return Error{Kind: kind, Range: r, Versions: vs}
}

// AppliesTo reports whether e should be reported when parsing under v.
func (e Error) AppliesTo(v version.TOML) bool { return v.Compatible(e.Versions) }

func (e Error) Error() string {
	msg, ok := errorMessages[e.Kind]
	if !ok {
		msg = fmt.Sprintf("parse error %d", e.Kind)
	}
	return msg
}

var _ diagnostic.Diagnostic = parserDiagnostic{}

// parserDiagnostic adapts an Error to diagnostic.Diagnostic; Error itself
// stays a plain value type so grammar code can construct and compare it
// cheaply without satisfying an interface at every call site.
type parserDiagnostic struct{ err Error }

func (d parserDiagnostic) Error() string                 { return d.err.Error() }
func (d parserDiagnostic) Range() text.Range          { return d.err.Range }
func (d parserDiagnostic) Severity() diagnostic.Severity { return diagnostic.Error }

// Diagnostics filters errs down to those applicable to v and adapts them
// to diagnostic.Diagnostic.
func Diagnostics(errs []Error, v version.TOML) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(errs))
	for _, e := range errs {
		if e.AppliesTo(v) {
			out = append(out, parserDiagnostic{e})
		}
	}
	return out
}

// AllDiagnostics merges r's lexer and parser diagnostics into a single
// list, suitable for printing or for deciding a CLI exit code.
func (r Result) AllDiagnostics(v version.TOML) []diagnostic.Diagnostic {
	out := lexer.Diagnostics(r.LexErrors)
	return append(out, Diagnostics(r.ParseErrors, v)...)
}
