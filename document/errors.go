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

package document

import (
	"fmt"

	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// ErrorKind enumerates the semantic problems lowering can encounter, one
// member per error named in spec.md Section 7's "Document-tree errors"
// group.
type ErrorKind int

const (
	DuplicateKey ErrorKind = iota
	ConflictArray
	ParseIntError
	ParseFloatError
	ParseOffsetDateTimeError
	ParseLocalDateTimeError
	ParseLocalDateError
	ParseLocalTimeError
	IncompleteNode
	ParseStringError
)

// Error is a single document-tree diagnostic. Key is populated for
// DuplicateKey/ConflictArray; Detail carries a human-readable cause for
// the parse-error kinds.
type Error struct {
	Kind   ErrorKind
	Key    string
	Detail string
	Range  text.Range
}

var kindNames = map[ErrorKind]string{
	DuplicateKey:             "duplicate key",
	ConflictArray:            "conflicting array",
	ParseIntError:            "invalid integer literal",
	ParseFloatError:          "invalid float literal",
	ParseOffsetDateTimeError: "invalid offset date-time literal",
	ParseLocalDateTimeError:  "invalid local date-time literal",
	ParseLocalDateError:      "invalid local date literal",
	ParseLocalTimeError:      "invalid local time literal",
	IncompleteNode:           "incomplete value",
	ParseStringError:         "invalid string literal",
}

func (e Error) Error() string {
	name := kindNames[e.Kind]
	switch e.Kind {
	case DuplicateKey:
		return fmt.Sprintf("%s: %q", name, e.Key)
	case ConflictArray:
		return fmt.Sprintf("%s: %q is already defined as a non-array value", name, e.Key)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s", name, e.Detail)
		}
		return name
	}
}

var _ diagnostic.Diagnostic = documentDiagnostic{}

type documentDiagnostic struct{ err Error }

func (d documentDiagnostic) Error() string                 { return d.err.Error() }
func (d documentDiagnostic) Range() text.Range             { return d.err.Range }
func (d documentDiagnostic) Severity() diagnostic.Severity { return diagnostic.Error }

// Diagnostics adapts errs to diagnostic.Diagnostic for uniform printing
// alongside lexer/parser errors.
func Diagnostics(errs []Error) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, documentDiagnostic{e})
	}
	return out
}
