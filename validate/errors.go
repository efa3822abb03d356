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

// Package validate traverses a document-tree against a resolved JSON
// schema graph, producing diagnostics. Traversal is asynchronous because
// dereferencing a `$ref` may need to fetch a schema document; oneOf/anyOf/
// allOf branches run concurrently via golang.org/x/sync/errgroup, per
// spec.md Section 5's "fan-out/await" concurrency model.
package validate

import (
	"fmt"

	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// ErrorKind enumerates the validator diagnostic kinds named in spec.md
// Section 7.
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	Enumerate
	MaximumInteger
	MinimumInteger
	MaximumFloat
	MinimumFloat
	ExclusiveMaximumInteger
	ExclusiveMinimumInteger
	ExclusiveMaximumFloat
	ExclusiveMinimumFloat
	MultipleOfInteger
	MultipleOfFloat
	MaximumLength
	MinimumLength
	Pattern
	MaxItems
	MinItems
	UniqueItems
	MaxProperties
	MinProperties
	PatternProperty
	KeyRequired
	KeyNotAllowed
)

// Diagnostic is a single validation failure. Expected/Actual are
// human-readable renderings of the schema constraint and the offending
// value (spec.md Section 8, scenario 5: `expected = ["a", "b"], actual =
// "c"`).
type Diagnostic struct {
	Kind     ErrorKind
	Range_   text.Range
	Expected string
	Actual   string
	Detail   string
}

func (d Diagnostic) Range() text.Range             { return d.Range_ }
func (d Diagnostic) Severity() diagnostic.Severity { return diagnostic.Error }

func (d Diagnostic) Error() string {
	msg := d.Detail
	if msg == "" {
		msg = d.kindLabel()
	}
	switch {
	case d.Expected != "" && d.Actual != "":
		return fmt.Sprintf("%s: expected %s, got %s", msg, d.Expected, d.Actual)
	case d.Expected != "":
		return fmt.Sprintf("%s: expected %s", msg, d.Expected)
	default:
		return msg
	}
}

func (d Diagnostic) kindLabel() string {
	switch d.Kind {
	case TypeMismatch:
		return "type mismatch"
	case Enumerate:
		return "value not in enum"
	case MaximumInteger, MaximumFloat:
		return "value exceeds maximum"
	case MinimumInteger, MinimumFloat:
		return "value below minimum"
	case ExclusiveMaximumInteger, ExclusiveMaximumFloat:
		return "value at or above exclusive maximum"
	case ExclusiveMinimumInteger, ExclusiveMinimumFloat:
		return "value at or below exclusive minimum"
	case MultipleOfInteger, MultipleOfFloat:
		return "value is not a multiple of the required step"
	case MaximumLength:
		return "string exceeds maximum length"
	case MinimumLength:
		return "string shorter than minimum length"
	case Pattern:
		return "string does not match pattern"
	case MaxItems:
		return "array has too many items"
	case MinItems:
		return "array has too few items"
	case UniqueItems:
		return "array has duplicate items"
	case MaxProperties:
		return "table has too many properties"
	case MinProperties:
		return "table has too few properties"
	case PatternProperty:
		return "property does not match patternProperties"
	case KeyRequired:
		return "required key missing"
	case KeyNotAllowed:
		return "key not allowed"
	default:
		return "validation error"
	}
}

// Diagnostics adapts diags to diagnostic.Diagnostic for uniform printing.
func Diagnostics(diags []Diagnostic) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, d)
	}
	return out
}
