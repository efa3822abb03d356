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

// Package diagnostic defines the common shape every error produced across
// the lexer, parser, document, schema, and validate packages is rendered
// through, mirroring the accessor/printer split in cue/errors.
package diagnostic

import "github.com/tombi-toolkit/tombi-go/internal/text"

// Severity classifies how serious a Diagnostic is. Only Error affects a
// CLI invocation's exit code; Warning and Hint are advisory.
type Severity int

const (
	Error Severity = iota
	Warning
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic is implemented by every error type in the pipeline so that a
// single printer can render lexer errors, parse errors, schema violations,
// and validation failures uniformly.
type Diagnostic interface {
	error
	Range() text.Range
	Severity() Severity
}

// HasErrors reports whether any diagnostic in diags is Error-severity,
// the threshold the CLI uses for a non-zero exit code.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity() == Error {
			return true
		}
	}
	return false
}
