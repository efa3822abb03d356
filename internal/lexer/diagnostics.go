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
	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// lexerDiagnostic adapts Error to diagnostic.Diagnostic. It's kept
// separate from Error itself because Error already has a Range field;
// Go doesn't allow a method and a field to share a name.
type lexerDiagnostic struct{ err Error }

func (d lexerDiagnostic) Error() string                 { return d.err.Error() }
func (d lexerDiagnostic) Range() text.Range             { return d.err.Range }
func (d lexerDiagnostic) Severity() diagnostic.Severity { return diagnostic.Error }

// Diagnostics adapts a slice of lexer errors to diagnostic.Diagnostic.
func Diagnostics(errs []Error) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, lexerDiagnostic{e})
	}
	return out
}
