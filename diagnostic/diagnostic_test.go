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

package diagnostic_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/text"
)

type fakeDiag struct {
	msg string
	sev diagnostic.Severity
	rng text.Range
}

func (f fakeDiag) Error() string                { return f.msg }
func (f fakeDiag) Range() text.Range            { return f.rng }
func (f fakeDiag) Severity() diagnostic.Severity { return f.sev }

func TestHasErrors(t *testing.T) {
	warn := fakeDiag{msg: "w", sev: diagnostic.Warning}
	qt.Assert(t, qt.IsFalse(diagnostic.HasErrors([]diagnostic.Diagnostic{warn})))

	err := fakeDiag{msg: "e", sev: diagnostic.Error}
	qt.Assert(t, qt.IsTrue(diagnostic.HasErrors([]diagnostic.Diagnostic{warn, err})))
}

func TestPrintFormatsOneLinePerDiagnostic(t *testing.T) {
	d := fakeDiag{
		msg: "unexpected token",
		sev: diagnostic.Error,
		rng: text.NewRange(text.NewPosition(2, 4), text.NewPosition(2, 5)),
	}
	var buf bytes.Buffer
	diagnostic.Print(&buf, "foo.toml", []diagnostic.Diagnostic{d})
	qt.Assert(t, qt.Equals(buf.String(), "foo.toml:3:5: error: unexpected token\n"))
}

func TestPrintPrettyIncludesSourceExcerptAndCaret(t *testing.T) {
	d := fakeDiag{
		msg: "bad value",
		sev: diagnostic.Error,
		rng: text.NewRange(text.NewPosition(1, 7), text.NewPosition(1, 8)),
	}
	var buf bytes.Buffer
	diagnostic.PrintPretty(&buf, "foo.toml", "a = 1\nb = oops\n", []diagnostic.Diagnostic{d})
	out := buf.String()
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "error: bad value")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "foo.toml:2:8")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "b = oops")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "^")))
}

func TestSeverityString(t *testing.T) {
	qt.Assert(t, qt.Equals(diagnostic.Error.String(), "error"))
	qt.Assert(t, qt.Equals(diagnostic.Warning.String(), "warning"))
	qt.Assert(t, qt.Equals(diagnostic.Hint.String(), "hint"))
}
