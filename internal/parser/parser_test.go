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

package parser_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/internal/parser"
	"github.com/tombi-toolkit/tombi-go/version"
)

func TestParseIsLossless(t *testing.T) {
	src := "# leading\nname = \"tombi\"\n\n[table]\nkey = 1 # trailing\n\n[[items]]\nx = 1\n"
	result := parser.Parse(src, version.Default)
	qt.Assert(t, qt.HasLen(result.ParseErrors, 0))
	qt.Assert(t, qt.Equals(result.Green.Text(), src))
}

func TestParseRecoversFromErrorAndStaysLossless(t *testing.T) {
	src := "name = \nother = 1\n"
	result := parser.Parse(src, version.Default)
	qt.Assert(t, qt.IsTrue(len(result.ParseErrors) > 0))
	qt.Assert(t, qt.Equals(result.Green.Text(), src))
}

func TestDiagnosticsFiltersByVersionApplicability(t *testing.T) {
	result := parser.Parse("a = 1\n", version.V1_0_0)
	qt.Assert(t, qt.HasLen(parser.Diagnostics(result.ParseErrors, version.V1_0_0), 0))
}

func TestInlineTableTrailingCommaOnlyFlaggedUnder1_0_0(t *testing.T) {
	src := "t = { a = 1, }\n"
	r100 := parser.Parse(src, version.V1_0_0)
	rPreview := parser.Parse(src, version.V1_1_0Preview)
	qt.Assert(t, qt.IsTrue(len(parser.Diagnostics(r100.ParseErrors, version.V1_0_0)) > 0))
	qt.Assert(t, qt.HasLen(parser.Diagnostics(rPreview.ParseErrors, version.V1_1_0Preview), 0))
}
