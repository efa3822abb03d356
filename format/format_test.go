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

package format_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/format"
	"github.com/tombi-toolkit/tombi-go/version"
)

func TestFormatRoundTripsSimpleDocument(t *testing.T) {
	src := "name = \"tombi\"\nversion = 1\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	out, diags := format.Format(root, version.V1_0_0, format.DefaultOptions())
	qt.Assert(t, qt.HasLen(diags, 0))
	qt.Assert(t, qt.Equals(out, "name = \"tombi\"\nversion = 1\n"))
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "[package]\nname = 'x'\n\n[[items]]\nid = 1\n"
	qt.Assert(t, qt.IsTrue(format.IsIdempotent(src, version.V1_0_0, format.DefaultOptions())))
}

func TestFormatRequotesUnescapedStrings(t *testing.T) {
	src := "name = 'tombi'\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	opts := format.DefaultOptions()
	opts.QuoteStyle = format.QuoteDouble
	out, _ := format.Format(root, version.V1_0_0, opts)
	qt.Assert(t, qt.Equals(out, "name = \"tombi\"\n"))
}

func TestFormatMultilineArrayOnMultilineString(t *testing.T) {
	src := "values = [\"\"\"\nfoo\n\"\"\", 2]\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	out, _ := format.Format(root, version.V1_0_0, format.DefaultOptions())
	qt.Assert(t, qt.Equals(out, "values = [\n  \"\"\"\nfoo\n\"\"\",\n  2,\n]\n"))
}

func TestFormatPreservesTrailingCommaArray(t *testing.T) {
	src := "arr = [\n  1,\n  2,\n]\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	out, _ := format.Format(root, version.V1_0_0, format.DefaultOptions())
	qt.Assert(t, qt.Equals(out, "arr = [\n  1,\n  2,\n]\n"))
}

func TestFormatCollapsesArrayWithoutTrailingComma(t *testing.T) {
	src := "arr = [\n  1,\n  2\n]\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	out, _ := format.Format(root, version.V1_0_0, format.DefaultOptions())
	qt.Assert(t, qt.Equals(out, "arr = [1, 2]\n"))
}

func TestFormatWrapsArrayExceedingLineWidth(t *testing.T) {
	src := "arr = [\"aaaaaaaaaa\", \"bbbbbbbbbb\", \"cccccccccc\", \"dddddddddd\", \"eeeeeeeeee\"]\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	opts := format.DefaultOptions()
	opts.LineWidth = 40
	out, _ := format.Format(root, version.V1_0_0, opts)
	qt.Assert(t, qt.Equals(out, "arr = [\n"+
		"  \"aaaaaaaaaa\",\n"+
		"  \"bbbbbbbbbb\",\n"+
		"  \"cccccccccc\",\n"+
		"  \"dddddddddd\",\n"+
		"  \"eeeeeeeeee\",\n"+
		"]\n"))
	qt.Assert(t, qt.IsTrue(format.IsIdempotent(src, version.V1_0_0, opts)))
}

func TestFormatPreservesTrailingCommaInlineTable(t *testing.T) {
	src := "t = { a = 1, b = 2, }\n"
	root, _ := ast.Parse(src, version.V1_1_0Preview)
	out, diags := format.Format(root, version.V1_1_0Preview, format.DefaultOptions())
	qt.Assert(t, qt.HasLen(diags, 0))
	qt.Assert(t, qt.Equals(out, "t = {\n  a = 1,\n  b = 2,\n}\n"))
}
