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

package document_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/document"
	"github.com/tombi-toolkit/tombi-go/version"
)

func lower(t *testing.T, src string) document.DocumentTreeAndErrors[*document.Table] {
	t.Helper()
	root, _ := ast.Parse(src, version.Default)
	return document.Lower(root, version.Default)
}

func TestLowerSimpleKeyValue(t *testing.T) {
	tree := lower(t, "name = \"tombi\"\nport = 8080\n")
	qt.Assert(t, qt.HasLen(tree.Errors, 0))
	v, ok := tree.Tree.Get("name")
	qt.Assert(t, qt.IsTrue(ok))
	s, ok := v.(document.String)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s.Value, "tombi"))
}

func TestLowerDottedKeysNestTables(t *testing.T) {
	tree := lower(t, "a.b.c = 1\n")
	qt.Assert(t, qt.HasLen(tree.Errors, 0))
	a, ok := tree.Tree.Get("a")
	qt.Assert(t, qt.IsTrue(ok))
	aTable, ok := a.(*document.Table)
	qt.Assert(t, qt.IsTrue(ok))
	b, ok := aTable.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	bTable, ok := b.(*document.Table)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = bTable.Get("c")
	qt.Assert(t, qt.IsTrue(ok))
}

func TestLowerDuplicateKeyIsReportedNotSilentlyOverwritten(t *testing.T) {
	tree := lower(t, "a = 1\na = 2\n")
	qt.Assert(t, qt.IsTrue(len(tree.Errors) > 0))
	qt.Assert(t, qt.Equals(tree.Errors[0].Kind, document.DuplicateKey))
}

func TestLowerArrayOfTablesAppends(t *testing.T) {
	tree := lower(t, "[[items]]\nx = 1\n[[items]]\nx = 2\n")
	qt.Assert(t, qt.HasLen(tree.Errors, 0))
	v, ok := tree.Tree.Get("items")
	qt.Assert(t, qt.IsTrue(ok))
	arr, ok := v.(*document.Array)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(len(arr.Values), 2))
}

func TestLowerRejectsLeadingZeroInteger(t *testing.T) {
	tree := lower(t, "a = 01\n")
	qt.Assert(t, qt.IsTrue(len(tree.Errors) > 0))
	qt.Assert(t, qt.Equals(tree.Errors[0].Kind, document.ParseIntError))
}

func TestLowerRejectsLeadingZeroFloat(t *testing.T) {
	tree := lower(t, "a = 01.5\n")
	qt.Assert(t, qt.IsTrue(len(tree.Errors) > 0))
	qt.Assert(t, qt.Equals(tree.Errors[0].Kind, document.ParseFloatError))
}

func TestLowerRejectsDoubleUnderscoreInInteger(t *testing.T) {
	tree := lower(t, "a = 1__2\n")
	qt.Assert(t, qt.IsTrue(len(tree.Errors) > 0))
	qt.Assert(t, qt.Equals(tree.Errors[0].Kind, document.ParseIntError))
}

func TestLowerRejectsLeadingUnderscoreKeyIsNotANumberCase(t *testing.T) {
	// `_1` can't lex as a number at all (no leading digit): it lexes as a
	// bare key, the parser reports ExpectedValue, and lowering records an
	// IncompleteNode error rather than a ParseIntError -- the underscore
	// rule only applies to `_` already inside a lexed number token.
	tree := lower(t, "a = _1\n")
	qt.Assert(t, qt.IsTrue(len(tree.Errors) > 0))
}

func TestLowerRejectsTrailingUnderscoreInInteger(t *testing.T) {
	tree := lower(t, "a = 1_\n")
	qt.Assert(t, qt.IsTrue(len(tree.Errors) > 0))
	qt.Assert(t, qt.Equals(tree.Errors[0].Kind, document.ParseIntError))
}

func TestLowerAcceptsWellPlacedUnderscoresInInteger(t *testing.T) {
	tree := lower(t, "a = 1_000_000\n")
	qt.Assert(t, qt.HasLen(tree.Errors, 0))
	v, ok := tree.Tree.Get("a")
	qt.Assert(t, qt.IsTrue(ok))
	i, ok := v.(document.Integer)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(i.Value, int64(1000000)))
}

func TestLowerAcceptsSingleZeroInteger(t *testing.T) {
	tree := lower(t, "a = 0\n")
	qt.Assert(t, qt.HasLen(tree.Errors, 0))
}

func TestLowerAcceptsLeadingZeroInHexOctBin(t *testing.T) {
	tree := lower(t, "a = 0x01\nb = 0o01\nc = 0b01\n")
	qt.Assert(t, qt.HasLen(tree.Errors, 0))
}

func TestDocumentTreeAndErrorsIsCompleteReflectsErrors(t *testing.T) {
	clean := lower(t, "a = 1\n")
	qt.Assert(t, qt.IsTrue(clean.IsComplete()))

	dup := lower(t, "a = 1\na = 2\n")
	qt.Assert(t, qt.IsFalse(dup.IsComplete()))
}
