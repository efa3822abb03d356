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

package asteditor_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/asteditor"
	"github.com/tombi-toolkit/tombi-go/format"
	"github.com/tombi-toolkit/tombi-go/version"
)

func TestHoistSchemaDirective(t *testing.T) {
	src := "name = 1\n#:schema ./schema.json\nversion = 2\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	changes := asteditor.HoistSchemaDirective(root)
	qt.Assert(t, qt.HasLen(changes, 1))

	edited := asteditor.Apply(root.Syntax(), changes)
	newRoot, ok := ast.CastRoot(edited)
	qt.Assert(t, qt.IsTrue(ok))
	out, _ := format.Format(newRoot, version.V1_0_0, format.DefaultOptions())
	qt.Assert(t, qt.Equals(out, "#:schema ./schema.json\nname = 1\nversion = 2\n"))
}

func TestHoistSchemaDirectiveNoOpWhenAlreadyLeading(t *testing.T) {
	src := "#:schema ./schema.json\nname = 1\nversion = 2\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	changes := asteditor.HoistSchemaDirective(root)
	qt.Assert(t, qt.HasLen(changes, 0))
}

func TestReorderTableKeys(t *testing.T) {
	src := "[table]\nc = 3\na = 1\nb = 2\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	tbl := root.Tables()[0]
	changes := asteditor.ReorderTableKeys(tbl, []string{"a", "b", "c"})
	qt.Assert(t, qt.HasLen(changes, 1))

	edited := asteditor.Apply(root.Syntax(), changes)
	newRoot, ok := ast.CastRoot(edited)
	qt.Assert(t, qt.IsTrue(ok))
	out, _ := format.Format(newRoot, version.V1_0_0, format.DefaultOptions())
	qt.Assert(t, qt.Equals(out, "[table]\na = 1\nb = 2\nc = 3\n"))
}

func TestReorderTableKeysNoOpWhenAlreadySorted(t *testing.T) {
	src := "[table]\na = 1\nb = 2\n"
	root, _ := ast.Parse(src, version.V1_0_0)
	tbl := root.Tables()[0]
	changes := asteditor.ReorderTableKeys(tbl, []string{"a", "b"})
	qt.Assert(t, qt.HasLen(changes, 0))
}
