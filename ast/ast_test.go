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

package ast_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/version"
)

func TestParseRoundTripsSourceExactly(t *testing.T) {
	src := "# file comment\nname = \"tombi\" # trailing\n\n[table]\nkey = 1\n"
	root, result := ast.Parse(src, version.Default)
	qt.Assert(t, qt.HasLen(result.ParseErrors, 0))
	qt.Assert(t, qt.Equals(root.Syntax().Text(), src))
}

func TestLeadingCommentAttachesToFollowingKeyValueNotRoot(t *testing.T) {
	root, _ := ast.Parse("# top of file\nname = \"tombi\"\n", version.Default)
	kvs := root.KeyValues()
	qt.Assert(t, qt.HasLen(kvs, 1))

	leading := kvs[0].LeadingComments()
	qt.Assert(t, qt.HasLen(leading, 1))
	qt.Assert(t, qt.Equals(leading[0].Text(), "# top of file"))
}

func TestTailingCommentOnKeyValue(t *testing.T) {
	root, _ := ast.Parse("name = \"tombi\" # trailing\n", version.Default)
	kvs := root.KeyValues()
	qt.Assert(t, qt.HasLen(kvs, 1))

	c, ok := kvs[0].TailingComment()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c.Text(), "# trailing"))
}

func TestArrayDanglingCommentRoles(t *testing.T) {
	root, _ := ast.Parse("a = [\n  # before\n  1,\n  2,\n  # after\n]\n", version.Default)
	kvs := root.KeyValues()
	qt.Assert(t, qt.HasLen(kvs, 1))

	v, ok := kvs[0].Value()
	qt.Assert(t, qt.IsTrue(ok))
	arr, ok := v.Array()
	qt.Assert(t, qt.IsTrue(ok))

	comments := arr.Comments()
	qt.Assert(t, qt.HasLen(comments, 2))
	qt.Assert(t, qt.Equals(comments[0].Role, ast.RoleBeginDangling))
	qt.Assert(t, qt.Equals(comments[1].Role, ast.RoleEndDangling))
}

func TestKeysTextJoinsDottedSegments(t *testing.T) {
	root, _ := ast.Parse("a.b.c = 1\n", version.Default)
	kvs := root.KeyValues()
	qt.Assert(t, qt.HasLen(kvs, 1))
	keys, ok := kvs[0].Keys()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(keys.String(), "a.b.c"))
}
