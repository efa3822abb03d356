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

package rgtree_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/internal/parser"
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/version"
)

func TestNodePtrResolvesBackToSameNode(t *testing.T) {
	src := "a = 1\n[table]\nb = 2\n"
	result := parser.Parse(src, version.Default)
	root := rgtree.NewRoot(result.Green)

	tables := root.ChildrenOfKind(syntax.TABLE)
	qt.Assert(t, qt.HasLen(tables, 1))

	ptr := rgtree.NewNodePtr(tables[0])
	resolved, ok := ptr.Resolve(root)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(resolved.Text(), tables[0].Text()))
}

func TestReplaceAtIsPathCopyAndLeavesOriginalGreenUntouched(t *testing.T) {
	src := "a = 1\n[table]\nb = 2\n"
	result := parser.Parse(src, version.Default)
	root := rgtree.NewRoot(result.Green)

	tables := root.ChildrenOfKind(syntax.TABLE)
	path := rgtree.PathTo(tables[0])

	replaced := rgtree.ReplaceAt(result.Green, path, tables[0].Green())
	qt.Assert(t, qt.Equals(replaced.Text(), src))
	qt.Assert(t, qt.Equals(result.Green.Text(), src))
}

func TestDetachRemovesNodeFromReconstructedText(t *testing.T) {
	src := "a = 1\n[table]\nb = 2\n"
	result := parser.Parse(src, version.Default)
	root := rgtree.NewRoot(result.Green)

	tables := root.ChildrenOfKind(syntax.TABLE)
	path := rgtree.PathTo(tables[0])

	detached := rgtree.Detach(result.Green, path)
	qt.Assert(t, qt.IsTrue(len(detached.Text()) < len(src)))
}
