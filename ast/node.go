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

// Package ast wraps the untyped green/red syntax tree (internal/rgtree) in
// a typed view: one small struct per syntax kind, each holding nothing but
// a *rgtree.RedNode and exposing accessors named after the TOML grammar
// rather than tree shape. This mirrors the cast/can_cast/syntax split in
// crates/ast's AstNode trait, adapted to Go's lack of trait default
// methods by giving every wrapper type the same three pieces (a Syntax
// accessor, a package-level Cast function, a package-level kind check).
package ast

import (
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
)

// Node is implemented by every typed wrapper in this package.
type Node interface {
	Syntax() *rgtree.RedNode
}

// Root is the top-level node: a flat sequence of key/value lines, table
// headers, and array-of-table headers, in source order.
type Root struct{ syntax *rgtree.RedNode }

func (r Root) Syntax() *rgtree.RedNode { return r.syntax }

// CastRoot wraps n if it is a ROOT node.
func CastRoot(n *rgtree.RedNode) (Root, bool) {
	if n == nil || n.Kind() != syntax.ROOT {
		return Root{}, false
	}
	return Root{n}, true
}

// Items returns every top-level KeyValue, Table, and ArrayOfTable in
// source order.
func (r Root) Items() []Node {
	var out []Node
	for _, c := range r.syntax.ChildNodes() {
		switch c.Kind() {
		case syntax.KEY_VALUE:
			out = append(out, KeyValue{c})
		case syntax.TABLE:
			out = append(out, Table{c})
		case syntax.ARRAY_OF_TABLE:
			out = append(out, ArrayOfTable{c})
		}
	}
	return out
}

func (r Root) KeyValues() []KeyValue {
	var out []KeyValue
	for _, c := range r.syntax.ChildrenOfKind(syntax.KEY_VALUE) {
		out = append(out, KeyValue{c})
	}
	return out
}

func (r Root) Tables() []Table {
	var out []Table
	for _, c := range r.syntax.ChildrenOfKind(syntax.TABLE) {
		out = append(out, Table{c})
	}
	return out
}

func (r Root) ArrayOfTables() []ArrayOfTable {
	var out []ArrayOfTable
	for _, c := range r.syntax.ChildrenOfKind(syntax.ARRAY_OF_TABLE) {
		out = append(out, ArrayOfTable{c})
	}
	return out
}
