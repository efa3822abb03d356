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

package ast

import (
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
)

// KeyValue is a single `key = value` line, wherever it appears: at the top
// level, inside a Table/ArrayOfTable body, or inside an InlineTable.
type KeyValue struct{ syntax *rgtree.RedNode }

func (kv KeyValue) Syntax() *rgtree.RedNode { return kv.syntax }

func CastKeyValue(n *rgtree.RedNode) (KeyValue, bool) {
	if n == nil || n.Kind() != syntax.KEY_VALUE {
		return KeyValue{}, false
	}
	return KeyValue{n}, true
}

func (kv KeyValue) Keys() (Keys, bool) {
	for _, c := range kv.syntax.ChildrenOfKind(syntax.KEYS) {
		return Keys{c}, true
	}
	return Keys{}, false
}

func (kv KeyValue) Value() (Value, bool) {
	for _, c := range kv.syntax.ChildrenOfKind(syntax.VALUE) {
		return Value{c}, true
	}
	return Value{}, false
}

// Table is a `[a.b.c]` header and the key/value lines under it.
type Table struct{ syntax *rgtree.RedNode }

func (t Table) Syntax() *rgtree.RedNode { return t.syntax }

func CastTable(n *rgtree.RedNode) (Table, bool) {
	if n == nil || n.Kind() != syntax.TABLE {
		return Table{}, false
	}
	return Table{n}, true
}

func (t Table) Keys() (Keys, bool) {
	for _, c := range t.syntax.ChildrenOfKind(syntax.KEYS) {
		return Keys{c}, true
	}
	return Keys{}, false
}

func (t Table) KeyValues() []KeyValue {
	var out []KeyValue
	for _, c := range t.syntax.ChildrenOfKind(syntax.KEY_VALUE) {
		out = append(out, KeyValue{c})
	}
	return out
}

// ArrayOfTable is a `[[a.b.c]]` header and the key/value lines under it.
type ArrayOfTable struct{ syntax *rgtree.RedNode }

func (t ArrayOfTable) Syntax() *rgtree.RedNode { return t.syntax }

func CastArrayOfTable(n *rgtree.RedNode) (ArrayOfTable, bool) {
	if n == nil || n.Kind() != syntax.ARRAY_OF_TABLE {
		return ArrayOfTable{}, false
	}
	return ArrayOfTable{n}, true
}

func (t ArrayOfTable) Keys() (Keys, bool) {
	for _, c := range t.syntax.ChildrenOfKind(syntax.KEYS) {
		return Keys{c}, true
	}
	return Keys{}, false
}

func (t ArrayOfTable) KeyValues() []KeyValue {
	var out []KeyValue
	for _, c := range t.syntax.ChildrenOfKind(syntax.KEY_VALUE) {
		out = append(out, KeyValue{c})
	}
	return out
}
