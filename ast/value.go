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

// Value wraps a VALUE node: either a single scalar token (string,
// integer, float, boolean, or one of the four date-time kinds) or a
// composite Array/InlineTable child.
type Value struct{ syntax *rgtree.RedNode }

func (v Value) Syntax() *rgtree.RedNode { return v.syntax }

func CastValue(n *rgtree.RedNode) (Value, bool) {
	if n == nil || n.Kind() != syntax.VALUE {
		return Value{}, false
	}
	return Value{n}, true
}

// Array attempts to view v as an array value.
func (v Value) Array() (Array, bool) {
	for _, c := range v.syntax.ChildrenOfKind(syntax.ARRAY) {
		return Array{c}, true
	}
	return Array{}, false
}

// InlineTable attempts to view v as an inline-table value.
func (v Value) InlineTable() (InlineTable, bool) {
	for _, c := range v.syntax.ChildrenOfKind(syntax.INLINE_TABLE) {
		return InlineTable{c}, true
	}
	return InlineTable{}, false
}

// ScalarToken returns v's literal token, if v is a scalar rather than a
// composite value.
func (v Value) ScalarToken() (*rgtree.RedToken, bool) {
	for _, t := range v.syntax.Tokens() {
		if t.Kind().IsLiteral() {
			return t, true
		}
	}
	return nil, false
}

// Kind reports which literal or composite kind v holds, or syntax.ERROR if
// v failed to parse into any recognizable shape.
func (v Value) Kind() syntax.Kind {
	if t, ok := v.ScalarToken(); ok {
		return t.Kind()
	}
	if _, ok := v.Array(); ok {
		return syntax.ARRAY
	}
	if _, ok := v.InlineTable(); ok {
		return syntax.INLINE_TABLE
	}
	return syntax.ERROR
}

// Array is a `[ ... ]` value.
type Array struct{ syntax *rgtree.RedNode }

func (a Array) Syntax() *rgtree.RedNode { return a.syntax }

func CastArray(n *rgtree.RedNode) (Array, bool) {
	if n == nil || n.Kind() != syntax.ARRAY {
		return Array{}, false
	}
	return Array{n}, true
}

func (a Array) Values() []Value {
	var out []Value
	for _, c := range a.syntax.ChildrenOfKind(syntax.VALUE) {
		out = append(out, Value{c})
	}
	return out
}

// HasTrailingComma reports whether the source wrote a comma after a's last
// value, before the closing `]` (spec.md Section 4.6: a trailing comma
// forces multiline rendering regardless of length or comment content).
func (a Array) HasTrailingComma() bool {
	return lastSignificantIsComma(a.syntax, syntax.BRACKET_END)
}

// InlineTable is a `{ ... }` value.
type InlineTable struct{ syntax *rgtree.RedNode }

func (t InlineTable) Syntax() *rgtree.RedNode { return t.syntax }

func CastInlineTable(n *rgtree.RedNode) (InlineTable, bool) {
	if n == nil || n.Kind() != syntax.INLINE_TABLE {
		return InlineTable{}, false
	}
	return InlineTable{n}, true
}

func (t InlineTable) KeyValues() []KeyValue {
	var out []KeyValue
	for _, c := range t.syntax.ChildrenOfKind(syntax.KEY_VALUE) {
		out = append(out, KeyValue{c})
	}
	return out
}

// HasTrailingComma reports whether the source wrote a comma after t's last
// key-value, before the closing `}` -- only legal under TOML 1.1-preview,
// but recorded regardless of version so the formatter can still decide to
// keep a (possibly erroring) inline table multiline rather than silently
// collapsing it.
func (t InlineTable) HasTrailingComma() bool {
	return lastSignificantIsComma(t.syntax, syntax.BRACE_END)
}

// lastSignificantIsComma walks n's direct children from the end, skipping
// trivia and the closing delimiter token closeKind, and reports whether the
// first element found is a COMMA.
func lastSignificantIsComma(n *rgtree.RedNode, closeKind syntax.Kind) bool {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		k := children[i].Kind()
		if k.IsTrivia() || k == closeKind {
			continue
		}
		return k == syntax.COMMA
	}
	return false
}
