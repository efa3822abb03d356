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

// CommentRole classifies a comment token by where it sits relative to the
// meaningful content of its enclosing node. The tree itself never loses a
// comment (every COMMENT token stays exactly where the lexer found it);
// this is purely an interpretive layer on top for formatting and hover
// text, grounded in the Leading/Tailing/BeginDangling/EndDangling/
// Dangling comment split used throughout the original implementation.
type CommentRole int

const (
	// RoleLeading is a comment block immediately preceding a KeyValue,
	// Table, or ArrayOfTable, documenting what follows.
	RoleLeading CommentRole = iota
	// RoleTailing is a same-line comment following a node's last
	// meaningful token, e.g. `key = 1 # note`.
	RoleTailing
	// RoleBeginDangling is a comment inside a composite value's brackets
	// before its first element.
	RoleBeginDangling
	// RoleEndDangling is a comment inside a composite value's brackets
	// after its last element.
	RoleEndDangling
	// RoleDangling is a comment on its own line between two elements of a
	// composite value, attached to neither.
	RoleDangling
)

// Comment is a single comment token plus the role it plays in its parent.
type Comment struct {
	Token *rgtree.RedToken
	Role  CommentRole
}

func (c Comment) Text() string { return c.Token.Text() }

// bodyComments classifies every COMMENT token directly under n (a
// composite node: ARRAY, INLINE_TABLE, TABLE, or ARRAY_OF_TABLE) relative
// to its VALUE/KEY_VALUE element children.
func bodyComments(n *rgtree.RedNode) []Comment {
	children := n.Children()
	firstBody, lastBody := -1, -1
	for i, c := range children {
		if c.Node == nil {
			continue
		}
		switch c.Node.Kind() {
		case syntax.VALUE, syntax.KEY_VALUE:
			if firstBody == -1 {
				firstBody = i
			}
			lastBody = i
		}
	}
	var out []Comment
	for i, c := range children {
		if c.Token == nil || c.Token.Kind() != syntax.COMMENT {
			continue
		}
		role := RoleDangling
		switch {
		case firstBody == -1, i < firstBody:
			role = RoleBeginDangling
		case i > lastBody:
			role = RoleEndDangling
		}
		out = append(out, Comment{Token: c.Token, Role: role})
	}
	return out
}

func (a Array) Comments() []Comment       { return bodyComments(a.syntax) }
func (t InlineTable) Comments() []Comment { return bodyComments(t.syntax) }
func (t Table) Comments() []Comment       { return bodyComments(t.syntax) }
func (t ArrayOfTable) Comments() []Comment { return bodyComments(t.syntax) }

// Comments classifies the comments attached to a KeyValue: anything before
// its Keys child is leading, anything after its Value child is tailing.
func (kv KeyValue) Comments() []Comment {
	children := kv.syntax.Children()
	keysIdx, valueIdx := -1, -1
	for i, c := range children {
		if c.Node == nil {
			continue
		}
		switch c.Node.Kind() {
		case syntax.KEYS:
			if keysIdx == -1 {
				keysIdx = i
			}
		case syntax.VALUE:
			valueIdx = i
		}
	}
	var out []Comment
	for i, c := range children {
		if c.Token == nil || c.Token.Kind() != syntax.COMMENT {
			continue
		}
		role := RoleLeading
		if valueIdx != -1 && i > valueIdx {
			role = RoleTailing
		} else if keysIdx != -1 && i > keysIdx {
			role = RoleTailing
		}
		out = append(out, Comment{Token: c.Token, Role: role})
	}
	return out
}

// LeadingComments filters Comments down to the RoleLeading subset, in
// source order.
func (kv KeyValue) LeadingComments() []Comment {
	var out []Comment
	for _, c := range kv.Comments() {
		if c.Role == RoleLeading {
			out = append(out, c)
		}
	}
	return out
}

// TailingComment returns the single same-line trailing comment after kv's
// value, if any.
func (kv KeyValue) TailingComment() (Comment, bool) {
	for _, c := range kv.Comments() {
		if c.Role == RoleTailing {
			return c, true
		}
	}
	return Comment{}, false
}
