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

package rgtree

import "github.com/tombi-toolkit/tombi-go/internal/text"

// RedNode is the lazy, parent-aware overlay over an immutable GreenNode.
// Unlike the green tree, every RedNode knows its absolute byte offset,
// absolute line/column position, and its parent -- the information the
// green tree deliberately omits so that green subtrees can be shared.
//
// Children are recomputed on every call to Children rather than cached on
// the node, trading a little walk-time work for not needing interior
// mutability (the original crates/red-green-tree implementation caches
// red children behind a lock so repeated descents are free; Go's simpler
// value semantics make that caching more trouble than it is worth here).
type RedNode struct {
	green  *GreenNode
	parent *RedNode
	index  int
	offset text.Offset
	pos    text.Position
}

// RedToken is the red overlay of a GreenToken leaf.
type RedToken struct {
	green  *GreenToken
	parent *RedNode
	index  int
	offset text.Offset
	pos    text.Position
}

// RedElement is either a *RedNode or a *RedToken.
type RedElement struct {
	Node  *RedNode
	Token *RedToken
}

func (e RedElement) Kind() Kind {
	if e.Node != nil {
		return e.Node.Kind()
	}
	return e.Token.Kind()
}

func (e RedElement) Span() text.Span {
	if e.Node != nil {
		return e.Node.Span()
	}
	return e.Token.Span()
}

func (e RedElement) Range() text.Range {
	if e.Node != nil {
		return e.Node.Range()
	}
	return e.Token.Range()
}

// NewRoot wraps green as the root of a red overlay.
func NewRoot(green *GreenNode) *RedNode {
	return &RedNode{green: green}
}

func (n *RedNode) Green() *GreenNode { return n.green }
func (n *RedNode) Kind() Kind        { return n.green.Kind }
func (n *RedNode) Parent() *RedNode  { return n.parent }
func (n *RedNode) IndexInParent() int { return n.index }
func (n *RedNode) Text() string      { return n.green.Text() }

func (n *RedNode) Span() text.Span {
	return text.NewSpan(n.offset, n.offset+n.green.textLen)
}

func (n *RedNode) Range() text.Range {
	return text.NewRange(n.pos, n.pos.Add(n.green.posLen))
}

// Children materializes n's direct children as red elements, each carrying
// its absolute offset and position derived from n's own.
func (n *RedNode) Children() []RedElement {
	out := make([]RedElement, len(n.green.Children))
	offset := n.offset
	pos := n.pos
	for i, c := range n.green.Children {
		if c.Node != nil {
			out[i] = RedElement{Node: &RedNode{
				green: c.Node, parent: n, index: i, offset: offset, pos: pos,
			}}
		} else {
			out[i] = RedElement{Token: &RedToken{
				green: c.Token, parent: n, index: i, offset: offset, pos: pos,
			}}
		}
		offset += c.textLen()
		pos = pos.Add(c.posLen())
	}
	return out
}

// ChildNodes returns only the node children, dropping tokens.
func (n *RedNode) ChildNodes() []*RedNode {
	var out []*RedNode
	for _, c := range n.Children() {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// Tokens returns the tokens directly under n (not recursive), dropping
// node children.
func (n *RedNode) Tokens() []*RedToken {
	var out []*RedToken
	for _, c := range n.Children() {
		if c.Token != nil {
			out = append(out, c.Token)
		}
	}
	return out
}

// ChildrenOfKind filters ChildNodes by kind, preserving order.
func (n *RedNode) ChildrenOfKind(k Kind) []*RedNode {
	var out []*RedNode
	for _, c := range n.ChildNodes() {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

func (t *RedToken) Green() *GreenToken { return t.green }
func (t *RedToken) Kind() Kind         { return t.green.Kind }
func (t *RedToken) Text() string       { return t.green.Text }
func (t *RedToken) Parent() *RedNode   { return t.parent }
func (t *RedToken) IndexInParent() int { return t.index }

func (t *RedToken) Span() text.Span {
	return text.NewSpan(t.offset, t.offset+t.green.textLen())
}

func (t *RedToken) Range() text.Range {
	return text.NewRange(t.pos, t.pos.Add(t.green.posLen()))
}

// Root walks up to the outermost ancestor of n.
func (n *RedNode) Root() *RedNode {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Ancestors returns n and every parent up to (and including) the root, in
// that order.
func (n *RedNode) Ancestors() []*RedNode {
	var out []*RedNode
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}
