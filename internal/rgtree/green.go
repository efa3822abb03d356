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

// Package rgtree implements a lossless green/red syntax tree: green nodes
// are immutable and structurally shared; red nodes are a lazy, parent-aware
// overlay that adds absolute positions. This mirrors the rowan-family
// design used throughout the original Rust implementation
// (crates/rg-tree, crates/red-green-tree).
package rgtree

import "github.com/tombi-toolkit/tombi-go/internal/text"

// GreenToken is an immutable leaf holding its kind and raw text.
type GreenToken struct {
	Kind Kind
	Text string
}

func NewGreenToken(kind Kind, text_ string) *GreenToken {
	return &GreenToken{Kind: kind, Text: text_}
}

func (t *GreenToken) textLen() text.Offset      { return text.Offset(len(t.Text)) }
func (t *GreenToken) posLen() text.RelativePosition { return text.Of(t.Text) }

// GreenElement is either a *GreenNode or a *GreenToken. Exactly one field
// is non-nil.
type GreenElement struct {
	Node  *GreenNode
	Token *GreenToken
}

func nodeElem(n *GreenNode) GreenElement  { return GreenElement{Node: n} }
func tokenElem(t *GreenToken) GreenElement { return GreenElement{Token: t} }

// Kind returns the element's syntax kind regardless of whether it wraps a
// node or a token.
func (e GreenElement) Kind() Kind {
	if e.Node != nil {
		return e.Node.Kind
	}
	return e.Token.Kind
}

func (e GreenElement) textLen() text.Offset {
	if e.Node != nil {
		return e.Node.textLen
	}
	return e.Token.textLen()
}

func (e GreenElement) posLen() text.RelativePosition {
	if e.Node != nil {
		return e.Node.posLen
	}
	return e.Token.posLen()
}

// GreenNode is an immutable, structurally-shared interior tree node. It
// caches its total text length and the relative line/column span of its
// text so that red-tree overlays can compute absolute positions in
// O(children) rather than rescanning text from the root.
type GreenNode struct {
	Kind     Kind
	Children []GreenElement

	textLen text.Offset
	posLen  text.RelativePosition
}

// NewGreenNode builds a node from its children, computing cached lengths.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	n := &GreenNode{Kind: kind, Children: children}
	var tot text.Offset
	var rel text.RelativePosition
	for _, c := range children {
		tot += c.textLen()
		rel = rel.Add(c.posLen())
	}
	n.textLen = tot
	n.posLen = rel
	return n
}

// Text concatenates the text of every token under n, in order. Used by the
// lossless round-trip property: Text() of the root equals the original
// source.
func (n *GreenNode) Text() string {
	var b []byte
	n.writeText(&b)
	return string(b)
}

func (n *GreenNode) writeText(b *[]byte) {
	for _, c := range n.Children {
		if c.Node != nil {
			c.Node.writeText(b)
		} else {
			*b = append(*b, c.Token.Text...)
		}
	}
}

// TextLen returns the total byte length of n's text.
func (n *GreenNode) TextLen() text.Offset { return n.textLen }
