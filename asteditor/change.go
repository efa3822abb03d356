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

// Package asteditor is a cooperative rewrite layer over the lossless
// syntax tree: given an ordered sequence of Changes, it rebuilds the
// green tree with each applied in turn, grounded in
// crates/tombi-ast-editor's edit/rule split (one rule computes *what*
// should change, the editor applies *how*). Unlike a visitor that mutates
// in place, every edit here path-copies through internal/rgtree's
// immutable green nodes, since Go has no persistent-tree library in the
// pack and cue's own formatter never mutates its input tree either.
package asteditor

import "github.com/tombi-toolkit/tombi-go/internal/rgtree"

// Change is implemented by every edit operation the editor accepts.
// The four variants mirror spec.md Section 4.8 exactly.
type Change interface {
	apply(root *rgtree.GreenNode) *rgtree.GreenNode
}

// AppendTop appends New as additional top-level root children, after
// everything already present, i.e. at the end of the document.
type AppendTop struct {
	New []rgtree.GreenElement
}

func (c AppendTop) apply(root *rgtree.GreenNode) *rgtree.GreenNode {
	return rgtree.SpliceChildren(root, len(root.Children), len(root.Children), c.New)
}

// Append inserts New as siblings immediately after Base within Base's
// parent.
type Append struct {
	Base rgtree.NodePtr
	New  []rgtree.GreenElement
}

func (c Append) apply(root *rgtree.GreenNode) *rgtree.GreenNode {
	red := rgtree.NewRoot(root)
	base, ok := c.Base.Resolve(red)
	if !ok {
		return root
	}
	path := rgtree.PathTo(base)
	parentPath := path[:len(path)-1]
	at := base.IndexInParent() + 1
	return rgtree.InsertAt(root, parentPath, at, c.New)
}

// Remove deletes Target from its parent entirely.
type Remove struct {
	Target rgtree.NodePtr
}

func (c Remove) apply(root *rgtree.GreenNode) *rgtree.GreenNode {
	red := rgtree.NewRoot(root)
	target, ok := c.Target.Resolve(red)
	if !ok {
		return root
	}
	return rgtree.Detach(root, rgtree.PathTo(target))
}

// ReplaceRange replaces the contiguous run of siblings [Old[0], Old[len-1]]
// (inclusive, all children of the same parent) with New. Used for
// schema-driven key/value reordering: Old is every child being reordered,
// New is the same elements (by green content) in the new order.
type ReplaceRange struct {
	Old []rgtree.NodePtr
	New []rgtree.GreenElement
}

func (c ReplaceRange) apply(root *rgtree.GreenNode) *rgtree.GreenNode {
	if len(c.Old) == 0 {
		return root
	}
	red := rgtree.NewRoot(root)
	first, ok := c.Old[0].Resolve(red)
	if !ok {
		return root
	}
	last, ok := c.Old[len(c.Old)-1].Resolve(red)
	if !ok {
		return root
	}
	path := rgtree.PathTo(first)
	parentPath := path[:len(path)-1]
	from, to := first.IndexInParent(), last.IndexInParent()+1
	return spliceAt(root, parentPath, from, to, c.New)
}

func spliceAt(root *rgtree.GreenNode, parentPath []int, from, to int, newChildren []rgtree.GreenElement) *rgtree.GreenNode {
	if len(parentPath) == 0 {
		return rgtree.SpliceChildren(root, from, to, newChildren)
	}
	idx := parentPath[0]
	child := root.Children[idx].Node
	rebuilt := spliceAt(child, parentPath[1:], from, to, newChildren)
	return rgtree.ReplaceAt(root, []int{idx}, rebuilt)
}

// Apply rebuilds root with every change applied in order; a later change's
// NodePtr is resolved against the tree as edited by every change before
// it, so it always sees up-to-date positions (spec.md Section 4.8:
// "Changes are applied in iteration order; later changes see the results
// of earlier ones").
func Apply(root *rgtree.RedNode, changes []Change) *rgtree.RedNode {
	green := root.Green()
	for _, c := range changes {
		green = c.apply(green)
	}
	return rgtree.NewRoot(green)
}
