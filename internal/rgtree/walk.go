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

import "iter"

// WalkEvent is emitted twice for every node visited by Preorder: once on
// entry (before its children) and once on leaving (after its children).
// Tokens only ever produce an Enter event, since they have no children.
type WalkEvent struct {
	Enter *RedElement
	Leave *RedElement
}

// Preorder walks the subtree rooted at n, depth-first, left to right,
// yielding matched Enter/Leave events for each node and a single Enter
// event for each token. This mirrors the WalkEvent iterator in
// crates/rg-tree's traversal API, adapted to Go's range-over-func
// iterators (iter.Seq) rather than a hand-rolled Iterator trait.
func Preorder(n *RedNode) iter.Seq[WalkEvent] {
	return func(yield func(WalkEvent) bool) {
		walk(RedElement{Node: n}, yield)
	}
}

func walk(e RedElement, yield func(WalkEvent) bool) bool {
	if !yield(WalkEvent{Enter: &e}) {
		return false
	}
	if e.Node != nil {
		for _, c := range e.Node.Children() {
			if !walk(c, yield) {
				return false
			}
		}
	}
	if e.Node != nil {
		if !yield(WalkEvent{Leave: &e}) {
			return false
		}
	}
	return true
}

// PreorderNodes is a convenience filter over Preorder that yields only
// node-entry events, dropping tokens and Leave events.
func PreorderNodes(n *RedNode) iter.Seq[*RedNode] {
	return func(yield func(*RedNode) bool) {
		for ev := range Preorder(n) {
			if ev.Enter != nil && ev.Enter.Node != nil {
				if !yield(ev.Enter.Node) {
					return
				}
			}
		}
	}
}

// Tokens yields every token under n, in document order.
func Tokens(n *RedNode) iter.Seq[*RedToken] {
	return func(yield func(*RedToken) bool) {
		for ev := range Preorder(n) {
			if ev.Enter != nil && ev.Enter.Token != nil {
				if !yield(ev.Enter.Token) {
					return
				}
			}
		}
	}
}
